// Package content models the data a QR code carries and formats it into the
// payload strings standard QR readers understand (WIFI:, mailto:, tel:, vCard...).
package content
