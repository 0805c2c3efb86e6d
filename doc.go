// Package main is the qr-kitchen command. It serves the QR Kitchen studio over
// HTTP with Fiber and offers offline helpers to format payloads, render styled
// codes and classify scanned text.
package main
