// Package studio holds the per-client studio session: one explicit state,
// a single dispatch path that mutates it, and subscribers that render the
// preview and persist the result after every committed action.
package studio

import (
	"errors"
	"fmt"
	"time"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/history"
)

// View is a top level screen.
type View string

// Views of the bottom navigation.
const (
	ViewHome     View = "home"
	ViewScan     View = "scan"
	ViewHistory  View = "history"
	ViewSettings View = "settings"
)

// ErrUnknownView is returned for view names outside the navigation.
var ErrUnknownView = errors.New("unknown view")

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewHome, ViewScan, ViewHistory, ViewSettings:
		return View(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// User facing messages.
const (
	MsgSavedToHistory    = "Saved to History"
	MsgRestored          = "Restored from History"
	MsgHistoryCleared    = "History Cleared"
	MsgScanLoaded        = "QR Content Loaded!"
	MsgTemplateApplied   = "Applied template: "
	MsgConfigSaved       = "Design saved to JSON!"
	MsgConfigLoaded      = "Design loaded successfully!"
	MsgRenderFailed      = "Failed to generate QR Code. Check content."
	MsgCameraFailed      = "Could not start camera."
	MsgTorchUnsupported  = "Flash not supported on this device."
	MsgCopiedToClipboard = "Copied to clipboard!"
)

// Notification is a transient message.
type Notification struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// State is a read-only copy of everything the UI shows.
type State struct {
	ClientID string         `json:"clientId"`
	Kind     content.Kind   `json:"activeType"`
	Values   content.Values `json:"dataValues"`
	design.Style
	Data          string          `json:"data"`
	History       []history.Entry `json:"history"`
	View          View            `json:"activeView"`
	ScannedData   *string         `json:"scannedData"`
	HasFlash      bool            `json:"hasFlash"`
	FlashOn       bool            `json:"isFlashOn"`
	DarkMode      bool            `json:"darkMode"`
	Notifications []Notification  `json:"notifications"`
	Alert         string          `json:"alert,omitempty"`
	Rendered      bool            `json:"rendered"`
	Preview       uint64          `json:"previewVersion"`
}

// Notification returns the newest live message or the empty string.
func (s State) Notification() string {
	if len(s.Notifications) == 0 {
		return ""
	}

	return s.Notifications[len(s.Notifications)-1].Message
}
