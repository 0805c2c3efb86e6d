package studio

import (
	"image"
	"io"
	"time"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/render"
)

// Action is one state change request.
type Action interface {
	Name() string
}

type (
	// SetKind switches the active content kind. Values of other kinds stay.
	SetKind struct{ Kind content.Kind }
	// SetValues replaces the content values.
	SetValues struct{ Values content.Values }
	// SetDesign replaces the design.
	SetDesign struct{ Design design.Design }
	// SetGradient replaces the gradient overlay.
	SetGradient struct{ Gradient design.Gradient }
	// SetCustomEye toggles independent corner colors.
	SetCustomEye struct{ Enabled bool }
	// SetLogo embeds a logo given as data URI.
	SetLogo struct{ DataURI string }
	// RemoveLogo drops the embedded logo.
	RemoveLogo struct{}
	// ApplyTemplate merges a catalog template into the style.
	ApplyTemplate struct{ Category, Template string }
	// SaveHistory stores the current code in the history.
	SaveHistory struct{}
	// RestoreHistory loads a history entry and returns home.
	RestoreHistory struct{ ID int64 }
	// DeleteHistory removes a history entry.
	DeleteHistory struct{ ID int64 }
	// ClearHistory removes every history entry.
	ClearHistory struct{}
	// ImportConfig applies a portable design file.
	ImportConfig struct{ Raw []byte }
	// ExportConfig writes the portable design file. At defaults to now.
	ExportConfig struct {
		W  io.Writer
		At time.Time
	}
	// Navigate switches the top level view.
	Navigate struct{ View View }
	// ScanDecoded records text read by the running scan session.
	ScanDecoded struct{ Text string }
	// ScanFrame hands a camera frame to the running scan session.
	ScanFrame struct{ Frame image.Image }
	// RebuildFromScan classifies the scanned text into content and returns home.
	RebuildFromScan struct{}
	// DismissScan discards the scanned text and resumes scanning.
	DismissScan struct{}
	// ToggleTorch switches the camera torch.
	ToggleTorch struct{}
	// ToggleDarkMode flips the theme, or sets it when Enabled is given.
	ToggleDarkMode struct{ Enabled *bool }
	// Notify shows a transient message.
	Notify struct{ Message string }
	// AckAlert closes the blocking alert.
	AckAlert struct{}
	// Download saves the code to history and writes the export image.
	Download struct {
		Ext render.Extension
		W   io.Writer
	}
)

func (SetKind) Name() string         { return "set_kind" }
func (SetValues) Name() string       { return "set_values" }
func (SetDesign) Name() string       { return "set_design" }
func (SetGradient) Name() string     { return "set_gradient" }
func (SetCustomEye) Name() string    { return "set_custom_eye" }
func (SetLogo) Name() string         { return "set_logo" }
func (RemoveLogo) Name() string      { return "remove_logo" }
func (ApplyTemplate) Name() string   { return "apply_template" }
func (SaveHistory) Name() string     { return "save_history" }
func (RestoreHistory) Name() string  { return "restore_history" }
func (DeleteHistory) Name() string   { return "delete_history" }
func (ClearHistory) Name() string    { return "clear_history" }
func (ImportConfig) Name() string    { return "import_config" }
func (ExportConfig) Name() string    { return "export_config" }
func (Navigate) Name() string        { return "navigate" }
func (ScanDecoded) Name() string     { return "scan_decoded" }
func (ScanFrame) Name() string       { return "scan_frame" }
func (RebuildFromScan) Name() string { return "rebuild_from_scan" }
func (DismissScan) Name() string     { return "dismiss_scan" }
func (ToggleTorch) Name() string     { return "toggle_torch" }
func (ToggleDarkMode) Name() string  { return "toggle_dark_mode" }
func (Notify) Name() string          { return "notify" }
func (AckAlert) Name() string        { return "ack_alert" }
func (Download) Name() string        { return "download" }
