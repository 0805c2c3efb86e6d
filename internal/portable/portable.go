// Package portable reads and writes the shareable design file.
package portable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
)

// Version is written into every exported file.
const Version = "1.0"

// InvalidConfigAlert is shown to the user when an import is rejected.
const InvalidConfigAlert = "Invalid JSON configuration file."

// ErrInvalidConfig is returned for unparsable or invalid files.
var ErrInvalidConfig = errors.New("invalid configuration file")

// Snapshot is the part of the studio a file carries.
type Snapshot struct {
	Kind   content.Kind
	Values content.Values
	Style  design.Style
}

// Document is the file layout.
type Document struct {
	Version        string          `json:"version"`
	Timestamp      time.Time       `json:"timestamp"`
	Design         design.Design   `json:"design"`
	Gradient       design.Gradient `json:"gradient"`
	CustomEyeColor bool            `json:"customEyeColor"`
	ActiveType     content.Kind    `json:"activeType"`
	DataValues     content.Values  `json:"dataValues"`
}

// NewDocument wraps a snapshot for export.
func NewDocument(s Snapshot, now time.Time) Document {
	return Document{
		Version:        Version,
		Timestamp:      now.UTC(),
		Design:         s.Style.Design,
		Gradient:       s.Style.Gradient,
		CustomEyeColor: s.Style.CustomEye,
		ActiveType:     s.Kind,
		DataValues:     s.Values,
	}
}

// FileName is the download name of a file exported at now.
func FileName(now time.Time) string {
	return "qr-kitchen-" + strconv.FormatInt(now.UnixMilli(), 10) + ".json"
}

// Marshal encodes the document with two space indentation.
func Marshal(s Snapshot, now time.Time) ([]byte, error) {
	return json.MarshalIndent(NewDocument(s, now), "", "  ")
}

// Export writes the snapshot as a file.
func Export(w io.Writer, s Snapshot, now time.Time) error {
	raw, err := Marshal(s, now)
	if err != nil {
		return err
	}

	_, err = w.Write(raw)

	return err
}

// Import applies a file over current. Each top-level key is applied only when
// present, and design and dataValues are decoded over the current values so
// missing nested fields are kept. Nothing is applied when any part is invalid.
func Import(raw []byte, current Snapshot) (Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if doc == nil {
		return current, fmt.Errorf("%w: not a JSON object", ErrInvalidConfig)
	}

	next := current
	next.Style.Design = current.Style.Design.Clone()

	if present(doc, "design") {
		if err := json.Unmarshal(doc["design"], &next.Style.Design); err != nil {
			return current, fmt.Errorf("%w: design: %v", ErrInvalidConfig, err)
		}
	}

	if present(doc, "gradient") {
		if err := json.Unmarshal(doc["gradient"], &next.Style.Gradient); err != nil {
			return current, fmt.Errorf("%w: gradient: %v", ErrInvalidConfig, err)
		}
	}

	if present(doc, "customEyeColor") {
		if err := json.Unmarshal(doc["customEyeColor"], &next.Style.CustomEye); err != nil {
			return current, fmt.Errorf("%w: customEyeColor: %v", ErrInvalidConfig, err)
		}
	}

	if present(doc, "activeType") {
		var name string
		if err := json.Unmarshal(doc["activeType"], &name); err != nil {
			return current, fmt.Errorf("%w: activeType: %v", ErrInvalidConfig, err)
		}

		if name != "" {
			kind, err := content.ParseKind(name)
			if err != nil {
				return current, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}

			next.Kind = kind
		}
	}

	if present(doc, "dataValues") {
		if err := json.Unmarshal(doc["dataValues"], &next.Values); err != nil {
			return current, fmt.Errorf("%w: dataValues: %v", ErrInvalidConfig, err)
		}
	}

	if err := design.Validate(next.Style); err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := design.Validate(next.Values); err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return next, nil
}

func present(doc map[string]json.RawMessage, key string) bool {
	raw, ok := doc[key]

	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
