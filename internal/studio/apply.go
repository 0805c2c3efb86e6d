package studio

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/history"
	"github.com/qrkitchen/qr-kitchen/internal/portable"
	"github.com/qrkitchen/qr-kitchen/internal/scan"
)

//nolint:gocyclo,cyclop,funlen
func (s *Session) apply(a Action) error {
	switch a := a.(type) {
	case SetKind:
		if !a.Kind.Valid() {
			return invalid(fmt.Errorf("%w: %q", content.ErrUnknownKind, a.Kind))
		}

		s.kind = a.Kind

	case SetValues:
		if err := design.Validate(a.Values); err != nil {
			return invalid(err)
		}

		s.values = a.Values

	case SetDesign:
		if err := design.Validate(a.Design); err != nil {
			return invalid(err)
		}

		s.style.Design = a.Design.Clone()

	case SetGradient:
		if err := design.Validate(a.Gradient); err != nil {
			return invalid(err)
		}

		s.style.Gradient = a.Gradient

	case SetCustomEye:
		s.style.CustomEye = a.Enabled

	case SetLogo:
		next := s.style.Design.Clone()
		next.Image = &a.DataURI

		if err := design.Validate(next); err != nil {
			return invalid(err)
		}

		s.style.Design = next

	case RemoveLogo:
		s.style.Design.Image = nil

	case ApplyTemplate:
		t, err := design.Lookup(a.Category, a.Template)
		if err != nil {
			return err
		}

		t.Config.Apply(&s.style)
		s.notify(MsgTemplateApplied + t.Name)

	case SaveHistory:
		return s.saveHistory()

	case RestoreHistory:
		e, err := s.history.Get(a.ID)
		if err != nil {
			return err
		}

		s.kind, s.values, s.style = e.ActiveType, e.DataValues, e.Style()
		s.navigate(ViewHome)
		s.notify(MsgRestored)

	case DeleteHistory:
		return s.history.Delete(a.ID)

	case ClearHistory:
		if err := s.history.Clear(); err != nil {
			return err
		}

		s.notify(MsgHistoryCleared)

	case ImportConfig:
		next, err := portable.Import(a.Raw, s.snapshot())
		if err != nil {
			s.alert = portable.InvalidConfigAlert

			return err
		}

		s.kind, s.values, s.style = next.Kind, next.Values, next.Style
		s.navigate(ViewHome)
		s.notify(MsgConfigLoaded)

	case ExportConfig:
		at := a.At
		if at.IsZero() {
			at = s.now()
		}

		if err := portable.Export(a.W, s.snapshot(), at); err != nil {
			return err
		}

		s.notify(MsgConfigSaved)

	case Navigate:
		if _, err := ParseView(string(a.View)); err != nil {
			return invalid(err)
		}

		s.navigate(a.View)

	case ScanDecoded:
		if s.view != ViewScan || s.scan == nil {
			return ErrNotScanning
		}

		text := a.Text
		s.scanned = &text

	case ScanFrame:
		return s.feed(a)

	case RebuildFromScan:
		if s.scanned == nil {
			return ErrNothingScanned
		}

		result := scan.Classify(*s.scanned)
		s.kind = result.Kind
		s.values = result.ApplyTo(s.values)
		s.scanned = nil
		s.navigate(ViewHome)
		s.notify(MsgScanLoaded)

	case DismissScan:
		s.scanned = nil
		s.resumeScan()

	case ToggleTorch:
		s.toggleTorch()

	case ToggleDarkMode:
		if a.Enabled != nil {
			s.darkMode = *a.Enabled
		} else {
			s.darkMode = !s.darkMode
		}

	case Notify:
		s.notify(a.Message)

	case AckAlert:
		s.alert = ""

	case Download:
		if err := s.saveHistory(); err != nil {
			log.Error().Err(err).Str("client", s.id).Msg("failed to save history before download")
		}

		return s.preview.Export(a.W, a.Ext)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}

	return nil
}

func (s *Session) saveHistory() error {
	entry := history.NewEntry(s.kind, s.values, s.style)
	if _, err := s.history.Save(entry); err != nil {
		return err
	}

	s.notify(MsgSavedToHistory)

	return nil
}

// IsInvalid reports whether err was caused by rejected input.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid) || errors.Is(err, portable.ErrInvalidConfig)
}
