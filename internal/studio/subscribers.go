package studio

import (
	"reflect"

	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/metrics"
	"github.com/qrkitchen/qr-kitchen/internal/portable"
)

// renderPreview keeps the preview in sync while the home view is shown.
// Unchanged options are not redrawn.
func renderPreview(s *Session, _ Action) {
	if s.view != ViewHome {
		return
	}

	opts := design.Resolve(s.style, s.data(), s.cfg.PreviewSize)
	if s.preview.Rendered() && reflect.DeepEqual(opts, s.rendered) {
		return
	}

	if err := s.preview.Render(opts); err != nil {
		log.Warn().Err(err).Str("client", s.id).Msg("failed to render preview")
		s.notify(MsgRenderFailed)

		return
	}

	s.rendered = opts
}

// persistSnapshot stores the working design so a new process picks it up.
func persistSnapshot(s *Session, _ Action) {
	snap := s.snapshot()
	if s.saved != nil && reflect.DeepEqual(*s.saved, snap) {
		return
	}

	raw, err := portable.Marshal(snap, s.now())
	if err != nil {
		log.Error().Err(err).Str("client", s.id).Msg("failed to encode session snapshot")

		return
	}

	if err = s.storage.Set(s.snapshotKey(), raw, 0); err != nil {
		log.Error().Err(err).Str("client", s.id).Msg("failed to write session snapshot")

		return
	}

	s.saved = &snap
}

func countAction(_ *Session, a Action) {
	if a != nil {
		metrics.Actions.WithLabelValues(a.Name()).Inc()
	}
}

func (s *Session) snapshotKey() string {
	return s.cfg.SessionKey + ":" + s.id
}

// restoreSnapshot loads the last working design. Failures are logged and the
// defaults stay.
func (s *Session) restoreSnapshot() {
	raw, err := s.storage.Get(s.snapshotKey())
	if err != nil {
		log.Error().Err(err).Str("client", s.id).Msg("failed to read session snapshot")

		return
	}

	if len(raw) == 0 {
		return
	}

	snap, err := portable.Import(raw, s.snapshot())
	if err != nil {
		log.Warn().Err(err).Str("client", s.id).Msg("ignoring unreadable session snapshot")

		return
	}

	s.kind, s.values, s.style = snap.Kind, snap.Values, snap.Style
	s.saved = &snap
}
