package studio

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/metrics"
	"github.com/qrkitchen/qr-kitchen/internal/scan"
)

// navigate moves the view state machine. Leaving scan always releases the
// scan session; entering scan acquires one unless one is already held.
func (s *Session) navigate(to View) {
	if s.view == to {
		return
	}

	if s.view == ViewScan {
		s.releaseScan()
	}

	s.view = to

	if to == ViewScan {
		s.acquireScan()
	}
}

func (s *Session) acquireScan() {
	if s.scan != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.scan, s.scanCancel = s.scanner.New(), cancel

	if err := s.startScan(ctx); err != nil {
		log.Error().Err(err).Str("client", s.id).Msg("failed to start scan session")

		s.releaseScan()
		s.view = ViewHome
		s.notify(MsgCameraFailed)

		return
	}

	s.hasFlash = s.scan.Capabilities().Torch
}

func (s *Session) startScan(ctx context.Context) error {
	session := s.scan

	return session.Start(ctx, s.cfg.Facing, s.cfg.Scan,
		func(text string) {
			metrics.Scans.WithLabelValues(string(scan.Classify(text).Kind)).Inc()
			s.post(ScanDecoded{Text: text})
		},
		func(err error) {
			log.Trace().Err(err).Str("client", s.id).Msg("frame not decoded")
		},
	)
}

func (s *Session) releaseScan() {
	if s.scan != nil {
		if s.scan.Running() {
			if err := s.scan.Stop(); err != nil {
				log.Error().Err(err).Str("client", s.id).Msg("failed to stop scan session")
			}
		}

		s.scanCancel()
		s.scan, s.scanCancel = nil, nil
	}

	s.flashOn = false
	s.hasFlash = false
}

// resumeScan restarts a held session that stopped after a decode.
func (s *Session) resumeScan() {
	if s.view != ViewScan || s.scan == nil || s.scan.Running() {
		return
	}

	s.scanCancel()

	ctx, cancel := context.WithCancel(context.Background())
	s.scanCancel = cancel
	s.flashOn = false

	if err := s.startScan(ctx); err != nil {
		log.Error().Err(err).Str("client", s.id).Msg("failed to restart scan session")

		s.releaseScan()
		s.view = ViewHome
		s.notify(MsgCameraFailed)
	}
}

func (s *Session) feed(a ScanFrame) error {
	if s.view != ViewScan || s.scan == nil {
		return ErrNotScanning
	}

	sink, ok := s.scan.(scan.FrameSink)
	if !ok {
		return ErrFramesUnsupported
	}

	if !s.scan.Running() {
		return nil
	}

	return sink.Feed(a.Frame)
}

func (s *Session) toggleTorch() {
	if s.scan == nil || !s.hasFlash {
		s.notify(MsgTorchUnsupported)

		return
	}

	if err := s.scan.SetTorch(!s.flashOn); err != nil {
		log.Error().Err(err).Str("client", s.id).Msg("failed to toggle torch")
		s.notify(MsgTorchUnsupported)

		return
	}

	s.flashOn = !s.flashOn
}
