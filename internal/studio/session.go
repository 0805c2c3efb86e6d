package studio

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/qrkitchen/qr-kitchen/internal/content"
	"github.com/qrkitchen/qr-kitchen/internal/design"
	"github.com/qrkitchen/qr-kitchen/internal/history"
	"github.com/qrkitchen/qr-kitchen/internal/portable"
	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/scan"
)

var (
	// ErrInvalid wraps rejected action input.
	ErrInvalid = errors.New("invalid input")
	// ErrNotScanning is returned for scan actions outside the scan view.
	ErrNotScanning = errors.New("not scanning")
	// ErrNothingScanned is returned when rebuilding without scanned text.
	ErrNothingScanned = errors.New("nothing scanned")
	// ErrFramesUnsupported is returned when the scan session does not take frames.
	ErrFramesUnsupported = errors.New("scan session does not accept frames")
	// ErrUnknownAction is returned for actions the dispatcher does not know.
	ErrUnknownAction = errors.New("unknown action")
)

// Config tunes sessions.
type Config struct {
	PreviewSize     int
	ExportSize      int
	HistoryLimit    int
	HistoryKey      string
	SessionKey      string
	NotificationTTL time.Duration
	// IdleTTL is how long a Registry keeps a session nobody uses.
	IdleTTL time.Duration
	Facing  scan.Facing
	Scan    scan.Options
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		PreviewSize:     300,
		ExportSize:      2000,
		HistoryLimit:    history.DefaultLimit,
		HistoryKey:      "qrHistory",
		SessionKey:      "qrSession",
		NotificationTTL: 3 * time.Second,
		IdleTTL:         30 * time.Minute,
		Facing:          scan.FacingEnvironment,
		Scan:            scan.Options{FPS: 20, Region: image.Pt(250, 250)},
	}
}

// Deps are the collaborators of a session.
type Deps struct {
	Library render.Library
	Scanner scan.Factory
	Storage fiber.Storage
	Now     func() time.Time
}

// subscriber runs after every committed action with the session locked.
type subscriber func(s *Session, a Action)

// Session is the studio of one client.
type Session struct {
	mu  sync.Mutex
	id  string
	cfg Config

	kind     content.Kind
	values   content.Values
	style    design.Style
	view     View
	scanned  *string
	hasFlash bool
	flashOn  bool
	darkMode bool
	notes    []Notification
	alert    string

	history  *history.Store
	storage  fiber.Storage
	frame    *render.Frame
	preview  *render.Preview
	rendered design.Options
	saved    *portable.Snapshot

	scanner    scan.Factory
	scan       scan.Session
	scanCancel context.CancelFunc

	qmu     sync.Mutex
	pending []Action

	subscribers []subscriber
	now         func() time.Time
}

// New creates the session of clientID, restoring its history and last
// working design from storage.
func New(clientID string, cfg Config, deps Deps) *Session {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	frame := &render.Frame{}

	s := &Session{
		id:      clientID,
		cfg:     cfg,
		kind:    content.KindURL,
		values:  content.DefaultValues(),
		style:   design.DefaultStyle(),
		view:    ViewHome,
		history: history.Open(deps.Storage, history.Key(cfg.HistoryKey, clientID), cfg.HistoryLimit),
		storage: deps.Storage,
		frame:   frame,
		preview: render.NewPreview(deps.Library, frame, cfg.PreviewSize, cfg.ExportSize),
		scanner: deps.Scanner,
		now:     now,
	}

	s.subscribers = []subscriber{renderPreview, persistSnapshot, countAction}

	s.restoreSnapshot()

	s.mu.Lock()
	renderPreview(s, nil)
	s.mu.Unlock()

	return s
}

// ID returns the client id.
func (s *Session) ID() string {
	return s.id
}

// Frame returns the preview surface.
func (s *Session) Frame() *render.Frame {
	return s.frame
}

// Dispatch applies one action and runs the subscribers. Callbacks raised
// while applying are processed before Dispatch returns.
func (s *Session) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.commit(a)
	s.drain()

	return err
}

func (s *Session) commit(a Action) error {
	if err := s.apply(a); err != nil {
		return err
	}

	for _, sub := range s.subscribers {
		sub(s, a)
	}

	return nil
}

// post queues an action raised outside the dispatch path, e.g. by a scan
// session callback.
func (s *Session) post(a Action) {
	s.qmu.Lock()
	s.pending = append(s.pending, a)
	s.qmu.Unlock()

	go s.flush()
}

func (s *Session) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drain()
}

func (s *Session) drain() {
	for {
		s.qmu.Lock()
		if len(s.pending) == 0 {
			s.qmu.Unlock()

			return
		}

		a := s.pending[0]
		s.pending = s.pending[1:]
		s.qmu.Unlock()

		if err := s.commit(a); err != nil {
			log.Debug().Err(err).Str("client", s.id).Str("action", a.Name()).Msg("dropped queued action")
		}
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

func (s *Session) notify(msg string) {
	s.notes = append(s.notes, Notification{Message: msg, At: s.now()})
}

func (s *Session) liveNotes() []Notification {
	cutoff := s.now().Add(-s.cfg.NotificationTTL)

	live := s.notes[:0]
	for _, n := range s.notes {
		if n.At.After(cutoff) {
			live = append(live, n)
		}
	}

	s.notes = live

	out := make([]Notification, len(live))
	copy(out, live)

	return out
}

func (s *Session) snapshot() portable.Snapshot {
	style := s.style
	style.Design = style.Design.Clone()

	return portable.Snapshot{Kind: s.kind, Values: s.values, Style: style}
}

func (s *Session) data() string {
	return content.Format(s.kind, s.values)
}

// State returns a copy of the current state. Expired notifications are pruned.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	var scanned *string
	if s.scanned != nil {
		text := *s.scanned
		scanned = &text
	}

	_, version := s.frame.Image()
	style := s.style
	style.Design = style.Design.Clone()

	return State{
		ClientID:      s.id,
		Kind:          s.kind,
		Values:        s.values,
		Style:         style,
		Data:          s.data(),
		History:       s.history.Entries(),
		View:          s.view,
		ScannedData:   scanned,
		HasFlash:      s.hasFlash,
		FlashOn:       s.flashOn,
		DarkMode:      s.darkMode,
		Notifications: s.liveNotes(),
		Alert:         s.alert,
		Rendered:      s.preview.Rendered(),
		Preview:       version,
	}
}

// Close releases a held scan session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseScan()
}
