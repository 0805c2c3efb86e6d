package page

import (
	"context"
	"image/png"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/render"
	"github.com/qrkitchen/qr-kitchen/internal/scan"
	"github.com/qrkitchen/qr-kitchen/internal/studio"
	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
	"github.com/qrkitchen/qr-kitchen/internal/web/navigation"
)

// recordingViews is a minimal Fiber Views engine that writes the template
// name and remembers the data of the last render.
type recordingViews struct {
	mu   sync.Mutex
	last fiber.Map
}

func (*recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.last, _ = data.(fiber.Map)
	_, _ = io.WriteString(w, name)

	return nil
}

type memStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *memStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data[key], nil
}

func (s *memStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	s.data[key] = val

	return nil
}

func (s *memStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (*memStorage) Reset() error { return nil }
func (*memStorage) Close() error { return nil }

type failingFactory struct{}

type failingScan struct{ scan.FrameSession }

func (failingFactory) New() scan.Session { return &failingScan{} }

func (*failingScan) Start(_ context.Context, _ scan.Facing, _ scan.Options, _ func(string), _ func(error)) error {
	return scan.ErrNotRunning
}

func newTestApp(t *testing.T, scanner scan.Factory) (*fiber.App, *recordingViews, *studio.Registry) {
	t.Helper()

	views := &recordingViews{}
	reg := studio.NewRegistry(studio.DefaultConfig(), studio.Deps{
		Library: render.Styled{},
		Scanner: scanner,
		Storage: &memStorage{},
	})
	t.Cleanup(reg.Close)

	app := fiber.New(fiber.Config{Views: views})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(handler.ClientLocal, "client-1")

		return c.Next()
	})

	s := &Service{}
	require.NoError(t, s.Init(app, &config.Config{Title: "QR Kitchen"}, reg))

	return app, views, reg
}

func get(t *testing.T, app *fiber.App, path string) (int, string, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, resp.Header.Get(fiber.HeaderLocation), string(body)
}

func TestRootRedirectsHome(t *testing.T) {
	app, _, _ := newTestApp(t, scan.FrameFactory{})

	status, location, _ := get(t, app, "/")
	assert.Equal(t, fiber.StatusFound, status)
	assert.Equal(t, "/home", location)
}

func TestPages(t *testing.T) {
	app, views, reg := newTestApp(t, scan.FrameFactory{})

	require.NoError(t, reg.Get("client-1").Dispatch(studio.SaveHistory{}))

	for _, view := range []studio.View{studio.ViewHome, studio.ViewScan, studio.ViewHistory, studio.ViewSettings} {
		t.Run(string(view), func(t *testing.T) {
			status, _, body := get(t, app, Path(view))
			require.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, Template(view), body)

			st, ok := views.last["State"].(studio.State)
			require.True(t, ok)
			assert.Equal(t, view, st.View)

			nav, ok := views.last["Nav"].(*navigation.Context)
			require.True(t, ok)
			assert.True(t, nav.IsActive(string(view)))
			assert.Equal(t, 1, nav.Tabs[2].Badge)
			assert.Equal(t, "QR Kitchen", views.last["Title"])
		})
	}
}

func TestScanPageFallsBackHome(t *testing.T) {
	app, _, reg := newTestApp(t, failingFactory{})

	status, location, _ := get(t, app, "/scan")
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "/home", location)

	st := reg.Get("client-1").State()
	assert.Equal(t, studio.ViewHome, st.View)
	assert.Equal(t, studio.MsgCameraFailed, st.Notification())
}

func TestPreview(t *testing.T) {
	app, _, _ := newTestApp(t, scan.FrameFactory{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, PreviewPath, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderETag))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
}
