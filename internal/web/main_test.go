package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
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
)

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

	s.data[key] = append([]byte(nil), val...)

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

func newTestService(t *testing.T) *Service {
	t.Helper()

	storage := &memStorage{}
	reg := studio.NewRegistry(studio.DefaultConfig(), studio.Deps{
		Library: render.Styled{},
		Scanner: scan.FrameFactory{},
		Storage: storage,
	})
	t.Cleanup(reg.Close)

	cfg := &config.Config{
		Title: "QR Kitchen",
		Webserver: config.Webserver{
			Port:      8080,
			URL:       "http://localhost:8080",
			BodyLimit: 8 * 1024 * 1024,
			Cookie:    config.Cookie{Name: "qr_kitchen_client", MaxAge: time.Hour},
		},
	}

	return New(cfg, reg, storage)
}

func fetch(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	resp, _ := fetch(t, s.App, httptest.NewRequest(fiber.MethodGet, CheckAlivePath, nil))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	s.alive.Store(true)

	resp, body := fetch(t, s.App, httptest.NewRequest(fiber.MethodGet, CheckAlivePath, nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
	assert.Empty(t, resp.Cookies(), "health checks get no client id")
}

func TestMetrics(t *testing.T) {
	s := newTestService(t)

	resp, body := fetch(t, s.App, httptest.NewRequest(fiber.MethodGet, MetricsPath, nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "qrkitchen_sessions")
}

func TestStaticFiles(t *testing.T) {
	s := newTestService(t)

	for _, path := range []string{"/static/css/app.css", "/static/js/app.js"} {
		resp, body := fetch(t, s.App, httptest.NewRequest(fiber.MethodGet, path, nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, body, path)
	}
}

func TestPagesRender(t *testing.T) {
	s := newTestService(t)

	resp, _ := fetch(t, s.App, httptest.NewRequest(fiber.MethodGet, "/home", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)

	tests := []struct {
		path string
		want []string
	}{
		{path: "/home", want: []string{"https://google.com", "Classic Black", `data-kind="wifi"`, `/preview.png?v=`}},
		{path: "/history", want: []string{"No history yet"}},
		{path: "/settings", want: []string{"Export design", "0 saved codes"}},
		{path: "/scan", want: []string{`id="camera"`}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tt.path, nil)
			req.AddCookie(cookies[0])

			resp, body := fetch(t, s.App, req)
			require.Equal(t, fiber.StatusOK, resp.StatusCode, body)
			assert.True(t, strings.Contains(body, `class="tab active"`), "active tab marked")

			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestHistoryBadge(t *testing.T) {
	s := newTestService(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/history", nil)
	resp, _ := fetch(t, s.App, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)

	req = httptest.NewRequest(fiber.MethodGet, "/history", nil)
	req.AddCookie(cookies[0])

	resp, body := fetch(t, s.App, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<b class="badge">1</b>`)
	assert.Contains(t, body, "https://google.com")
	assert.Contains(t, body, "/restore")
}
