package client_test

import (
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/web/handler"
	"github.com/qrkitchen/qr-kitchen/internal/web/middleware/client"
	"github.com/qrkitchen/qr-kitchen/internal/web/session"
)

// testStorage is a minimal in-memory fiber.Storage for tests.
type testStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data[key], nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	s.data[key] = append([]byte(nil), val...)

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error { return nil }
func (s *testStorage) Close() error { return nil }

func newApp(store *testStorage) *fiber.App {
	app := fiber.New()
	app.Use(client.New(session.New(store, config.Cookie{Name: "qr_client", MaxAge: time.Hour})))

	echo := func(c *fiber.Ctx) error {
		id, _ := c.Locals(handler.ClientLocal).(string)

		return c.SendString(id)
	}

	app.Get("/home", echo)
	app.Get("/static/app.js", echo)

	return app
}

func TestClientIDIssuedAndKept(t *testing.T) {
	store := &testStorage{}
	app := newApp(store)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/home", nil))
	require.NoError(t, err)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "qr_client", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	id := cookies[0].Value
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, id, string(got))

	stored, err := store.Get(id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored)

	req := httptest.NewRequest(fiber.MethodGet, "/home", nil)
	req.AddCookie(cookies[0])

	resp, err = app.Test(req)
	require.NoError(t, err)

	got, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, id, string(got))
	assert.Empty(t, resp.Cookies(), "known clients get no new cookie")
}

func TestClientIDSkipped(t *testing.T) {
	store := &testStorage{}
	app := newApp(store)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/static/app.js", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Cookies())
	assert.Empty(t, store.data)
}
