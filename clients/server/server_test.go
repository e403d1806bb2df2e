package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleAvatar(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/avatar/test@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, pngSignature))
}

func TestHandleAvatarDeterministic(t *testing.T) {
	s := newTestServer(t)

	first := get(t, s, "/avatar/test@example.com")
	second := get(t, s, "/avatar/test@example.com")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	other := get(t, s, "/avatar/other@example.com")
	require.Equal(t, http.StatusOK, other.Code)
	assert.NotEqual(t, first.Body.Bytes(), other.Body.Bytes())
}

func TestHandleAvatarQueryParams(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name        string
		target      string
		wantCode    int
		contentType string
	}{
		{"custom size", "/avatar/a@b.c?size=240", http.StatusOK, "image/png"},
		{"jpeg format", "/avatar/a@b.c?format=jpeg", http.StatusOK, "image/jpeg"},
		{"bmp format", "/avatar/a@b.c?format=bmp", http.StatusOK, "image/bmp"},
		{"padding", "/avatar/a@b.c?size=100&padding=10", http.StatusOK, "image/png"},
		{"unsupported format", "/avatar/a@b.c?format=gif", http.StatusBadRequest, ""},
		{"bad size", "/avatar/a@b.c?size=abc", http.StatusBadRequest, ""},
		{"zero size", "/avatar/a@b.c?size=0", http.StatusBadRequest, ""},
		{"oversized", "/avatar/a@b.c?size=99999", http.StatusBadRequest, ""},
		{"negative padding", "/avatar/a@b.c?padding=-1", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.target)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHandleHealthz(t *testing.T) {
	w := get(t, newTestServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleMetrics(t *testing.T) {
	s := newTestServer(t)
	get(t, s, "/avatar/metrics@example.com")

	w := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "identicon_avatar_requests_total")
}

func TestNewRejectsUnknownHash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hash = "crc32"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestServerSHA1Config(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hash = "sha1"
	cfg.Grid.Size = 8
	s, err := New(cfg)
	require.NoError(t, err)

	w := get(t, s, "/avatar/test@example.com")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "identicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
hash: sha1
grid:
  size: 7
  invert: true
render:
  avatar_size: 256
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "sha1", cfg.Hash)
		assert.Equal(t, 7, cfg.Grid.Size)
		assert.True(t, cfg.Grid.Invert)
		assert.Equal(t, 256, cfg.Render.AvatarSize)
		// Untouched fields keep their defaults.
		assert.Equal(t, "utf-8", cfg.Encoding)
		assert.Equal(t, 1024, cfg.Render.MaxAvatarSize)
	})

	t.Run("unknown hash is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "identicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hash: crc32\n"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
