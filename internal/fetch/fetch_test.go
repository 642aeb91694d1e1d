package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// inputServer serves body for /2022/day/7/input when the session cookie
// matches, and status otherwise.
func inputServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2022/day/7/input" {
			http.NotFound(w, r)
			return
		}
		c, err := r.Cookie("session")
		if err != nil || c.Value != "s3cret" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, userAgent, r.UserAgent())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, session string) *Client {
	return &Client{
		BaseURL: srv.URL,
		Year:    2022,
		Session: session,
		HTTP:    srv.Client(),
		Logger:  zap.NewNop(),
	}
}

func TestClient_URL(t *testing.T) {
	c := &Client{Year: 2022}
	assert.Equal(t, "https://adventofcode.com/2022/day/7/input", c.URL(puzzle.Day(7)))

	c.BaseURL = "http://localhost:8080/"
	assert.Equal(t, "http://localhost:8080/2022/day/25/input", c.URL(puzzle.Day(25)))
}

func TestClient_Fetch(t *testing.T) {
	t.Run("returns the body verbatim", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "3\n4\n5\n")

		got, err := newClient(srv, "s3cret").Fetch(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "3\n4\n5\n", string(got))
	})

	t.Run("body without trailing newline is kept whole", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "3\n4\n5")

		got, err := newClient(srv, "s3cret").Fetch(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "3\n4\n5", string(got))
	})

	t.Run("rejected session", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "x")

		_, err := newClient(srv, "wrong").Fetch(context.Background(), 7)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing session", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "x")

		_, err := newClient(srv, "").Fetch(context.Background(), 7)
		require.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("not found", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "x")

		_, err := newClient(srv, "s3cret").Fetch(context.Background(), 8)
		require.ErrorIs(t, err, ErrBadStatus)
	})

	t.Run("empty body", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "")

		_, err := newClient(srv, "s3cret").Fetch(context.Background(), 7)
		require.ErrorIs(t, err, ErrEmptyBody)
	})
}

func TestClient_Download(t *testing.T) {
	t.Run("writes the input", func(t *testing.T) {
		srv := inputServer(t, http.StatusOK, "3\n4\n5\n")
		path := filepath.Join(t.TempDir(), "inputs", "day07.txt")

		require.NoError(t, newClient(srv, "s3cret").Download(context.Background(), 7, path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "3\n4\n5\n", string(got))
	})

	t.Run("failure leaves existing file untouched", func(t *testing.T) {
		srv := inputServer(t, http.StatusInternalServerError, "oops")
		dir := t.TempDir()
		path := filepath.Join(dir, "day07.txt")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

		err := newClient(srv, "s3cret").Download(context.Background(), 7, path)
		require.ErrorIs(t, err, ErrBadStatus)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old\n", string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp files may remain")
	})
}

func TestReadSession(t *testing.T) {
	dir := t.TempDir()

	t.Run("trims whitespace", func(t *testing.T) {
		path := filepath.Join(dir, "session")
		require.NoError(t, os.WriteFile(path, []byte("  abc123\n"), 0o600))

		got, err := ReadSession(path)
		require.NoError(t, err)
		assert.Equal(t, "abc123", got)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty")
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

		_, err := ReadSession(path)
		require.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSession(filepath.Join(dir, "missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
