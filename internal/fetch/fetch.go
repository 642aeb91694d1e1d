// Package fetch downloads puzzle inputs from the puzzle site using the
// session token of a logged-in user.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// DefaultBaseURL is the puzzle site.
const DefaultBaseURL = "https://adventofcode.com"

const userAgent = "github.com/mesh-intelligence/advent"

// Fetch errors.
var (
	ErrNoSession    = errors.New("no session token")
	ErrUnauthorized = errors.New("session token rejected")
	ErrBadStatus    = errors.New("unexpected response status")
	ErrEmptyBody    = errors.New("empty response body")
)

// Client fetches inputs for one event year.
type Client struct {
	BaseURL string
	Year    int
	Session string
	HTTP    *http.Client
	Logger  *zap.Logger
}

// URL returns the input URL for day.
func (c *Client) URL(day puzzle.Day) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%d/day/%s/input", strings.TrimSuffix(base, "/"), c.Year, day)
}

// Fetch returns the input text for day. Any non-success response or an
// empty body is an error.
func (c *Client) Fetch(ctx context.Context, day puzzle.Day) ([]byte, error) {
	if c.Session == "" {
		return nil, ErrNoSession
	}
	url := c.URL(day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
	req.Header.Set("User-Agent", userAgent)

	c.logger().Debug("fetching input", zap.Stringer("day", day), zap.String("url", url))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: day %s: %s", ErrUnauthorized, day, resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: day %s: %s", ErrBadStatus, day, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: day %s", ErrEmptyBody, day)
	}

	c.logger().Debug("fetched input", zap.Stringer("day", day), zap.Int("bytes", len(body)))
	return body, nil
}

// Download fetches the input for day and writes it verbatim to path. The
// file is replaced atomically; on failure no partial content is left behind.
func (c *Client) Download(ctx context.Context, day puzzle.Day, path string) error {
	body, err := c.Fetch(ctx, day)
	if err != nil {
		return err
	}
	if err := writeAtomic(path, body); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.logger().Info("downloaded input", zap.Stringer("day", day), zap.String("path", path))
	return nil
}

// ReadSession reads the session token from path.
func ReadSession(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoSession, path)
	}
	return token, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
