package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the subset of the local Ollama server's HTTP API herder
// uses. This interface is implemented by *Client and can be used for
// testing.
type API interface {
	ServerVersion(ctx context.Context) (string, error)
	Tags(ctx context.Context) ([]TagModel, error)
	Ps(ctx context.Context) ([]ProcessModel, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the local Ollama server.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultHost      = "127.0.0.1:11434"
	defaultUserAgent = "herder/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given host:port (default local server
// when empty).
func NewClient(host string) (*Client, error) {
	base, err := parseBaseURL(host)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ServerVersion retrieves the running server's version string.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var payload VersionResponse
	if err := c.do(ctx, "/api/version", &payload); err != nil {
		return "", err
	}
	return payload.Version, nil
}

// Tags retrieves the installed models as the server sees them.
func (c *Client) Tags(ctx context.Context) ([]TagModel, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload TagsResponse
	if err := c.do(ctx, "/api/tags", &payload); err != nil {
		return nil, err
	}
	return payload.Models, nil
}

// Ps retrieves the models currently loaded into memory.
func (c *Client) Ps(ctx context.Context) ([]ProcessModel, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload PsResponse
	if err := c.do(ctx, "/api/ps", &payload); err != nil {
		return nil, err
	}
	return payload.Models, nil
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(host string) (*url.URL, error) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		trimmed = defaultHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse host %q: %w", host, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
