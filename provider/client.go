package provider

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"travelflow/config"
)

// Response is the raw outcome of one outbound call. Non-2xx statuses are not
// errors at this layer; classifying them is the workflow's concern.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("provider: decode response: %w", err)
	}
	return nil
}

// Client is the configured outbound HTTP client for one insurer. Connection
// reuse and TLS verification follow ProviderConfig; for both in-scope insurers
// keep-alive is off and every request carries Connection: close, mirroring an
// observed socket-hang-up on reused connections.
type Client struct {
	tag        string
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg config.ProviderConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	transport := &http.Transport{
		DisableKeepAlives: !cfg.KeepAlive,
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: !cfg.TLSVerify},
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if !cfg.KeepAlive {
		headers["Connection"] = "close"
	}

	return &Client{
		tag:     cfg.Tag,
		baseURL: cfg.BaseURL,
		headers: headers,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		log: log,
	}
}

// Get performs a GET against baseURL+path with the client's default headers
// plus the given extras.
func (c *Client) Get(ctx context.Context, path string, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, headers)
}

// Post performs a POST with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("provider: encode body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, http.MethodPost, path, reader, headers)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("provider: create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "outbound call failed",
			"provider", c.tag, "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("provider: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("provider: read response: %w", err)
	}

	c.log.DebugContext(ctx, "outbound call",
		"provider", c.tag, "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	return &Response{Status: resp.StatusCode, Body: payload}, nil
}
