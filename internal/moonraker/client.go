// Package moonraker is a thin client for the Moonraker REST API, the HTTP
// front end of a Klipper 3D printer. Every method is a one-shot request:
// build the URL, issue it, decode the response.
package moonraker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client groups the printer-scoped and server-scoped endpoints of one
// Moonraker instance.
type Client struct {
	Printer *PrinterClient
	Server  *ServerClient
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient overrides the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// New creates a client for the Moonraker instance at rawURL. The URL may
// omit the scheme ("192.168.1.25:7125" works); http is assumed.
func New(rawURL string, opts ...Option) (*Client, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("moonraker: URL cannot be empty")
	}

	o := options{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	printerBase, err := normalizeBase(rawURL, "printer/")
	if err != nil {
		return nil, err
	}
	serverBase, err := normalizeBase(rawURL, "server/")
	if err != nil {
		return nil, err
	}

	server := &ServerClient{base: serverBase, hc: o.httpClient}
	server.Files = &FilesClient{base: serverBase, hc: o.httpClient}
	return &Client{
		Printer: &PrinterClient{base: printerBase, hc: o.httpClient},
		Server:  server,
	}, nil
}

// normalizeBase formats rawURL to end with the given path suffix: the http
// scheme is assumed when missing, a trailing slash is ensured, and suffix is
// appended unless already present.
func normalizeBase(rawURL, suffix string) (string, error) {
	u := rawURL
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	if !strings.HasSuffix(u, suffix) {
		u += suffix
	}
	if _, err := url.Parse(u); err != nil {
		return "", fmt.Errorf("moonraker: invalid URL %q: %w", rawURL, err)
	}
	return u, nil
}

// doJSON issues a request and decodes the JSON response body.
func doJSON(ctx context.Context, hc *http.Client, method, rawURL string, query url.Values) (map[string]any, error) {
	body, err := do(ctx, hc, method, rawURL, query)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("moonraker: decode %s response: %w", rawURL, err)
	}
	return out, nil
}

// doOK issues a request and reports whether the server answered with the
// literal body "ok", the acknowledgement Moonraker uses for print and
// restart commands.
func doOK(ctx context.Context, hc *http.Client, method, rawURL string, query url.Values) (bool, error) {
	body, err := do(ctx, hc, method, rawURL, query)
	if err != nil {
		return false, err
	}
	return string(body) == "ok", nil
}

// do issues a request and returns the raw response body. Non-2xx statuses
// are errors.
func do(ctx context.Context, hc *http.Client, method, rawURL string, query url.Values) ([]byte, error) {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("moonraker: create request: %w", err)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moonraker: %s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("moonraker: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("moonraker: %s %s: http status %d: %s", method, rawURL, resp.StatusCode, body)
	}
	return body, nil
}
