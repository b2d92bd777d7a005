package moonraker

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ServerClient wraps the /server endpoints: server state, configuration,
// and the stores Moonraker keeps for temperature and G-code history.
type ServerClient struct {
	base string
	hc   *http.Client

	// Files groups the /server/files endpoints.
	Files *FilesClient
}

// Info retrieves server information.
func (s *ServerClient) Info(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, s.hc, http.MethodGet, s.base+"info", nil)
}

// Config retrieves the server configuration.
func (s *ServerClient) Config(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, s.hc, http.MethodGet, s.base+"config", nil)
}

// Temperature retrieves the cached temperature store, optionally including
// monitor sensors.
func (s *ServerClient) Temperature(ctx context.Context, includeMonitors bool) (map[string]any, error) {
	query := url.Values{"include_monitors": {strconv.FormatBool(includeMonitors)}}
	return doJSON(ctx, s.hc, http.MethodGet, s.base+"temperature_store", query)
}

// CachedGCode retrieves up to count entries from the cached G-code store.
func (s *ServerClient) CachedGCode(ctx context.Context, count int) (map[string]any, error) {
	query := url.Values{"count": {strconv.Itoa(count)}}
	return doJSON(ctx, s.hc, http.MethodGet, s.base+"gcode_store", query)
}

// Restart restarts the Moonraker server process.
func (s *ServerClient) Restart(ctx context.Context) (bool, error) {
	return doOK(ctx, s.hc, http.MethodPost, s.base+"restart", nil)
}
