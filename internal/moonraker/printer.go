package moonraker

import (
	"context"
	"net/http"
	"net/url"
)

// PrinterClient wraps the /printer endpoints: printer state, G-code
// execution, and print job control.
type PrinterClient struct {
	base string
	hc   *http.Client
}

// Info retrieves printer information.
func (p *PrinterClient) Info(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodGet, p.base+"info", nil)
}

// EmergencyStop triggers an emergency stop on the printer.
func (p *PrinterClient) EmergencyStop(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodPost, p.base+"emergency_stop", nil)
}

// HostRestart restarts the host machine.
func (p *PrinterClient) HostRestart(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodPost, p.base+"restart", nil)
}

// FirmwareRestart restarts the printer firmware.
func (p *PrinterClient) FirmwareRestart(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodPost, p.base+"firmware_restart", nil)
}

// ListObjects lists all objects available on the printer.
func (p *PrinterClient) ListObjects(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodGet, p.base+"objects/list", nil)
}

// RunGCode executes a G-code command on the printer.
func (p *PrinterClient) RunGCode(ctx context.Context, gcode string) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodPost, p.base+"gcode", url.Values{"script": {gcode}})
}

// GCodeHelp gets help information for G-code commands.
func (p *PrinterClient) GCodeHelp(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, p.hc, http.MethodGet, p.base+"gcode/help", nil)
}

// StartPrint starts printing the named file. The printer acknowledges with
// a bare "ok" body.
func (p *PrinterClient) StartPrint(ctx context.Context, file string) (bool, error) {
	return doOK(ctx, p.hc, http.MethodPost, p.base+"print/start", url.Values{"filename": {file}})
}

// PausePrint pauses the ongoing print.
func (p *PrinterClient) PausePrint(ctx context.Context) (bool, error) {
	return doOK(ctx, p.hc, http.MethodPost, p.base+"print/pause", nil)
}

// ResumePrint resumes the paused print.
func (p *PrinterClient) ResumePrint(ctx context.Context) (bool, error) {
	return doOK(ctx, p.hc, http.MethodPost, p.base+"print/continue", nil)
}

// CancelPrint cancels the ongoing print.
func (p *PrinterClient) CancelPrint(ctx context.Context) (bool, error) {
	return doOK(ctx, p.hc, http.MethodPost, p.base+"print/cancel", nil)
}
