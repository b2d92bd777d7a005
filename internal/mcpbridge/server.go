// Package mcpbridge exposes a compiled tool catalog as an MCP stdio server,
// so agent runtimes that speak MCP can call the same tools an OpenAI-style
// client would.
package mcpbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/robfig/cron/v3"

	"github.com/makerhub/makerhub/internal/catalog"
)

// ToolSource provides the catalog to expose and dispatches calls against it.
// *hub.Hub satisfies this.
type ToolSource interface {
	Catalog() []catalog.Tool
	Call(ctx context.Context, name string, args map[string]any) (any, error)
}

// Recompiler is implemented by sources whose catalog can be rebuilt. The
// refresh schedule recompiles before re-registering, so a source that only
// caches its compile result still picks up device-side changes. *hub.Hub
// satisfies this.
type Recompiler interface {
	Recompile() error
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger overrides the structured logger used for call and refresh
// logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithRefresh enables periodic catalog re-registration on the given cron
// spec (standard five-field or @every syntax).
func WithRefresh(spec string) Option {
	return func(s *Server) { s.refreshSpec = spec }
}

// Server bridges a ToolSource to MCP.
type Server struct {
	mcpServer   *server.MCPServer
	source      ToolSource
	logger      *slog.Logger
	refreshSpec string
	cron        *cron.Cron
	registered  []string
}

// New builds the server and registers the source's current catalog.
func New(name, version string, source ToolSource, opts ...Option) (*Server, error) {
	s := &Server{
		mcpServer: server.NewMCPServer(name, version,
			server.WithToolCapabilities(true),
		),
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.registerTools(); err != nil {
		return nil, err
	}

	if s.refreshSpec != "" {
		s.cron = cron.New()
		if _, err := s.cron.AddFunc(s.refreshSpec, s.refresh); err != nil {
			return nil, fmt.Errorf("mcpbridge: invalid refresh spec %q: %w", s.refreshSpec, err)
		}
	}

	return s, nil
}

// Serve starts the refresh schedule (if configured) and serves MCP over
// stdio until the client disconnects.
func (s *Server) Serve() error {
	if s.cron != nil {
		s.cron.Start()
		defer s.cron.Stop()
	}
	s.logger.Info("serving MCP over stdio", "tools", len(s.registered))
	return server.ServeStdio(s.mcpServer)
}

// registerTools registers every catalog tool, replacing any previous
// registration.
func (s *Server) registerTools() error {
	tools := s.source.Catalog()

	if len(s.registered) > 0 {
		s.mcpServer.DeleteTools(s.registered...)
		s.registered = s.registered[:0]
	}

	for _, t := range tools {
		schema, err := json.Marshal(t.Schema)
		if err != nil {
			return fmt.Errorf("mcpbridge: marshal schema for %s: %w", t.Name, err)
		}
		s.mcpServer.AddTool(
			mcp.NewToolWithRawSchema(t.Name, t.Description, schema),
			s.handler(t.Name),
		)
		s.registered = append(s.registered, t.Name)
	}

	return nil
}

// refresh recompiles the source (when it supports that) and re-registers
// the catalog on the cron schedule. A failed recompile keeps the previous
// registration.
func (s *Server) refresh() {
	start := time.Now()
	if r, ok := s.source.(Recompiler); ok {
		if err := r.Recompile(); err != nil {
			s.logger.Error("catalog recompile failed", "error", err)
			return
		}
	}
	if err := s.registerTools(); err != nil {
		s.logger.Error("catalog refresh failed", "error", err)
		return
	}
	s.logger.Info("catalog refreshed",
		"tools", len(s.registered),
		"elapsed", time.Since(start),
	)
}

// handler builds the MCP call handler for one tool. Dispatch errors are
// returned as MCP error results rather than protocol errors, so the client
// sees them as tool output.
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		args := request.GetArguments()

		s.logger.Info("tool call", "call_id", callID, "tool", name, "args", len(args))

		start := time.Now()
		result, err := s.source.Call(ctx, name, args)
		if err != nil {
			s.logger.Error("tool call failed",
				"call_id", callID, "tool", name, "error", err,
			)
			return errorResult(err.Error()), nil
		}

		s.logger.Info("tool call done",
			"call_id", callID, "tool", name, "elapsed", time.Since(start),
		)

		data, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("mcpbridge: marshal result for %s: %w", name, err)
		}
		return textResult(string(data)), nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}
