// ABOUTME: MCP server setup for the workout routine.
// ABOUTME: Wraps the MCP server around the workout store and calendar.
package mcp

import (
	"context"

	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/screen"
	"github.com/harperreed/routine/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access. Day views are read through
// a Screen so the selected date carries across get_day calls.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
	cal       *dates.Calendar
	screen    *screen.Screen
}

// NewServer creates a new MCP server over the given store. The store should
// be built with store.WithReloadOnWrite when other processes share the
// backend.
func NewServer(st *store.Store, cal *dates.Calendar) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "routine",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		cal:       cal,
		screen:    screen.New(st, cal),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Close detaches the server's screen from the store.
func (s *Server) Close() {
	s.screen.Close()
}

// refresh picks up changes other processes wrote to the backend.
func (s *Server) refresh(ctx context.Context) {
	s.store.Reload(ctx)
}
