// ABOUTME: MCP resource implementations for the workout routine.
// ABOUTME: Provides routine://today, routine://week, and routine://workouts resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI    = "routine://today"
	weekURI     = "routine://week"
	workoutsURI = "routine://workouts"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Workouts",
		Description: "Workouts scheduled today with completion state",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         weekURI,
		Name:        "Selectable Week",
		Description: "Yesterday through six days ahead with done/total per day",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         workoutsURI,
		Name:        "All Workouts",
		Description: "Every workout with repeat days and completion history",
		MIMEType:    "application/json",
	}, s.handleWorkoutsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.refresh(ctx)
	return jsonResource(todayURI, toDayOutput(s.screen.Day(s.cal.Today())))
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.refresh(ctx)
	days := []dayOutput{}
	for _, day := range s.screen.Week() {
		days = append(days, toDayOutput(day))
	}

	result := map[string]interface{}{
		"today": s.cal.DateKey(s.cal.Today()),
		"days":  days,
	}
	return jsonResource(weekURI, result)
}

func (s *Server) handleWorkoutsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.refresh(ctx)
	workouts := []workoutOutput{}
	for _, w := range s.store.Workouts() {
		workouts = append(workouts, toWorkoutOutput(w))
	}

	result := map[string]interface{}{
		"generated_at": time.Now().In(s.cal.Location()).Format(time.RFC3339),
		"workouts":     workouts,
		"count":        len(workouts),
	}
	return jsonResource(workoutsURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
