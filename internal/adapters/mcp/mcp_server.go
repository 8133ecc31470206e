// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/veldrin/prisma-cli/internal/ports"
)

// Server exposes read-only timer status over MCP using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	provider ports.StatusProvider
}

// NewServer creates a new MCP server instance.
func NewServer(provider ports.StatusProvider) *Server {
	s := &Server{
		provider: provider,
	}

	s.server = server.NewMCPServer(
		"prisma-timer",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: get_status
	s.server.AddTool(
		mcp.NewTool(
			"get_status",
			mcp.WithDescription("Get the current Prisma timer status including session phase, remaining time, cycle count, and today's focus stats"),
		),
		s.handleGetStatus,
	)

	// Tool: get_history
	historyTool := mcp.NewTool(
		"get_history",
		mcp.WithDescription("List finished focus sessions from recent days"),
		mcp.WithNumber(
			"days",
			mcp.Description("Number of days to look back (default: 7)"),
		),
	)
	s.server.AddTool(historyTool, s.handleGetHistory)
}

// Start runs the MCP server over stdio and blocks until the client
// disconnects.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// handleGetStatus handles the get_status tool.
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	session := status.Session
	result := map[string]interface{}{
		"session": map[string]interface{}{
			"phase":                   string(session.Phase),
			"mode":                    string(session.Mode),
			"target_seconds":          session.TargetSeconds,
			"remaining_seconds":       session.RemainingSeconds,
			"overtime_seconds":        session.OvertimeSeconds,
			"total_focus_seconds":     session.TotalFocusSeconds,
			"cycle_count":             session.CycleCount,
			"break_duration_seconds":  session.BreakDurationSeconds,
			"break_remaining_seconds": session.BreakRemainingSeconds,
			"progress":                session.Progress(),
		},
		"today": map[string]interface{}{
			"sessions":         status.Today.Sessions,
			"total_focus_time": status.Today.TotalFocusTime.String(),
		},
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetHistory handles the get_history tool.
func (s *Server) handleGetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := int(request.GetFloat("days", 7))
	if days < 1 {
		days = 7
	}

	records, err := s.provider.RecentRecords(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	sessionList := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		data := map[string]interface{}{
			"id":               record.ID,
			"mode":             string(record.Mode),
			"target_seconds":   record.TargetSeconds,
			"focus_seconds":    record.FocusSeconds,
			"overtime_seconds": record.OvertimeSeconds,
			"cycles":           record.Cycles,
			"started_at":       record.StartedAt.Format("2006-01-02T15:04:05"),
			"ended_at":         record.EndedAt.Format("2006-01-02T15:04:05"),
		}
		if record.GitBranch != "" {
			data["git_branch"] = record.GitBranch
		}
		if record.GitCommit != "" {
			data["git_commit"] = record.GitCommit
		}
		sessionList = append(sessionList, data)
	}

	result := map[string]interface{}{
		"days":     days,
		"sessions": sessionList,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
