package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/task"
	"github.com/kolapsis/taskhero/internal/tracker"
)

// CompleteTask returns a handler that toggles a task's completion state.
func CompleteTask(tr *tracker.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := req.GetArguments()["task_id"].(string)
		if !ok || id == "" {
			return mcp.NewToolResultError("task_id is required"), nil
		}

		toggled, stats, err := tr.Toggle(ctx, id)
		if errors.Is(err, task.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("task %q not found", id)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("toggling task failed: %v", err)), nil
		}

		if toggled.IsCompleted {
			return mcp.NewToolResultText(fmt.Sprintf(
				"✅ **%s** completed! %d points — level %d (%d tasks done).",
				toggled.Title, stats.Points, stats.Level, stats.TasksCompleted)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"↩️ **%s** reopened. %d points — level %d.",
			toggled.Title, stats.Points, stats.Level)), nil
	}
}

// RemoveTask returns a handler that deletes a task. The score is never
// adjusted, even when the removed task was completed.
func RemoveTask(tr *tracker.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := req.GetArguments()["task_id"].(string)
		if !ok || id == "" {
			return mcp.NewToolResultError("task_id is required"), nil
		}

		err := tr.Remove(id)
		if errors.Is(err, task.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("task %q not found", id)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("removing task failed: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("🗑️ Task %s removed.", id)), nil
	}
}
