package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/task"
	"github.com/kolapsis/taskhero/internal/tracker"
)

// AddTask returns a handler that creates a task with its motivational message.
func AddTask(tr *tracker.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		in := tracker.NewTaskInput{}
		if title, ok := args["title"].(string); ok {
			in.Title = title
		}
		if timeOfDay, ok := args["time"].(string); ok {
			in.Time = timeOfDay
		}
		if duration, ok := args["duration_minutes"].(float64); ok {
			in.DurationMinutes = int(duration)
		}
		if priority, ok := args["priority"].(string); ok {
			in.Priority = task.Priority(priority)
		}
		if category, ok := args["category"].(string); ok {
			in.Category = category
		}

		created, err := tr.AddTask(ctx, in)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("creating task failed: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"⚔️ Task **%s** created.\n  %s at %s (%d min) — %s / %s\n  %q",
			created.ID, created.Title, created.Time, created.DurationMinutes,
			created.Category, created.Priority, created.MotivationalMessage)), nil
	}
}
