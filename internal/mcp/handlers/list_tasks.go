package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/tracker"
)

// ListTasks returns a handler that lists tasks with optional filters.
func ListTasks(tr *tracker.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		status := "all"
		if s, ok := args["status"].(string); ok && s != "" {
			status = s
		}
		category, _ := args["category"].(string)

		var shown int
		var sb strings.Builder

		for _, t := range tr.Tasks() {
			if status == "pending" && t.IsCompleted {
				continue
			}
			if status == "completed" && !t.IsCompleted {
				continue
			}
			if category != "" && category != "All" && t.Category != category {
				continue
			}

			shown++
			icon := "⬜"
			if t.IsCompleted {
				icon = "✅"
			}
			fmt.Fprintf(&sb, "%s **%s** — %s at %s (%d min)\n  %s / %s\n",
				icon, t.ID, t.Title, t.Time, t.DurationMinutes, t.Category, t.Priority)
			if t.MotivationalMessage != "" && !t.IsCompleted {
				fmt.Fprintf(&sb, "  %q\n", t.MotivationalMessage)
			}
		}

		if shown == 0 {
			return mcp.NewToolResultText("No tasks found matching the given filters."), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("📋 Tasks (%d found)\n\n%s", shown, sb.String())), nil
	}
}
