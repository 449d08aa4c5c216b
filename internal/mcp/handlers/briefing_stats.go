package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/score"
	"github.com/kolapsis/taskhero/internal/tracker"
)

// DailyBriefing returns a handler serving today's mission.
func DailyBriefing(tr *tracker.Tracker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		m := tr.Mission(ctx, time.Now())

		return mcp.NewToolResultText(fmt.Sprintf(
			"🌅 Daily briefing\n\n💬 %q\n🎯 Goal: %s\n🔥 Challenge: %s",
			m.Quote, m.Goal, m.Challenge)), nil
	}
}

// GetStats returns a handler serving points, level and achievements.
func GetStats(tr *tracker.Tracker) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view := tr.StatsView()

		var sb strings.Builder
		fmt.Fprintf(&sb, "🏆 Level %d — %d points (%d/%d to next level)\n",
			view.Level, view.Points, score.ProgressInLevel(view.Points), score.LevelThreshold)
		fmt.Fprintf(&sb, "Tasks: %d completed, %d pending (%d lifetime completions)\n\n",
			view.CompletedTasks, view.PendingTasks, view.TasksCompleted)

		sb.WriteString("Achievements:\n")
		for _, a := range view.Achievements {
			mark := "🔒"
			if a.Unlocked {
				mark = "🏅"
			}
			fmt.Fprintf(&sb, "%s %s — %s\n", mark, a.Title, a.Description)
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}
