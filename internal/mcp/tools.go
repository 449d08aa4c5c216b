package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/mcp/handlers"
)

func registerTools(s *server.MCPServer, deps *Deps) {
	// add_task creates a task with an AI motivational message
	s.AddTool(
		mcp.NewTool("add_task",
			mcp.WithDescription("Create a new task. A motivational message is generated once at creation and attached to the task permanently."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("What the task is about"),
			),
			mcp.WithString("time",
				mcp.Required(),
				mcp.Description("Scheduled time of day, zero-padded HH:MM (e.g. 09:00)"),
			),
			mcp.WithNumber("duration_minutes",
				mcp.Description("Estimated duration in minutes (default: 30)"),
			),
			mcp.WithString("priority",
				mcp.Description("Task priority"),
				mcp.Enum("low", "medium", "high"),
			),
			mcp.WithString("category",
				mcp.Description("Free-form category label (suggested: Work, Sport, Study, Personal, Health, Other)"),
			),
		),
		handlers.AddTask(deps.Tracker),
	)

	// list_tasks lists tasks ordered by scheduled time
	s.AddTool(
		mcp.NewTool("list_tasks",
			mcp.WithDescription("List tasks ordered by scheduled time, with optional filters."),
			mcp.WithString("status",
				mcp.Description("Filter by completion state"),
				mcp.Enum("all", "pending", "completed"),
			),
			mcp.WithString("category",
				mcp.Description("Filter by exact category label"),
			),
		),
		handlers.ListTasks(deps.Tracker),
	)

	// complete_task toggles completion state
	s.AddTool(
		mcp.NewTool("complete_task",
			mcp.WithDescription("Toggle a task's completion state. Completing earns points; un-completing gives them back."),
			mcp.WithString("task_id",
				mcp.Required(),
				mcp.Description("The task id, e.g. task-1a2b3c4d"),
			),
		),
		handlers.CompleteTask(deps.Tracker),
	)

	// remove_task deletes a task
	s.AddTool(
		mcp.NewTool("remove_task",
			mcp.WithDescription("Delete a task. Points already earned from it are kept."),
			mcp.WithString("task_id",
				mcp.Required(),
				mcp.Description("The task id to remove"),
			),
		),
		handlers.RemoveTask(deps.Tracker),
	)

	// daily_briefing serves today's mission
	s.AddTool(
		mcp.NewTool("daily_briefing",
			mcp.WithDescription("Get today's mission: a motivational quote, a focus goal and a small challenge. Generated once per calendar day."),
		),
		handlers.DailyBriefing(deps.Tracker),
	)

	// get_stats serves points, level and achievements
	s.AddTool(
		mcp.NewTool("get_stats",
			mcp.WithDescription("Get the user's points, level, completion totals and achievement checklist."),
		),
		handlers.GetStats(deps.Tracker),
	)
}
