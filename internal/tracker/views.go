package tracker

import (
	"context"
	"time"

	"github.com/kolapsis/taskhero/internal/mission"
	"github.com/kolapsis/taskhero/internal/score"
	"github.com/kolapsis/taskhero/internal/task"
)

// upNextLimit caps the dashboard's pending-task list.
const upNextLimit = 5

// Dashboard is the read-only projection behind the home view.
type Dashboard struct {
	Mission         mission.DailyMission `json:"mission"`
	Level           int                  `json:"level"`
	Points          int                  `json:"points"`
	ProgressPercent float64              `json:"progressPercent"`
	CompletedTasks  int                  `json:"completedTasks"`
	TotalTasks      int                  `json:"totalTasks"`
	UpNext          []task.Task          `json:"upNext"`
	Categories      []string             `json:"categories"`
}

// Dashboard builds the home-view projection: today's mission, completion
// progress and up to five pending tasks in insertion order, optionally
// filtered by category.
func (t *Tracker) Dashboard(ctx context.Context, now time.Time, category string) Dashboard {
	m := t.Mission(ctx, now)

	total := t.tasks.Len()
	completed := t.tasks.CompletedCount()
	progress := 0.0
	if total > 0 {
		progress = float64(completed) / float64(total) * 100
	}

	upNext := make([]task.Task, 0, upNextLimit)
	for pending := range t.tasks.Pending(category) {
		upNext = append(upNext, pending)
		if len(upNext) == upNextLimit {
			break
		}
	}

	stats := t.Stats()

	return Dashboard{
		Mission:         m,
		Level:           stats.Level,
		Points:          stats.Points,
		ProgressPercent: progress,
		CompletedTasks:  completed,
		TotalTasks:      total,
		UpNext:          upNext,
		Categories:      t.tasks.Categories(),
	}
}

// StatsView is the read-only projection behind the stats view.
type StatsView struct {
	score.UserStats
	CompletedTasks int           `json:"completedTasks"`
	PendingTasks   int           `json:"pendingTasks"`
	Achievements   []Achievement `json:"achievements"`
}

// StatsView builds the stats projection: totals, completed-vs-pending
// breakdown and the fixed achievement checklist.
func (t *Tracker) StatsView() StatsView {
	stats := t.Stats()
	total := t.tasks.Len()
	completed := t.tasks.CompletedCount()

	return StatsView{
		UserStats:      stats,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		Achievements:   Achievements(stats),
	}
}
