package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/kolapsis/taskhero/internal/mission"
	"github.com/kolapsis/taskhero/internal/score"
	"github.com/kolapsis/taskhero/internal/task"
)

// This file is the bridge between in-memory state and the KV storage.
// Writes marshal full snapshots; reads are best-effort and never fail from
// the caller's perspective: malformed or absent values degrade to empty
// collections and default stats.

// SaveTasks writes the full task collection snapshot.
func SaveTasks(kv KV, tasks []task.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	return kv.Set(KeyTasks, string(data))
}

// LoadTasks reads the persisted task collection. Entries without an id or
// title are dropped; a missing or malformed value yields an empty slice.
func LoadTasks(kv KV) []task.Task {
	raw, ok, err := kv.Get(KeyTasks)
	if err != nil {
		slog.Warn("reading persisted tasks failed, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		slog.Warn("persisted tasks malformed, starting empty")
		return nil
	}

	var tasks []task.Task
	parsed.ForEach(func(_, v gjson.Result) bool {
		t := task.Task{
			ID:                  v.Get("id").String(),
			Title:               v.Get("title").String(),
			Time:                v.Get("time").String(),
			DurationMinutes:     int(v.Get("duration").Int()),
			Priority:            task.Priority(v.Get("priority").String()),
			Category:            v.Get("category").String(),
			IsCompleted:         v.Get("isCompleted").Bool(),
			MotivationalMessage: v.Get("motivationalMessage").String(),
		}
		if t.ID == "" || t.Title == "" {
			slog.Warn("dropping malformed persisted task", "id", t.ID)
			return true
		}
		if t.DurationMinutes <= 0 {
			t.DurationMinutes = task.DefaultDurationMinutes
		}
		if !task.ValidPriority(t.Priority) {
			t.Priority = task.PriorityMedium
		}
		tasks = append(tasks, t)
		return true
	})
	return tasks
}

// SaveStats writes the user stats snapshot.
func SaveStats(kv KV, s score.UserStats) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	return kv.Set(KeyUserStats, string(data))
}

// LoadStats reads the persisted user stats. Non-numeric or missing fields
// read as zero, negatives are clamped, and the level is always recomputed
// from points so the level invariant holds no matter what was stored.
func LoadStats(kv KV) score.UserStats {
	raw, ok, err := kv.Get(KeyUserStats)
	if err != nil {
		slog.Warn("reading persisted stats failed, using defaults", "error", err)
		return score.DefaultStats()
	}
	if !ok || !gjson.Valid(raw) {
		return score.DefaultStats()
	}

	s := score.UserStats{
		Points:         clampNonNegative(gjson.Get(raw, "points").Int()),
		TasksCompleted: clampNonNegative(gjson.Get(raw, "tasksCompleted").Int()),
		PerfectDays:    clampNonNegative(gjson.Get(raw, "perfectDays").Int()),
		Streak:         clampNonNegative(gjson.Get(raw, "streak").Int()),
	}
	s.Level = score.LevelFor(s.Points)
	return s
}

// SaveMission writes the cached daily mission together with its day stamp.
func SaveMission(kv KV, m mission.DailyMission, day string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding mission: %w", err)
	}
	if err := kv.Set(KeyMission, string(data)); err != nil {
		return err
	}
	return kv.Set(KeyMissionDate, day)
}

// LoadMission reads the persisted mission and its day stamp. ok is false
// when either is absent or malformed; the cache then simply starts cold.
func LoadMission(kv KV) (mission.DailyMission, string, bool) {
	raw, found, err := kv.Get(KeyMission)
	if err != nil || !found || !gjson.Valid(raw) {
		return mission.DailyMission{}, "", false
	}
	day, found, err := kv.Get(KeyMissionDate)
	if err != nil || !found || day == "" {
		return mission.DailyMission{}, "", false
	}

	m := mission.DailyMission{
		Quote:     gjson.Get(raw, "quote").String(),
		Goal:      gjson.Get(raw, "goal").String(),
		Challenge: gjson.Get(raw, "challenge").String(),
	}
	if m.Quote == "" || m.Goal == "" || m.Challenge == "" {
		return mission.DailyMission{}, "", false
	}
	return m, day, true
}

func clampNonNegative(n int64) int {
	if n < 0 {
		return 0
	}
	return int(n)
}
