// Package tracker owns the application state: the task collection, the user
// stats and the daily mission cache. All mutations go through it, so
// toggle-then-score stays one atomic unit and every state change is mirrored
// to durable storage.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kolapsis/taskhero/internal/mission"
	"github.com/kolapsis/taskhero/internal/notify"
	"github.com/kolapsis/taskhero/internal/score"
	"github.com/kolapsis/taskhero/internal/store"
	"github.com/kolapsis/taskhero/internal/task"
)

// Provider supplies AI-generated content. Both calls follow the never-fail
// contract: on any internal error they return fallback content.
type Provider interface {
	mission.Provider
	MotivationalMessage(ctx context.Context, title, timeOfDay string) string
}

// NotifyFunc is called when a tracker lifecycle event occurs.
type NotifyFunc func(notify.Event)

// Tracker is the single owner of mutable application state. Views read it
// through projection methods; mutations go through AddTask, Toggle and
// Remove.
type Tracker struct {
	mu       sync.Mutex
	tasks    *task.Store
	stats    score.UserStats
	cache    *mission.Cache
	provider Provider
	kv       store.KV
	onNotify NotifyFunc
}

// New creates a Tracker and restores persisted state. Reads are best-effort:
// malformed or absent values fall back to an empty collection, default stats
// and a cold mission cache.
func New(kv store.KV, provider Provider) *Tracker {
	t := &Tracker{
		tasks:    task.NewStore(),
		stats:    store.LoadStats(kv),
		cache:    mission.NewCache(provider),
		provider: provider,
		kv:       kv,
	}

	t.tasks.Replace(store.LoadTasks(kv))
	if m, day, ok := store.LoadMission(kv); ok {
		t.cache.Prime(m, day)
	}

	slog.Info("state restored",
		"tasks", t.tasks.Len(),
		"points", t.stats.Points,
		"level", t.stats.Level)

	return t
}

// SetNotifyFunc sets the callback for lifecycle events.
func (t *Tracker) SetNotifyFunc(fn NotifyFunc) {
	t.onNotify = fn
}

// NewTaskInput carries the task-creation form fields.
type NewTaskInput struct {
	Title           string
	Time            string
	DurationMinutes int
	Priority        task.Priority
	Category        string
}

// AddTask creates a task, resolves its motivational message exactly once and
// appends it to the collection. The provider call is awaited before the task
// becomes visible; its result is frozen onto the task permanently.
func (t *Tracker) AddTask(ctx context.Context, in NewTaskInput) (task.Task, error) {
	nt, err := task.New(in.Title, in.Time, in.DurationMinutes, in.Priority, in.Category)
	if err != nil {
		return task.Task{}, err
	}

	nt.MotivationalMessage = t.provider.MotivationalMessage(ctx, nt.Title, nt.Time)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.tasks.Add(nt); err != nil {
		return task.Task{}, err
	}
	t.persistTasks()

	slog.Info("task created", "task_id", nt.ID, "title", nt.Title, "category", nt.Category)
	t.emit(notify.Event{Type: notify.EventTaskCreated, TaskID: nt.ID, Title: nt.Title, Message: nt.MotivationalMessage})

	return nt, nil
}

// Toggle flips the completion state of a task and applies the matching score
// transformation exactly once. Unknown ids return task.ErrNotFound and leave
// all state untouched.
func (t *Tracker) Toggle(ctx context.Context, id string) (task.Task, score.UserStats, error) {
	_ = ctx

	t.mu.Lock()
	defer t.mu.Unlock()

	delta, err := t.tasks.Toggle(id)
	if err != nil {
		return task.Task{}, t.stats, err
	}
	toggled, _ := t.tasks.Get(id)

	before := t.stats
	if delta > 0 {
		t.stats = score.ApplyCompletion(t.stats)
	} else {
		t.stats = score.ApplyReversal(t.stats)
	}

	t.persistTasks()
	t.persistStats()

	slog.Info("task toggled",
		"task_id", id,
		"completed", toggled.IsCompleted,
		"points", t.stats.Points,
		"level", t.stats.Level)

	if delta > 0 {
		t.emit(notify.Event{Type: notify.EventTaskCompleted, TaskID: id, Title: toggled.Title, Points: t.stats.Points})
		if t.stats.Level > before.Level {
			t.emit(notify.Event{
				Type:    notify.EventLevelUp,
				Level:   t.stats.Level,
				Points:  t.stats.Points,
				Message: fmt.Sprintf("You reached level %d with %d points.", t.stats.Level, t.stats.Points),
			})
		}
		for _, a := range newlyUnlocked(before, t.stats) {
			t.emit(notify.Event{
				Type:    notify.EventAchievementUnlocked,
				Title:   a.Title,
				Message: a.Description,
			})
		}
	} else {
		t.emit(notify.Event{Type: notify.EventTaskReopened, TaskID: id, Title: toggled.Title, Points: t.stats.Points})
	}

	return toggled, t.stats, nil
}

// Remove deletes a task. Removal is a pure list operation: the score is left
// untouched even when the removed task was completed.
func (t *Tracker) Remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed, err := t.tasks.Get(id)
	if err != nil {
		return err
	}
	if err := t.tasks.Remove(id); err != nil {
		return err
	}
	t.persistTasks()

	slog.Info("task removed", "task_id", id)
	t.emit(notify.Event{Type: notify.EventTaskRemoved, TaskID: id, Title: removed.Title})
	return nil
}

// Mission returns the daily mission for the calendar day of now, calling the
// provider at most once per day. A refreshed mission is persisted together
// with its day stamp.
func (t *Tracker) Mission(ctx context.Context, now time.Time) mission.DailyMission {
	m, day, refreshed := t.cache.Get(ctx, now)
	if refreshed {
		if err := store.SaveMission(t.kv, m, day); err != nil {
			slog.Warn("persisting mission failed", "error", err)
		}
		slog.Info("daily mission refreshed", "day", day)
	}
	return m
}

// Stats returns the current user stats.
func (t *Tracker) Stats() score.UserStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Tasks returns all tasks ordered by scheduled time.
func (t *Tracker) Tasks() []task.Task {
	return t.tasks.SortedByTime()
}

// Categories returns the category labels present in the collection, with the
// "All" sentinel first.
func (t *Tracker) Categories() []string {
	return t.tasks.Categories()
}

// persistTasks and persistStats mirror state write-through. Storage failures
// degrade to in-memory operation: logged, never surfaced.
func (t *Tracker) persistTasks() {
	if err := store.SaveTasks(t.kv, t.tasks.Snapshot()); err != nil {
		slog.Warn("persisting tasks failed", "error", err)
	}
}

func (t *Tracker) persistStats() {
	if err := store.SaveStats(t.kv, t.stats); err != nil {
		slog.Warn("persisting stats failed", "error", err)
	}
}

func (t *Tracker) emit(event notify.Event) {
	if t.onNotify != nil {
		t.onNotify(event)
	}
}
