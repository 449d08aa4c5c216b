package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolapsis/taskhero/internal/mission"
	"github.com/kolapsis/taskhero/internal/score"
	"github.com/kolapsis/taskhero/internal/task"
)

func TestTasks_RoundTrip(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	a, err := task.New("Write report", "09:00", 30, task.PriorityHigh, "Work")
	require.NoError(t, err)
	a.MotivationalMessage = "Go get it! 💪"
	b, err := task.New("Morning run", "06:30", 45, task.PriorityLow, "Sport")
	require.NoError(t, err)
	b.IsCompleted = true

	require.NoError(t, SaveTasks(kv, []task.Task{a, b}))

	got := LoadTasks(kv)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
}

func TestLoadTasks_AbsentKeyYieldsEmpty(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	assert.Empty(t, LoadTasks(kv))
}

func TestLoadTasks_MalformedValueYieldsEmpty(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyTasks, `{"not":"an array"}`))
	assert.Empty(t, LoadTasks(kv))

	require.NoError(t, kv.Set(KeyTasks, `garbage`))
	assert.Empty(t, LoadTasks(kv))
}

func TestLoadTasks_DropsEntriesWithoutIDOrTitle(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyTasks, `[
		{"id":"task-11111111","title":"keep me","time":"09:00","duration":30,"priority":"medium","category":"Work"},
		{"id":"","title":"no id","time":"09:00"},
		{"id":"task-22222222","title":"","time":"09:00"},
		{"id":"task-33333333","title":"bad extras","time":"10:00","duration":-5,"priority":"urgent","category":"Work"}
	]`))

	got := LoadTasks(kv)
	require.Len(t, got, 2)
	assert.Equal(t, "keep me", got[0].Title)
	assert.Equal(t, task.DefaultDurationMinutes, got[1].DurationMinutes, "bad duration falls back to default")
	assert.Equal(t, task.PriorityMedium, got[1].Priority, "unknown priority falls back to medium")
}

func TestStats_RoundTrip(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	s := score.UserStats{Points: 130, Level: 2, TasksCompleted: 13, PerfectDays: 1, Streak: 4}
	require.NoError(t, SaveStats(kv, s))

	assert.Equal(t, s, LoadStats(kv))
}

func TestLoadStats_MalformedValueYieldsDefaults(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyUserStats, `{"points":"not-a-number"}`))

	got := LoadStats(kv)
	assert.Equal(t, 0, got.Points)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, 0, got.TasksCompleted)
}

func TestLoadStats_InvalidJSONYieldsDefaults(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyUserStats, `{{{`))
	assert.Equal(t, score.DefaultStats(), LoadStats(kv))
}

func TestLoadStats_ClampsNegativesAndRecomputesLevel(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyUserStats, `{"points":250,"level":99,"tasksCompleted":-3}`))

	got := LoadStats(kv)
	assert.Equal(t, 250, got.Points)
	assert.Equal(t, 3, got.Level, "level is always recomputed from points")
	assert.Equal(t, 0, got.TasksCompleted)
}

func TestLoadStats_AbsentKeyYieldsDefaults(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	assert.Equal(t, score.DefaultStats(), LoadStats(kv))
}

func TestMission_RoundTrip(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	m := mission.DailyMission{Quote: "q", Goal: "g", Challenge: "c"}
	require.NoError(t, SaveMission(kv, m, "2024-03-15"))

	got, day, ok := LoadMission(kv)
	require.True(t, ok)
	assert.Equal(t, m, got)
	assert.Equal(t, "2024-03-15", day)
}

func TestLoadMission_MissingDateStampIsCold(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyMission, `{"quote":"q","goal":"g","challenge":"c"}`))

	_, _, ok := LoadMission(kv)
	assert.False(t, ok)
}

func TestLoadMission_IncompleteMissionIsCold(t *testing.T) {
	t.Parallel()
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyMission, `{"quote":"q"}`))
	require.NoError(t, kv.Set(KeyMissionDate, "2024-03-15"))

	_, _, ok := LoadMission(kv)
	assert.False(t, ok)
}
