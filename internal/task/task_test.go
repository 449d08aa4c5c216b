package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID_HasCorrectFormat(t *testing.T) {
	t.Parallel()

	id := GenerateID()
	assert.True(t, strings.HasPrefix(id, "task-"), "ID should start with task-")
	assert.Len(t, id, 13, "ID should be 13 chars: task- + 8 hex")
}

func TestGenerateID_IsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id := GenerateID()
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}

func TestNew_SetsDefaults(t *testing.T) {
	t.Parallel()

	task, err := New("Write report", "09:00", 0, "", "")
	require.NoError(t, err)

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "09:00", task.Time)
	assert.Equal(t, DefaultDurationMinutes, task.DurationMinutes)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, "Other", task.Category)
	assert.False(t, task.IsCompleted)
	assert.Empty(t, task.MotivationalMessage)
}

func TestNew_RespectsExplicitValues(t *testing.T) {
	t.Parallel()

	task, err := New("Morning run", "06:30", 45, PriorityHigh, "Sport")
	require.NoError(t, err)

	assert.Equal(t, 45, task.DurationMinutes)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, "Sport", task.Category)
}

func TestNew_TrimsTitle(t *testing.T) {
	t.Parallel()

	task, err := New("  Write report  ", "09:00", 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Write report", task.Title)
}

func TestNew_RejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	_, err := New("   ", "09:00", 30, PriorityLow, "Work")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestNew_RejectsBadTime(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "9:00", "09-00", "24:00", "12:60", "09:0", "ab:cd"} {
		_, err := New("x", bad, 30, PriorityLow, "Work")
		assert.ErrorIs(t, err, ErrBadTime, "time %q should be rejected", bad)
	}
}

func TestNew_AcceptsBoundaryTimes(t *testing.T) {
	t.Parallel()

	for _, good := range []string{"00:00", "23:59", "09:00"} {
		_, err := New("x", good, 30, PriorityLow, "Work")
		assert.NoError(t, err, "time %q should be accepted", good)
	}
}

func TestValidPriority(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidPriority(PriorityLow))
	assert.True(t, ValidPriority(PriorityMedium))
	assert.True(t, ValidPriority(PriorityHigh))
	assert.False(t, ValidPriority("urgent"))
	assert.False(t, ValidPriority(""))
}
