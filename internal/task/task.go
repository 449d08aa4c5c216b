package task

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
)

// Priority indicates how urgent a task is. Display-only: it never
// affects ordering or scoring.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SuggestedCategories is the fixed suggestion set offered when creating a
// task. Categories are free-form labels; these are suggestions, not a closed
// enum.
var SuggestedCategories = []string{"Work", "Sport", "Study", "Personal", "Health", "Other"}

// DefaultDurationMinutes is applied when a task is created without an
// explicit duration.
const DefaultDurationMinutes = 30

var (
	// ErrNotFound is returned when an operation references an unknown task id.
	ErrNotFound = errors.New("task not found")

	// ErrDuplicateID is returned by Add when the id is already in the store.
	ErrDuplicateID = errors.New("duplicate task id")

	// ErrEmptyTitle is returned by New for a blank title.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrBadTime is returned by New when the scheduled time is not zero-padded HH:MM.
	ErrBadTime = errors.New("scheduled time must be HH:MM")
)

// Task is a user-defined unit of work with a scheduled time and a completion
// state. All fields except IsCompleted are immutable after creation; the
// motivational message is resolved once when the task is created and never
// regenerated.
type Task struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Time                string   `json:"time"` // "HH:MM", zero-padded
	DurationMinutes     int      `json:"duration"`
	Priority            Priority `json:"priority"`
	Category            string   `json:"category"`
	IsCompleted         bool     `json:"isCompleted"`
	MotivationalMessage string   `json:"motivationalMessage,omitempty"`
}

// GenerateID creates a new task ID in the format task-{8 hex chars}.
func GenerateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("task-%x", b)
}

// New creates a Task with a fresh id, validating title and time. Zero or
// negative duration falls back to DefaultDurationMinutes, an unknown priority
// to PriorityMedium, an empty category to "Other".
func New(title, timeOfDay string, durationMinutes int, priority Priority, category string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	if !validClock(timeOfDay) {
		return Task{}, ErrBadTime
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	if !ValidPriority(priority) {
		priority = PriorityMedium
	}
	if strings.TrimSpace(category) == "" {
		category = "Other"
	}

	return Task{
		ID:              GenerateID(),
		Title:           title,
		Time:            timeOfDay,
		DurationMinutes: durationMinutes,
		Priority:        priority,
		Category:        category,
	}, nil
}

// validClock checks the fixed-width zero-padded "HH:MM" shape. Fixed width is
// what makes lexicographic time sorting valid.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh < 24 && mm < 60
}
