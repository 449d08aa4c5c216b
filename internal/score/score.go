// Package score holds the pure point/level arithmetic. Transformations take a
// stats value and return a new one; durability belongs to the caller.
package score

// LevelThreshold is the number of points per level.
const LevelThreshold = 100

// CompletionPoints is the score delta for one completed task.
const CompletionPoints = 10

// UserStats accumulates the user's gamification state.
//
// PerfectDays and Streak are persisted but never incremented by current
// logic; they exist so stored values round-trip unchanged.
type UserStats struct {
	Points         int `json:"points"`
	Level          int `json:"level"`
	TasksCompleted int `json:"tasksCompleted"`
	PerfectDays    int `json:"perfectDays"`
	Streak         int `json:"streak"`
}

// DefaultStats returns the first-run stats: zero points, level one.
func DefaultStats() UserStats {
	return UserStats{Level: 1}
}

// LevelFor derives the level for a point total: floor(points/100) + 1.
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/LevelThreshold + 1
}

// ProgressInLevel returns how many points have been earned toward the next
// level, in [0, LevelThreshold).
func ProgressInLevel(points int) int {
	if points < 0 {
		return 0
	}
	return points % LevelThreshold
}

// ApplyCompletion credits one task completion. Call exactly once per
// false→true toggle transition.
func ApplyCompletion(s UserStats) UserStats {
	s.Points += CompletionPoints
	s.Level = LevelFor(s.Points)
	s.TasksCompleted++
	return s
}

// ApplyReversal debits one un-completed task. Points and the completion count
// are clamped at zero, so reversing at the floor is a partial no-op: points
// stay at 0 while TasksCompleted still moves toward 0.
// Call exactly once per true→false toggle transition.
func ApplyReversal(s UserStats) UserStats {
	s.Points = max(0, s.Points-CompletionPoints)
	s.Level = LevelFor(s.Points)
	s.TasksCompleted = max(0, s.TasksCompleted-1)
	return s
}
