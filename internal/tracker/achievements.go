package tracker

import "github.com/kolapsis/taskhero/internal/score"

// Achievement is one entry of the fixed checklist on the stats view.
// Thresholds are static; unlock state is derived from UserStats alone.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type achievementDef struct {
	id          string
	title       string
	description string
	unlocked    func(score.UserStats) bool
}

var achievementDefs = []achievementDef{
	{
		id:          "rookie_hero",
		title:       "Rookie Hero",
		description: "Completed your first mission.",
		unlocked:    func(s score.UserStats) bool { return s.TasksCompleted >= 1 },
	},
	{
		id:          "disciplined",
		title:       "Disciplined",
		description: "Reach 100 points.",
		unlocked:    func(s score.UserStats) bool { return s.Points >= 100 },
	},
	{
		id:          "perfect_day",
		title:       "Perfect Day",
		description: "Complete all tasks in a single day.",
		unlocked:    func(s score.UserStats) bool { return s.PerfectDays >= 1 },
	},
	{
		id:          "warrior_elite",
		title:       "Warrior Elite",
		description: "Complete 50 tasks total.",
		unlocked:    func(s score.UserStats) bool { return s.TasksCompleted >= 50 },
	},
}

// Achievements evaluates the full checklist against the given stats.
func Achievements(s score.UserStats) []Achievement {
	out := make([]Achievement, 0, len(achievementDefs))
	for _, def := range achievementDefs {
		out = append(out, Achievement{
			ID:          def.id,
			Title:       def.title,
			Description: def.description,
			Unlocked:    def.unlocked(s),
		})
	}
	return out
}

// newlyUnlocked returns achievements locked under before and unlocked under
// after, for one-shot notification on the crossing transition.
func newlyUnlocked(before, after score.UserStats) []Achievement {
	var out []Achievement
	for _, def := range achievementDefs {
		if !def.unlocked(before) && def.unlocked(after) {
			out = append(out, Achievement{
				ID:          def.id,
				Title:       def.title,
				Description: def.description,
				Unlocked:    true,
			})
		}
	}
	return out
}
