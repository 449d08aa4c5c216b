package notify

// Event represents a tracker lifecycle notification.
type Event struct {
	Type    string // see Event* constants
	TaskID  string
	Title   string
	Message string
	Level   int
	Points  int
}

// Event types emitted by the tracker.
const (
	EventTaskCreated         = "task.created"
	EventTaskCompleted       = "task.completed"
	EventTaskReopened        = "task.reopened"
	EventTaskRemoved         = "task.removed"
	EventLevelUp             = "level.up"
	EventAchievementUnlocked = "achievement.unlocked"
)

// Notifier sends tracker lifecycle notifications.
type Notifier interface {
	Notify(event Event)
}

// Hub dispatches events to multiple notifiers.
type Hub struct {
	notifiers []Notifier
}

// NewHub creates a Hub with the given notifiers.
func NewHub(notifiers ...Notifier) *Hub {
	return &Hub{notifiers: notifiers}
}

// Notify sends an event to all registered notifiers.
// Delivery is fire-and-forget; a slow notifier never blocks the tracker.
func (h *Hub) Notify(event Event) {
	for _, n := range h.notifiers {
		go n.Notify(event)
	}
}

// wants reports whether an event type passes a per-notifier filter list.
// An empty list means all events.
func wants(events []string, eventType string) bool {
	if len(events) == 0 {
		return true
	}
	for _, e := range events {
		if e == eventType {
			return true
		}
	}
	return false
}
