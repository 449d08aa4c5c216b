package store

// Storage keys. Each key holds one full JSON (or plain-string) snapshot,
// rewritten on every mutation.
const (
	KeyTasks       = "tasks"
	KeyUserStats   = "user_stats"
	KeyMission     = "daily_mission"
	KeyMissionDate = "daily_mission_date"
)

// KV is the durable key-value storage interface.
// Defined at the consumer side per Go conventions.
type KV interface {
	// Get returns the stored value, or ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}
