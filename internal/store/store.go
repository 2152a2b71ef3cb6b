// Package store provides the namespaced key→JSON document store every
// collection persists into. Each top-level entity lives under its own key
// and is read and written wholesale.
package store

// Storage keys. One per top-level collection.
const (
	KeyTasks      = "tasks"
	KeyHabits     = "habits"
	KeyTimeBlocks = "timeBlocks"
	KeyGoals      = "goals"
	KeyObjectives = "weeklyObjectives"
	KeyDailyData  = "dailyData"
	KeySettings   = "settings"
	KeyUser       = "user"
	KeyTheme      = "theme"
)

// KnownKeys returns every storage key, in export order.
func KnownKeys() []string {
	return []string{
		KeyTasks,
		KeyHabits,
		KeyTimeBlocks,
		KeyGoals,
		KeyObjectives,
		KeyDailyData,
		KeySettings,
		KeyUser,
		KeyTheme,
	}
}

// Store is the document store boundary. Get returns nil with no error when
// the key is absent; callers treat that as an empty collection. Writes are
// best effort: implementations may drop a failed write after logging it
// rather than fail the caller.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Clear() error
}
