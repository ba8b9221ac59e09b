package assessment

import "time"

// Config holds auto-save settings for the progress store.
type Config struct {
	// QuietPeriod is how long the store waits after the last debounced
	// mutation before writing a snapshot.
	QuietPeriod time.Duration

	// SaveTimeout bounds a single background (debounced) save.
	SaveTimeout time.Duration

	// WriteRetries is the number of extra attempts after a failed write.
	WriteRetries int
}

// DefaultConfig returns the auto-save defaults.
func DefaultConfig() Config {
	return Config{
		QuietPeriod:  2 * time.Second,
		SaveTimeout:  5 * time.Second,
		WriteRetries: 1,
	}
}
