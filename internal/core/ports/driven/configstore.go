package driven

// ConfigStore provides access to application configuration values.
type ConfigStore interface {
	// Get retrieves a value by key. Returns false if not set.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if not set.
	GetString(key string) string

	// GetBool retrieves a boolean value, false if not set.
	GetBool(key string) bool

	// Set stores a configuration value.
	Set(key string, value any) error

	// Save persists the configuration.
	Save() error
}
