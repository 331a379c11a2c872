//go:build !prod

package config

// DefaultSettingsPath returns the settings file path for development mode.
// In dev mode, files live in the working directory for easy access and debugging.
func DefaultSettingsPath() string {
	return "config.json"
}

// DefaultDatabasePath returns the history database path for development mode.
func DefaultDatabasePath() string {
	return "promptmail.db"
}

func IsDevelopment() bool {
	return true
}
