//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultSettingsPath returns the settings file path for production mode.
// The settings document is stored alongside the executable.
func DefaultSettingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Failed to resolve executable path: %v. Using fallback.", err)
		return "config.json"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "config.json")
}

// DefaultDatabasePath returns the history database path for production mode.
// In production, the database is stored in the user's config directory.
func DefaultDatabasePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "promptmail.db"
	}

	appDir := filepath.Join(configDir, "promptmail")

	err = os.MkdirAll(appDir, 0755)
	if err != nil {
		log.Printf("Warning: Failed to create app config dir: %v. Using fallback.", err)
		return "promptmail.db"
	}

	return filepath.Join(appDir, "promptmail.db")
}

func IsDevelopment() bool {
	return false
}
