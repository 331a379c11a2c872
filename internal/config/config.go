package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "PROMPTMAIL"

// Config holds the application configuration. The user's API key and mail
// credentials are not part of it; they live in the settings document.
type Config struct {
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Settings SettingsConfig `mapstructure:"settings"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// GeminiConfig points the generation client at its endpoint.
type GeminiConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Model   string        `mapstructure:"model" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// SMTPConfig describes the mail relay.
type SMTPConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	// StartTLS is "mandatory", "opportunistic" or "none". Anything but
	// mandatory is only meant for local relays.
	StartTLS string `mapstructure:"starttls" validate:"oneof=mandatory opportunistic none"`
}

// SettingsConfig locates the settings document.
type SettingsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// DatabaseConfig controls the delivery history store.
type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=console text json"`
	// File enables a rolling log file in addition to stderr.
	File string `mapstructure:"file"`
}

// NewViper returns a viper instance with defaults, config file search paths
// and environment binding applied. Flags are bound by the caller before Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("promptmail")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "promptmail"))
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and unmarshals v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-flash-latest")
	v.SetDefault("gemini.timeout", "120s")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.starttls", "mandatory")

	v.SetDefault("settings.path", DefaultSettingsPath())

	v.SetDefault("database.enabled", true)
	v.SetDefault("database.path", DefaultDatabasePath())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
}
