package services

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"promptmail/internal/logger"
	"promptmail/internal/models"
	"promptmail/internal/repositories"
)

var ErrIncompleteSettings = errors.New("settings incomplete")

// IncompleteSettingsError names the settings fields that are still empty.
type IncompleteSettingsError struct {
	Missing []string
}

func (e *IncompleteSettingsError) Error() string {
	return "settings incomplete: missing " + strings.Join(e.Missing, ", ")
}

func (e *IncompleteSettingsError) Is(target error) bool {
	return target == ErrIncompleteSettings
}

var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	v := validator.New()
	// report fields by their document key
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MissingFields returns the document keys of every empty field in s.
func MissingFields(s models.Settings) []string {
	err := settingsValidator.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return missing
}

// IsComplete reports whether all four settings fields are set.
func IsComplete(s models.Settings) bool {
	return len(MissingFields(s)) == 0
}

type SettingsService interface {
	// Get returns the in-memory record loaded at startup or by the last save.
	Get() models.Settings
	// Save trims and validates s, replaces the in-memory record and writes it
	// out. A failed write is logged and otherwise ignored.
	Save(s models.Settings) (models.Settings, error)
	IsConfigured() bool
	Path() string
}

type settingsService struct {
	repo repositories.SettingsRepository
	log  *logger.Logger

	mu      sync.RWMutex
	current models.Settings
}

func NewSettingsService(repo repositories.SettingsRepository, log *logger.Logger) SettingsService {
	if log == nil {
		log = logger.Nop()
	}
	s := &settingsService{
		repo:    repo,
		log:     log.WithComponent("settings"),
		current: repo.Load(),
	}
	s.log.Debug().
		Str("path", repo.Path()).
		Bool("complete", IsComplete(s.current)).
		Msg("settings loaded")
	return s
}

func (s *settingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *settingsService) Save(in models.Settings) (models.Settings, error) {
	in = in.Trimmed()
	if missing := MissingFields(in); len(missing) > 0 {
		return models.Settings{}, &IncompleteSettingsError{Missing: missing}
	}

	s.mu.Lock()
	s.current = in
	s.mu.Unlock()

	if err := s.repo.Save(in); err != nil {
		s.log.Warn().Err(err).Str("path", s.repo.Path()).Msg("could not write settings, keeping them in memory")
		return in, nil
	}
	s.log.Info().Str("path", s.repo.Path()).Msg("settings saved")
	return in, nil
}

func (s *settingsService) IsConfigured() bool {
	return IsComplete(s.Get())
}

func (s *settingsService) Path() string {
	return s.repo.Path()
}
