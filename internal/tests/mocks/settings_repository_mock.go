package mocks

import (
	"sync"

	"promptmail/internal/models"
)

type SettingsRepositoryMock struct {
	LoadFunc func() models.Settings
	SaveFunc func(s models.Settings) error
	PathFunc func() string

	mu    sync.Mutex
	Saved []models.Settings
}

func (m *SettingsRepositoryMock) Load() models.Settings {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return models.Settings{}
}

func (m *SettingsRepositoryMock) Save(s models.Settings) error {
	m.mu.Lock()
	m.Saved = append(m.Saved, s)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(s)
	}
	return nil
}

func (m *SettingsRepositoryMock) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "config.json"
}

func (m *SettingsRepositoryMock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Saved)
}
