package repositories

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"promptmail/internal/models"
)

// SettingsRepository persists the settings record as one flat JSON document.
type SettingsRepository interface {
	// Load returns the stored record, or an empty record when the file is
	// missing, unreadable or corrupt.
	Load() models.Settings
	// Save overwrites the document with s.
	Save(s models.Settings) error
	Path() string
}

type fileSettingsRepository struct {
	path string
}

func NewSettingsRepository(path string) SettingsRepository {
	return &fileSettingsRepository{path: path}
}

func (r *fileSettingsRepository) Path() string {
	return r.path
}

func (r *fileSettingsRepository) Load() models.Settings {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return models.Settings{}
	}

	var s models.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Settings{}
	}
	return s
}

func (r *fileSettingsRepository) Save(s models.Settings) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// write to a sibling temp file first so a crash never leaves half a document
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, r.path)
}
