package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/tsudoi-club/tsudoi/internal/model"
)

// ErrNoSession is returned when no stored session exists.
var ErrNoSession = errors.New("no stored session, run login first")

// LoadSession reads the stored session from the JSON file.
func LoadSession(path string) (model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Session{}, ErrNoSession
		}
		return model.Session{}, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return model.Session{}, err
	}
	if !session.LoggedIn() {
		return model.Session{}, ErrNoSession
	}
	return session, nil
}

// SaveSession writes the session to the JSON file.
// The token grants account access, so the file is owner-only.
func SaveSession(path string, session model.Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ClearSession removes the stored session, if any.
func ClearSession(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// DefaultSessionPath returns the default session path: ~/.config/tsudoi/session.json
func DefaultSessionPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tsudoi", "session.json"), nil
}
