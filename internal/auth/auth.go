// Package auth gates access to the task list behind fixed demo credentials.
// It offers no real security.
package auth

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"tarefas/internal/config"
)

// Demo credentials.
const (
	Username = "admin"
	Password = "1234"
)

// ErrInvalidCredentials is returned when the username or password is wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Session is the content of the session marker file.
type Session struct {
	User       string    `json:"user"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Check validates a username and password pair.
func Check(user, password string) error {
	if user != Username || password != Password {
		return ErrInvalidCredentials
	}
	return nil
}

// Login checks the credentials and writes the session marker.
func Login(cfg *config.Config, user, password string, now time.Time) error {
	if err := Check(user, password); err != nil {
		return err
	}
	if err := cfg.EnsureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(Session{User: user, LoggedInAt: now.UTC()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.SessionPath(), data, 0600)
}

// Current reads the session marker.
func Current(cfg *config.Config) (Session, error) {
	var s Session
	data, err := os.ReadFile(cfg.SessionPath())
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(data, &s)
	return s, err
}

// LoggedIn reports whether a readable session for the demo user exists.
func LoggedIn(cfg *config.Config) bool {
	s, err := Current(cfg)
	return err == nil && s.User == Username
}
