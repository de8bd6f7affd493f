// Package tasks holds the task list state and keeps it synced to durable
// key-value storage.
package tasks

import "errors"

// DefaultKey is the storage key holding the serialized task list.
const DefaultKey = "@tasks"

// ErrTaskNotFound is returned when an operation names an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// Task is a single entry of the list.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// State is what the presentation layer renders.
type State struct {
	Tasks     []Task
	Input     string
	EditingID string // empty when idle

	// Version increases with every change; a higher Version is newer.
	Version uint64
}

// Editing reports whether an edit is in progress.
func (s State) Editing() bool {
	return s.EditingID != ""
}
