package tasks

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Encode serializes tasks as a JSON array of {"id","text"} objects.
// A nil or empty slice encodes as "[]".
func Encode(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}

// Decode parses the output of Encode. "null" decodes as an empty list.
func Decode(raw string) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, errors.Wrap(err, "invalid task list")
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
