// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tarefas/internal/tasks"
)

// Separator frames the list header.
const Separator = "------------"

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {TEXT}\n" (4-wide right-aligned number, two spaces, text)
func FormatTask(w io.Writer, num int, task tasks.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(task.Text))
}

// FormatHeader prints the list header with the task count.
func FormatHeader(w io.Writer, count int) {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	fmt.Fprintln(w, Separator)
	fmt.Fprintf(w, "My Tasks (%d %s)\n", count, noun)
	fmt.Fprintln(w, Separator)
}

// FormatList prints the header followed by every task, numbered from 1.
func FormatList(w io.Writer, list []tasks.Task) {
	FormatHeader(w, len(list))
	for i, t := range list {
		FormatTask(w, i+1, t)
	}
}

// normalizeText keeps a task on one line.
// Newlines become spaces; whitespace-only text becomes "(untitled)".
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
