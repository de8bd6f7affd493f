package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tarefas/internal/tasks"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a single 1-based task number.
func ParseTaskRef(arg string) (int, error) {
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid task reference: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", arg)
	}
	if num < 1 {
		return 0, fmt.Errorf("task number out of range: %d", num)
	}
	return num, nil
}

// ParseTaskRefs parses every argument as a task number.
// Parsing stops at the first invalid reference.
func ParseTaskRefs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		num, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		nums = append(nums, num)
	}
	return nums, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// resolveTasks maps task numbers to tasks in list. All numbers are resolved
// against the same list so removing one task does not shift the others.
func resolveTasks(list []tasks.Task, nums []int) ([]tasks.Task, error) {
	resolved := make([]tasks.Task, 0, len(nums))
	for _, num := range nums {
		if num < 1 || num > len(list) {
			return nil, fmt.Errorf("task number out of range: %d", num)
		}
		resolved = append(resolved, list[num-1])
	}
	return resolved, nil
}
