package domain

import "strings"

// TaskType is the category a task belongs to.
type TaskType string

// Possible task type values
const (
	TaskTypeWork     TaskType = "work"
	TaskTypePersonal TaskType = "personal"
)

// TaskTypes returns every task type in menu order. The index of a value in the
// returned slice is its ordinal.
func TaskTypes() []TaskType {
	return []TaskType{TaskTypeWork, TaskTypePersonal}
}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeWork, TaskTypePersonal:
		return true
	default:
		return false
	}
}

// ParseTaskType converts a case-insensitive name into a TaskType.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidTaskType
	}
	return t, nil
}

// TaskTypeByOrdinal returns the task type at position i of TaskTypes.
func TaskTypeByOrdinal(i int) (TaskType, error) {
	types := TaskTypes()
	if i < 0 || i >= len(types) {
		return "", ErrInvalidTaskType
	}
	return types[i], nil
}
