package domain

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Task-specific validation errors
var (
	// ErrTaskTitleEmpty is returned when a task title is empty or blank.
	ErrTaskTitleEmpty = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTaskDescriptionEmpty is returned when a task description is empty or blank.
	ErrTaskDescriptionEmpty = fmt.Errorf("%w: task description cannot be empty", ErrValidation)

	// ErrInvalidAnchor is returned when the anchor date or time is not a valid calendar value.
	ErrInvalidAnchor = fmt.Errorf("%w: invalid task date or time", ErrValidation)
)

// Task is a scheduled item. The anchor is the date and time the task was first
// scheduled for; Recurrence decides on which later dates it is due again.
//
// ID is zero until the task is added to a store, which assigns it. The
// recurrence is bound when the task is built and a stored task is never
// changed in place: to change it, remove the task and add a new one.
type Task struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Anchor      civil.DateTime `json:"anchor"`
	Type        TaskType       `json:"type"`
	Recurrence  Recurrence     `json:"recurrence"`
}

// NewTask creates a new unsaved Task. Title and description are trimmed.
// Returns an error if validation fails.
func NewTask(
	title, description string,
	anchor civil.DateTime,
	taskType TaskType,
	recurrence Recurrence,
) (*Task, error) {
	task := &Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Anchor:      anchor,
		Type:        taskType,
		Recurrence:  recurrence,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// The ID is not checked; unsaved tasks carry a zero ID.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTaskTitleEmpty
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrTaskDescriptionEmpty
	}

	if !t.Anchor.IsValid() {
		return ErrInvalidAnchor
	}

	if !t.Type.Valid() {
		return ErrInvalidTaskType
	}

	if !t.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}

	return nil
}

// AnchorDate returns the calendar date of the first occurrence.
func (t *Task) AnchorDate() civil.Date {
	return t.Anchor.Date
}

// OccursOn reports whether the task is due on date. It never fails: dates
// before the anchor simply do not match.
//
// A recurring task matches every qualifying date, including ones already in
// the past; tasks have no per-occurrence completion state.
func (t *Task) OccursOn(date civil.Date) bool {
	return t.Recurrence.occursOn(t.AnchorDate(), date)
}
