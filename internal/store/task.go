package store

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/dayplan/internal/domain"
)

// TaskStore defines the interface for keeping scheduled tasks.
// Implementations own the tasks they hold: every task handed out is a copy,
// so callers cannot change stored state through a returned value.
type TaskStore interface {
	// Add assigns the next unused ID to task, retains it and returns the ID.
	// IDs increase strictly and are never reused, even after removals.
	// Any ID already set on task is ignored.
	// Returns an error wrapping ErrInvalidEntity if the task fails validation.
	Add(ctx context.Context, task domain.Task) (int, error)

	// Remove deletes the task with the given ID.
	// Returns ErrTaskNotFound if no such task is stored; the store is unchanged.
	Remove(ctx context.Context, id int) error

	// List returns all stored tasks in insertion order.
	// Returns an empty slice if the store is empty.
	List(ctx context.Context) ([]domain.Task, error)

	// ListForDate returns, in insertion order, every stored task that occurs
	// on date. Returns an empty slice if none match.
	ListForDate(ctx context.Context, date civil.Date) ([]domain.Task, error)
}
