package memory

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/dayplan/internal/domain"
	"github.com/phrazzld/dayplan/internal/platform/logger"
	"github.com/phrazzld/dayplan/internal/store"
)

// TaskStore implements the store.TaskStore interface in memory.
// Tasks are indexed by ID; a separate slice of IDs keeps insertion order.
type TaskStore struct {
	tasks  map[int]domain.Task
	order  []int
	ids    Sequence
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory TaskStore.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[int]domain.Task),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Add implements store.TaskStore.Add
func (s *TaskStore) Add(ctx context.Context, task domain.Task) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during add",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return 0, store.NewStoreError("task", "add", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	task.ID = s.ids.Next()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	log.Debug("task stored",
		slog.Int("task_id", task.ID),
		slog.Int("task_count", len(s.tasks)))

	return task.ID, nil
}

// Remove implements store.TaskStore.Remove
func (s *TaskStore) Remove(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, ok := s.tasks[id]; !ok {
		log.Debug("task not found", slog.Int("task_id", id))
		return store.ErrTaskNotFound
	}

	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	log.Debug("task removed",
		slog.Int("task_id", id),
		slog.Int("task_count", len(s.tasks)))

	return nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	return s.collect(func(domain.Task) bool { return true }), nil
}

// ListForDate implements store.TaskStore.ListForDate
func (s *TaskStore) ListForDate(ctx context.Context, date civil.Date) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	out := s.collect(func(t domain.Task) bool { return t.OccursOn(date) })

	log.Debug("tasks matched date",
		slog.String("date", date.String()),
		slog.Int("matched", len(out)),
		slog.Int("task_count", len(s.tasks)))

	return out, nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// collect returns copies of the stored tasks accepted by keep, in insertion order.
func (s *TaskStore) collect(keep func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		t := s.tasks[id]
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
