package service

import (
	"context"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/dayplan/internal/domain"
	"github.com/phrazzld/dayplan/internal/platform/logger"
	"github.com/phrazzld/dayplan/internal/store"
)

// ScheduleService provides the operations the front end performs on a schedule.
type ScheduleService interface {
	// AddTask builds a task from the given fields and stores it.
	// Returns the stored task, including its assigned ID.
	AddTask(
		ctx context.Context,
		title, description string,
		anchor civil.DateTime,
		taskType domain.TaskType,
		recurrence domain.Recurrence,
	) (domain.Task, error)

	// RemoveTask deletes the task with the given ID.
	// Returns ErrTaskNotFound if it does not exist.
	RemoveTask(ctx context.Context, id int) error

	// AllTasks returns every task in insertion order.
	AllTasks(ctx context.Context) ([]domain.Task, error)

	// TasksForDate returns the tasks due on date, in insertion order.
	TasksForDate(ctx context.Context, date civil.Date) ([]domain.Task, error)
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewScheduleService creates a new ScheduleService backed by tasks.
// It returns an error if tasks is nil.
func NewScheduleService(tasks store.TaskStore, logger *slog.Logger) (ScheduleService, error) {
	if tasks == nil {
		return nil, &ScheduleServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &scheduleServiceImpl{
		tasks:  tasks,
		logger: logger.With("component", "schedule_service"),
	}, nil
}

// AddTask implements ScheduleService.AddTask
func (s *scheduleServiceImpl) AddTask(
	ctx context.Context,
	title, description string,
	anchor civil.DateTime,
	taskType domain.TaskType,
	recurrence domain.Recurrence,
) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description, anchor, taskType, recurrence)
	if err != nil {
		log.Warn("rejected task", "error", err)
		return domain.Task{}, NewScheduleServiceError("add_task", "invalid task", err)
	}

	id, err := s.tasks.Add(ctx, *task)
	if err != nil {
		log.Error("failed to store task", "error", err)
		return domain.Task{}, NewScheduleServiceError("add_task", "failed to store task", err)
	}
	task.ID = id

	log.Info("task added",
		"task_id", id,
		"type", task.Type,
		"recurrence", task.Recurrence,
		"anchor", task.Anchor.String())

	return *task, nil
}

// RemoveTask implements ScheduleService.RemoveTask
func (s *scheduleServiceImpl) RemoveTask(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Remove(ctx, id); err != nil {
		log.Warn("failed to remove task", "task_id", id, "error", err)
		return NewScheduleServiceError("remove_task", "failed to remove task", err)
	}

	log.Info("task removed", "task_id", id)
	return nil
}

// AllTasks implements ScheduleService.AllTasks
func (s *scheduleServiceImpl) AllTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewScheduleServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// TasksForDate implements ScheduleService.TasksForDate
func (s *scheduleServiceImpl) TasksForDate(ctx context.Context, date civil.Date) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.tasks.ListForDate(ctx, date)
	if err != nil {
		log.Error("failed to query tasks for date", "date", date.String(), "error", err)
		return nil, NewScheduleServiceError("tasks_for_date", "failed to query tasks", err)
	}

	log.Debug("queried tasks for date", "date", date.String(), "count", len(tasks))
	return tasks, nil
}
