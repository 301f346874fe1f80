package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/dayplan/internal/config"
	"github.com/phrazzld/dayplan/internal/domain"
	"github.com/phrazzld/dayplan/internal/platform/logger"
	"github.com/phrazzld/dayplan/internal/platform/memory"
	"github.com/phrazzld/dayplan/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var englishConfig = config.ConsoleConfig{
	Locale:     "en",
	DateLayout: config.DefaultDateLayout,
	TimeLayout: config.DefaultTimeLayout,
}

// session runs a console over the given input lines and returns its output
// and the schedule it worked on.
func session(t *testing.T, cfg config.ConsoleConfig, lines ...string) (string, service.ScheduleService) {
	t.Helper()

	l, _ := logger.GetTestLogger(t)
	svc, err := service.NewScheduleService(memory.NewTaskStore(l), l)
	require.NoError(t, err)

	return run(t, svc, cfg, lines...), svc
}

func run(t *testing.T, svc service.ScheduleService, cfg config.ConsoleConfig, lines ...string) string {
	t.Helper()

	l, _ := logger.GetTestLogger(t)
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}

	c, err := New(svc, cfg, in, out, l)
	require.NoError(t, err)
	require.NoError(t, c.Run(context.Background()))

	return out.String()
}

func TestConsole_AddAndQuery(t *testing.T) {
	t.Parallel()

	out, svc := session(t, englishConfig,
		"1", "Standup", "Team sync", "4.03.2024", "09:30", "0", "2",
		"3", "11.03.2024",
		"3", "12.03.2024",
		"0",
	)

	assert.Contains(t, out, "Task 1 added")
	assert.Contains(t, out, "0. Work task")
	assert.Contains(t, out, "2. Weekly")
	assert.Contains(t, out, "Tasks for 11.03.2024\n[Work task] Standup: 09:30 (Team sync)\n")
	assert.Contains(t, out, "Tasks for 12.03.2024\nNo tasks\n")

	all, err := svc.AllTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.RecurrenceWeekly, all[0].Recurrence)
	assert.Equal(t, civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.March, Day: 4},
		Time: civil.Time{Hour: 9, Minute: 30},
	}, all[0].Anchor)
}

func TestConsole_AddRetriesInvalidInput(t *testing.T) {
	t.Parallel()

	out, svc := session(t, englishConfig,
		"1",
		"   ", "Rent",
		"", "Pay the landlord",
		"31.02.2024", "2024-01-31", "31.01.2024",
		"25:00", "08-00", "08:00",
		"x", "5", "1",
		"-1", "3",
		"0",
	)

	assert.Equal(t, 2, strings.Count(out, "An empty value was entered"))
	assert.Equal(t, 2, strings.Count(out, "The date is in the wrong format"))
	assert.Equal(t, 2, strings.Count(out, "The time is in the wrong format"))
	assert.Equal(t, 1, strings.Count(out, "Invalid task type number entered"))
	assert.Equal(t, 2, strings.Count(out, "Task type not found"))
	assert.Contains(t, out, "Enter the date in format d.MM.yyyy: ")
	assert.Contains(t, out, "Enter the time in format HH:mm: ")

	all, err := svc.AllTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Rent", all[0].Title)
	assert.Equal(t, domain.TaskTypePersonal, all[0].Type)
	assert.Equal(t, domain.RecurrenceMonthly, all[0].Recurrence)
}

func TestConsole_TitleTooLong(t *testing.T) {
	t.Parallel()

	out, _ := session(t, englishConfig,
		"1", strings.Repeat("x", 201), "ok", "d", "1.03.2024", "10:00", "0", "0",
		"0",
	)

	assert.Contains(t, out, "The value is too long")
	assert.Contains(t, out, "Task 1 added")
}

func TestConsole_OversizedLineIsRejectedAsTooLong(t *testing.T) {
	t.Parallel()

	out, svc := session(t, englishConfig,
		"1", "t", strings.Repeat("x", 70000), "d", "1.03.2024", "10:00", "0", "0",
		"0",
	)

	assert.Equal(t, 1, strings.Count(out, "The value is too long"))
	assert.Contains(t, out, "Task 1 added")

	all, err := svc.AllTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "d", all[0].Description)
}

func TestConsole_OversizedMenuLine(t *testing.T) {
	t.Parallel()

	out, _ := session(t, englishConfig, strings.Repeat("1", maxLineBytes*2), "0")

	assert.Equal(t, 1, strings.Count(out, "Choose a menu item from the list!"))
	assert.Equal(t, 2, strings.Count(out, "Choose a menu item: "))
}

func TestConsole_TypeAndRecurrenceByName(t *testing.T) {
	t.Parallel()

	out, svc := session(t, englishConfig,
		"1", "Gym", "Legs", "4.03.2024", "18:00", "Personal", "weekly",
		"0",
	)

	assert.Contains(t, out, "Task 1 added")
	assert.NotContains(t, out, "Invalid task type number entered")

	all, err := svc.AllTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.TaskTypePersonal, all[0].Type)
	assert.Equal(t, domain.RecurrenceWeekly, all[0].Recurrence)
}

func TestConsole_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	l, _ := logger.GetTestLogger(t)
	svc, err := service.NewScheduleService(memory.NewTaskStore(l), l)
	require.NoError(t, err)

	in := strings.NewReader("1\nt\nd\n1.03.2024\n10:00\n0\n0")
	out := &bytes.Buffer{}
	c, err := New(svc, englishConfig, in, out, l)
	require.NoError(t, err)
	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "Task 1 added")
}

func TestConsole_Remove(t *testing.T) {
	t.Parallel()

	out, svc := session(t, englishConfig,
		"1", "first", "a", "1.03.2024", "10:00", "0", "1",
		"1", "second", "b", "1.03.2024", "11:00", "1", "0",
		"2", "abc", "99", "1",
		"2", "1", "2",
		"2",
		"0",
	)

	assert.Contains(t, out, "All tasks\n1. first [Work task] (Daily)\n2. second [Personal task] (One-time)\n")
	assert.Contains(t, out, "Invalid task id entered")
	assert.Equal(t, 2, strings.Count(out, "Task to remove not found"), "99 and the already removed 1")
	assert.Contains(t, out, "Task 1 removed")
	assert.Contains(t, out, "Task 2 removed")
	assert.Contains(t, out, "All tasks\nNo tasks\n")

	all, err := svc.AllTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestConsole_InvalidMenuChoice(t *testing.T) {
	t.Parallel()

	out, _ := session(t, englishConfig, "menu", "7", "0")

	assert.Equal(t, 2, strings.Count(out, "Choose a menu item from the list!"))
	assert.Equal(t, 3, strings.Count(out, "Choose a menu item: "))
}

func TestConsole_EndOfInputExitsCleanly(t *testing.T) {
	t.Parallel()

	out, svc := session(t, englishConfig, "1", "unfinished")

	assert.Contains(t, out, "Enter task description: ")
	all, err := svc.AllTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestConsole_Russian(t *testing.T) {
	t.Parallel()

	cfg := englishConfig
	cfg.Locale = "ru"

	out, _ := session(t, cfg,
		"1", "Отчёт", "Квартальный", "10.03.2024", "10:00", "0", "0",
		"3", "10.03.2024",
		"0",
	)

	assert.Contains(t, out, " 1. Добавить задачу")
	assert.Contains(t, out, "Задача 1 добавлена")
	assert.Contains(t, out, "0. Разовая")
	assert.Contains(t, out, "Задачи на 10.03.2024\n[Рабочая задача] Отчёт: 10:00 (Квартальный)\n")
}

func TestConsole_CustomLayouts(t *testing.T) {
	t.Parallel()

	cfg := englishConfig
	cfg.DateLayout = "2006-01-02"
	cfg.TimeLayout = "3:04PM"

	out, _ := session(t, cfg,
		"1", "Gym", "Legs", "2024-03-10", "6:15PM", "1", "1",
		"3", "2024-03-15",
		"0",
	)

	assert.Contains(t, out, "Enter the date in format yyyy-MM-dd: ")
	assert.Contains(t, out, "Tasks for 2024-03-15\n[Personal task] Gym: 6:15PM (Legs)\n")
}

type failingSchedule struct {
	service.ScheduleService
	err error
}

func (f failingSchedule) AllTasks(context.Context) ([]domain.Task, error) {
	return nil, f.err
}

func TestConsole_UnexpectedServiceErrorStopsRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	in := strings.NewReader("2\n0\n")
	c, err := New(failingSchedule{err: boom}, englishConfig, in, &bytes.Buffer{}, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Run(context.Background()), boom)
}

func TestConsole_CancelledContext(t *testing.T) {
	t.Parallel()

	_, svc := session(t, englishConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := New(svc, englishConfig, strings.NewReader("0\n"), &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(nil, englishConfig, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.Error(t, err)

	_, svc := session(t, englishConfig)
	cfg := englishConfig
	cfg.Locale = "!!"
	_, err = New(svc, cfg, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestLayoutHint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "d.MM.yyyy", layoutHint("2.01.2006"))
	assert.Equal(t, "HH:mm", layoutHint("15:04"))
	assert.Equal(t, "yyyy-MM-dd", layoutHint("2006-01-02"))
}
