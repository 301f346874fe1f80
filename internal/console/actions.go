package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/dayplan/internal/service"
)

// addTask collects a task from the user and adds it to the schedule.
func (c *Console) addTask(ctx context.Context) error {
	title, err := c.readText(msgTitlePrompt, titleRules)
	if err != nil {
		return err
	}
	description, err := c.readText(msgDescPrompt, descriptionRules)
	if err != nil {
		return err
	}
	date, err := c.readDate()
	if err != nil {
		return err
	}
	clock, err := c.readTime()
	if err != nil {
		return err
	}
	taskType, err := c.readTaskType()
	if err != nil {
		return err
	}
	recurrence, err := c.readRecurrence()
	if err != nil {
		return err
	}

	task, err := c.schedule.AddTask(ctx, title, description,
		civil.DateTime{Date: date, Time: clock}, taskType, recurrence)
	if err != nil {
		return err
	}

	c.println(msgTaskAdded, strconv.Itoa(task.ID))
	return nil
}

// removeTask lists all tasks and removes the one the user picks.
func (c *Console) removeTask(ctx context.Context) error {
	tasks, err := c.schedule.AllTasks(ctx)
	if err != nil {
		return err
	}

	c.println(msgAllTasks)
	if len(tasks) == 0 {
		c.println(msgNoTasks)
		return nil
	}
	for _, t := range tasks {
		c.println(msgListLine, strconv.Itoa(t.ID), t.Title,
			localizedType(c.printer, t.Type),
			localizedRecurrence(c.printer, t.Recurrence))
	}

	for {
		c.print(msgRemovePrompt)
		line, err := c.readLine()
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.println(msgRemoveInvalidID)
			continue
		}

		err = c.schedule.RemoveTask(ctx, id)
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			c.println(msgRemoveNotFound)
		case err != nil:
			return err
		default:
			c.println(msgTaskRemoved, strconv.Itoa(id))
			return nil
		}
	}
}

// printTasksForDate asks for a date and prints the tasks due on it.
func (c *Console) printTasksForDate(ctx context.Context) error {
	date, err := c.readDate()
	if err != nil {
		return err
	}

	tasks, err := c.schedule.TasksForDate(ctx, date)
	if err != nil {
		return err
	}

	c.println(msgTasksFor, formatDate(date, c.dateLayout))
	if len(tasks) == 0 {
		c.println(msgNoTasks)
		return nil
	}
	for _, t := range tasks {
		c.println(msgTaskLine,
			localizedType(c.printer, t.Type),
			t.Title,
			formatTime(t.Anchor.Time, c.timeLayout),
			t.Description)
	}
	return nil
}
