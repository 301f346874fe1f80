package console

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/dayplan/internal/domain"
)

// Validation rules for free-text fields.
const (
	titleRules       = "required,max=200"
	descriptionRules = "required,max=2000"
)

// The prompts below repeat until the input is valid. They only fail when
// input ends or cannot be read.

// readText prompts for a value satisfying rules. Surrounding spaces are
// trimmed before validation, so blank input is rejected as empty.
func (c *Console) readText(prompt, rules string) (string, error) {
	for {
		c.print(prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		value := strings.TrimSpace(line)
		err = c.validate.Var(value, rules)
		if err == nil {
			return value, nil
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "max" {
			c.println(msgTooLong)
		} else {
			c.println(msgBlankValue)
		}
	}
}

// readDate prompts for a calendar date in the configured layout.
func (c *Console) readDate() (civil.Date, error) {
	for {
		c.print(msgDatePrompt, layoutHint(c.dateLayout))
		line, err := c.readLine()
		if err != nil {
			return civil.Date{}, err
		}

		t, err := time.Parse(c.dateLayout, strings.TrimSpace(line))
		if err == nil {
			return civil.DateOf(t), nil
		}
		c.println(msgDateInvalid)
	}
}

// readTime prompts for a time of day in the configured layout.
func (c *Console) readTime() (civil.Time, error) {
	for {
		c.print(msgTimePrompt, layoutHint(c.timeLayout))
		line, err := c.readLine()
		if err != nil {
			return civil.Time{}, err
		}

		t, err := time.Parse(c.timeLayout, strings.TrimSpace(line))
		if err == nil {
			return civil.TimeOf(t), nil
		}
		c.println(msgTimeInvalid)
	}
}

// readOrdinal lists names with their ordinals and prompts for one of them.
// Input that is not a number is offered to byName, which maps a value name
// such as "weekly" to its ordinal.
func (c *Console) readOrdinal(header string, names []string, byName func(string) (int, bool)) (int, error) {
	for {
		c.println(header)
		for i, name := range names {
			c.println(msgOrdinalLine, strconv.Itoa(i), name)
		}
		c.print(msgOrdinalPrompt)

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		value := strings.TrimSpace(line)
		n, err := strconv.Atoi(value)
		if err != nil {
			if i, ok := byName(value); ok {
				return i, nil
			}
		}
		switch {
		case err != nil:
			c.println(msgOrdinalInvalid)
		case n < 0 || n >= len(names):
			c.println(msgOrdinalUnknown)
		default:
			return n, nil
		}
	}
}

func (c *Console) readTaskType() (domain.TaskType, error) {
	types := domain.TaskTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = localizedType(c.printer, t)
	}

	n, err := c.readOrdinal(msgTypeHeader, names, func(s string) (int, bool) {
		t, err := domain.ParseTaskType(s)
		if err != nil {
			return 0, false
		}
		return slices.Index(types, t), true
	})
	if err != nil {
		return "", err
	}
	return domain.TaskTypeByOrdinal(n)
}

func (c *Console) readRecurrence() (domain.Recurrence, error) {
	kinds := domain.Recurrences()
	names := make([]string, len(kinds))
	for i, r := range kinds {
		names[i] = localizedRecurrence(c.printer, r)
	}

	n, err := c.readOrdinal(msgRecurHeader, names, func(s string) (int, bool) {
		r, err := domain.ParseRecurrence(s)
		if err != nil {
			return 0, false
		}
		return slices.Index(kinds, r), true
	})
	if err != nil {
		return "", err
	}
	return domain.RecurrenceByOrdinal(n)
}

// layoutHint renders a Go reference layout the way users know it,
// e.g. "2.01.2006" as "d.MM.yyyy".
func layoutHint(layout string) string {
	return layoutHints.Replace(layout)
}

var layoutHints = strings.NewReplacer(
	"2006", "yyyy",
	"01", "MM",
	"02", "dd",
	"15", "HH",
	"04", "mm",
	"05", "ss",
	"2", "d",
	"1", "M",
)

// formatDate renders d with layout.
func formatDate(d civil.Date, layout string) string {
	return d.In(time.UTC).Format(layout)
}

// formatTime renders t with layout.
func formatTime(t civil.Time, layout string) string {
	return time.Date(2000, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC).Format(layout)
}
