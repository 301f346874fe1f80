package console

import (
	"fmt"

	"github.com/phrazzld/dayplan/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key and as the English
// translation. Numbers are passed as strings so the printer does not apply
// locale digit grouping to IDs.
const (
	msgMenu            = " 1. Add task\n 2. Remove task\n 3. Tasks for a date\n 0. Exit"
	msgMenuPrompt      = "Choose a menu item: "
	msgMenuInvalid     = "Choose a menu item from the list!"
	msgTitlePrompt     = "Enter task title: "
	msgDescPrompt      = "Enter task description: "
	msgBlankValue      = "An empty value was entered"
	msgTooLong         = "The value is too long"
	msgDatePrompt      = "Enter the date in format %s: "
	msgDateInvalid     = "The date is in the wrong format"
	msgTimePrompt      = "Enter the time in format %s: "
	msgTimeInvalid     = "The time is in the wrong format"
	msgTypeHeader      = "Choose task type: "
	msgRecurHeader     = "Choose task recurrence: "
	msgOrdinalPrompt   = "Enter type: "
	msgOrdinalInvalid  = "Invalid task type number entered"
	msgOrdinalUnknown  = "Task type not found"
	msgTaskAdded       = "Task %s added"
	msgAllTasks        = "All tasks"
	msgNoTasks         = "No tasks"
	msgRemovePrompt    = "Choose a task to remove: "
	msgRemoveInvalidID = "Invalid task id entered"
	msgRemoveNotFound  = "Task to remove not found"
	msgTaskRemoved     = "Task %s removed"
	msgTasksFor        = "Tasks for %s"
	msgTaskLine        = "[%s] %s: %s (%s)"
	msgListLine        = "%s. %s [%s] (%s)"
	msgOrdinalLine     = "%s. %s"

	msgTypeWork        = "Work task"
	msgTypePersonal    = "Personal task"
	msgRecurSingle     = "One-time"
	msgRecurDaily      = "Daily"
	msgRecurWeekly     = "Weekly"
	msgRecurMonthly    = "Monthly"
	msgRecurYearly     = "Yearly"
	msgUnknownCategory = "Unknown"
)

var russian = map[string]string{
	msgMenu:            " 1. Добавить задачу\n 2. Удалить задачу\n 3. Получить задачи на указанный день\n 0. Выход",
	msgMenuPrompt:      "Выберите пункт меню: ",
	msgMenuInvalid:     "Выберите пункт меню из списка!",
	msgTitlePrompt:     "Введите название задачи: ",
	msgDescPrompt:      "Введите описание задачи: ",
	msgBlankValue:      "Введено пустое значение",
	msgTooLong:         "Введено слишком длинное значение",
	msgDatePrompt:      "Введите дату задачи в формате %s: ",
	msgDateInvalid:     "Введена дата в неверном формате",
	msgTimePrompt:      "Введите время задачи в формате %s: ",
	msgTimeInvalid:     "Время введено в неверном формате",
	msgTypeHeader:      "Выберите тип задачи: ",
	msgRecurHeader:     "Выберите тип повторяемости задачи: ",
	msgOrdinalPrompt:   "Введите тип: ",
	msgOrdinalInvalid:  "Введён неверный номер типа задачи",
	msgOrdinalUnknown:  "Тип задачи не найден",
	msgTaskAdded:       "Задача %s добавлена",
	msgAllTasks:        "Все задачи",
	msgNoTasks:         "Задач нет",
	msgRemovePrompt:    "Выберите задачу для удаления: ",
	msgRemoveInvalidID: "Введён неверный id задачи",
	msgRemoveNotFound:  "Задача для удаления не найдена",
	msgTaskRemoved:     "Задача %s удалена",
	msgTasksFor:        "Задачи на %s",
	msgTypeWork:        "Рабочая задача",
	msgTypePersonal:    "Персональная задача",
	msgRecurSingle:     "Разовая",
	msgRecurDaily:      "Ежедневная",
	msgRecurWeekly:     "Еженедельная",
	msgRecurMonthly:    "Ежемесячная",
	msgRecurYearly:     "Ежегодная",
	msgUnknownCategory: "Неизвестно",
}

var typeNames = map[domain.TaskType]string{
	domain.TaskTypeWork:     msgTypeWork,
	domain.TaskTypePersonal: msgTypePersonal,
}

var recurrenceNames = map[domain.Recurrence]string{
	domain.RecurrenceSingle:  msgRecurSingle,
	domain.RecurrenceDaily:   msgRecurDaily,
	domain.RecurrenceWeekly:  msgRecurWeekly,
	domain.RecurrenceMonthly: msgRecurMonthly,
	domain.RecurrenceYearly:  msgRecurYearly,
}

// newPrinter returns a printer for locale ("ru" or "en").
func newPrinter(locale string) (*message.Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			return nil, fmt.Errorf("failed to register message %q: %w", key, err)
		}
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, fmt.Errorf("failed to register message %q: %w", key, err)
		}
	}

	return message.NewPrinter(tag, message.Catalog(b)), nil
}

func localizedType(p *message.Printer, t domain.TaskType) string {
	if key, ok := typeNames[t]; ok {
		return p.Sprintf(key)
	}
	return p.Sprintf(msgUnknownCategory)
}

func localizedRecurrence(p *message.Printer, r domain.Recurrence) string {
	if key, ok := recurrenceNames[r]; ok {
		return p.Sprintf(key)
	}
	return p.Sprintf(msgUnknownCategory)
}
