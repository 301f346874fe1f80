// Package console implements the interactive text front end of the scheduler:
// a numbered menu, prompts that repeat until the input is valid, and
// localized rendering of tasks. It talks to the schedule only through
// service.ScheduleService.
package console
