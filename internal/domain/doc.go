// Package domain contains the core entities of the scheduler: tasks, their
// categories and the recurrence rules that decide on which calendar dates a
// task is due. It is independent of storage and of the console front end.
package domain
