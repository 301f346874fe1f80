// Package service provides application-level operations on the schedule.
// It sits between the front end and the store, adding logging and error
// context while leaving occurrence rules to the domain package.
package service
