// Package memory provides process-local implementations of the store
// interfaces. Nothing is persisted: the data lives as long as the process.
//
// Implementations here are meant for one goroutine at a time and carry no locks.
package memory
