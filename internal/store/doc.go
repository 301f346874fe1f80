// Package store defines the contract for keeping tasks. The interface
// abstracts where tasks live from the application's core logic, allowing the
// schedule engine to stay independent of any storage mechanism.
package store
