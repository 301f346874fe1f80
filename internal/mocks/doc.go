// Package mocks provides testify-based mock implementations of the store
// interfaces for unit tests of higher layers.
package mocks
