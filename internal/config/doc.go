// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings the console and logger need while keeping
// configuration details separate from the schedule engine.
package config
