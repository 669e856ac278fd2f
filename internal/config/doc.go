// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merges the
// sources with first-non-zero-wins semantics, fills the remaining gaps
// with built-in defaults, and validates the result.
package config
