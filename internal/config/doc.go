// Package config loads ffstats settings from FFSTATS_* environment variables.
// Command-line flags override these values.
package config
