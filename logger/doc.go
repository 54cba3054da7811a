// Package logger builds structured slog loggers with environment presets
// (development text output, production JSON) and a few attribute helpers
// that are safe on zero values.
package logger
