// Package logging configures log/slog for the appdirs CLI.
//
// It provides a TTY-aware text handler that colorizes levels and attribute
// keys when the output terminal supports it, a JSON handler for machine
// consumption, and helpers for quiet mode and tests.
//
//	logger := logging.New(logging.Config{Level: slog.LevelDebug})
//	logger.Debug("resolved", "kind", "user_data", "dir", dir)
//
// Color output is disabled when the writer is not a terminal, when NO_COLOR
// is set, or when TERM is "dumb". Use [ForTest] in tests to route log
// output through the testing framework, and [NewDiscard] for quiet mode.
package logging
