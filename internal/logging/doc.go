// Package logging assembles the structured slog loggers used across the
// linkboard CLI.
//
// It centralizes level and format plumbing (console text or JSON, always to
// stderr so rendered output stays clean on stdout), exposes Attr aliases so
// callers do not import slog directly, and provides a no-op logger for tests
// and wiring code that cannot fail. Browse sessions are tagged with a
// generated session ID so one invocation's lines group together in logs.
package logging
