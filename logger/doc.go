// Package logger wraps zerolog with a small configurable surface: level,
// format (json or console), and output destination. Loggers are explicit
// values passed to the code that logs; there is no package-level singleton.
package logger
