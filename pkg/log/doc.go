// Package log provides a structured event trace of one authentication
// attempt.
//
// This package defines the Logger interface and Event types for capturing
// what the authentication engine saw and did: records observed on the
// discovery streams, pair and connect attempts with their outcome, and
// state transitions. It is separate from operational logging (slog) - the
// event trace is a complete machine-readable record for debugging why a
// device did or did not connect.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For bug reports: write to binary file
//	logger, _ := log.NewFileLogger("/tmp/wac.wlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with integer keys and the .wlog extension.
// The "wac log" command provides viewing and statistics.
package log
