package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the structured logger for a command.
// An empty path discards output and "-" writes to stderr.
// The returned func closes the log file, if one was opened.
func newLogger(path string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	cleanup := func() {}

	switch path {
	case "":
	case "-":
		w = os.Stderr
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w = f
		cleanup = func() { f.Close() } //nolint:errcheck // Best-effort close on exit
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup, nil
}
