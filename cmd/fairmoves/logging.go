package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// setupLogger returns a logger for diagnostics. It never writes to stdout,
// which carries the game itself.
func setupLogger(w io.Writer, g *Globals) *log.Logger {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	if g.Debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "fairmoves",
		Level:           level,
	})
}
