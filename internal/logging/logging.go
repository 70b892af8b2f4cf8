package logging

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Setup initializes the global slog logger using charmbracelet/log as the backend.
// If stderr is a terminal, uses colored text format. Otherwise, uses JSON format.
func Setup(verbose bool) {
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	})

	if verbose {
		handler.SetLevel(charmlog.DebugLevel)
	} else {
		handler.SetLevel(charmlog.InfoLevel)
	}

	// Use plain format for non-TTY output
	if !isTerminal() {
		handler.SetFormatter(charmlog.JSONFormatter)
	}

	slog.SetDefault(slog.New(handler))
}

// SetupQuiet routes all logging to the given writer at error level only.
// The statusline and hook entry points use this so that diagnostics never
// leak into the stdout/stderr stream Claude Code is reading, unless the
// PERSONA_DEBUG environment variable is set.
func SetupQuiet(w io.Writer) {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
	})
	if os.Getenv("PERSONA_DEBUG") != "" {
		handler.SetLevel(charmlog.DebugLevel)
	} else {
		handler.SetLevel(charmlog.ErrorLevel)
	}
	handler.SetFormatter(charmlog.JSONFormatter)
	slog.SetDefault(slog.New(handler))
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
