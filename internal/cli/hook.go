package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/eventlog"
	"github.com/persona-dev/persona/internal/hooks"
	"github.com/persona-dev/persona/internal/logging"
	"github.com/persona-dev/persona/internal/state"
)

// hookCmd processes one hook event. Processing errors are logged but the
// exit code stays zero: a statusline must never abort the host's tool
// pipeline. Only an unknown hook type fails, since that means a broken
// installation rather than a bad event.
var hookCmd = &cobra.Command{
	Use:       "hook <type>",
	Short:     "Process a Claude Code hook event from stdin",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"pre-tool", "post-tool", "prompt-submit", "session-end"},
	PreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupQuiet(cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, _ := io.ReadAll(cmd.InOrStdin())

		deps := hooks.Deps{Store: state.NewFileStore("")}
		if journal, err := eventlog.Open(eventlog.DefaultPath()); err == nil {
			deps.Journal = journal
			defer journal.Close()
		} else {
			slog.Debug("event journal unavailable", "error", err)
		}

		var err error
		switch args[0] {
		case "pre-tool", "post-tool":
			err = hooks.HandleToolUse(deps, data)
		case "prompt-submit":
			err = hooks.HandlePromptSubmit(deps, data)
		case "session-end":
			err = hooks.HandleSessionEnd(deps, data)
		default:
			return fmt.Errorf("unknown hook type %q", args[0])
		}
		if err != nil {
			slog.Error("hook processing failed", "type", args[0], "error", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
