package cli

import (
	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/logging"
)

var (
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "persona",
		Short: "Dynamic kaomoji statusline for Claude Code",
		Long: `Persona gives Claude Code a face. It watches tool-use events through
hooks, infers what the assistant is doing, and renders a statusline with a
mood that shifts with activity, streaks, and errors.`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
