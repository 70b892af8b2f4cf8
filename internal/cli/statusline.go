package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/logging"
	"github.com/persona-dev/persona/internal/state"
	"github.com/persona-dev/persona/internal/statusline"
	"github.com/persona-dev/persona/internal/theme"
	"github.com/persona-dev/persona/internal/version"
)

// statuslineCmd renders one line and exits. Claude Code runs this on
// every refresh with a JSON request on stdin, so it must stay fast, never
// touch the network, and never fail — worst case it renders the default
// state.
var statuslineCmd = &cobra.Command{
	Use:   "statusline",
	Short: "Render the statusline from a JSON request on stdin",
	Args:  cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupQuiet(cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, _ := io.ReadAll(cmd.InOrStdin())
		in := statusline.ParseInput(data)

		cfg := config.Load()
		st, _ := state.NewFileStore("").Load(in.SessionID)

		styles := theme.PlainStyles()
		if cfg.UseColors {
			palette := theme.Load(cfg.Theme, config.ThemePath())
			styles = theme.NewStyles(palette, cmd.OutOrStdout())
		}

		ctx := statusline.Context{
			Config:     cfg,
			Styles:     styles,
			ModelName:  in.ModelName,
			CurrentDir: in.CurrentDir,
		}
		if cfg.ShowUpdate {
			ctx.UpdateVersion = version.CachedLatest()
		}

		fmt.Fprint(cmd.OutOrStdout(), statusline.Build(st, ctx))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statuslineCmd)
}
