package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/icons"
	"github.com/persona-dev/persona/internal/settings"
	"github.com/persona-dev/persona/internal/state"
	"github.com/persona-dev/persona/internal/statusline"
	"github.com/persona-dev/persona/internal/theme"
	"github.com/persona-dev/persona/internal/version"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installation and configuration status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "persona "+version.Version)

		path, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		file, err := settings.Load(path)
		switch {
		case err != nil:
			fmt.Fprintln(out, errorStyle.Render(icons.Error+" Cannot read "+path+": "+err.Error()))
		case file.Installed():
			fmt.Fprintln(out, successStyle.Render(icons.Check+" Installed in "+path))
		default:
			fmt.Fprintln(out, warnStyle.Render(icons.Warning+" Not installed — run `persona init`"))
		}

		cfg := config.Load()
		if cfgPath, err := config.Path(); err == nil {
			fmt.Fprintln(out, dimStyle.Render("Preferences: "+cfgPath+" (theme: "+cfg.Theme+")"))
		}
		fmt.Fprintln(out, dimStyle.Render("Session state: "+os.TempDir()))

		if latest := version.CachedLatest(); latest != "" {
			fmt.Fprintln(out, warnStyle.Render(icons.UpArrow+" Update available: v"+latest))
		}

		// Render a sample line so font/theme problems show up here
		// instead of in Claude Code.
		sample := state.SessionState{
			SessionID:          "sample",
			Activity:           state.ActivityEditing,
			Personality:        "ʕ•ᴥ•ʔ Code Wizard",
			CurrentJob:         "main.go",
			ConsecutiveActions: 3,
		}
		styles := theme.PlainStyles()
		if cfg.UseColors {
			styles = theme.NewStyles(theme.Load(cfg.Theme, config.ThemePath()), out)
		}
		fmt.Fprintln(out, dimStyle.Render("Preview:"))
		fmt.Fprintln(out, statusline.Build(sample, statusline.Context{
			Config:    cfg,
			Styles:    styles,
			ModelName: "Claude",
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
