package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/eventlog"
	"github.com/persona-dev/persona/internal/icons"
	"github.com/persona-dev/persona/internal/settings"
)

var uninstallPurge bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the statusline and hooks from Claude Code",
	Long: `Uninstall removes persona's entries from settings.json and deletes the
per-session state files. Preferences and the event journal survive unless
--purge is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		file, err := settings.Load(path)
		if err != nil {
			return err
		}
		if err := file.Remove(); err != nil {
			return err
		}
		if err := file.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		removeSessionFiles(cmd)

		if uninstallPurge {
			if cfgPath, err := config.Path(); err == nil {
				os.Remove(cfgPath)
			}
			os.Remove(config.ThemePath())
			if journal := eventlog.DefaultPath(); journal != "" {
				os.Remove(journal)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(icons.Check+" Persona removed from Claude Code"))
		return nil
	},
}

// removeSessionFiles clears the per-session state from the temp
// directory. Best-effort: a leftover file only means a stale face on a
// dead session.
func removeSessionFiles(cmd *cobra.Command) {
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "persona_state_*.json"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render(icons.Warning+" Could not remove "+m))
		}
	}
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallPurge, "purge", false, "Also delete preferences, theme overrides, and the event journal")
	rootCmd.AddCommand(uninstallCmd)
}
