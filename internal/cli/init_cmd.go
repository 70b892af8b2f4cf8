package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/fileio"
	"github.com/persona-dev/persona/internal/icons"
	"github.com/persona-dev/persona/internal/settings"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the statusline and hooks into Claude Code",
	Long: `Init wires persona into Claude Code's settings.json: the statusline
command plus the hook entries that track tool use. Existing settings are
backed up first and foreign hooks are preserved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		binary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating persona binary: %w", err)
		}

		path, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		file, err := settings.Load(path)
		if err != nil {
			return err
		}

		backup, err := file.Backup()
		if err != nil {
			return err
		}
		if backup != "" {
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("Backed up settings to "+backup))
		}

		if err := file.Install(binary); err != nil {
			return err
		}
		if err := file.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		// Seed the preferences file so `config show` has something to
		// show, but never clobber an existing one.
		if cfgPath, err := config.Path(); err == nil && !fileio.Exists(cfgPath) {
			if err := config.DefaultConfig().Save(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render(icons.Warning+" Could not write default preferences: "+err.Error()))
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render(icons.Check+" Statusline and hooks installed"))
		fmt.Fprintln(out, dimStyle.Render("A Nerd Font is required for the statusline icons."))
		fmt.Fprintln(out, dimStyle.Render("Restart Claude Code to pick up the new settings."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
