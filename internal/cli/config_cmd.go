package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/icons"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage statusline preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Load(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one preference",
	Long: `Set a preference by its key. Boolean keys take true/false.

Examples:
  persona config set show_model false
  persona config set separator "|"
  persona config set theme light`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(icons.Check+" "+args[0]+" = "+args[1]))
		return nil
	},
}

// configDisplayCmd is the interactive segment picker, for people who would
// rather not learn the key names.
var configDisplayCmd = &cobra.Command{
	Use:   "display",
	Short: "Interactively choose which segments appear",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		toggles := []struct {
			label string
			field *bool
		}{
			{"Personality", &cfg.ShowPersonality},
			{"Activity", &cfg.ShowActivity},
			{"Current job", &cfg.ShowCurrentJob},
			{"Working directory", &cfg.ShowCurrentDir},
			{"Error indicator", &cfg.ShowErrorIndicator},
			{"Model", &cfg.ShowModel},
			{"Update available", &cfg.ShowUpdate},
			{"Icons", &cfg.UseIcons},
			{"Colors", &cfg.UseColors},
		}

		options := make([]huh.Option[int], len(toggles))
		for i, tg := range toggles {
			options[i] = huh.NewOption(tg.label, i).Selected(*tg.field)
		}

		var selected []int
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[int]().
					Title("Statusline segments").
					Description("Space toggles, enter confirms").
					Options(options...).
					Value(&selected),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}

		for _, tg := range toggles {
			*tg.field = false
		}
		for _, i := range selected {
			*toggles[i].field = true
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(icons.Check+" Preferences saved"))
		return nil
	},
}

var configThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Interactively pick a color theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Statusline theme").
					Options(
						huh.NewOption("Dark (default)", "dark"),
						huh.NewOption("Light", "light"),
					).
					Value(&cfg.Theme),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(icons.Check+" Theme set to "+cfg.Theme))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDisplayCmd)
	configCmd.AddCommand(configThemeCmd)
	rootCmd.AddCommand(configCmd)
}
