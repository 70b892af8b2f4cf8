package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/icons"
	"github.com/persona-dev/persona/internal/version"
)

var updateForce bool

// checkUpdateCmd is the only place besides nothing at all that talks to
// the network: the statusline itself just reads the cache this fills.
var checkUpdateCmd = &cobra.Command{
	Use:   "check-update",
	Short: "Check GitHub for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		latest, newer, err := version.Check(cmd.Context(), updateForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if newer {
			fmt.Fprintln(out, warnStyle.Render(icons.UpArrow+" v"+latest+" is available (running "+version.Version+")"))
			return nil
		}
		fmt.Fprintln(out, successStyle.Render(icons.Check+" Up to date ("+version.Version+")"))
		return nil
	},
}

func init() {
	checkUpdateCmd.Flags().BoolVar(&updateForce, "force", false, "Bypass the cache and query GitHub")
	rootCmd.AddCommand(checkUpdateCmd)
}
