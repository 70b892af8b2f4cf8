package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/persona-dev/persona/internal/eventlog"
)

var (
	historySession string
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tool events from the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := eventlog.Open(eventlog.DefaultPath())
		if err != nil {
			return fmt.Errorf("opening event journal: %w", err)
		}
		defer journal.Close()

		entries, err := journal.Query(cmd.Context(), eventlog.QueryOpts{
			SessionID: historySession,
			Limit:     historyLimit,
		})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded events.")
			return nil
		}

		headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cellStyle := lipgloss.NewStyle().Padding(0, 1)
		errStyle := cellStyle.Foreground(lipgloss.Color("9"))

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
			Headers("TIME", "SESSION", "TOOL", "ACTIVITY", "JOB", "ERR").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 5 && entries[row].IsError {
					return errStyle
				}
				return cellStyle
			})

		for _, e := range entries {
			errMark := ""
			if e.IsError {
				errMark = "x"
			}
			t.Row(
				e.CreatedAt.Local().Format("15:04:05"),
				shorten(e.SessionID, 12),
				e.Tool,
				e.Activity,
				e.Job,
				errMark,
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	historyCmd.Flags().StringVar(&historySession, "session", "", "Only show events for this session id")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of events to show")
	rootCmd.AddCommand(historyCmd)
}
