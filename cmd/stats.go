package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsDays int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus history for recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := app.status.RecentRecords(cmd.Context(), statsDays)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(records) == 0 {
			fmt.Printf("No finished sessions in the last %d day(s).\n", statsDays)
			return nil
		}

		var total time.Duration
		fmt.Printf("Finished sessions (last %d day(s)):\n\n", statsDays)
		for _, r := range records {
			line := fmt.Sprintf("  %s  %5s focus", r.EndedAt.Format("Jan 02 15:04"), formatStatDuration(r.FocusDuration()))
			if r.OvertimeSeconds > 0 {
				line += fmt.Sprintf(" (+%dm flow)", r.OvertimeSeconds/60)
			}
			if r.GitBranch != "" {
				line += fmt.Sprintf("  [%s]", r.GitBranch)
			}
			fmt.Println(line)
			total += r.FocusDuration()
		}

		fmt.Printf("\nTotal: %d sessions, %s of focus\n", len(records), formatStatDuration(total))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "Number of days to look back")
}

// formatStatDuration renders a duration as h:mm or m:ss for short spans.
func formatStatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total >= 3600 {
		return fmt.Sprintf("%dh%02dm", total/3600, (total%3600)/60)
	}
	return fmt.Sprintf("%dm", total/60)
}
