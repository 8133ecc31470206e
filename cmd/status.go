package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veldrin/prisma-cli/internal/domain"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and today's focus stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := app.status.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}

		session := status.Session
		if session.Phase == domain.PhaseSetup {
			// Sessions live only inside a running prisma process; a
			// standalone status call always sees a fresh Setup record.
			fmt.Println("No active session.")
		} else {
			fmt.Printf("Phase: %s (%s)\n", domain.GetPhaseLabel(session.Phase), domain.GetModeLabel(session.Mode))
			fmt.Printf("   Target: %s\n", session.TargetDuration())
			fmt.Printf("   Remaining: %02d:%02d\n", session.RemainingSeconds/60, session.RemainingSeconds%60)
			if session.OvertimeSeconds > 0 {
				fmt.Printf("   Overtime: %02d:%02d\n", session.OvertimeSeconds/60, session.OvertimeSeconds%60)
			}
			fmt.Printf("   Cycles: %d\n", session.CycleCount)
		}

		fmt.Printf("\nToday:\n")
		fmt.Printf("   Sessions: %d\n", status.Today.Sessions)
		fmt.Printf("   Focus time: %s\n", status.Today.TotalFocusTime)

		return nil
	},
}
