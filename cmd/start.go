package cmd

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/veldrin/prisma-cli/internal/config"
)

var (
	startMinutes int
	startPreset  string
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a focus session immediately",
	Long: `Start a focus session without going through the setup screen.
The duration comes from --minutes, a fuzzy-matched --preset name, or
the configured default, in that order of precedence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if startMinutes != 0 && (startMinutes < 1 || startMinutes > 120) {
			return fmt.Errorf("minutes must be between 1 and 120, got %d", startMinutes)
		}

		minutes := startMinutes
		if minutes == 0 && startPreset != "" {
			preset, err := matchPreset(startPreset, app.config.Presets.GetPresets())
			if err != nil {
				return err
			}
			minutes = preset.Minutes
			fmt.Printf("Preset %q: %d minutes\n", preset.Name, preset.Minutes)
		}

		if minutes != 0 {
			if err := app.controller.SetTarget(minutes); err != nil {
				return fmt.Errorf("failed to set target: %w", err)
			}
		}

		return runTimer(cmd.Context(), true)
	},
}

func init() {
	startCmd.Flags().IntVarP(&startMinutes, "minutes", "t", 0, "Target duration in minutes (1-120)")
	startCmd.Flags().StringVarP(&startPreset, "preset", "p", "", "Preset name (fuzzy matched)")
}

// matchPreset fuzzy-matches a query against the configured preset names.
func matchPreset(query string, presets []config.Preset) (config.Preset, error) {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return config.Preset{}, fmt.Errorf("no preset matches %q (have: %s)", query, strings.Join(names, ", "))
	}
	return presets[matches[0].Index], nil
}
