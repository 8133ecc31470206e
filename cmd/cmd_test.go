package cmd

import (
	"testing"
	"time"

	"github.com/veldrin/prisma-cli/internal/config"
)

func TestMatchPreset(t *testing.T) {
	presets := config.DefaultConfig().Presets.GetPresets()

	tests := []struct {
		query   string
		want    string
		wantErr bool
	}{
		{"Focus", "Focus", false},
		{"focus", "Focus", false},
		{"foc", "Focus", false},
		{"deep", "Deep", false},
		{"dp", "Deep", false},
		{"sh", "Short", false},
		{"xyz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			preset, err := matchPreset(tt.query, presets)
			if tt.wantErr {
				if err == nil {
					t.Errorf("matchPreset(%q) expected error, got %v", tt.query, preset)
				}
				return
			}
			if err != nil {
				t.Fatalf("matchPreset(%q): %v", tt.query, err)
			}
			if preset.Name != tt.want {
				t.Errorf("matchPreset(%q) = %v, want %v", tt.query, preset.Name, tt.want)
			}
		})
	}
}

func TestFormatStatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25m"},
		{90 * time.Minute, "1h30m"},
		{2 * time.Hour, "2h00m"},
		{45 * time.Second, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatStatDuration(tt.d); got != tt.want {
				t.Errorf("formatStatDuration(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	wanted := []string{"start", "status", "stats", "config", "mcp", "version"}
	for _, name := range wanted {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
