package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultMinutes != 25 {
		t.Errorf("DefaultMinutes = %d, want 25", cfg.DefaultMinutes)
	}
	if cfg.Mode != "prisma" {
		t.Errorf("Mode = %q, want prisma", cfg.Mode)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should be enabled by default")
	}
}

func TestDefaultConfig_Presets(t *testing.T) {
	cfg := DefaultConfig()
	presets := cfg.Presets.GetPresets()

	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	if presets[0].Name != "Focus" {
		t.Errorf("expected preset1 name 'Focus', got %q", presets[0].Name)
	}
	if presets[0].Minutes != 25 {
		t.Errorf("expected preset1 25 minutes, got %d", presets[0].Minutes)
	}
	if presets[2].Minutes != 50 {
		t.Errorf("expected preset3 50 minutes, got %d", presets[2].Minutes)
	}
}

func TestClampMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{25, 25},
		{120, 120},
		{121, 120},
		{1000, 120},
	}

	for _, tt := range tests {
		if got := ClampMinutes(tt.minutes); got != tt.want {
			t.Errorf("ClampMinutes(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}
