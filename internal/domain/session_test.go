package domain

import (
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	s := NewSession(25, ModePrisma)

	if s.Phase != PhaseSetup {
		t.Errorf("Phase = %v, want %v", s.Phase, PhaseSetup)
	}
	if s.Mode != ModePrisma {
		t.Errorf("Mode = %v, want %v", s.Mode, ModePrisma)
	}
	if s.TargetSeconds != 1500 {
		t.Errorf("TargetSeconds = %d, want 1500", s.TargetSeconds)
	}
	if s.CycleCount != 0 {
		t.Errorf("CycleCount = %d, want 0 on a fresh process", s.CycleCount)
	}
}

func TestNewSession_InvalidModeDefaultsToPrisma(t *testing.T) {
	s := NewSession(25, Mode("bogus"))
	if s.Mode != ModePrisma {
		t.Errorf("Mode = %v, want %v", s.Mode, ModePrisma)
	}
}

func TestClampTarget(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 60},
		{59, 60},
		{60, 60},
		{1500, 1500},
		{7200, 7200},
		{7201, 7200},
		{-100, 60},
	}

	for _, tt := range tests {
		if got := ClampTarget(tt.seconds); got != tt.want {
			t.Errorf("ClampTarget(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"classic", ModeClassic, false},
		{"prisma", ModePrisma, false},
		{"pomodoro", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ValidateMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		target int
		want   bool
	}{
		{"exactly 80 percent", 480, 600, true},
		{"just under 80 percent", 479, 600, false},
		{"full target", 600, 600, true},
		{"over target", 700, 600, true},
		{"70 percent", 420, 600, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.total, tt.target); got != tt.want {
				t.Errorf("Qualifies(%d, %d) = %v, want %v", tt.total, tt.target, got, tt.want)
			}
		})
	}
}

func TestSession_TotalFocusMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{1, 1},
		{60, 1},
		{61, 2},
		{1500, 25},
		{1501, 26},
	}

	for _, tt := range tests {
		s := Session{TotalFocusSeconds: tt.seconds}
		if got := s.TotalFocusMinutes(); got != tt.want {
			t.Errorf("TotalFocusMinutes() with %ds = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestSession_Progress(t *testing.T) {
	s := Session{TargetSeconds: 600, RemainingSeconds: 450}
	if got := s.Progress(); got != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", got)
	}

	s = Session{TargetSeconds: 0}
	if got := s.Progress(); got != 0 {
		t.Errorf("Progress() with zero target = %v, want 0", got)
	}
}

func TestSession_Ticking(t *testing.T) {
	ticking := []Phase{PhaseRunning, PhaseFlow, PhaseBreak}
	idle := []Phase{PhaseSetup, PhasePaused, PhaseSummary, PhaseBreakEnd}

	for _, p := range ticking {
		if !(Session{Phase: p}).Ticking() {
			t.Errorf("Ticking() in %v = false, want true", p)
		}
	}
	for _, p := range idle {
		if (Session{Phase: p}).Ticking() {
			t.Errorf("Ticking() in %v = true, want false", p)
		}
	}
}

func TestSession_TargetDuration(t *testing.T) {
	s := Session{TargetSeconds: 1500}
	if got := s.TargetDuration(); got != 25*time.Minute {
		t.Errorf("TargetDuration() = %v, want 25m", got)
	}
}

func TestGetPhaseLabel(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseSetup, "Setup"},
		{PhaseRunning, "Running"},
		{PhasePaused, "Paused"},
		{PhaseFlow, "Flow"},
		{PhaseSummary, "Summary"},
		{PhaseBreak, "Break"},
		{PhaseBreakEnd, "Break Over"},
		{Phase("unknown"), "Unknown"},
	}

	for _, tt := range tests {
		if got := GetPhaseLabel(tt.phase); got != tt.want {
			t.Errorf("GetPhaseLabel(%v) = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
