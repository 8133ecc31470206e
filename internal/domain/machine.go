package domain

// Event is a trigger fed to the session state machine: either a user
// action or the one-second tick.
type Event string

const (
	EventStart      Event = "start"
	EventTick       Event = "tick"
	EventPause      Event = "pause"
	EventResume     Event = "resume"
	EventStop       Event = "stop"
	EventBreak      Event = "break"
	EventFinish     Event = "finish"
	EventSkipBreak  Event = "skip_break"
	EventContinue   Event = "continue"
	EventNewSession Event = "new_session"
)

// EffectKind identifies a side effect requested by a transition.
type EffectKind string

const (
	// EffectStartTick starts the one-second clock.
	EffectStartTick EffectKind = "start_tick"
	// EffectStopTick cancels the one-second clock. It is always first
	// in the effect list so the clock is dead before anything else runs.
	EffectStopTick EffectKind = "stop_tick"
	// EffectSignalCompletion fires the audio/visual completion signal
	// (Classic-mode natural completion only). Best effort.
	EffectSignalCompletion EffectKind = "signal_completion"
	// EffectSignalBreakOver fires when the break countdown reaches zero.
	EffectSignalBreakOver EffectKind = "signal_break_over"
	// EffectReportFinished invokes the host completion callback with
	// Minutes set to the ceiling of total focus seconds over 60.
	EffectReportFinished EffectKind = "report_finished"
)

// Effect is a side effect the executor must perform after a transition.
// Transitions return effects explicitly instead of having the executor
// diff states.
type Effect struct {
	Kind    EffectKind
	Minutes int
}

// Apply is the pure transition function of the session state machine.
// It never mutates its input and performs no I/O; the caller executes
// the returned effects in order after installing the new state.
//
// Unknown (phase, event) pairs are no-ops, which makes stale ticks
// harmless: a tick that arrives after the phase changed does nothing.
func Apply(s Session, ev Event) (Session, []Effect) {
	switch s.Phase {

	case PhaseSetup:
		if ev == EventStart {
			s.Phase = PhaseRunning
			s.TargetSeconds = ClampTarget(s.TargetSeconds)
			s.RemainingSeconds = s.TargetSeconds
			s.OvertimeSeconds = 0
			s.TotalFocusSeconds = 0
			return s, []Effect{{Kind: EffectStartTick}}
		}

	case PhaseRunning:
		switch ev {
		case EventTick:
			s.RemainingSeconds--
			if s.RemainingSeconds > 0 {
				return s, nil
			}
			s.RemainingSeconds = 0
			if s.Mode == ModeClassic {
				s.Phase = PhaseSummary
				s.TotalFocusSeconds = s.TargetSeconds
				s.CycleCount++
				return s, []Effect{{Kind: EffectStopTick}, {Kind: EffectSignalCompletion}}
			}
			s.Phase = PhaseFlow
			s.OvertimeSeconds = 0
			return s, nil
		case EventPause:
			s.Phase = PhasePaused
			return s, []Effect{{Kind: EffectStopTick}}
		case EventStop:
			return stopToSummary(s, []Effect{{Kind: EffectStopTick}})
		}

	case PhasePaused:
		switch ev {
		case EventResume:
			s.Phase = PhaseRunning
			return s, []Effect{{Kind: EffectStartTick}}
		case EventStop:
			return stopToSummary(s, nil)
		}

	case PhaseFlow:
		switch ev {
		case EventTick:
			s.OvertimeSeconds++
			return s, nil
		case EventStop:
			return stopToSummary(s, []Effect{{Kind: EffectStopTick}})
		}

	case PhaseSummary:
		switch ev {
		case EventBreak:
			s.SavedTargetSeconds = s.TargetSeconds
			s.SavedMode = s.Mode
			s.BreakDurationSeconds = BreakSeconds(s.CycleCount, s.TargetSeconds)
			s.BreakRemainingSeconds = s.BreakDurationSeconds
			s.Phase = PhaseBreak
			return s, []Effect{{Kind: EffectStartTick}}
		case EventFinish:
			minutes := s.TotalFocusMinutes()
			return resetToSetup(s), []Effect{{Kind: EffectReportFinished, Minutes: minutes}}
		}

	case PhaseBreak:
		switch ev {
		case EventTick:
			s.BreakRemainingSeconds--
			if s.BreakRemainingSeconds > 0 {
				return s, nil
			}
			s.BreakRemainingSeconds = 0
			s.Phase = PhaseBreakEnd
			return s, []Effect{{Kind: EffectStopTick}, {Kind: EffectSignalBreakOver}}
		case EventSkipBreak:
			return resetToSetup(s), []Effect{{Kind: EffectStopTick}}
		}

	case PhaseBreakEnd:
		switch ev {
		case EventContinue:
			s.TargetSeconds = s.SavedTargetSeconds
			s.Mode = s.SavedMode
			s.RemainingSeconds = s.TargetSeconds
			s.OvertimeSeconds = 0
			s.TotalFocusSeconds = 0
			s.BreakDurationSeconds = 0
			s.BreakRemainingSeconds = 0
			if s.CycleCount >= LongBreakCycles {
				s.CycleCount = 0
			}
			s.Phase = PhaseRunning
			return s, []Effect{{Kind: EffectStartTick}}
		case EventNewSession:
			return resetToSetup(s), nil
		}
	}

	return s, nil
}

// stopToSummary ends the session from Running, Paused or Flow and
// applies the cycle qualification rule. Sessions that reached overtime
// always qualify because the target fully elapsed first.
func stopToSummary(s Session, effects []Effect) (Session, []Effect) {
	s.TotalFocusSeconds = s.TargetSeconds - s.RemainingSeconds + s.OvertimeSeconds
	if Qualifies(s.TotalFocusSeconds, s.TargetSeconds) {
		s.CycleCount++
	}
	s.Phase = PhaseSummary
	return s, effects
}

// resetToSetup returns the session to Setup with all timing fields
// cleared. The cycle count survives: it resets only on process start
// and on continuation after a long break.
func resetToSetup(s Session) Session {
	return Session{
		Phase:         PhaseSetup,
		Mode:          s.Mode,
		TargetSeconds: s.TargetSeconds,
		CycleCount:    s.CycleCount,
	}
}
