package domain

import "math"

const (
	shortBreakRatio = 0.2
	longBreakRatio  = 0.6
)

// BreakRatio returns the break-to-focus ratio for the given cycle
// count: 20% normally, 60% once four cycles have accumulated.
func BreakRatio(cycleCount int) float64 {
	if cycleCount >= LongBreakCycles {
		return longBreakRatio
	}
	return shortBreakRatio
}

// BreakSeconds derives the break duration from the cycle count and
// the focus duration just completed. The ratio is applied to the
// target expressed in minutes, rounded half-up, then converted back
// to seconds. The same formula covers every target, preset or custom.
func BreakSeconds(cycleCount, targetSeconds int) int {
	minutes := math.Round(float64(targetSeconds) / 60 * BreakRatio(cycleCount))
	return int(minutes) * 60
}
