package load

import (
	"fmt"

	"cycling-coach/internal/workout"
)

// Duration mismatch tolerance between declared and computed totals
const durationToleranceMinutes = 5

// Validate runs structural checks on a session and returns human-readable
// issues. Issues are advisory: callers decide whether any of them is
// fatal for their use.
func Validate(w *workout.Workout) []string {
	var issues []string

	actual := w.ActualDuration()
	diff := actual - w.TotalDuration
	if diff < 0 {
		diff = -diff
	}
	if diff > durationToleranceMinutes {
		issues = append(issues, fmt.Sprintf(
			"inconsistent duration: computed %dmin vs declared %dmin", actual, w.TotalDuration))
	}

	for _, s := range w.Segments {
		if s.PowerLow < 0.4 || s.PowerHigh > 3.0 {
			issues = append(issues, fmt.Sprintf(
				"segment power range out of bounds: [%.2f, %.2f]", s.PowerLow, s.PowerHigh))
		}
		if s.PowerLow >= s.PowerHigh {
			issues = append(issues, fmt.Sprintf(
				"segment power min >= max: [%.2f, %.2f]", s.PowerLow, s.PowerHigh))
		}
	}

	for _, iv := range w.Intervals {
		if iv.WorkPowerLow < 0.4 || iv.WorkPowerHigh > 3.0 {
			issues = append(issues, fmt.Sprintf(
				"work power range out of bounds: [%.2f, %.2f]", iv.WorkPowerLow, iv.WorkPowerHigh))
		}
		if iv.RestPowerLow < 0.3 || iv.RestPowerHigh > 1.0 {
			issues = append(issues, fmt.Sprintf(
				"rest power range out of bounds: [%.2f, %.2f]", iv.RestPowerLow, iv.RestPowerHigh))
		}
	}

	if len(w.Segments) == 0 {
		issues = append(issues, "no segments defined")
	}

	if w.TotalDuration > 30 {
		hasWarmup := false
		hasCooldown := false
		for _, s := range w.Segments {
			switch s.Type {
			case workout.SegmentWarmup:
				hasWarmup = true
			case workout.SegmentCooldown:
				hasCooldown = true
			}
		}
		if !hasWarmup {
			issues = append(issues, "warm-up recommended for sessions over 30min")
		}
		if !hasCooldown {
			issues = append(issues, "cooldown recommended for sessions over 30min")
		}
	}

	return issues
}
