package load

import (
	"cycling-coach/internal/workout"
)

// DefaultHighIntensityThreshold is the fractional-FTP floor of Zone 4.
// Work at or above it counts as high-intensity time.
const DefaultHighIntensityThreshold = 0.91

// StressScore computes the training stress score for a set of segments
// and repeated intervals: duration in hours times the square of the mean
// fractional power, times 100. A one-hour effort at exactly FTP scores
// 100. Intensities are already FTP-relative, so the absolute threshold
// power cancels out of the formula; ftp is accepted for contract parity
// with the watt-producing calls.
func StressScore(segments []workout.Segment, intervals []workout.RepeatedInterval, ftp int) float64 {
	_ = ftp

	total := 0.0

	for _, s := range segments {
		avg := (s.PowerLow + s.PowerHigh) / 2
		hours := float64(s.DurationMinutes) / 60
		total += hours * avg * avg * 100
	}

	for _, iv := range intervals {
		workAvg := (iv.WorkPowerLow + iv.WorkPowerHigh) / 2
		workHours := float64(iv.WorkDuration*iv.Repetitions) / 60
		total += workHours * workAvg * workAvg * 100

		if iv.RestDuration > 0 {
			restAvg := (iv.RestPowerLow + iv.RestPowerHigh) / 2
			restHours := float64(iv.RestDuration*iv.Repetitions) / 60
			total += restHours * restAvg * restAvg * 100
		}
	}

	return total
}

// WorkoutStress computes the stress score of a complete session
func WorkoutStress(w *workout.Workout) float64 {
	return StressScore(w.Segments, w.Intervals, w.FTP)
}

// IntensityFactor returns the time-weighted mean fractional power of a
// session, or 0 for a session with no duration.
func IntensityFactor(w *workout.Workout) float64 {
	weighted := 0.0
	duration := 0.0

	for _, s := range w.Segments {
		avg := (s.PowerLow + s.PowerHigh) / 2
		d := float64(s.DurationMinutes)
		weighted += avg * d
		duration += d
	}

	for _, iv := range w.Intervals {
		workAvg := (iv.WorkPowerLow + iv.WorkPowerHigh) / 2
		workDur := float64(iv.WorkDuration * iv.Repetitions)
		weighted += workAvg * workDur
		duration += workDur

		if iv.RestDuration > 0 {
			restAvg := (iv.RestPowerLow + iv.RestPowerHigh) / 2
			restDur := float64(iv.RestDuration * iv.Repetitions)
			weighted += restAvg * restDur
			duration += restDur
		}
	}

	if duration == 0 {
		return 0
	}
	return weighted / duration
}

// HighIntensityMinutes returns the minutes spent in segments or work
// intervals whose lower power bound is at or above threshold (Zone 4 and
// up at the default).
func HighIntensityMinutes(w *workout.Workout, threshold float64) int {
	minutes := 0

	for _, s := range w.Segments {
		if s.PowerLow >= threshold {
			minutes += s.DurationMinutes
		}
	}
	for _, iv := range w.Intervals {
		if iv.WorkPowerLow >= threshold {
			minutes += iv.WorkDuration * iv.Repetitions
		}
	}

	return minutes
}
