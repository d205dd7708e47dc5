package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cycling-coach/internal/load"
	"cycling-coach/internal/workout"
)

// SessionStep is one step of an exported session with powers resolved
// to watts at the session's FTP.
type SessionStep struct {
	Step            int     `json:"step"`
	DurationSeconds int     `json:"duration"`
	Type            string  `json:"type"`
	Repetition      string  `json:"repetition,omitempty"`
	PowerMinWatts   int     `json:"powerMin"`
	PowerMaxWatts   int     `json:"powerMax"`
	PowerTargetW    int     `json:"powerTarget"`
	PowerPctLow     float64 `json:"powerPctLow"`
	PowerPctHigh    float64 `json:"powerPctHigh"`
	Cadence         int     `json:"cadence,omitempty"`
	Description     string  `json:"description,omitempty"`
	Rationale       string  `json:"rationale,omitempty"`
}

// Session is the JSON export of a single structured session
type Session struct {
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Sport            string        `json:"sport"`
	Type             string        `json:"workoutType"`
	Objective        string        `json:"objective"`
	TotalTimeSeconds int           `json:"totalTime"`
	EstimatedTSS     float64       `json:"estimatedTSS"`
	FTP              int           `json:"ftp"`
	AdaptationNotes  string        `json:"adaptationNotes,omitempty"`
	CoachingTips     string        `json:"coachingTips,omitempty"`
	Created          time.Time     `json:"created"`
	Steps            []SessionStep `json:"intervals"`
}

// NewSession flattens a session for export: fixed segments in builder
// order, then every interval repetition with its rest, all with watt
// bands derived from the session FTP. The rest after the session's
// final repetition is dropped, matching the ridden schedule.
func NewSession(w *workout.Workout, now time.Time) Session {
	s := Session{
		Name:             w.Name,
		Description:      w.Description,
		Sport:            "Bike",
		Type:             string(w.Type),
		Objective:        w.Objective,
		TotalTimeSeconds: w.TotalDuration * 60,
		EstimatedTSS:     load.WorkoutStress(w),
		FTP:              w.FTP,
		AdaptationNotes:  w.AdaptationNotes,
		CoachingTips:     w.CoachingTips,
		Created:          now,
	}

	step := 1
	for _, seg := range w.Segments {
		minW, maxW := seg.Watts(w.FTP)
		s.Steps = append(s.Steps, SessionStep{
			Step:            step,
			DurationSeconds: seg.DurationMinutes * 60,
			Type:            string(seg.Type),
			PowerMinWatts:   minW,
			PowerMaxWatts:   maxW,
			PowerTargetW:    targetWatts(seg.PowerLow, seg.PowerHigh, w.FTP),
			PowerPctLow:     seg.PowerLow,
			PowerPctHigh:    seg.PowerHigh,
			Cadence:         seg.Cadence,
			Description:     seg.Description,
			Rationale:       seg.Rationale,
		})
		step++
	}

	for i, ri := range w.Intervals {
		lastBlock := i == len(w.Intervals)-1
		for rep := 0; rep < ri.Repetitions; rep++ {
			minW, maxW := ri.WorkWatts(w.FTP)
			s.Steps = append(s.Steps, SessionStep{
				Step:            step,
				DurationSeconds: ri.WorkDuration * 60,
				Type:            "Work",
				Repetition:      fmt.Sprintf("%d/%d", rep+1, ri.Repetitions),
				PowerMinWatts:   minW,
				PowerMaxWatts:   maxW,
				PowerTargetW:    targetWatts(ri.WorkPowerLow, ri.WorkPowerHigh, w.FTP),
				PowerPctLow:     ri.WorkPowerLow,
				PowerPctHigh:    ri.WorkPowerHigh,
				Cadence:         ri.WorkCadence,
				Description:     ri.WorkDescription,
				Rationale:       ri.Rationale,
			})
			step++

			if ri.RestDuration > 0 && !(lastBlock && rep == ri.Repetitions-1) {
				minW, maxW := ri.RestWatts(w.FTP)
				s.Steps = append(s.Steps, SessionStep{
					Step:            step,
					DurationSeconds: ri.RestDuration * 60,
					Type:            "Rest",
					PowerMinWatts:   minW,
					PowerMaxWatts:   maxW,
					PowerTargetW:    targetWatts(ri.RestPowerLow, ri.RestPowerHigh, w.FTP),
					PowerPctLow:     ri.RestPowerLow,
					PowerPctHigh:    ri.RestPowerHigh,
					Cadence:         ri.RestCadence,
					Description:     ri.RestDescription,
				})
				step++
			}
		}
	}

	return s
}

// WriteSessionJSON writes a session as indented JSON
func WriteSessionJSON(wr io.Writer, w *workout.Workout) error {
	data, err := json.MarshalIndent(NewSession(w, time.Now()), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = wr.Write(data)
	return err
}

func targetWatts(low, high float64, ftp int) int {
	return int((low + high) / 2 * float64(ftp))
}
