package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"cycling-coach/internal/workout"
)

// ZWOFile is the root of a Zwift/MyWhoosh workout file
type ZWOFile struct {
	XMLName     xml.Name   `xml:"workout_file"`
	Author      string     `xml:"author"`
	Name        string     `xml:"name"`
	Description string     `xml:"description"`
	SportType   string     `xml:"sportType"`
	Tags        []ZWOTag   `xml:"tags>tag"`
	Workout     ZWOWorkout `xml:"workout"`
}

// ZWOTag is a categorization tag
type ZWOTag struct {
	Name string `xml:"name,attr"`
}

// ZWOWorkout holds the ordered workout steps
type ZWOWorkout struct {
	Steps []ZWOStep `xml:",any"`
}

// ZWOStep is one workout step. The element name (Warmup, SteadyState,
// Cooldown) carries the step kind; powers are fractions of FTP and
// durations are seconds.
type ZWOStep struct {
	XMLName   xml.Name
	Duration  int     `xml:"Duration,attr"`
	PowerLow  float64 `xml:"PowerLow,attr"`
	PowerHigh float64 `xml:"PowerHigh,attr"`
	Cadence   int     `xml:"Cadence,attr,omitempty"`
}

const zwoAuthor = "velocoach"

// NewZWO converts a session to a ZWO document. Steps run warm-up
// first, then steady segments and interval repetitions, cooldown last.
// Rests are emitted between repetitions and between interval blocks;
// the session's final repetition ends without a trailing rest.
func NewZWO(w *workout.Workout) *ZWOFile {
	doc := &ZWOFile{
		Author:      zwoAuthor,
		Name:        w.Name,
		Description: fmt.Sprintf("%s\n\nObjective: %s", w.Description, w.Objective),
		SportType:   "bike",
		Tags:        []ZWOTag{{Name: string(w.Type)}},
	}

	var cooldowns []ZWOStep
	for _, s := range w.Segments {
		step := ZWOStep{
			XMLName:   xml.Name{Local: string(s.Type)},
			Duration:  s.DurationMinutes * 60,
			PowerLow:  s.PowerLow,
			PowerHigh: s.PowerHigh,
			Cadence:   s.Cadence,
		}
		if s.Type == workout.SegmentCooldown {
			cooldowns = append(cooldowns, step)
			continue
		}
		doc.Workout.Steps = append(doc.Workout.Steps, step)
	}

	for i, ri := range w.Intervals {
		lastBlock := i == len(w.Intervals)-1
		for rep := 0; rep < ri.Repetitions; rep++ {
			doc.Workout.Steps = append(doc.Workout.Steps, ZWOStep{
				XMLName:   xml.Name{Local: string(workout.SegmentSteadyState)},
				Duration:  ri.WorkDuration * 60,
				PowerLow:  ri.WorkPowerLow,
				PowerHigh: ri.WorkPowerHigh,
				Cadence:   ri.WorkCadence,
			})
			if ri.RestDuration > 0 && !(lastBlock && rep == ri.Repetitions-1) {
				doc.Workout.Steps = append(doc.Workout.Steps, ZWOStep{
					XMLName:   xml.Name{Local: string(workout.SegmentSteadyState)},
					Duration:  ri.RestDuration * 60,
					PowerLow:  ri.RestPowerLow,
					PowerHigh: ri.RestPowerHigh,
					Cadence:   ri.RestCadence,
				})
			}
		}
	}

	doc.Workout.Steps = append(doc.Workout.Steps, cooldowns...)
	return doc
}

// WriteZWO writes a session as an indented ZWO XML document
func WriteZWO(wr io.Writer, w *workout.Workout) error {
	if _, err := io.WriteString(wr, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(wr)
	enc.Indent("", "  ")
	if err := enc.Encode(NewZWO(w)); err != nil {
		return fmt.Errorf("encoding zwo: %w", err)
	}
	return enc.Close()
}
