package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cycling-coach/internal/load"
	"cycling-coach/internal/workout"
)

// WriteReport writes a human-readable Markdown report of a session:
// headline numbers, then every segment and interval series with watt
// bands, cadence and rationale, then the adaptation and coaching notes.
func WriteReport(wr io.Writer, w *workout.Workout, now time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", w.Name)
	fmt.Fprintf(&b, "**Type:** %s\n", w.Type.DisplayName())
	fmt.Fprintf(&b, "**Duration:** %d minutes\n", w.TotalDuration)
	fmt.Fprintf(&b, "**Estimated TSS:** %.0f\n", load.WorkoutStress(w))
	fmt.Fprintf(&b, "**FTP:** %dW\n", w.FTP)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "## Description\n\n%s\n\n", w.Description)
	fmt.Fprintf(&b, "## Objective\n\n%s\n\n", w.Objective)

	b.WriteString("## Structure\n\n")

	if len(w.Segments) > 0 {
		b.WriteString("### Segments\n\n")
		for i, s := range w.Segments {
			minW, maxW := s.Watts(w.FTP)
			fmt.Fprintf(&b, "%d. **%s** - %dmin\n", i+1, s.Type, s.DurationMinutes)
			fmt.Fprintf(&b, "   - Power: %d-%dW (%.0f-%.0f%% FTP)\n",
				minW, maxW, s.PowerLow*100, s.PowerHigh*100)
			fmt.Fprintf(&b, "   - Cadence: %d rpm\n", s.Cadence)
			fmt.Fprintf(&b, "   - %s\n", s.Description)
			if s.Rationale != "" {
				fmt.Fprintf(&b, "   - Rationale: %s\n", s.Rationale)
			}
			b.WriteString("\n")
		}
	}

	if len(w.Intervals) > 0 {
		b.WriteString("### Intervals\n\n")
		for i, ri := range w.Intervals {
			workMin, workMax := ri.WorkWatts(w.FTP)
			fmt.Fprintf(&b, "**Series %d: %d repetitions**\n\n", i+1, ri.Repetitions)
			fmt.Fprintf(&b, "- **Work:** %dmin at %d-%dW (%.0f-%.0f%% FTP)\n",
				ri.WorkDuration, workMin, workMax, ri.WorkPowerLow*100, ri.WorkPowerHigh*100)
			fmt.Fprintf(&b, "  - Cadence: %d rpm\n", ri.WorkCadence)
			fmt.Fprintf(&b, "  - %s\n", ri.WorkDescription)
			if ri.RestDuration > 0 {
				restMin, restMax := ri.RestWatts(w.FTP)
				fmt.Fprintf(&b, "- **Rest:** %dmin at %d-%dW (%.0f-%.0f%% FTP)\n",
					ri.RestDuration, restMin, restMax, ri.RestPowerLow*100, ri.RestPowerHigh*100)
				fmt.Fprintf(&b, "  - Cadence: %d rpm\n", ri.RestCadence)
				fmt.Fprintf(&b, "  - %s\n", ri.RestDescription)
			}
			if ri.Rationale != "" {
				fmt.Fprintf(&b, "- **Rationale:** %s\n", ri.Rationale)
			}
			b.WriteString("\n")
		}
	}

	if w.AdaptationNotes != "" {
		fmt.Fprintf(&b, "## Adaptation Notes\n\n%s\n\n", w.AdaptationNotes)
	}
	if w.CoachingTips != "" {
		fmt.Fprintf(&b, "## Coaching\n\n%s\n", w.CoachingTips)
	}

	_, err := io.WriteString(wr, b.String())
	return err
}
