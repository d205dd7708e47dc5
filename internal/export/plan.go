package export

import (
	"encoding/json"
	"fmt"
	"io"

	"cycling-coach/internal/plan"
)

// PlanDay is one calendar day of an exported plan
type PlanDay struct {
	Day             string  `json:"day"`
	Date            string  `json:"date"`
	Rest            bool    `json:"rest"`
	Type            string  `json:"type,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Intensity       string  `json:"intensity,omitempty"`
	EstimatedTSS    float64 `json:"estimatedTSS,omitempty"`
}

// PlanWeek is one week of an exported plan
type PlanWeek struct {
	Week             int       `json:"week"`
	Phase            string    `json:"phase"`
	StartDate        string    `json:"startDate"`
	TSSTarget        float64   `json:"tssTarget"`
	HoursTarget      float64   `json:"hoursTarget"`
	Focus            string    `json:"focus"`
	Rationale        string    `json:"rationale,omitempty"`
	KeyWorkouts      []string  `json:"keyWorkouts,omitempty"`
	Adaptations      []string  `json:"adaptations,omitempty"`
	RecoveryEmphasis float64   `json:"recoveryEmphasis"`
	Days             []PlanDay `json:"days"`
}

// PlanExport is the JSON export of a complete periodized plan
type PlanExport struct {
	AthleteID    string      `json:"athleteId"`
	Model        string      `json:"model"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	TotalWeeks   int         `json:"totalWeeks"`
	CurrentFTP   int         `json:"currentFTP"`
	ProjectedFTP int         `json:"projectedFTP"`
	Events       []PlanEvent `json:"events,omitempty"`
	Weeks        []PlanWeek  `json:"weeks"`
}

// PlanEvent is a target event in an exported plan
type PlanEvent struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

const dateLayout = "2006-01-02"

// NewPlanExport converts a plan to its export form, with all dates
// rendered as YYYY-MM-DD strings.
func NewPlanExport(p *plan.Plan) PlanExport {
	out := PlanExport{
		AthleteID:    p.AthleteID,
		Model:        string(p.Model),
		StartDate:    p.StartDate.Format(dateLayout),
		EndDate:      p.EndDate.Format(dateLayout),
		TotalWeeks:   p.TotalWeeks,
		CurrentFTP:   p.CurrentFTP,
		ProjectedFTP: p.ProjectedFTP,
	}

	for _, e := range p.TargetEvents {
		out.Events = append(out.Events, PlanEvent{
			Name:     e.Name,
			Date:     e.Date.Format(dateLayout),
			Priority: e.Priority,
		})
	}

	for _, w := range p.Weeks {
		week := PlanWeek{
			Week:             w.WeekNumber,
			Phase:            string(w.Phase),
			StartDate:        w.StartDate.Format(dateLayout),
			TSSTarget:        w.Load.TSSTarget,
			HoursTarget:      w.Load.HoursTarget,
			Focus:            w.Focus,
			Rationale:        w.Rationale,
			KeyWorkouts:      w.Load.KeyWorkouts,
			Adaptations:      w.Adaptations,
			RecoveryEmphasis: w.RecoveryEmphasis,
		}
		for _, d := range w.Days {
			week.Days = append(week.Days, PlanDay{
				Day:             d.Day,
				Date:            d.Date.Format(dateLayout),
				Rest:            d.Rest,
				Type:            d.Type,
				DurationMinutes: d.DurationMinutes,
				Intensity:       d.Intensity,
				EstimatedTSS:    d.EstimatedTSS,
			})
		}
		out.Weeks = append(out.Weeks, week)
	}

	return out
}

// WritePlanJSON writes a plan as indented JSON
func WritePlanJSON(wr io.Writer, p *plan.Plan) error {
	data, err := json.MarshalIndent(NewPlanExport(p), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	_, err = wr.Write(data)
	return err
}
