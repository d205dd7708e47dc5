package plan

import "time"

// phaseBlock is a contiguous run of weeks in one phase
type phaseBlock struct {
	phase Phase
	weeks int
}

// allocatePhases splits the horizon into Base/Build/Peak blocks. With a
// target event the split is computed backward from the event: Peak takes
// a fixed 3 weeks, Build up to 8 before that, Base whatever remains
// (possibly nothing on short horizons). Without an event the split is a
// fixed ratio that shifts toward Build as the horizon shrinks.
func allocatePhases(totalWeeks int, events []Event) []phaseBlock {
	if len(events) == 0 {
		return standardPhases(totalWeeks)
	}

	const peakWeeks = 3
	if totalWeeks <= peakWeeks {
		return []phaseBlock{{PhasePeak, totalWeeks}}
	}

	buildWeeks := totalWeeks - peakWeeks
	if buildWeeks > 8 {
		buildWeeks = 8
	}
	baseWeeks := totalWeeks - peakWeeks - buildWeeks

	blocks := make([]phaseBlock, 0, 3)
	if baseWeeks > 0 {
		blocks = append(blocks, phaseBlock{PhaseBase, baseWeeks})
	}
	blocks = append(blocks, phaseBlock{PhaseBuild, buildWeeks})
	blocks = append(blocks, phaseBlock{PhasePeak, peakWeeks})
	return blocks
}

func standardPhases(totalWeeks int) []phaseBlock {
	var baseRatio, buildRatio float64
	switch {
	case totalWeeks >= 12:
		baseRatio, buildRatio = 0.5, 0.3
	case totalWeeks >= 8:
		baseRatio, buildRatio = 0.4, 0.4
	default:
		baseRatio, buildRatio = 0.3, 0.5
	}

	baseWeeks := int(float64(totalWeeks) * baseRatio)
	if baseWeeks < 1 {
		baseWeeks = 1
	}
	buildWeeks := int(float64(totalWeeks) * buildRatio)
	if buildWeeks < 1 {
		buildWeeks = 1
	}
	peakWeeks := totalWeeks - baseWeeks - buildWeeks

	return []phaseBlock{
		{PhaseBase, baseWeeks},
		{PhaseBuild, buildWeeks},
		{PhasePeak, peakWeeks},
	}
}

// PrimaryEvent returns the highest-priority event, preferring "A" tags
// and falling back to the first listed.
func PrimaryEvent(events []Event) (Event, bool) {
	if len(events) == 0 {
		return Event{}, false
	}
	for _, e := range events {
		if e.Priority == "A" {
			return e, true
		}
	}
	return events[0], true
}

// StartForEvent derives the plan start date that puts the final week's
// last day on or before the event. The engine itself does not verify the
// fit; callers pick a horizon the event can accommodate.
func StartForEvent(event time.Time, totalWeeks int) time.Time {
	return event.AddDate(0, 0, -7*totalWeeks)
}
