package workout

import (
	"fmt"

	"cycling-coach/internal/zones"
)

// WarningCode identifies a silent-fallback condition that was resolved
// to a documented default
type WarningCode string

const (
	WarnUnknownType  WarningCode = "unknown_type"
	WarnUnknownLevel WarningCode = "unknown_level"
)

// Warning reports a fallback the builder applied instead of failing
type Warning struct {
	Code    WarningCode
	Message string
}

// Build synthesizes a structured session from a free-text type, a target
// duration, an athlete level and threshold power. Unknown types build the
// VO2max template and unknown levels resolve to intermediate; both cases
// are reported in the returned warnings rather than treated as errors.
func Build(workoutType string, durationMinutes int, level string, ftp int) (*Workout, []Warning, error) {
	if durationMinutes <= 0 {
		return nil, nil, fmt.Errorf("invalid duration %d: must be positive", durationMinutes)
	}
	if ftp <= 0 {
		return nil, nil, fmt.Errorf("invalid threshold power %d: must be positive", ftp)
	}

	var warnings []Warning

	typ, ok := ParseType(workoutType)
	if !ok {
		warnings = append(warnings, Warning{
			Code:    WarnUnknownType,
			Message: fmt.Sprintf("unknown workout type %q, building %s", workoutType, typ),
		})
	}

	lvl, ok := ParseLevel(level)
	if !ok {
		warnings = append(warnings, Warning{
			Code:    WarnUnknownLevel,
			Message: fmt.Sprintf("unknown level %q, using %s", level, lvl),
		})
	}
	adapt := AdaptationFor(lvl)

	var w *Workout
	switch typ {
	case TypeVO2Max:
		w = buildVO2Max(durationMinutes, lvl, ftp, adapt)
	case TypeThreshold:
		w = buildThreshold(durationMinutes, lvl, ftp, adapt)
	case TypeEndurance:
		w = buildEndurance(durationMinutes, lvl, ftp)
	case TypeRecovery:
		w = buildRecovery(durationMinutes, ftp)
	case TypeTempo:
		w = buildTempo(durationMinutes, lvl, ftp)
	}

	return w, warnings, nil
}

func mustZone(id string) zones.Zone {
	z, err := zones.Lookup(id)
	if err != nil {
		panic(err) // static table, unreachable for Z1..Z7
	}
	return z
}

// buildVO2Max reserves 15min warmup, a 10min aerobic activation block and
// 15min cooldown, then fills the remainder with Z5 work/Z2 rest cycles.
// Repetitions are clamped to [3, level max]: below 3 reps the stimulus is
// too small to drive VO2max adaptation, so very short requests produce a
// session longer than asked for.
func buildVO2Max(duration int, lvl Level, ftp int, adapt Adaptation) *Workout {
	z1 := mustZone("Z1")
	z2 := mustZone("Z2")
	z5 := mustZone("Z5")

	workDuration := adapt.VO2MaxDuration
	if workDuration > 4 {
		workDuration = 4 // 3-4min is the sweet spot for time at VO2max
	}
	restDuration := int(float64(workDuration) * adapt.VO2RecoveryRatio)
	if restDuration < 2 {
		restDuration = 2
	}

	const (
		warmupTime     = 15
		activationTime = 10
		cooldownTime   = 15
	)
	available := duration - warmupTime - activationTime - cooldownTime

	reps := available / (workDuration + restDuration)
	if reps > adapt.VO2MaxReps {
		reps = adapt.VO2MaxReps
	}
	if reps < 3 {
		reps = 3
	}

	segments := []Segment{
		{
			Type:            SegmentWarmup,
			DurationMinutes: warmupTime,
			PowerLow:        z1.PowerLow,
			PowerHigh:       z2.PowerLow,
			Cadence:         85,
			Description:     "Progressive warm-up with cardiovascular activation",
			Rationale:       "Prepares the cardiovascular system and gradually raises muscle blood flow",
		},
		{
			Type:            SegmentSteadyState,
			DurationMinutes: activationTime,
			PowerLow:        z2.PowerLow,
			PowerHigh:       z2.PowerHigh,
			Cadence:         90,
			Description:     "Aerobic activation before the intervals",
			Rationale:       "Primes aerobic metabolic pathways ahead of the Zone 5 efforts",
		},
		{
			Type:            SegmentCooldown,
			DurationMinutes: cooldownTime,
			PowerLow:        z1.PowerLow * 0.8,
			PowerHigh:       z1.PowerHigh,
			Cadence:         80,
			Description:     "Active cooldown to flush lactate",
			Rationale:       "Maintains circulation to clear metabolic by-products",
		},
	}

	intervals := []RepeatedInterval{
		{
			Repetitions:     reps,
			WorkDuration:    workDuration,
			WorkPowerLow:    z5.PowerLow,
			WorkPowerHigh:   z5.PowerHigh,
			WorkCadence:     100,
			RestDuration:    restDuration,
			RestPowerLow:    z2.PowerLow,
			RestPowerHigh:   z2.PowerHigh,
			RestCadence:     85,
			WorkDescription: "VO2max Z5 - maximal aerobic power",
			RestDescription: "Active recovery Z2 - keep blood flowing",
			Rationale: fmt.Sprintf(
				"%dx%dmin intervals sized to stress VO2max without excessive fatigue at %s level",
				reps, workDuration, lvl),
		},
	}

	return &Workout{
		Name: fmt.Sprintf("VO2max %dx%dmin", reps, workDuration),
		Type: TypeVO2Max,
		Description: fmt.Sprintf(
			"VO2max session for %s level: %d intervals of %d minutes in Zone 5",
			lvl, reps, workDuration),
		Objective: "Raise maximal aerobic power and oxygen uptake " +
			"through 3-4 minute intervals at 106-120% FTP",
		TotalDuration: duration,
		Segments:      segments,
		Intervals:     intervals,
		FTP:           ftp,
		AdaptationNotes: fmt.Sprintf(
			"Adapted for %s: %d repetitions (max %d), recovery ratio %.2g, high cadence to build leg speed",
			lvl, reps, adapt.VO2MaxReps, adapt.VO2RecoveryRatio),
		CoachingTips: "Hold a high cadence (95-105 rpm), breathe deeply and accept the discomfort " +
			"late in each interval. Aim for even power, not peaks.",
	}
}

// buildThreshold prefers the classic 2x20min structure, degrading to
// 3x15min and finally a single block bounded by the level cap and the
// time left after a fixed 30 minutes of warm-up and cooldown.
func buildThreshold(duration int, lvl Level, ftp int, adapt Adaptation) *Workout {
	z1 := mustZone("Z1")
	z2 := mustZone("Z2")
	z4 := mustZone("Z4")

	var blocks []int
	var recovery int
	switch {
	case duration >= 80 && adapt.ThresholdMaxDuration >= 20:
		blocks = []int{20, 20}
		recovery = int(20 * adapt.ThresholdRecoveryRatio)
	case duration >= 65 && adapt.ThresholdMaxDuration >= 15:
		blocks = []int{15, 15, 15}
		recovery = int(15 * adapt.ThresholdRecoveryRatio)
	default:
		work := duration - 30
		if work > adapt.ThresholdMaxDuration {
			work = adapt.ThresholdMaxDuration
		}
		if work > 0 {
			blocks = []int{work}
		}
		recovery = 0
	}

	segments := []Segment{
		{
			Type:            SegmentWarmup,
			DurationMinutes: 15,
			PowerLow:        z1.PowerLow,
			PowerHigh:       z2.PowerHigh,
			Cadence:         85,
			Description:     "Progressive warm-up building toward threshold",
			Rationale:       "Metabolic activation ahead of sustained threshold work",
		},
		{
			Type:            SegmentCooldown,
			DurationMinutes: 15,
			PowerLow:        z1.PowerLow * 0.8,
			PowerHigh:       z1.PowerHigh,
			Cadence:         80,
			Description:     "Cooldown with lactate clearance",
			Rationale:       "Progressively clears accumulated lactate",
		},
	}

	intervals := make([]RepeatedInterval, 0, len(blocks))
	for i, work := range blocks {
		rest := 0
		if i < len(blocks)-1 {
			rest = recovery
		}
		intervals = append(intervals, RepeatedInterval{
			Repetitions:     1,
			WorkDuration:    work,
			WorkPowerLow:    z4.PowerLow,
			WorkPowerHigh:   z4.PowerHigh,
			WorkCadence:     95,
			RestDuration:    rest,
			RestPowerLow:    z2.PowerLow,
			RestPowerHigh:   z2.PowerHigh,
			RestCadence:     85,
			WorkDescription: fmt.Sprintf("Threshold block %d/%d - hold steady FTP", i+1, len(blocks)),
			RestDescription: "Active recovery - set up the next block",
			Rationale: fmt.Sprintf(
				"%dmin at lactate threshold (91-105%% FTP) to improve lactate processing", work),
		})
	}

	return &Workout{
		Name: fmt.Sprintf("Threshold %s", joinBlockNames(blocks)),
		Type: TypeThreshold,
		Description: fmt.Sprintf(
			"Lactate threshold session with %d block(s) to raise FTP and sustained power", len(blocks)),
		Objective: "Raise the lactate threshold (FTP) and the ability " +
			"to hold efforts at critical intensity",
		TotalDuration: duration,
		Segments:      segments,
		Intervals:     intervals,
		FTP:           ftp,
		AdaptationNotes: fmt.Sprintf(
			"Adapted for %s: blocks of %v minutes, recovery ratio %.2g, focus on steady output",
			lvl, blocks, adapt.ThresholdRecoveryRatio),
		CoachingTips: "Comfortably hard - at the edge of conversation. Keep power steady, " +
			"breathing controlled, position aerodynamic.",
	}
}

func joinBlockNames(blocks []int) string {
	if len(blocks) == 0 {
		return "short"
	}
	s := ""
	for i, b := range blocks {
		if i > 0 {
			s += "+"
		}
		s += fmt.Sprintf("%d", b)
	}
	return s + "min"
}

// buildEndurance is one long Z2 steady state framed by warm-up and
// cooldown capped at a sixth of the session each.
func buildEndurance(duration int, lvl Level, ftp int) *Workout {
	z1 := mustZone("Z1")
	z2 := mustZone("Z2")

	warmup := duration / 6
	if warmup > 15 {
		warmup = 15
	}
	cooldown := duration / 6
	if cooldown > 15 {
		cooldown = 15
	}
	main := duration - warmup - cooldown

	segments := []Segment{
		{
			Type:            SegmentWarmup,
			DurationMinutes: warmup,
			PowerLow:        z1.PowerLow,
			PowerHigh:       z2.PowerLow,
			Cadence:         85,
			Description:     "Gentle progressive warm-up",
			Rationale:       "Gradual cardiovascular activation and metabolic preparation",
		},
		{
			Type:            SegmentSteadyState,
			DurationMinutes: main,
			PowerLow:        z2.PowerLow,
			PowerHigh:       z2.PowerHigh,
			Cadence:         90,
			Description:     "Steady aerobic endurance - conversation pace",
			Rationale: "Drives mitochondrial adaptation, cardiac efficiency " +
				"and fat metabolism",
		},
		{
			Type:            SegmentCooldown,
			DurationMinutes: cooldown,
			PowerLow:        z1.PowerLow * 0.8,
			PowerHigh:       z1.PowerHigh,
			Cadence:         85,
			Description:     "Progressive cooldown",
			Rationale:       "Keeps circulation up to aid recovery",
		},
	}

	return &Workout{
		Name: fmt.Sprintf("Endurance %dmin", duration),
		Type: TypeEndurance,
		Description: fmt.Sprintf(
			"Aerobic endurance session with %d minutes of steady Zone 2 riding", main),
		Objective:     "Build fundamental endurance, cardiac efficiency and fat metabolism",
		TotalDuration: duration,
		Segments:      segments,
		FTP:           ftp,
		AdaptationNotes: fmt.Sprintf(
			"Moderate intensity for %s level, focus on pedaling efficiency and breathing", lvl),
		CoachingTips: "You should be able to hold a conversation. Smooth cadence at 85-95 rpm, " +
			"nasal breathing if possible, drink regularly.",
	}
}

// buildRecovery is a single very easy steady state, slightly below Z1
func buildRecovery(duration int, ftp int) *Workout {
	z1 := mustZone("Z1")

	segments := []Segment{
		{
			Type:            SegmentSteadyState,
			DurationMinutes: duration,
			PowerLow:        z1.PowerLow * 0.9,
			PowerHigh:       z1.PowerHigh * 0.9,
			Cadence:         85,
			Description:     "Active recovery - very smooth pedaling",
			Rationale: "Keeps blood flowing to clear metabolic waste and " +
				"support regeneration",
		},
	}

	return &Workout{
		Name:            fmt.Sprintf("Recovery %dmin", duration),
		Type:            TypeRecovery,
		Description:     fmt.Sprintf("Active recovery ride of %d minutes", duration),
		Objective:       "Support recovery through light circulation and metabolic waste clearance",
		TotalDuration:   duration,
		Segments:        segments,
		FTP:             ftp,
		AdaptationNotes: "Very light intensity, focus on fluid movement",
		CoachingTips: "Totally relaxed pedaling, natural cadence, deep breathing. " +
			"The goal is recovery, not training.",
	}
}

// buildTempo places one or two Z3 blocks between a fixed 15min warm-up
// and cooldown, with a short recovery between blocks when time allows.
func buildTempo(duration int, lvl Level, ftp int) *Workout {
	z1 := mustZone("Z1")
	z2 := mustZone("Z2")
	z3 := mustZone("Z3")

	const (
		warmupTime   = 15
		cooldownTime = 15
	)
	available := duration - warmupTime - cooldownTime

	var blocks []int
	recovery := 0
	switch {
	case available >= 40:
		blocks = []int{20, 20}
		recovery = 5
	case available >= 25:
		blocks = []int{available - 5}
	case available > 0:
		blocks = []int{available}
	}

	segments := []Segment{
		{
			Type:            SegmentWarmup,
			DurationMinutes: warmupTime,
			PowerLow:        z1.PowerLow,
			PowerHigh:       z2.PowerHigh,
			Cadence:         85,
			Description:     "Progressive warm-up",
			Rationale:       "Preparation for sustained tempo work",
		},
		{
			Type:            SegmentCooldown,
			DurationMinutes: cooldownTime,
			PowerLow:        z1.PowerLow,
			PowerHigh:       z1.PowerHigh,
			Cadence:         80,
			Description:     "Cooldown",
			Rationale:       "Progressive recovery",
		},
	}

	intervals := make([]RepeatedInterval, 0, len(blocks))
	for i, block := range blocks {
		rest := 0
		if i < len(blocks)-1 {
			rest = recovery
		}
		intervals = append(intervals, RepeatedInterval{
			Repetitions:     1,
			WorkDuration:    block,
			WorkPowerLow:    z3.PowerLow,
			WorkPowerHigh:   z3.PowerHigh,
			WorkCadence:     90,
			RestDuration:    rest,
			RestPowerLow:    z2.PowerLow,
			RestPowerHigh:   z2.PowerHigh,
			RestCadence:     85,
			WorkDescription: fmt.Sprintf("Tempo block %d/%d - sustained rhythm", i+1, len(blocks)),
			RestDescription: "Active recovery",
			Rationale: fmt.Sprintf(
				"%dmin tempo block in Zone 3 to build muscular endurance", block),
		})
	}

	return &Workout{
		Name: fmt.Sprintf("Tempo %s", joinBlockNames(blocks)),
		Type: TypeTempo,
		Description: fmt.Sprintf(
			"Tempo session with %d block(s) to build muscular endurance", len(blocks)),
		Objective: "Develop muscular endurance and aerobic capacity " +
			"through sustained Zone 3 efforts",
		TotalDuration:   duration,
		Segments:        segments,
		Intervals:       intervals,
		FTP:             ftp,
		AdaptationNotes: fmt.Sprintf("Sustained but controllable effort for %s level", lvl),
		CoachingTips: "A firm but manageable rhythm with controlled breathing. " +
			"Ideal preparation for long races.",
	}
}
