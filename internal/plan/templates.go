package plan

// dayTemplate is one day of a phase's canonical week
type dayTemplate struct {
	typ       string // builder workout type, or "openers"
	duration  int    // minutes
	intensity string // target zone
	rest      bool
}

var dayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// weekTemplates holds the canonical 7-day pattern per phase. These are
// fixed lookups, not generated: two hard days and a long day in Base,
// interval focus in Build, sharpening plus extra rest in Peak.
var weekTemplates = map[Phase][7]dayTemplate{
	PhaseBase: {
		{typ: "endurance", duration: 60, intensity: "Z2"},
		{typ: "threshold", duration: 90, intensity: "Z4"},
		{typ: "recovery", duration: 45, intensity: "Z1"},
		{typ: "endurance", duration: 90, intensity: "Z2"},
		{rest: true},
		{typ: "endurance", duration: 120, intensity: "Z2"},
		{typ: "recovery", duration: 60, intensity: "Z1"},
	},
	PhaseBuild: {
		{typ: "recovery", duration: 45, intensity: "Z1"},
		{typ: "vo2max", duration: 75, intensity: "Z5"},
		{typ: "endurance", duration: 60, intensity: "Z2"},
		{typ: "threshold", duration: 90, intensity: "Z4"},
		{rest: true},
		{typ: "endurance", duration: 90, intensity: "Z2"},
		{typ: "recovery", duration: 60, intensity: "Z1"},
	},
	PhasePeak: {
		{typ: "recovery", duration: 45, intensity: "Z1"},
		{typ: "vo2max", duration: 60, intensity: "Z5"},
		{rest: true},
		{typ: "openers", duration: 45, intensity: "Z6"},
		{rest: true},
		{typ: "endurance", duration: 60, intensity: "Z2"},
		{typ: "recovery", duration: 45, intensity: "Z1"},
	},
	PhaseRecovery: {
		{rest: true},
		{typ: "recovery", duration: 45, intensity: "Z1"},
		{typ: "endurance", duration: 60, intensity: "Z2"},
		{rest: true},
		{typ: "recovery", duration: 45, intensity: "Z1"},
		{typ: "endurance", duration: 60, intensity: "Z2"},
		{rest: true},
	},
}

// keyWorkouts names the signature sessions of each phase
var keyWorkouts = map[Phase][]string{
	PhaseBase: {
		"Endurance 90-120min",
		"Tempo 2x20min",
		"Endurance 60min + strength",
	},
	PhaseBuild: {
		"Threshold 2x20min",
		"VO2max 5x4min",
		"Endurance 90min",
	},
	PhasePeak: {
		"VO2max 6x3min",
		"Anaerobic 5x2min",
		"Openers 3x1min",
	},
}

var phaseFocuses = map[Phase]string{
	PhaseBase:     "Build the aerobic base",
	PhaseBuild:    "Develop event-specific power",
	PhasePeak:     "Sharpen form and recover",
	PhaseRecovery: "Recover and regenerate",
}

var phaseRationales = map[Phase]string{
	PhaseBase:  "High Zone 2 volume drives cardiovascular and mitochondrial adaptation",
	PhaseBuild: "Targeted intervals raise specific power and lactate tolerance",
	PhasePeak:  "Neuromuscular sharpening and recovery ahead of competition",
}

var phaseAdaptations = map[Phase][]string{
	PhaseBase: {
		"Increased mitochondrial density",
		"Improved cardiac efficiency",
		"Better fat metabolism",
		"Strengthened connective tissue",
	},
	PhaseBuild: {
		"Improved VO2max",
		"Higher threshold power",
		"Better lactate tolerance",
		"Event-specific strength",
	},
	PhasePeak: {
		"Neuromuscular optimization",
		"Improved movement economy",
		"Restocked energy systems",
		"Mental sharpening",
	},
}

func weekTemplate(phase Phase) [7]dayTemplate {
	if t, ok := weekTemplates[phase]; ok {
		return t
	}
	return weekTemplates[PhaseBase]
}

func keyWorkoutsFor(phase Phase) []string {
	if w, ok := keyWorkouts[phase]; ok {
		return w
	}
	return []string{"Endurance 60min"}
}

func phaseFocus(phase Phase) string {
	if f, ok := phaseFocuses[phase]; ok {
		return f
	}
	return "General training"
}

func phaseRationale(phase Phase) string {
	if r, ok := phaseRationales[phase]; ok {
		return r
	}
	return "Training adapted to the athlete's level"
}

func adaptationsFor(phase Phase) []string {
	if a, ok := phaseAdaptations[phase]; ok {
		return a
	}
	return []string{"General adaptations"}
}
