package workout

import "strings"

// Type is a session type resolved from caller input
type Type string

const (
	TypeVO2Max    Type = "vo2max"
	TypeThreshold Type = "threshold"
	TypeEndurance Type = "endurance"
	TypeRecovery  Type = "recovery"
	TypeTempo     Type = "tempo"
)

// typeAliases maps caller spellings to canonical types. Matching is
// case-insensitive; the French spellings come from the coaching
// vocabulary this system grew out of.
var typeAliases = map[string]Type{
	"vo2max":       TypeVO2Max,
	"vo2":          TypeVO2Max,
	"pma":          TypeVO2Max,
	"threshold":    TypeThreshold,
	"seuil":        TypeThreshold,
	"ftp":          TypeThreshold,
	"endurance":    TypeEndurance,
	"z2":           TypeEndurance,
	"base":         TypeEndurance,
	"recovery":     TypeRecovery,
	"recuperation": TypeRecovery,
	"z1":           TypeRecovery,
	"tempo":        TypeTempo,
	"z3":           TypeTempo,
}

// ParseType resolves a free-text session type. Unknown input falls back
// to VO2max; ok reports whether the input was recognized so callers can
// surface the fallback instead of swallowing it.
func ParseType(s string) (t Type, ok bool) {
	t, ok = typeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return TypeVO2Max, false
	}
	return t, true
}

func (t Type) String() string { return string(t) }

// DisplayName returns a capitalized name for UI and file headers
func (t Type) DisplayName() string {
	switch t {
	case TypeVO2Max:
		return "VO2max"
	case TypeThreshold:
		return "Threshold"
	case TypeEndurance:
		return "Endurance"
	case TypeRecovery:
		return "Recovery"
	case TypeTempo:
		return "Tempo"
	}
	return string(t)
}
