package zones

import (
	"errors"
	"fmt"
)

// ErrZoneNotFound is returned when a zone ID doesn't exist
var ErrZoneNotFound = errors.New("power zone not found")

// Zone represents a power training zone as a fraction of FTP.
// Power bounds follow the seven-zone Coggan model. Z1 starts at 0.45:
// anything below that is considered off the bottom of the model rather
// than a trainable intensity.
type Zone struct {
	ID          string
	Name        string
	PowerLow    float64 // fraction of FTP
	PowerHigh   float64 // fraction of FTP
	HRLow       int     // percent of max HR
	HRHigh      int     // percent of max HR
	CadenceLow  int     // rpm
	CadenceHigh int     // rpm
	Objective   string
	TypicalUse  string
}

// IDs lists the zone identifiers in ascending intensity order
var IDs = []string{"Z1", "Z2", "Z3", "Z4", "Z5", "Z6", "Z7"}

var table = map[string]Zone{
	"Z1": {
		ID: "Z1", Name: "Active Recovery",
		PowerLow: 0.45, PowerHigh: 0.55,
		HRLow: 50, HRHigh: 60,
		CadenceLow: 70, CadenceHigh: 80,
		Objective:  "Promote blood flow and clearance of metabolic waste",
		TypicalUse: "Recovery days, cooldowns, between intervals",
	},
	"Z2": {
		ID: "Z2", Name: "Aerobic Endurance",
		PowerLow: 0.56, PowerHigh: 0.75,
		HRLow: 60, HRHigh: 75,
		CadenceLow: 85, CadenceHigh: 95,
		Objective:  "Build aerobic base, fat metabolism and cardiac efficiency",
		TypicalUse: "Base training, long rides, interval recovery",
	},
	"Z3": {
		ID: "Z3", Name: "Tempo",
		PowerLow: 0.76, PowerHigh: 0.90,
		HRLow: 76, HRHigh: 85,
		CadenceLow: 85, CadenceHigh: 95,
		Objective:  "Improve aerobic capacity and muscular endurance without excessive fatigue",
		TypicalUse: "Tempo blocks, preparation for sustained efforts",
	},
	"Z4": {
		ID: "Z4", Name: "Lactate Threshold",
		PowerLow: 0.91, PowerHigh: 1.05,
		HRLow: 88, HRHigh: 92,
		CadenceLow: 85, CadenceHigh: 95,
		Objective:  "Raise FTP and the ability to sustain hard efforts",
		TypicalUse: "FTP blocks, long race preparation",
	},
	"Z5": {
		ID: "Z5", Name: "VO2max",
		PowerLow: 1.06, PowerHigh: 1.20,
		HRLow: 93, HRHigh: 100,
		CadenceLow: 95, CadenceHigh: 105,
		Objective:  "Increase maximal aerobic power and oxygen uptake",
		TypicalUse: "Short climbs, peloton surges, peaking",
	},
	"Z6": {
		ID: "Z6", Name: "Anaerobic Capacity",
		PowerLow: 1.21, PowerHigh: 1.50,
		HRLow: 95, HRHigh: 100,
		CadenceLow: 100, CadenceHigh: 120,
		Objective:  "Develop anaerobic capacity and explosive strength",
		TypicalUse: "Sprints, explosive climbs, race finals",
	},
	"Z7": {
		ID: "Z7", Name: "Neuromuscular Power",
		PowerLow: 1.51, PowerHigh: 3.00,
		HRLow: 90, HRHigh: 100,
		CadenceLow: 110, CadenceHigh: 130,
		Objective:  "Improve neuromuscular coordination and maximal force",
		TypicalUse: "Short sprints, explosive strength work",
	},
}

// Lookup returns the zone with the given ID
func Lookup(id string) (Zone, error) {
	z, ok := table[id]
	if !ok {
		return Zone{}, fmt.Errorf("%w: %q", ErrZoneNotFound, id)
	}
	return z, nil
}

// Watts converts a zone's fractional power range to integer watts for
// a given FTP. Values truncate toward zero, matching how head units
// display targets.
func Watts(id string, ftp int) (min, max int, err error) {
	z, err := Lookup(id)
	if err != nil {
		return 0, 0, err
	}
	return int(z.PowerLow * float64(ftp)), int(z.PowerHigh * float64(ftp)), nil
}

// ZoneWatts is a zone with its power range resolved to watts
type ZoneWatts struct {
	Zone
	MinWatts int
	MaxWatts int
	AvgWatts int
}

// Table resolves every zone to watts for the given FTP, in ascending
// intensity order.
func Table(ftp int) []ZoneWatts {
	out := make([]ZoneWatts, 0, len(IDs))
	for _, id := range IDs {
		z := table[id]
		min := int(z.PowerLow * float64(ftp))
		max := int(z.PowerHigh * float64(ftp))
		out = append(out, ZoneWatts{
			Zone:     z,
			MinWatts: min,
			MaxWatts: max,
			AvgWatts: (min + max) / 2,
		})
	}
	return out
}
