package plan

// modelDistributions is the baseline weekly time share per zone for each
// periodization model. Unknown models fall back to polarized.
var modelDistributions = map[Model]Distribution{
	ModelPolarized:   {Z1: 0.75, Z2: 0.05, Z3: 0.05, Z4: 0.05, Z5: 0.10},
	ModelPyramidal:   {Z1: 0.60, Z2: 0.20, Z3: 0.10, Z4: 0.07, Z5: 0.03},
	ModelTraditional: {Z1: 0.50, Z2: 0.25, Z3: 0.15, Z4: 0.07, Z5: 0.03},
}

// intensityDistribution perturbs the model baseline by phase: Base
// inflates low zones and suppresses high ones, Build and Peak invert
// that. The result is deliberately not renormalized to 1.0 (see
// Distribution.Total); weekly targets are scaled shares, not an exact
// partition of training time.
func intensityDistribution(phase Phase, model Model) Distribution {
	base, ok := modelDistributions[model]
	if !ok {
		base = modelDistributions[ModelPolarized]
	}

	switch phase {
	case PhaseBase:
		return Distribution{
			Z1: base.Z1 * 1.2,
			Z2: base.Z2 * 1.1,
			Z3: base.Z3 * 0.8,
			Z4: base.Z4 * 0.6,
			Z5: base.Z5 * 0.5,
		}
	case PhaseBuild:
		return Distribution{
			Z1: base.Z1 * 0.9,
			Z2: base.Z2 * 0.9,
			Z3: base.Z3 * 1.2,
			Z4: base.Z4 * 1.3,
			Z5: base.Z5 * 1.5,
		}
	case PhasePeak:
		return Distribution{
			Z1: base.Z1 * 1.1,
			Z2: base.Z2 * 0.8,
			Z3: base.Z3 * 0.9,
			Z4: base.Z4 * 1.2,
			Z5: base.Z5 * 1.8,
		}
	}

	return base
}
