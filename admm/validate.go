package admm

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Diagnostic checks for the two iteration sub-steps. Neither is required
// for correctness; Options.Validate wires them into every Step, and tests
// invoke them directly.

const (
	// perturbDelta is the central-difference step of CheckStationary.
	perturbDelta = 1e-3

	// energyTol is the slack allowed by CheckProjection.
	energyTol = 0.02
)

// CheckStationary verifies the most recent linear solve is a true local
// minimum of the augmented objective: perturbing every free coordinate and
// every rotation entry by ±perturbDelta must not decrease the energy in one
// direction while increasing it in the other. Returns ErrNotStationary on
// the first descent direction found, ErrNotReady before SetTargets.
func (s *Solver) CheckStationary() error {
	if !s.ready {
		return ErrNotReady
	}
	return s.checkStationary(s.state)
}

func (s *Solver) checkStationary(st *State) error {
	// Perturb copies; the state itself stays untouched.
	positions := append([]r3.Vec(nil), st.Positions...)
	rotations := make([]*mat.Dense, len(st.Rotations))
	for v := range st.Rotations {
		rotations[v] = mat.DenseCopyOf(st.Rotations[v])
	}
	optimal := s.augmentedEnergy(positions, rotations, st)

	for _, v := range s.free {
		for axis := 0; axis < 3; axis++ {
			base := component(positions[v], axis)
			setComponent(&positions[v], axis, base+perturbDelta)
			plus := s.augmentedEnergy(positions, rotations, st) - optimal
			setComponent(&positions[v], axis, base-perturbDelta)
			minus := s.augmentedEnergy(positions, rotations, st) - optimal
			setComponent(&positions[v], axis, base)
			if plus*minus < 0 {
				return ErrNotStationary
			}
		}
	}
	for v := range rotations {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				base := rotations[v].At(i, j)
				rotations[v].Set(i, j, base+perturbDelta)
				plus := s.augmentedEnergy(positions, rotations, st) - optimal
				rotations[v].Set(i, j, base-perturbDelta)
				minus := s.augmentedEnergy(positions, rotations, st) - optimal
				rotations[v].Set(i, j, base)
				if plus*minus < 0 {
					return ErrNotStationary
				}
			}
		}
	}
	return nil
}

// CheckProjection verifies the projection step is non-increasing: the
// augmented energy after projecting must not exceed the value before by
// more than energyTol, and neither value may be infinite.
func CheckProjection(before, after float64) error {
	if math.IsInf(before, 1) || math.IsInf(after, 1) || after > before+energyTol {
		return ErrEnergyIncreased
	}
	return nil
}

// ProjectionEnergy exposes the projection-step energy of the current state
// for diagnostics: (ρ/2)·Σ‖R_v − S_v + T_v‖², +Inf on an SO(3) violation.
func (s *Solver) ProjectionEnergy() float64 {
	if !s.ready {
		return math.Inf(1)
	}
	return s.projectionEnergy(s.state)
}
