package admm

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Energy term labels.
const (
	// TermARAP is the rigidity energy over all directed mesh edges.
	TermARAP = "ARAP"
	// TermRotation is the augmented-Lagrangian rotation penalty.
	TermRotation = "Rotation"
	// TermTotal is the sum of all terms.
	TermTotal = "Total"
)

// Energy maps a term label to its value. Produced fresh on each evaluation.
type Energy map[string]float64

// Total returns the TermTotal entry.
func (e Energy) Total() float64 { return e[TermTotal] }

// Energy evaluates the current state:
//
//	ARAP     = Σ_directed-edges w·‖(p_i − p_j) − R_i·(p̄_i − p̄_j)‖²
//	Rotation = (ρ/2)·Σ_v ‖R_v − S_v‖²
//	Total    = ARAP + Rotation
//
// If any S_v violates the SO(3) invariant the indicator function is
// infeasible and only {"Total": +Inf} is reported, letting callers tell
// non-convergence apart from a hard solve failure. Before SetTargets there
// is no state to evaluate and the total is likewise +Inf.
func (s *Solver) Energy() Energy {
	if !s.ready {
		return Energy{TermTotal: math.Inf(1)}
	}
	st := s.state
	for _, p := range st.Projected {
		if !isSO3(p) {
			return Energy{TermTotal: math.Inf(1)}
		}
	}
	arap := s.arapEnergy(st.Positions, st.Rotations)
	var d mat.Dense
	rotation := 0.0
	for v := range st.Rotations {
		d.Sub(st.Rotations[v], st.Projected[v])
		rotation += frob2(&d)
	}
	rotation *= s.opts.Rho / 2
	return Energy{
		TermARAP:     arap,
		TermRotation: rotation,
		TermTotal:    arap + rotation,
	}
}

// arapEnergy sums the rigidity term over all directed face edges for the
// given candidate positions and rotations.
func (s *Solver) arapEnergy(positions []r3.Vec, rotations []*mat.Dense) float64 {
	total := 0.0
	for f := 0; f < s.mesh.NumFaces(); f++ {
		for _, e := range s.mesh.Face(f).Edges() {
			first, second := e[0], e[1]
			w := s.weights.At(first, second)
			rest := r3.Sub(s.mesh.Position(first), s.mesh.Position(second))
			vec := r3.Sub(
				r3.Sub(positions[first], positions[second]),
				mulVec(rotations[first], rest),
			)
			total += w * r3.Norm2(vec)
		}
	}
	return total
}

// augmentedEnergy is the objective the linear solve minimizes: the ARAP
// term over candidate positions/rotations plus (ρ/2)·Σ‖R_v − S_v + T_v‖²
// with S and T taken from the state.
func (s *Solver) augmentedEnergy(positions []r3.Vec, rotations []*mat.Dense, st *State) float64 {
	energy := s.arapEnergy(positions, rotations)
	var d mat.Dense
	sum := 0.0
	for v := range rotations {
		d.Sub(rotations[v], st.Projected[v])
		d.Add(&d, st.Dual[v])
		sum += frob2(&d)
	}
	return energy + s.opts.Rho/2*sum
}

// projectionEnergy is the part of the augmented energy the projection step
// can change: (ρ/2)·Σ‖R_v − S_v + T_v‖², or +Inf when any S_v has left
// SO(3).
func (s *Solver) projectionEnergy(st *State) float64 {
	for _, p := range st.Projected {
		if !isSO3(p) {
			return math.Inf(1)
		}
	}
	var d mat.Dense
	sum := 0.0
	for v := range st.Rotations {
		d.Sub(st.Rotations[v], st.Projected[v])
		d.Add(&d, st.Dual[v])
		sum += frob2(&d)
	}
	return s.opts.Rho / 2 * sum
}
