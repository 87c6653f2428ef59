// Package admm types: assembly-method enum, solver options, vertex
// classification and the per-iteration state block.
package admm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Method selects which of the two equivalent derivations builds the sparse
// system matrix and the per-iteration right-hand side.
//
//   - DirectGradient — differentiate the combined ARAP-plus-augmentation
//     objective with respect to each unknown and place the resulting
//     coefficients term by term over triangle edges and the rotation
//     regularizer.
//
//   - NormalEquations — express each edge constraint and each rotation
//     constraint as a weighted sparse row A_k and sum 2·w_k·AᵀA over all
//     rows; the least-squares normal-equation view of the same system.
//
// Both produce numerically identical matrices (a tested property); they
// differ only in how the coefficients are derived.
type Method int

const (
	// DirectGradient assembles gradient coefficients term by term.
	DirectGradient Method = iota

	// NormalEquations assembles the summed normal equations of the
	// per-constraint rows.
	NormalEquations
)

// Options configures a Solver.
//
// Fields:
//   - MaxIterations — iterations performed by one Deform call (> 0).
//   - Rho           — positive weight of the rotation-consistency
//     constraint. Larger ρ enforces tighter SO(3) adherence per step but
//     can slow convergence of the outer loop.
//   - Method        — system/RHS derivation (see Method).
//   - Validate      — run the finite-difference stationarity check and the
//     projection energy-descent check inside every Step. Diagnostic;
//     expensive, intended for tests and debugging sessions.
type Options struct {
	MaxIterations int
	Rho           float64
	Method        Method
	Validate      bool
}

// DefaultOptions returns the solver defaults: 50 iterations, ρ = 1,
// DirectGradient assembly, validation off.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 50,
		Rho:           1.0,
		Method:        DirectGradient,
		Validate:      false,
	}
}

// VertexType classifies a vertex as solved-for or handle-constrained.
type VertexType uint8

const (
	// Free vertices are unknowns of the linear system.
	Free VertexType = iota

	// Fixed vertices are pinned to caller-supplied targets each frame.
	Fixed
)

// vertexInfo tags one vertex with its classification and its index into the
// compact free ordering (Free) or the caller's target list (Fixed).
type vertexInfo struct {
	typ VertexType
	pos int
}

// State owns every per-vertex quantity the iteration mutates. All slices
// are indexed by vertex; only these fields change across Step calls.
//
//   - Positions — current deformed positions (fixed slots hold targets).
//   - Rotations — R, the unconstrained rotation variables from the solve.
//   - Projected — S, the SO(3) projections of R + T.
//   - Dual      — T, the scaled ADMM dual accumulating R − S.
type State struct {
	Positions []r3.Vec
	Rotations []*mat.Dense
	Projected []*mat.Dense
	Dual      []*mat.Dense
}

func newState(positions []r3.Vec) *State {
	n := len(positions)
	st := &State{
		Positions: positions,
		Rotations: make([]*mat.Dense, n),
		Projected: make([]*mat.Dense, n),
		Dual:      make([]*mat.Dense, n),
	}
	for v := 0; v < n; v++ {
		st.Rotations[v] = eye3()
		st.Projected[v] = eye3()
		st.Dual[v] = mat.NewDense(3, 3, nil)
	}
	return st
}

func (st *State) clone() *State {
	c := &State{
		Positions: append([]r3.Vec(nil), st.Positions...),
		Rotations: make([]*mat.Dense, len(st.Rotations)),
		Projected: make([]*mat.Dense, len(st.Projected)),
		Dual:      make([]*mat.Dense, len(st.Dual)),
	}
	for v := range st.Rotations {
		c.Rotations[v] = mat.DenseCopyOf(st.Rotations[v])
		c.Projected[v] = mat.DenseCopyOf(st.Projected[v])
		c.Dual[v] = mat.DenseCopyOf(st.Dual[v])
	}
	return c
}
