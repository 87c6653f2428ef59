package admm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Test-only hooks into private solver internals. White-box tests use these
// to inspect the assembled system and to inject invariant violations that
// cannot be produced through the public surface.

// SystemForTest returns the assembled (and factorized) system matrix.
func (s *Solver) SystemForTest() *mat.SymDense { return s.system }

// RHSForTest builds the right-hand side for the current state.
func (s *Solver) RHSForTest() *mat.Dense { return s.rhs(s.state) }

// ScaleSystemForTest scales the cached system matrix without refactorizing,
// poisoning the residual check on the next Step.
func (s *Solver) ScaleSystemForTest(f float64) {
	s.system.ScaleSym(f, s.system)
}

// SetProjectedForTest overwrites one entry of S_v.
func (s *Solver) SetProjectedForTest(v, i, j int, val float64) {
	s.state.Projected[v].Set(i, j, val)
}

// SetPositionForTest overwrites the current position of vertex v.
func (s *Solver) SetPositionForTest(v int, p r3.Vec) {
	s.state.Positions[v] = p
}
