package admm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dut09/arap/mesh"
)

// residualTol bounds ‖M·x − rhs‖² after every linear solve.
const residualTol = 1e-6

// Solver owns one deformation session: the weight matrix, the factorized
// system matrix and the per-vertex iteration state. A Solver is not safe
// for concurrent use; run one instance per session.
type Solver struct {
	mesh  *mesh.Mesh
	fixed []int
	free  []int
	info  []vertexInfo
	opts  Options

	weights *mesh.Weights
	system  *mat.SymDense
	chol    mat.Cholesky

	state *State
	ready bool
}

// New validates the inputs, builds the free/fixed partition and cotangent
// weights, assembles the system matrix with the configured Method and
// factorizes it. The factorization is reused by every subsequent Step.
//
// Returns input-contract sentinels for malformed arguments, mesh errors for
// degenerate geometry, and ErrNotFactorizable when the assembled matrix is
// not positive-definite (for example a mesh with no fixed vertices, whose
// position block has a translational null space).
func New(m *mesh.Mesh, fixed []int, opts Options) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if opts.Rho <= 0 {
		return nil, ErrBadRho
	}
	if opts.MaxIterations <= 0 {
		return nil, ErrBadIterations
	}
	if opts.Method != DirectGradient && opts.Method != NormalEquations {
		return nil, ErrUnknownMethod
	}

	n := m.NumVertices()
	info := make([]vertexInfo, n)
	seen := make(map[int]bool, len(fixed))
	for i, v := range fixed {
		if v < 0 || n <= v {
			return nil, ErrFixedOutOfRange
		}
		if seen[v] {
			return nil, ErrDuplicateFixed
		}
		seen[v] = true
		info[v] = vertexInfo{typ: Fixed, pos: i}
	}
	var free []int
	for v := 0; v < n; v++ {
		if info[v].typ == Free {
			info[v].pos = len(free)
			free = append(free, v)
		}
	}

	weights, err := mesh.CotangentWeights(m)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		mesh:    m,
		fixed:   append([]int(nil), fixed...),
		free:    free,
		info:    info,
		opts:    opts,
		weights: weights,
	}
	sym, err := s.assemble()
	if err != nil {
		return nil, err
	}
	if ok := s.chol.Factorize(sym); !ok {
		return nil, ErrNotFactorizable
	}
	s.system = sym
	return s, nil
}

// unknowns returns the system dimension: one slot per free vertex plus
// three rotation rows per vertex (the 3-column RHS carries x, y, z).
func (s *Solver) unknowns() int {
	return len(s.free) + 3*s.mesh.NumVertices()
}

// rotIndex returns the unknown index of row k of vertex v's rotation block.
func (s *Solver) rotIndex(v, k int) int {
	return len(s.free) + 3*v + k
}

// SetTargets begins a frame: targets must hold exactly one position per
// fixed vertex, in the order the fixed indices were given to New. It seeds
// the deformed positions with the rest pose overwritten by the targets and
// resets R and S to identity and T to zero.
func (s *Solver) SetTargets(targets []r3.Vec) error {
	if len(targets) != len(s.fixed) {
		return ErrDimensionMismatch
	}
	positions := s.mesh.Positions()
	for i, v := range s.fixed {
		positions[v] = targets[i]
	}
	s.state = newState(positions)
	s.ready = true
	return nil
}

// Step runs one ADMM iteration: linear solve, SO(3) projection, dual
// update. On a mid-iteration error the state of the previous frame is
// restored before returning.
func (s *Solver) Step() error {
	if !s.ready {
		return ErrNotReady
	}
	prev := s.state.clone()
	if err := s.step(s.state); err != nil {
		s.state = prev
		return err
	}
	return nil
}

func (s *Solver) step(st *State) error {
	// Step 1: linear solve against the cached factorization.
	rhs := s.rhs(st)
	var sol mat.Dense
	if err := s.chol.SolveTo(&sol, rhs); err != nil {
		return ErrSolveFailed
	}
	if rows, _ := sol.Dims(); rows != s.unknowns() {
		return ErrSolveFailed
	}
	var residual mat.Dense
	residual.Mul(s.system, &sol)
	residual.Sub(&residual, rhs)
	if frob2(&residual) > residualTol {
		return ErrResidual
	}
	// Write back: free rows are positions, the transposed 3×3 blocks are R.
	for i, v := range s.free {
		st.Positions[v] = r3.Vec{X: sol.At(i, 0), Y: sol.At(i, 1), Z: sol.At(i, 2)}
	}
	for v := 0; v < s.mesh.NumVertices(); v++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				st.Rotations[v].Set(i, j, sol.At(s.rotIndex(v, j), i))
			}
		}
	}
	if s.opts.Validate {
		if err := s.checkStationary(st); err != nil {
			return err
		}
	}

	// Step 2: project R + T onto SO(3).
	var before float64
	if s.opts.Validate {
		before = s.projectionEnergy(st)
	}
	var sum mat.Dense
	for v := range st.Projected {
		sum.Add(st.Rotations[v], st.Dual[v])
		rot, err := closestRotation(&sum)
		if err != nil {
			return err
		}
		if !isSO3(rot) {
			return ErrNotSO3
		}
		st.Projected[v] = rot
	}
	if s.opts.Validate {
		if err := CheckProjection(before, s.projectionEnergy(st)); err != nil {
			return err
		}
	}

	// Step 3: dual update T += R − S.
	for v := range st.Dual {
		st.Dual[v].Add(st.Dual[v], st.Rotations[v])
		st.Dual[v].Sub(st.Dual[v], st.Projected[v])
	}
	return nil
}

// Deform runs a full frame: SetTargets followed by MaxIterations steps.
func (s *Solver) Deform(targets []r3.Vec) error {
	if err := s.SetTargets(targets); err != nil {
		return err
	}
	for i := 0; i < s.opts.MaxIterations; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// State returns the live iteration state. It is owned by the solver and
// mutated in place by Step; callers needing a snapshot must copy it.
func (s *Solver) State() *State { return s.state }

// Positions returns a copy of the current deformed vertex positions.
func (s *Solver) Positions() []r3.Vec {
	if s.state == nil {
		return s.mesh.Positions()
	}
	return append([]r3.Vec(nil), s.state.Positions...)
}

// Rotations returns copies of the current per-vertex rotation variables R.
func (s *Solver) Rotations() []*mat.Dense {
	if s.state == nil {
		return nil
	}
	out := make([]*mat.Dense, len(s.state.Rotations))
	for v, r := range s.state.Rotations {
		out[v] = mat.DenseCopyOf(r)
	}
	return out
}
