package admm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dut09/arap/sparse"
)

// The system couples free positions and unconstrained rotations:
// minimizing Σ w‖(p_i − p_j) − R_i·v̄‖² + (ρ/2)Σ‖R_v − (S_v − T_v)‖²
// over the free unknowns yields one sparse SPD matrix, independent of the
// handle targets and the S/T state, hence assembled and factorized once.
// Both derivations below produce the identical matrix.

// assemble builds the system matrix with the configured Method.
func (s *Solver) assemble() (*mat.SymDense, error) {
	b := sparse.NewBuilder(s.unknowns())
	switch s.opts.Method {
	case DirectGradient:
		s.assembleDirect(b)
	case NormalEquations:
		s.assembleNormal(b)
	}
	return b.SymTo()
}

// assembleDirect places the gradient coefficients of the combined objective
// term by term: ρ·I over the rotation block, then per directed face edge
// the position Laplacian terms, the rotation Gram terms 2w·v̄v̄ᵀ and the
// symmetric position↔rotation coupling ∓2w·v̄.
func (s *Solver) assembleDirect(b *sparse.Builder) {
	n := s.mesh.NumVertices()
	nf := len(s.free)
	for i := nf; i < nf+3*n; i++ {
		b.Add(i, i, s.opts.Rho)
	}
	for f := 0; f < s.mesh.NumFaces(); f++ {
		for _, e := range s.mesh.Face(f).Edges() {
			first, second := e[0], e[1]
			fi, se := s.info[first], s.info[second]
			w := s.weights.At(first, second)
			v := r3.Sub(s.mesh.Position(first), s.mesh.Position(second))
			vk := [3]float64{v.X, v.Y, v.Z}
			if fi.typ == Free {
				b.Add(fi.pos, fi.pos, 2*w)
				if se.typ == Free {
					b.Add(fi.pos, se.pos, -2*w)
				}
				for k := 0; k < 3; k++ {
					b.Add(fi.pos, s.rotIndex(first, k), -2*w*vk[k])
				}
			}
			if se.typ == Free {
				b.Add(se.pos, se.pos, 2*w)
				if fi.typ == Free {
					b.Add(se.pos, fi.pos, -2*w)
				}
				for k := 0; k < 3; k++ {
					b.Add(se.pos, s.rotIndex(first, k), 2*w*vk[k])
				}
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					b.Add(s.rotIndex(first, i), s.rotIndex(first, j), 2*w*vk[i]*vk[j])
				}
			}
			if fi.typ == Free {
				for i := 0; i < 3; i++ {
					b.Add(s.rotIndex(first, i), fi.pos, -2*w*vk[i])
				}
			}
			if se.typ == Free {
				for i := 0; i < 3; i++ {
					b.Add(s.rotIndex(first, i), se.pos, 2*w*vk[i])
				}
			}
		}
	}
}

// rowEntry is one nonzero of a sparse constraint row.
type rowEntry struct {
	col int
	val float64
}

// edgeRow returns the sparse constraint row of one directed edge:
// p_first − p_second − R_first·v̄ (free position slots carry ±1, the three
// rotation slots carry −v̄).
func (s *Solver) edgeRow(first, second int) []rowEntry {
	fi, se := s.info[first], s.info[second]
	v := r3.Sub(s.mesh.Position(first), s.mesh.Position(second))
	row := make([]rowEntry, 0, 5)
	if fi.typ == Free {
		row = append(row, rowEntry{fi.pos, 1})
	}
	if se.typ == Free {
		row = append(row, rowEntry{se.pos, -1})
	}
	row = append(row,
		rowEntry{s.rotIndex(first, 0), -v.X},
		rowEntry{s.rotIndex(first, 1), -v.Y},
		rowEntry{s.rotIndex(first, 2), -v.Z},
	)
	return row
}

// assembleNormal sums the least-squares normal equations 2·w·AᵀA over the
// edge rows, plus ρ·AᵀA over the per-vertex rotation rows (single unit
// nonzeros, so just ρ on the rotation diagonal).
func (s *Solver) assembleNormal(b *sparse.Builder) {
	for f := 0; f < s.mesh.NumFaces(); f++ {
		for _, e := range s.mesh.Face(f).Edges() {
			first, second := e[0], e[1]
			w := s.weights.At(first, second)
			row := s.edgeRow(first, second)
			for _, p := range row {
				for _, q := range row {
					b.Add(p.col, q.col, 2*w*p.val*q.val)
				}
			}
		}
	}
	for v := 0; v < s.mesh.NumVertices(); v++ {
		for k := 0; k < 3; k++ {
			b.Add(s.rotIndex(v, k), s.rotIndex(v, k), s.opts.Rho)
		}
	}
}

// rhs builds the 3-column right-hand side (one column per Cartesian axis)
// for the current state, with the configured Method.
func (s *Solver) rhs(st *State) *mat.Dense {
	if s.opts.Method == NormalEquations {
		return s.rhsNormal(st)
	}
	return s.rhsDirect(st)
}

// rhsDirect mirrors assembleDirect: rotation rows carry ρ·(S_v − T_v)ᵀ and
// directed edges contribute only where an endpoint is fixed. A free-free
// edge has zero constant gradient — its coupling lives entirely in the
// system matrix — and is skipped.
func (s *Solver) rhsDirect(st *State) *mat.Dense {
	rhs := mat.NewDense(s.unknowns(), 3, nil)
	var d mat.Dense
	for v := range st.Projected {
		d.Sub(st.Projected[v], st.Dual[v])
		for k := 0; k < 3; k++ {
			for c := 0; c < 3; c++ {
				rhs.Set(s.rotIndex(v, k), c, s.opts.Rho*d.At(c, k))
			}
		}
	}
	for f := 0; f < s.mesh.NumFaces(); f++ {
		for _, e := range s.mesh.Face(f).Edges() {
			first, second := e[0], e[1]
			fi, se := s.info[first], s.info[second]
			if fi.typ == Free && se.typ == Free {
				continue
			}
			w := s.weights.At(first, second)
			if fi.typ == Free {
				// second is fixed: its target is a constant of the solve.
				addRow(rhs, fi.pos, r3.Scale(2*w, st.Positions[second]))
			}
			if se.typ == Free {
				addRow(rhs, se.pos, r3.Scale(2*w, st.Positions[first]))
			}
			var b r3.Vec
			if fi.typ == Fixed {
				b = r3.Add(b, st.Positions[first])
			}
			if se.typ == Fixed {
				b = r3.Sub(b, st.Positions[second])
			}
			v := r3.Sub(s.mesh.Position(first), s.mesh.Position(second))
			vk := [3]float64{v.X, v.Y, v.Z}
			for k := 0; k < 3; k++ {
				addRow(rhs, s.rotIndex(first, k), r3.Scale(2*w*vk[k], b))
			}
		}
	}
	return rhs
}

// rhsNormal mirrors assembleNormal: Σ 2·w·Aᵀ·bᵀ over the edge rows (b holds
// the fixed-endpoint constants, so free-free edges contribute nothing) plus
// ρ·Aᵀ·(S_v − T_v)ᵀ over the rotation rows.
func (s *Solver) rhsNormal(st *State) *mat.Dense {
	rhs := mat.NewDense(s.unknowns(), 3, nil)
	for f := 0; f < s.mesh.NumFaces(); f++ {
		for _, e := range s.mesh.Face(f).Edges() {
			first, second := e[0], e[1]
			fi, se := s.info[first], s.info[second]
			w := s.weights.At(first, second)
			var b r3.Vec
			if fi.typ == Fixed {
				b = r3.Sub(b, st.Positions[first])
			}
			if se.typ == Fixed {
				b = r3.Add(b, st.Positions[second])
			}
			for _, p := range s.edgeRow(first, second) {
				addRow(rhs, p.col, r3.Scale(2*w*p.val, b))
			}
		}
	}
	var d mat.Dense
	for v := range st.Projected {
		d.Sub(st.Projected[v], st.Dual[v])
		for k := 0; k < 3; k++ {
			for c := 0; c < 3; c++ {
				rhs.Set(s.rotIndex(v, k), c,
					rhs.At(s.rotIndex(v, k), c)+s.opts.Rho*d.At(c, k))
			}
		}
	}
	return rhs
}

// addRow accumulates a 3-vector into row i of a 3-column matrix.
func addRow(m *mat.Dense, i int, v r3.Vec) {
	m.Set(i, 0, m.At(i, 0)+v.X)
	m.Set(i, 1, m.At(i, 1)+v.Y)
	m.Set(i, 2, m.At(i, 2)+v.Z)
}
