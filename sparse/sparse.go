package sparse

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrAsymmetric indicates the accumulated entries do not form a symmetric
// matrix within the relative tolerance used by SymTo.
var ErrAsymmetric = errors.New("sparse: accumulated matrix is not symmetric")

// symTol is the relative entrywise tolerance for the symmetry check.
const symTol = 1e-12

type triplet struct {
	i, j int
	v    float64
}

// Builder accumulates entries of an n×n matrix in coordinate form.
// Add may be called any number of times for the same coordinate; duplicates
// are summed during compaction.
type Builder struct {
	n    int
	data []triplet
}

// NewBuilder returns a Builder for an n×n matrix.
// It panics if n is not positive.
func NewBuilder(n int) *Builder {
	if n <= 0 {
		panic("sparse: dimension must be positive")
	}
	return &Builder{n: n}
}

// Dim returns the matrix dimension n.
func (b *Builder) Dim() int { return b.n }

// Add accumulates v into entry (i, j).
// It panics if either index is out of range.
func (b *Builder) Add(i, j int, v float64) {
	if i < 0 || b.n <= i {
		panic("sparse: row index out of range")
	}
	if j < 0 || b.n <= j {
		panic("sparse: column index out of range")
	}
	b.data = append(b.data, triplet{i, j, v})
}

// compact sums duplicate coordinates and returns the entry map together
// with the largest absolute entry (used to scale the symmetry tolerance).
func (b *Builder) compact() (map[[2]int]float64, float64) {
	acc := make(map[[2]int]float64, len(b.data))
	for _, t := range b.data {
		acc[[2]int{t.i, t.j}] += t.v
	}
	var scale float64
	for _, v := range acc {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	return acc, scale
}

// SymTo compacts the accumulated triplets into a symmetric dense matrix.
// Entries (i, j) and (j, i) must agree within symTol relative to the largest
// accumulated entry; otherwise SymTo returns ErrAsymmetric.
func (b *Builder) SymTo() (*mat.SymDense, error) {
	acc, scale := b.compact()
	tol := symTol * math.Max(scale, 1)
	s := mat.NewSymDense(b.n, nil)
	for ij, v := range acc {
		i, j := ij[0], ij[1]
		if i > j {
			continue
		}
		if i == j {
			s.SetSym(i, i, v)
			continue
		}
		if math.Abs(v-acc[[2]int{j, i}]) > tol {
			return nil, ErrAsymmetric
		}
		s.SetSym(i, j, v)
	}
	// Entries stored only below the diagonal still need the symmetry check
	// against their (implicitly zero) transposed counterpart.
	for ij, v := range acc {
		i, j := ij[0], ij[1]
		if i <= j {
			continue
		}
		if _, ok := acc[[2]int{j, i}]; !ok && math.Abs(v) > tol {
			return nil, ErrAsymmetric
		}
	}
	return s, nil
}

// DenseTo compacts the accumulated triplets into a dense matrix with no
// symmetry requirement. Intended for cross-checks and diagnostics.
func (b *Builder) DenseTo() *mat.Dense {
	acc, _ := b.compact()
	d := mat.NewDense(b.n, b.n, nil)
	for ij, v := range acc {
		d.Set(ij[0], ij[1], v)
	}
	return d
}
