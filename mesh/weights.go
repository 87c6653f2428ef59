package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// FaceCotangents returns the cotangents of the three interior angles of
// face f, ordered by face vertex: (cotA, cotB, cotC).
//
// With squared edge lengths a², b², c² opposite the respective vertices and
// the triangle area from the cross-product norm, the cotangent at a vertex
// is (sum of adjacent squared edges − opposite squared edge) / (4·area).
// Zero-area faces return ErrDegenerateFace.
func FaceCotangents(m *Mesh, f int) ([3]float64, error) {
	face := m.faces[f]
	a := m.positions[face[0]]
	b := m.positions[face[1]]
	c := m.positions[face[2]]
	aSq := r3.Norm2(r3.Sub(b, c))
	bSq := r3.Norm2(r3.Sub(c, a))
	cSq := r3.Norm2(r3.Sub(a, b))
	fourArea := 2 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
	if fourArea == 0 {
		return [3]float64{}, ErrDegenerateFace
	}
	return [3]float64{
		(bSq + cSq - aSq) / fourArea,
		(cSq + aSq - bSq) / fourArea,
		(aSq + bSq - cSq) / fourArea,
	}, nil
}

// Weights is the symmetric sparse cotangent weight matrix over vertex pairs.
// Off-diagonal entries hold the accumulated half-cotangent stiffness of an
// edge; each diagonal entry is the negated sum of its row's off-diagonals
// (Laplacian convention).
type Weights struct {
	n    int
	rows []map[int]float64
}

// Dim returns the vertex count the weights were built over.
func (w *Weights) Dim() int { return w.n }

// At returns the weight of the (i, j) pair, zero when absent.
func (w *Weights) At(i, j int) float64 {
	if w.rows[i] == nil {
		return 0
	}
	return w.rows[i][j]
}

func (w *Weights) add(i, j int, v float64) {
	if w.rows[i] == nil {
		w.rows[i] = make(map[int]float64)
	}
	w.rows[i][j] += v
}

// Row returns the stored entries of row i, keyed by column.
// The returned map is owned by the Weights and must not be mutated.
func (w *Weights) Row(i int) map[int]float64 { return w.rows[i] }

// CotangentWeights builds the Weights matrix from rest-pose geometry.
// Every face contributes, for each of its three angles, half the angle's
// cotangent to the opposite edge's symmetric pair entries and the negated
// half to both endpoint diagonals.
func CotangentWeights(m *Mesh) (*Weights, error) {
	w := &Weights{
		n:    m.NumVertices(),
		rows: make([]map[int]float64, m.NumVertices()),
	}
	for f := range m.faces {
		cot, err := FaceCotangents(m, f)
		if err != nil {
			return nil, err
		}
		edges := m.faces[f].Edges()
		for i := 0; i < 3; i++ {
			first, second := edges[i][0], edges[i][1]
			half := cot[i] / 2
			w.add(first, second, half)
			w.add(second, first, half)
			w.add(first, first, -half)
			w.add(second, second, -half)
		}
	}
	return w, nil
}
