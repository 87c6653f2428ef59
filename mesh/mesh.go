package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Face is an ordered triple of vertex indices defining one triangle.
// Faces are immutable for the solver's lifetime.
type Face [3]int

// Edges returns the three directed edges of the face. Edge e is the edge
// opposite face vertex e, so the angle at vertex e faces Edges()[e].
func (f Face) Edges() [3][2]int {
	return [3][2]int{
		{f[1], f[2]},
		{f[2], f[0]},
		{f[0], f[1]},
	}
}

// Mesh is an immutable rest-pose triangle mesh: vertex positions plus faces.
// The solver never mutates a Mesh; deformed positions live in solver state.
type Mesh struct {
	positions []r3.Vec
	faces     []Face
}

// New builds a Mesh from rest-pose positions and faces. Inputs are copied.
// Returns ErrNoVertices, ErrNoFaces or ErrFaceIndexOutOfRange on malformed
// input; topology beyond index bounds is not validated.
func New(positions []r3.Vec, faces []Face) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoVertices
	}
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	for _, f := range faces {
		for _, v := range f {
			if v < 0 || len(positions) <= v {
				return nil, ErrFaceIndexOutOfRange
			}
		}
	}
	m := &Mesh{
		positions: append([]r3.Vec(nil), positions...),
		faces:     append([]Face(nil), faces...),
	}
	return m, nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.positions) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Position returns the rest-pose position of vertex v.
func (m *Mesh) Position(v int) r3.Vec { return m.positions[v] }

// Positions returns a copy of all rest-pose positions.
func (m *Mesh) Positions() []r3.Vec {
	return append([]r3.Vec(nil), m.positions...)
}

// Face returns face f.
func (m *Mesh) Face(f int) Face { return m.faces[f] }
