package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dut09/arap/mesh"
)

// TestNew_NoVertices verifies that an empty vertex list is rejected.
func TestNew_NoVertices(t *testing.T) {
	_, err := mesh.New(nil, []mesh.Face{{0, 1, 2}})
	assert.ErrorIs(t, err, mesh.ErrNoVertices, "empty vertex list must error")
}

// TestNew_NoFaces verifies that an empty face list is rejected.
func TestNew_NoFaces(t *testing.T) {
	_, err := mesh.New([]r3.Vec{{}, {X: 1}, {Y: 1}}, nil)
	assert.ErrorIs(t, err, mesh.ErrNoFaces, "empty face list must error")
}

// TestNew_FaceIndexOutOfRange verifies index bounds checking in both
// directions.
func TestNew_FaceIndexOutOfRange(t *testing.T) {
	positions := []r3.Vec{{}, {X: 1}, {Y: 1}}

	_, err := mesh.New(positions, []mesh.Face{{0, 1, 3}})
	assert.ErrorIs(t, err, mesh.ErrFaceIndexOutOfRange, "index past the end must error")

	_, err = mesh.New(positions, []mesh.Face{{0, -1, 2}})
	assert.ErrorIs(t, err, mesh.ErrFaceIndexOutOfRange, "negative index must error")
}

// TestNew_CopiesInput verifies the mesh is insulated from caller mutation.
func TestNew_CopiesInput(t *testing.T) {
	positions := []r3.Vec{{}, {X: 1}, {Y: 1}}
	m, err := mesh.New(positions, []mesh.Face{{0, 1, 2}})
	require.NoError(t, err)

	positions[0] = r3.Vec{X: 99}
	assert.Equal(t, r3.Vec{}, m.Position(0), "mesh must copy the caller's slice")
}

// TestFace_Edges verifies that edge e is opposite face vertex e.
func TestFace_Edges(t *testing.T) {
	f := mesh.Face{7, 8, 9}
	edges := f.Edges()
	assert.Equal(t, [2]int{8, 9}, edges[0], "edge 0 must not touch vertex 0")
	assert.Equal(t, [2]int{9, 7}, edges[1], "edge 1 must not touch vertex 1")
	assert.Equal(t, [2]int{7, 8}, edges[2], "edge 2 must not touch vertex 2")
}

// TestUnitQuad_SharedDiagonal verifies the canonical quad layout: four
// vertices, two triangles sharing the 0–2 diagonal.
func TestUnitQuad_SharedDiagonal(t *testing.T) {
	m := mesh.UnitQuad()
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 2, m.NumFaces())
	for f := 0; f < 2; f++ {
		face := m.Face(f)
		assert.Contains(t, face[:], 0, "both faces share vertex 0")
		assert.Contains(t, face[:], 2, "both faces share vertex 2")
	}
}

// TestPyramid_NonPlanar verifies the pyramid apex leaves the base plane.
func TestPyramid_NonPlanar(t *testing.T) {
	m := mesh.Pyramid()
	assert.Equal(t, 5, m.NumVertices())
	assert.Equal(t, 4, m.NumFaces())
	assert.Greater(t, m.Position(4).Z, 0.0, "apex must be above the base")
}

// TestGrid_Counts verifies vertex and face counts of a 3×3 grid.
func TestGrid_Counts(t *testing.T) {
	m, err := mesh.Grid(3, 3, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 9, m.NumVertices())
	assert.Equal(t, 8, m.NumFaces())
}

// TestGrid_BadSize verifies the per-axis minimum.
func TestGrid_BadSize(t *testing.T) {
	_, err := mesh.Grid(1, 3, 1.0)
	assert.ErrorIs(t, err, mesh.ErrBadGridSize)

	_, err = mesh.Grid(3, 0, 1.0)
	assert.ErrorIs(t, err, mesh.ErrBadGridSize)
}
