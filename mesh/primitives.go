package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Canonical well-formed meshes. Handy as deformation targets in examples and
// as fixtures in tests; none of them can fail construction.

// Equilateral returns a single equilateral triangle of unit side length in
// the z=0 plane.
func Equilateral() *Mesh {
	return &Mesh{
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0.5, Y: math.Sqrt(3) / 2, Z: 0},
		},
		faces: []Face{{0, 1, 2}},
	}
}

// UnitQuad returns the unit square split into two triangles sharing the
// 0–2 diagonal:
//
//	3───2
//	│ ╱ │
//	0───1
func UnitQuad() *Mesh {
	return &Mesh{
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		faces: []Face{{0, 1, 2}, {0, 2, 3}},
	}
}

// Pyramid returns an open square-based pyramid: four base corners, one apex,
// four side faces and no base faces. Unlike the planar quad, every vertex's
// incident edge vectors span all of 3-space.
func Pyramid() *Mesh {
	return &Mesh{
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0.5, Y: 0.5, Z: 0.7},
		},
		faces: []Face{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}},
	}
}

// Grid returns an nx×ny vertex grid in the z=0 plane with the given spacing,
// each cell split into two triangles. Returns ErrBadGridSize when an axis
// has fewer than two vertices.
func Grid(nx, ny int, spacing float64) (*Mesh, error) {
	if nx < 2 || ny < 2 {
		return nil, ErrBadGridSize
	}
	positions := make([]r3.Vec, 0, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			positions = append(positions, r3.Vec{
				X: float64(x) * spacing,
				Y: float64(y) * spacing,
			})
		}
	}
	faces := make([]Face, 0, 2*(nx-1)*(ny-1))
	for y := 0; y < ny-1; y++ {
		for x := 0; x < nx-1; x++ {
			v := y*nx + x
			faces = append(faces,
				Face{v, v + 1, v + nx + 1},
				Face{v, v + nx + 1, v + nx},
			)
		}
	}
	return &Mesh{positions: positions, faces: faces}, nil
}
