package mesh

import "errors"

// Sentinel errors returned by the mesh package. Callers match them with
// errors.Is; none of these conditions panics.
var (
	// ErrNoVertices indicates an attempt to build a mesh with no vertices.
	ErrNoVertices = errors.New("mesh: mesh has no vertices")

	// ErrNoFaces indicates an attempt to build a mesh with no faces.
	ErrNoFaces = errors.New("mesh: mesh has no faces")

	// ErrFaceIndexOutOfRange indicates a face referencing a vertex index
	// outside [0, NumVertices).
	ErrFaceIndexOutOfRange = errors.New("mesh: face references vertex out of range")

	// ErrDegenerateFace indicates a zero-area triangle, for which cotangent
	// weights are undefined. The geometry is reported, never repaired.
	ErrDegenerateFace = errors.New("mesh: degenerate (zero-area) face")

	// ErrBadGridSize indicates a Grid request with fewer than two vertices
	// along an axis.
	ErrBadGridSize = errors.New("mesh: grid needs at least 2 vertices per axis")
)
