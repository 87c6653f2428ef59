// Package mesh defines the triangulated-surface data model consumed by the
// deformation solver, and builds the cotangent edge weights from rest-pose
// geometry.
//
// A Mesh owns an immutable rest pose: vertex positions (r3.Vec) and faces
// (ordered index triples). CotangentWeights turns that geometry into the
// symmetric per-edge stiffness matrix of the discrete Laplace–Beltrami
// operator: each triangle angle contributes half its cotangent to the edge
// opposite it, and the negated half to both endpoint diagonals.
//
// Weight invariants (tested):
//
//	– symmetry: At(i,j) == At(j,i) for every stored entry
//	– each face contributes exactly three half-cotangent terms
//	– diagonal entries equal the negated sum of the row's off-diagonals
//
// Degenerate (zero-area) faces cannot produce finite cotangents; they are
// reported as ErrDegenerateFace and never silently repaired.
//
// Canonical constructions (Equilateral, UnitQuad, Pyramid, Grid) provide
// small well-formed meshes for tests, examples and demos.
//
// Example usage:
//
//	m := mesh.UnitQuad()
//	w, err := mesh.CotangentWeights(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(w.At(0, 1)) // stiffness of a boundary edge
package mesh
