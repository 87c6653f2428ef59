// Package sparse accumulates matrix entries in coordinate (triplet) form and
// compacts them into factorizable gonum types.
//
// The solver's weight and system matrices are assembled by visiting every
// face of a mesh and adding many small contributions to overlapping entries.
// Builder collects those contributions as (row, col, value) triplets; SymTo
// sums duplicates and verifies the result is symmetric before handing a
// mat.SymDense to a Cholesky factorization.
//
// Errors (sentinel):
//
//	– ErrAsymmetric if the accumulated entries violate symmetry beyond the
//	  numeric tolerance. Out-of-range indices panic: appending with a bad
//	  index is a programmer error, not a data error.
//
// Example usage:
//
//	b := sparse.NewBuilder(4)
//	b.Add(0, 1, 2.5)
//	b.Add(1, 0, 2.5)
//	b.Add(0, 0, -2.5)
//	b.Add(1, 1, -2.5)
//	sym, err := b.SymTo()
package sparse
