// Package admm solves As-Rigid-As-Possible (ARAP) surface deformation with
// fixed-vertex handles via the Alternating Direction Method of Multipliers.
//
// The objective couples per-edge rigidity with per-vertex rotations:
//
//	E(p, R) = Σ_edges w_ij · ‖(p_i − p_j) − R_i·(p̄_i − p̄_j)‖²
//	          s.t. R_v ∈ SO(3), p_v = handle target for fixed v
//
// ADMM splits the SO(3) constraint off into auxiliary rotations S and a
// scaled dual T, so every iteration is three cheap steps:
//
//  1. Linear solve — one pre-factorized sparse SPD system, three RHS
//     columns (x, y, z), unknowns = free positions + unconstrained R.
//  2. Projection — S_v ← closest proper rotation to R_v + T_v (SVD polar
//     decomposition, the orthogonal Procrustes solution).
//  3. Dual update — T_v ← T_v + R_v − S_v.
//
// Precomputation (weights, system matrix, Cholesky factorization) happens
// once in New; only the right-hand side and the State vectors change across
// frames, so one factorization serves the whole editing session.
//
// Two proven-equivalent derivations assemble the system and its RHS —
// DirectGradient and NormalEquations — selected by Options.Method and
// cross-tested for entrywise equality.
//
// Complexity:
//
//	– Precompute: O(#faces) assembly + one factorization
//	– Per iteration: one multi-RHS solve + O(#vertices) 3×3 SVDs
//
// Errors (sentinel, matched via errors.Is):
//
//	– input contract:   ErrNilMesh, ErrBadRho, ErrBadIterations,
//	                    ErrUnknownMethod, ErrFixedOutOfRange,
//	                    ErrDuplicateFixed, ErrDimensionMismatch, ErrNotReady
//	– factorization:    ErrNotFactorizable
//	– solve failure:    ErrSolveFailed
//	– inconsistency:    ErrResidual
//	– invariant:        ErrNotSO3, ErrProjectionFailed,
//	                    ErrNotStationary, ErrEnergyIncreased
//
// A mid-iteration error (inconsistency or invariant) restores the state of
// the previous frame: a single bad frame never corrupts the session.
//
// Example usage:
//
//	m := mesh.UnitQuad()
//	s, err := admm.New(m, []int{0}, admm.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	target := r3.Add(m.Position(0), r3.Vec{X: 0.1})
//	if err := s.Deform([]r3.Vec{target}); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.Energy().Total())
package admm
