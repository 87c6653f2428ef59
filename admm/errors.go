package admm

import "errors"

// Sentinel errors. The taxonomy mirrors the solver's failure surfaces:
// input-contract violations are reported before any state mutation;
// factorization and solve failures come from the linear-algebra layer;
// inconsistency and invariant violations occur mid-iteration and leave the
// previous frame's state intact.
var (
	// ErrNilMesh indicates a nil *mesh.Mesh was passed to New.
	ErrNilMesh = errors.New("admm: mesh is nil")

	// ErrBadRho indicates a non-positive rotation-constraint weight ρ.
	ErrBadRho = errors.New("admm: rho must be positive")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("admm: max iterations must be positive")

	// ErrUnknownMethod indicates an assembly Method outside the enum.
	ErrUnknownMethod = errors.New("admm: unknown assembly method")

	// ErrFixedOutOfRange indicates a fixed-vertex index outside the mesh.
	ErrFixedOutOfRange = errors.New("admm: fixed vertex index out of range")

	// ErrDuplicateFixed indicates the same vertex listed as fixed twice.
	ErrDuplicateFixed = errors.New("admm: duplicate fixed vertex index")

	// ErrDimensionMismatch indicates the target-position count differs from
	// the fixed-vertex count.
	ErrDimensionMismatch = errors.New("admm: target count does not match fixed vertex count")

	// ErrNotReady indicates Step or Energy use before SetTargets.
	ErrNotReady = errors.New("admm: SetTargets must be called before iterating")

	// ErrNotFactorizable indicates the assembled system matrix is not
	// positive-definite. Unrecoverable for this mesh/partition/ρ.
	ErrNotFactorizable = errors.New("admm: system matrix is not positive-definite")

	// ErrSolveFailed indicates the factorized solve reported non-success or
	// returned a solution of unexpected shape.
	ErrSolveFailed = errors.New("admm: linear solve failed")

	// ErrResidual indicates the solved vector does not satisfy the linear
	// system within tolerance — an assembly/solve mismatch.
	ErrResidual = errors.New("admm: solution does not satisfy the linear system")

	// ErrProjectionFailed indicates the SVD underlying the closest-rotation
	// projection did not converge.
	ErrProjectionFailed = errors.New("admm: closest-rotation projection failed")

	// ErrNotSO3 indicates a projected rotation failed the SO(3) invariant.
	ErrNotSO3 = errors.New("admm: projected rotation is not in SO(3)")

	// ErrNotStationary indicates the perturbation check found a descent
	// direction at the linear-solve optimum.
	ErrNotStationary = errors.New("admm: linear solve is not a stationary point")

	// ErrEnergyIncreased indicates the projection step raised the augmented
	// energy beyond tolerance.
	ErrEnergyIncreased = errors.New("admm: projection increased the augmented energy")
)
