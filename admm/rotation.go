package admm

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// so3Tol bounds both the squared-Frobenius deviation of S·Sᵀ from identity
// and the deviation of det(S) from 1.
const so3Tol = 1e-6

// closestRotation returns the proper rotation nearest to m in the Frobenius
// sense — the orthogonal Procrustes solution restricted to SO(3):
// for m = U·Σ·Vᵀ the minimizer is U·Vᵀ, with the column of U paired with
// the smallest singular value negated whenever det(U·Vᵀ) < 0.
func closestRotation(m *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return nil, ErrProjectionFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var rot mat.Dense
	rot.Mul(&u, v.T())
	if mat.Det(&rot) < 0 {
		// Singular values are descending, so column 2 holds the smallest.
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		rot.Mul(&u, v.T())
	}
	return &rot, nil
}

// isSO3 reports whether s is orthogonal with determinant +1 within so3Tol.
func isSO3(s *mat.Dense) bool {
	var sst mat.Dense
	sst.Mul(s, s.T())
	sst.Sub(&sst, eye3())
	if frob2(&sst) > so3Tol {
		return false
	}
	return math.Abs(mat.Det(s)-1) <= so3Tol
}

// eye3 returns a fresh 3×3 identity matrix.
func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// frob2 returns the squared Frobenius norm of m.
func frob2(m mat.Matrix) float64 {
	n := mat.Norm(m, 2)
	return n * n
}

// mulVec returns m·v for a 3×3 matrix.
func mulVec(m *mat.Dense, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// component returns coordinate axis (0=X, 1=Y, 2=Z) of v.
func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// setComponent writes coordinate axis of v.
func setComponent(v *r3.Vec, axis int, val float64) {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}
