package admm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dut09/arap/admm"
	"github.com/dut09/arap/mesh"
)

// bothMethods builds one solver per derivation over the same mesh and
// fixed set.
func bothMethods(t *testing.T, m *mesh.Mesh, fixed []int) (direct, normal *admm.Solver) {
	t.Helper()
	opts := admm.DefaultOptions()
	opts.Method = admm.DirectGradient
	direct, err := admm.New(m, fixed, opts)
	require.NoError(t, err)

	opts.Method = admm.NormalEquations
	normal, err = admm.New(m, fixed, opts)
	require.NoError(t, err)
	return direct, normal
}

// TestAssemble_MethodsAgree verifies the two independent derivations
// produce numerically identical system matrices.
func TestAssemble_MethodsAgree(t *testing.T) {
	cases := []struct {
		name  string
		mesh  *mesh.Mesh
		fixed []int
	}{
		{"quad one corner", mesh.UnitQuad(), []int{0}},
		{"quad two corners", mesh.UnitQuad(), []int{1, 3}},
		{"pyramid", mesh.Pyramid(), []int{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			direct, normal := bothMethods(t, tc.mesh, tc.fixed)
			a := direct.SystemForTest()
			b := normal.SystemForTest()

			n, _ := a.Dims()
			maxDiff := 0.0
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if d := math.Abs(a.At(i, j) - b.At(i, j)); d > maxDiff {
						maxDiff = d
					}
				}
			}
			assert.Less(t, maxDiff, 1e-9, "derivations must match entrywise")
		})
	}
}

// TestRHS_MethodsAgree verifies both derivations build the same right-hand
// side for the same state.
func TestRHS_MethodsAgree(t *testing.T) {
	direct, normal := bothMethods(t, mesh.UnitQuad(), []int{0})
	target := []r3.Vec{{X: 0.1, Y: -0.05, Z: 0.02}}
	require.NoError(t, direct.SetTargets(target))
	require.NoError(t, normal.SetTargets(target))

	a := direct.RHSForTest()
	b := normal.RHSForTest()
	rows, cols := a.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, a.At(i, j), b.At(i, j), 1e-9, "rhs(%d,%d)", i, j)
		}
	}
}

// TestAssemble_SystemShape verifies the unknown layout: one slot per free
// vertex plus three rotation rows per vertex.
func TestAssemble_SystemShape(t *testing.T) {
	s, err := admm.New(mesh.UnitQuad(), []int{0}, admm.DefaultOptions())
	require.NoError(t, err)

	n, _ := s.SystemForTest().Dims()
	assert.Equal(t, 3+3*4, n, "3 free vertices + 3·4 rotation rows")
}

// TestAssemble_FreeFreeCoupling verifies that an edge between two free
// vertices, though absent from the RHS, still couples them through the
// system matrix off-diagonal.
func TestAssemble_FreeFreeCoupling(t *testing.T) {
	s, err := admm.New(mesh.UnitQuad(), []int{0}, admm.DefaultOptions())
	require.NoError(t, err)

	// Free ordering: vertex 1 → slot 0, vertex 2 → slot 1. The 1–2 edge is
	// visited once (boundary of face {0,1,2}) with weight 1/2.
	m := s.SystemForTest()
	assert.InDelta(t, -1.0, m.At(0, 1), 1e-12, "free-free off-diagonal −2w")
	assert.InDelta(t, -1.0, m.At(1, 0), 1e-12, "symmetric counterpart")
}
