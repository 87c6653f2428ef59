package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dut09/arap/sparse"
)

// TestBuilder_SymToSumsDuplicates verifies that repeated Add calls on the
// same coordinate accumulate.
func TestBuilder_SymToSumsDuplicates(t *testing.T) {
	b := sparse.NewBuilder(3)
	b.Add(0, 1, 1.0)
	b.Add(0, 1, 1.5)
	b.Add(1, 0, 2.5)
	b.Add(2, 2, -4.0)

	sym, err := b.SymTo()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, sym.At(0, 1), 1e-15)
	assert.InDelta(t, 2.5, sym.At(1, 0), 1e-15)
	assert.InDelta(t, -4.0, sym.At(2, 2), 1e-15)
	assert.Equal(t, 0.0, sym.At(0, 2), "untouched entries stay zero")
}

// TestBuilder_SymToAsymmetric verifies mismatched transposed entries error.
func TestBuilder_SymToAsymmetric(t *testing.T) {
	b := sparse.NewBuilder(2)
	b.Add(0, 1, 1.0)
	b.Add(1, 0, 2.0)

	_, err := b.SymTo()
	assert.ErrorIs(t, err, sparse.ErrAsymmetric)
}

// TestBuilder_SymToMissingTranspose verifies a one-sided entry errors too.
func TestBuilder_SymToMissingTranspose(t *testing.T) {
	b := sparse.NewBuilder(2)
	b.Add(1, 0, 1.0)

	_, err := b.SymTo()
	assert.ErrorIs(t, err, sparse.ErrAsymmetric)
}

// TestBuilder_AddOutOfRangePanics verifies index misuse is treated as a
// programmer error.
func TestBuilder_AddOutOfRangePanics(t *testing.T) {
	b := sparse.NewBuilder(2)
	assert.Panics(t, func() { b.Add(2, 0, 1.0) }, "row out of range")
	assert.Panics(t, func() { b.Add(0, -1, 1.0) }, "column out of range")
	assert.Panics(t, func() { sparse.NewBuilder(0) }, "bad dimension")
}

// TestBuilder_DenseToMatchesSymTo verifies both compactions agree on
// symmetric input.
func TestBuilder_DenseToMatchesSymTo(t *testing.T) {
	b := sparse.NewBuilder(3)
	b.Add(0, 0, 2.0)
	b.Add(1, 1, 2.0)
	b.Add(0, 1, -1.0)
	b.Add(1, 0, -1.0)
	b.Add(2, 2, 0.5)

	sym, err := b.SymTo()
	require.NoError(t, err)
	dense := b.DenseTo()

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, dense.At(i, j), sym.At(i, j), 1e-15, "(%d,%d)", i, j)
		}
	}
}
