// SPDX-License-Identifier: MIT

package wigner_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinath/wigner"
)

// TestNineJ_KnownValues pins tabulated 9j symbols:
// {1/2 1/2 1; 1/2 1/2 1; 1 1 0} = -1/18 and the all-ones symbol, which
// vanishes by row-exchange antisymmetry.
func TestNineJ_KnownValues(t *testing.T) {
	v, err := wigner.NineJ(1, 1, 2, 1, 1, 2, 2, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0/18, v, 1e-12)

	v, err = wigner.NineJ(2, 2, 2, 2, 2, 2, 2, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12, "odd total momentum with equal rows must cancel")
}

// TestNineJ_ZeroCornerReduction checks that a vanishing bottom-right
// entry collapses the 9j to a single 6j with the standard phase and
// dimension factor.
func TestNineJ_ZeroCornerReduction(t *testing.T) {
	sets := [][6]int{
		// j1, j2, j3, j4, j5, j7 with j6=j3 and j8=j7 implied.
		{1, 1, 2, 1, 1, 2},
		{2, 2, 2, 2, 2, 2},
		{2, 4, 4, 2, 2, 2},
		{3, 1, 2, 1, 3, 2},
	}
	for _, s := range sets {
		j1, j2, j3, j4, j5, j7 := s[0], s[1], s[2], s[3], s[4], s[5]

		got, err := wigner.NineJ(j1, j2, j3, j4, j5, j3, j7, j7, 0)
		require.NoError(t, err)

		sj, err := wigner.SixJ(j1, j2, j3, j5, j4, j7)
		require.NoError(t, err)
		want := sj / math.Sqrt(float64((j3+1)*(j7+1)))
		if ((j2+j3+j4+j7)/2)%2 != 0 {
			want = -want
		}
		assert.InDelta(t, want, got, 1e-12, "set %v", s)
	}
}

// TestNineJ_TransposeInvariance verifies the symbol equals that of its
// transposed argument matrix.
func TestNineJ_TransposeInvariance(t *testing.T) {
	orig, err := wigner.NineJ(2, 3, 1, 1, 2, 3, 3, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, -11.0/144, orig, 1e-12)

	tr, err := wigner.NineJ(2, 1, 3, 3, 2, 1, 1, 3, 2)
	require.NoError(t, err)
	assert.InDelta(t, orig, tr, 1e-12)
}

// TestNineJ_RowSwapPhase verifies exchanging two rows multiplies the
// symbol by (-1)^(sum of all nine labels / 2).
func TestNineJ_RowSwapPhase(t *testing.T) {
	rows := [3][3]int{{2, 3, 1}, {1, 2, 3}, {3, 1, 2}}

	orig, err := wigner.NineJ(
		rows[0][0], rows[0][1], rows[0][2],
		rows[1][0], rows[1][1], rows[1][2],
		rows[2][0], rows[2][1], rows[2][2])
	require.NoError(t, err)

	swapped, err := wigner.NineJ(
		rows[1][0], rows[1][1], rows[1][2],
		rows[0][0], rows[0][1], rows[0][2],
		rows[2][0], rows[2][1], rows[2][2])
	require.NoError(t, err)

	total := 0
	for _, r := range rows {
		total += r[0] + r[1] + r[2]
	}
	sgn := 1.0
	if (total/2)%2 != 0 {
		sgn = -1
	}
	assert.InDelta(t, sgn*orig, swapped, 1e-12)
}

// TestNineJ_ZeroWhenRangeEmpty verifies an empty recoupling range is a
// plain zero, not an error.
func TestNineJ_ZeroWhenRangeEmpty(t *testing.T) {
	v, err := wigner.NineJ(0, 0, 0, 0, 0, 2, 0, 2, 0)
	assert.NoError(t, err)
	assert.Zero(t, v)
}

// TestNineJ_BrokenTriadZero verifies a broken row zeroes the symbol even
// when the recoupling range itself is non-empty.
func TestNineJ_BrokenTriadZero(t *testing.T) {
	v, err := wigner.NineJ(2, 2, 4, 2, 2, 6, 4, 4, 2)
	assert.NoError(t, err)
	assert.Zero(t, v)
}

// TestNineJ_ContractViolations verifies the fatal input classes.
func TestNineJ_ContractViolations(t *testing.T) {
	v, err := wigner.NineJ(2, 2, 2, 2, -2, 2, 2, 2, 2)
	require.ErrorIs(t, err, wigner.ErrNegativeJ)
	assert.ErrorContains(t, err, "j22")
	assert.Zero(t, v)

	v, err = wigner.NineJ(200, 200, 400, 200, 200, 400, 400, 400, 0)
	require.ErrorIs(t, err, wigner.ErrTriangleRange)
	assert.Zero(t, v)
}
