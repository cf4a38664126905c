// SPDX-License-Identifier: MIT

package wigner

import (
	"fmt"
	"math"
)

// Triangle reports whether the doubled triple (j1, j2, j3) can couple:
// all labels non-negative, each pairwise sum at least the third label,
// and j1+j2+j3 even. It is the pure selection-rule predicate; a false
// answer means "the coefficient is zero", never an error.
func Triangle(j1, j2, j3 int) bool {
	if j1 < 0 || j2 < 0 || j3 < 0 {
		return false
	}
	if j2+j3-j1 < 0 || j3+j1-j2 < 0 || j1+j2-j3 < 0 {
		return false
	}

	return (j1+j2+j3)%2 == 0
}

// triangleFactor computes the triangle normalization delta(j1, j2, j3)
// together with its validity flag.
//
// Guard order matters here: a negative label or an oversized sum is a
// contract violation and fails before the selection rules are consulted,
// while a non-closing or odd-sum triple is merely invalid and contributes
// zero to any coefficient.
//
// When valid, delta = 1 / sqrt(C(S, j3) * C(j3, k1) * (S+1)) with
// S = (j1+j2+j3)/2 and k1 = (j2+j3-j1)/2. The 6j and 9j summations rely
// on this exact algebraic form; keep it expressed through these two
// binomials rather than factorials.
func triangleFactor(j1, j2, j3 int) (delta float64, ok bool, err error) {
	if j1 < 0 || j2 < 0 || j3 < 0 {
		return 0, false, fmt.Errorf("%w: (%d, %d, %d)", ErrNegativeJ, j1, j2, j3)
	}
	if j1+j2+j3 > MaxTriangleSum {
		return 0, false, fmt.Errorf("%w: j1+j2+j3=%d", ErrTriangleRange, j1+j2+j3)
	}
	if j2+j3-j1 < 0 || j3+j1-j2 < 0 || j1+j2-j3 < 0 || (j1+j2+j3)%2 != 0 {
		return 0, false, nil
	}

	s := (j1 + j2 + j3) / 2
	k1 := (j2 + j3 - j1) / 2

	return 1 / math.Sqrt(binomial(s, j3)*binomial(j3, k1)*float64(s+1)), true, nil
}
