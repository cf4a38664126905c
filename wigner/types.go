// SPDX-License-Identifier: MIT

package wigner

import (
	"errors"
	"fmt"
)

// Numeric-range limits. Both are part of the call contract: crossing them
// fails with a sentinel error instead of returning a silently rounded
// value, and callers may rely on the boundary staying where it is.
const (
	// MaxBinomialN is the largest n the binomial evaluator accepts.
	// Beyond it the accumulating products leave the float64 range in
	// which the evaluator's rounding behaviour is controlled.
	MaxBinomialN = 1000

	// MaxTriangleSum is the largest admissible j1+j2+j3 of a coupled
	// triple. Larger sums would drive the triangle normalization into
	// binomials with uncontrolled round-off.
	MaxTriangleSum = 300
)

var (
	// ErrNegativeJ reports an angular-momentum label below zero.
	ErrNegativeJ = errors.New("wigner: negative angular momentum")
	// ErrProjection reports a projection with |m| > j.
	ErrProjection = errors.New("wigner: projection out of range")
	// ErrParity reports a label/projection pair of differing parity (j-m odd).
	ErrParity = errors.New("wigner: label/projection parity mismatch")
	// ErrBinomialRange reports a binomial argument beyond MaxBinomialN.
	ErrBinomialRange = errors.New("wigner: binomial argument beyond MaxBinomialN")
	// ErrTriangleRange reports a triangle sum beyond MaxTriangleSum.
	ErrTriangleRange = errors.New("wigner: triangle sum beyond MaxTriangleSum")
)

// checkPair validates one doubled (j, m) pair: j >= 0, |m| <= j, j-m even.
// jName and mName identify the offending arguments in the wrapped error.
func checkPair(jName, mName string, j, m int) error {
	if j < 0 {
		return fmt.Errorf("%w: %s=%d", ErrNegativeJ, jName, j)
	}
	if m < -j || m > j {
		return fmt.Errorf("%w: %s=%d with %s=%d", ErrProjection, mName, m, jName, j)
	}
	if (j-m)%2 != 0 {
		return fmt.Errorf("%w: %s=%d with %s=%d", ErrParity, jName, j, mName, m)
	}

	return nil
}

// phase returns (-1)^p for an integer exponent of either sign.
func phase(p int) float64 {
	if p&1 != 0 {
		return -1
	}

	return 1
}
