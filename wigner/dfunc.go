// SPDX-License-Identifier: MIT

package wigner

import (
	"fmt"
	"math"
)

// SmallD computes the Wigner rotation function d^j_{m1 m2}(beta), the
// matrix element <j m1| exp(+i*beta*Jy) |j m2> of a rotation about the
// y axis.
//
// j, m1, m2 are doubled integers; beta is an angle in radians, used as
// given (periodic, but not reduced modulo 2*pi internally).
//
// Contract (non-recoverable errors):
//   - (j, m1) and (j, m2) must each satisfy j >= 0, |m| <= j, j-m even
//     (ErrNegativeJ, ErrProjection, ErrParity);
//   - j <= MaxBinomialN (ErrBinomialRange): the normalization binomials
//     run over n = j.
//
// Complexity: O(j) summation terms, O(1) memory.
func SmallD(j, m1, m2 int, beta float64) (float64, error) {
	// --- 1. Contract checks ---
	if err := checkPair("j", "m1", j, m1); err != nil {
		return 0, err
	}
	if err := checkPair("j", "m2", j, m2); err != nil {
		return 0, err
	}
	if j > MaxBinomialN {
		return 0, fmt.Errorf("%w: j=%d", ErrBinomialRange, j)
	}

	// --- 2. Halved quantities and half-angle factors ---
	jm1 := (j - m1) / 2
	jm2 := (j - m2) / 2
	mm := (m1 + m2) / 2
	sb, cb := math.Sin(beta/2), math.Cos(beta/2)

	// --- 3. Alternating summation over half-angle powers ---
	// math.Pow keeps 0^0 = 1, which the beta = 0 and beta = pi endpoints
	// rely on. The mixed expression jm1+m1 is the halved (j+m1)/2.
	iamin := max(0, -mm)
	iamax := min(jm1, jm2)
	sum := 0.0
	sign := phase(jm1 - iamin)
	for ia := iamin; ia <= iamax; ia++ {
		sum += sign * binomial(jm1, ia) * binomial(jm1+m1, jm2-ia) *
			math.Pow(sb, float64(jm1+jm2-2*ia)) * math.Pow(cb, float64(mm+2*ia))
		sign = -sign
	}

	// --- 4. Normalization ---
	return sum * math.Sqrt(binomial(j, jm1)/binomial(j, jm2)), nil
}
