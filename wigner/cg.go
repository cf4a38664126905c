// SPDX-License-Identifier: MIT

package wigner

import "math"

// CG computes the Clebsch-Gordan coefficient <j1 m1; j2 m2 | j3 m3>
// through Racah's 1942 closed-form summation.
//
// All six arguments are doubled integers (see the package doc).
//
// Contract (violations are non-recoverable errors):
//   - each (j, m) pair needs j >= 0, |m| <= j and j-m even
//     (ErrNegativeJ, ErrProjection, ErrParity);
//   - j1+j2+j3 <= MaxTriangleSum (ErrTriangleRange).
//
// Selection rules are not errors: an open (j1, j2, j3) triangle or
// m1+m2 != m3 makes the coefficient zero and CG returns (0, nil).
//
// Complexity: O(min(j1, j2, j3)) summation terms, O(1) memory.
func CG(j1, m1, j2, m2, j3, m3 int) (float64, error) {
	// --- 1. Contract checks on every (j, m) pair ---
	if err := checkPair("j1", "m1", j1, m1); err != nil {
		return 0, err
	}
	if err := checkPair("j2", "m2", j2, m2); err != nil {
		return 0, err
	}
	if err := checkPair("j3", "m3", j3, m3); err != nil {
		return 0, err
	}

	// --- 2. Triangle normalization and selection rules ---
	delta, ok, err := triangleFactor(j1, j2, j3)
	if err != nil {
		return 0, err
	}
	if !ok || m1+m2 != m3 {
		return 0, nil
	}

	// --- 3. Corner quantities of the Racah formula ---
	// k1..k3 are the halved triangle differences, jm1..jm3 the halved
	// label-projection gaps. All are non-negative integers at this point.
	var (
		k1  = (j2 + j3 - j1) / 2
		k2  = (j3 + j1 - j2) / 2
		k3  = (j1 + j2 - j3) / 2
		jm1 = (j1 - m1) / 2
		jm2 = (j2 - m2) / 2
		jm3 = (j3 - m3) / 2
	)

	// --- 4. Alternating summation ---
	// The mixed expression j2-jm2 is the halved quantity (j2+m2)/2: a
	// doubled label minus a halved gap is itself halved.
	izmin := max(0, jm1-k2, k3-jm2)
	izmax := min(k3, jm1, j2-jm2)
	if izmin > izmax {
		return 0, nil // empty range: the coefficient vanishes
	}
	sum := 0.0
	sign := phase(izmin)
	for iz := izmin; iz <= izmax; iz++ {
		sum += sign * binomial(k3, iz) * binomial(k2, jm1-iz) * binomial(k1, j2-jm2-iz)
		sign = -sign
	}

	// --- 5. Normalization prefactor ---
	pre := math.Sqrt(binomial(j1, k2)/binomial(j1, jm1)) *
		math.Sqrt(binomial(j2, k3)/binomial(j2, jm2)) *
		math.Sqrt(binomial(j3, k1)/binomial(j3, jm3)) *
		math.Sqrt(float64(j3+1)) * delta

	return pre * sum, nil
}

// ThreeJ computes the Wigner 3j symbol (j1 j2 j3; m1 m2 m3), the
// permutation-symmetric form of the Clebsch-Gordan coefficient:
//
//	(j1 j2 j3; m1 m2 m3) = (-1)^((j1-j2-m3)/2) / sqrt(j3+1) * <j1 m1; j2 m2 | j3 -m3>
//
// in doubled units (sqrt(j3+1) is the physical sqrt(2*J3+1)).
// Contract and zero conventions follow CG; the symbol vanishes unless
// m1+m2+m3 = 0.
func ThreeJ(j1, m1, j2, m2, j3, m3 int) (float64, error) {
	cg, err := CG(j1, m1, j2, m2, j3, -m3)
	if err != nil || cg == 0 {
		return 0, err
	}

	return phase((j1-j2-m3)/2) * cg / math.Sqrt(float64(j3+1)), nil
}
