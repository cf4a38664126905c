// SPDX-License-Identifier: MIT

package wigner

// SixJ computes the Wigner 6j symbol
//
//	{j1 j2 j3}
//	{l1 l2 l3}
//
// by the single-sum Racah formula over four triangle factors.
//
// All six arguments are doubled integers. The symbol couples the triads
// (j1, j2, j3), (j1, l2, l3), (l1, j2, l3) and (l1, l2, j3); if any of
// the four fails the triangle rule the symbol is zero and SixJ returns
// (0, nil).
//
// Contract (non-recoverable errors): labels non-negative (ErrNegativeJ)
// and every triad sum within MaxTriangleSum (ErrTriangleRange).
//
// Complexity: O(min(j1+j2-j3, ...)) summation terms, O(1) memory.
func SixJ(j1, j2, j3, l1, l2, l3 int) (float64, error) {
	// --- 1. Four triangle factors; any broken triad zeroes the symbol ---
	deltaS, okS, err := triangleFactor(j1, j2, j3)
	if err != nil {
		return 0, err
	}
	delta1, ok1, err := triangleFactor(j1, l2, l3)
	if err != nil {
		return 0, err
	}
	delta2, ok2, err := triangleFactor(l1, j2, l3)
	if err != nil {
		return 0, err
	}
	delta3, ok3, err := triangleFactor(l1, l2, j3)
	if err != nil {
		return 0, err
	}
	if !okS || !ok1 || !ok2 || !ok3 {
		return 0, nil
	}

	// --- 2. Halved corner quantities ---
	// s and t1..t3 are the halved triad sums, k1..k3 the halved triangle
	// differences of the upper triad.
	var (
		s  = (j1 + j2 + j3) / 2
		k1 = (j2 + j3 - j1) / 2
		k2 = (j3 + j1 - j2) / 2
		k3 = (j1 + j2 - j3) / 2
		t1 = (j1 + l2 + l3) / 2
		t2 = (l1 + j2 + l3) / 2
		t3 = (l1 + l2 + j3) / 2
	)

	// --- 3. Alternating Racah summation ---
	izmin := max(s, t1, t2, t3)
	izmax := min(k1+t1, k2+t2, k3+t3)
	sum := 0.0
	sign := phase(izmin)
	for iz := izmin; iz <= izmax; iz++ {
		sum += sign * binomial(iz+1, iz-s) * binomial(k1, iz-t1) *
			binomial(k2, iz-t2) * binomial(k3, iz-t3)
		sign = -sign
	}

	// The upper triad's factor divides; the other three multiply.
	return sum * delta1 * delta2 * delta3 / deltaS, nil
}

// RacahW computes the Racah W recoupling coefficient
// W(j1 j2 l2 l1; j3 l3), which differs from the 6j symbol only by phase:
//
//	W(j1 j2 l2 l1; j3 l3) = (-1)^((j1+j2+l2+l1)/2) * {j1 j2 j3; l1 l2 l3}
//
// Contract and zero conventions follow SixJ.
func RacahW(j1, j2, l2, l1, j3, l3 int) (float64, error) {
	sj, err := SixJ(j1, j2, j3, l1, l2, l3)
	if err != nil || sj == 0 {
		return 0, err
	}

	return phase((j1+j2+l2+l1)/2) * sj, nil
}
