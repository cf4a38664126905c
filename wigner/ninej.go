// SPDX-License-Identifier: MIT

package wigner

import "fmt"

// NineJ computes the Wigner 9j symbol of the row-major 3x3 label array
//
//	{j11 j12 j13}
//	{j21 j22 j23}
//	{j31 j32 j33}
//
// through its expansion as a sum over an auxiliary coupling label k of
// products of three 6j symbols.
//
// All nine arguments are doubled integers. Every row and column must
// satisfy the triangle rule for the symbol to be non-zero; broken triads
// and an empty k range are selection rules and give (0, nil).
//
// Contract (non-recoverable errors): labels non-negative (ErrNegativeJ);
// the inner 6j evaluations enforce MaxTriangleSum (ErrTriangleRange).
//
// Complexity: O(j^2) - an O(j) sum whose terms each cost three O(j)
// 6j summations. O(1) memory.
func NineJ(j11, j12, j13, j21, j22, j23, j31, j32, j33 int) (float64, error) {
	// --- 1. Contract check up front: a negative label entering the
	// |a-b| bounds below could masquerade as an empty range ---
	labels := [...]int{j11, j12, j13, j21, j22, j23, j31, j32, j33}
	for i, j := range labels {
		if j < 0 {
			return 0, fmt.Errorf("%w: j%d%d=%d", ErrNegativeJ, i/3+1, i%3+1, j)
		}
	}

	// --- 2. Auxiliary coupling range, doubled and stepping by 2 ---
	kmin := max(abs(j11-j33), abs(j12-j23), abs(j21-j32))
	kmax := min(j11+j33, j12+j23, j21+j32)
	if kmin > kmax {
		return 0, nil
	}

	// --- 3. Sum of triple 6j products ---
	// A k whose parity disagrees with one of the pairs only produces
	// zero-valued 6j factors, so the stride needs no parity split.
	sum := 0.0
	for k := kmin; k <= kmax; k += 2 {
		s1, err := SixJ(j11, j12, j13, j23, j33, k)
		if err != nil {
			return 0, err
		}
		s2, err := SixJ(j21, j22, j23, j12, k, j32)
		if err != nil {
			return 0, err
		}
		s3, err := SixJ(j31, j32, j33, k, j11, j21)
		if err != nil {
			return 0, err
		}
		sum += float64(k+1) * s1 * s2 * s3
	}

	return phase(kmin) * sum, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
