// SPDX-License-Identifier: MIT

package wigner

// binomial returns the binomial coefficient C(n, m) as a float64.
//
// The evaluator works on m1, the smaller of m and n-m. Below n = 250 it
// accumulates numerator and denominator separately and divides once,
// paying a single rounding step instead of one per factor. From n = 250
// on, the separate accumulators would overflow float64 long before
// n reaches MaxBinomialN, so it interleaves multiply and divide and the
// running value stays near the final magnitude.
//
// Contract: 0 <= n <= MaxBinomialN. Every caller bounds n beforehand:
// the triangle evaluator through its sum cap, SmallD through its label
// cap. Out-of-range m yields 0 by the usual convention.
func binomial(n, m int) float64 {
	m1 := min(m, n-m)
	if m1 < 0 {
		return 0
	}
	if m1 == 0 {
		return 1
	}

	if n < 250 {
		s1, s2 := 1.0, 1.0
		for i := 1; i <= m1; i++ {
			s1 *= float64(n - i + 1)
			s2 *= float64(m1 - i + 1)
		}

		return s1 / s2
	}

	s := 1.0
	for i := 1; i <= m1; i++ {
		s = s * float64(n-i+1) / float64(m1-i+1)
	}

	return s
}
