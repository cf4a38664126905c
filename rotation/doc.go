// SPDX-License-Identifier: MIT

// Package rotation assembles Wigner rotation matrices on top of the
// scalar amplitudes from package wigner.
//
// The rotation package provides:
//
//   - SmallDMatrix: the real (j+1)x(j+1) matrix d^j(beta) of e^{+i beta Jy},
//     returned as a gonum *mat.Dense ready for further linear algebra.
//   - D: a single complex element of the full Euler-angle operator
//     e^{+i alpha Jz} e^{+i beta Jy} e^{+i gamma Jz}.
//   - DMatrix: the full complex matrix D^j(alpha, beta, gamma) as a
//     *mat.CDense.
//
// Labels follow the doubled-integer convention of package wigner: pass
// j = 2J, and rows/columns run over m = j, j-2, ..., -j, so row 0 holds
// the highest projection. Matrices are orthogonal (real case) or
// unitary (complex case) to machine precision; building one costs
// O(j^3) time and O(j^2) memory.
//
// Errors reuse the wigner sentinels: ErrNegativeJ for j < 0 and
// ErrBinomialRange for labels beyond MaxBinomialN.
package rotation
