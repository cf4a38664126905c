// SPDX-License-Identifier: MIT

// Package wigner computes quantum angular-momentum coupling coefficients:
// Clebsch-Gordan coefficients, Wigner 3j/6j/9j symbols, Racah W
// coefficients, and the Wigner small-d rotation function.
//
// Conventions:
//
//   - Every angular momentum j and projection m is a DOUBLED integer: the
//     argument j stands for the physical quantum number J = j/2. Spin-1/2
//     is the integer 1, spin-1 is 2, and so on. Doubling keeps every
//     selection rule in exact integer arithmetic; no half-integer ever
//     touches a float.
//   - A projection m must satisfy |m| <= j and share the parity of j
//     (j-m even). Violations are contract errors, not zeros.
//   - Phases follow the Condon-Shortley convention; SmallD is the matrix
//     element <j m1| exp(+i*beta*Jy) |j m2>.
//
// What:
//
//   - CG: Clebsch-Gordan coefficient <j1 m1; j2 m2 | j3 m3> (Racah 1942).
//   - ThreeJ: Wigner 3j symbol, the permutation-symmetric form of CG.
//   - SixJ: Wigner 6j symbol (single Racah summation, four triangle factors).
//   - RacahW: Racah W recoupling coefficient, a rephased 6j.
//   - NineJ: Wigner 9j symbol (sum over products of three 6j symbols).
//   - SmallD: Wigner rotation function d^j_{m1 m2}(beta).
//   - Triangle: the coupling selection-rule predicate.
//
// Why:
//
//   - Nuclear & atomic structure: recoupling shell-model matrix elements.
//   - Spectroscopy: intensities and angular distributions of transitions.
//   - Quantum information: decomposing tensor products of spin states.
//
// Errors vs zeros:
//
//   - A violated SELECTION RULE (open triangle, m1+m2 != m3, empty
//     summation range) is a mathematical zero: functions return (0, nil).
//   - A violated CALL CONTRACT (negative j, |m| > j, j-m odd, or arguments
//     beyond MaxBinomialN/MaxTriangleSum) returns a wrapped sentinel:
//     ErrNegativeJ, ErrProjection, ErrParity, ErrBinomialRange or
//     ErrTriangleRange. The accompanying value is meaningless; callers are
//     not expected to recover, only to stop and fix the inputs.
//
// Complexity:
//
//   - CG, SixJ, SmallD: O(j) summation terms, O(1) memory.
//   - NineJ: O(j^2) - an O(j) sum whose terms cost three 6j evaluations.
//
// All functions are pure and reentrant; concurrent calls need no locks.
//
// References: Varshalovich, Moskalev & Khersonskii, "Quantum Theory of
// Angular Momentum" (1988); Edmonds, "Angular Momentum in Quantum
// Mechanics" (1957); Racah, Phys. Rev. 62, 438 (1942).
package wigner
