// Package spinath is your in-memory toolkit for quantum angular-momentum
// coupling — Clebsch-Gordan coefficients, Wigner 3j/6j/9j symbols and
// rotation-matrix elements, with exact half-integer arithmetic throughout.
//
// 🚀 What is spinath?
//
//	A small, focused library that brings together:
//		• Clebsch-Gordan coefficients & Wigner 3j symbols
//		• Wigner 6j symbols & Racah W coefficients
//		• Wigner 9j symbols
//		• Wigner small-d rotation functions
//		• Whole-matrix d(β) and D(α,β,γ) builders on gonum
//
// ✨ Why choose spinath?
//
//   - Half-integer safe – every argument is a doubled integer (j ↦ 2J),
//     so spin-1/2 bookkeeping stays exact with no float comparisons
//   - Predictable failure – impossible couplings return 0, broken call
//     contracts return sentinel errors; nothing panics, nothing logs
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	wigner/   — scalar coefficients: CG, ThreeJ, SixJ, RacahW, NineJ, SmallD
//	rotation/ — matrix surface: SmallDMatrix, D, DMatrix on gonum/mat
//
// Quick coupling example:
//
//	j=1/2 ⊗ j=1/2 → J=1
//	wigner.CG(1, 1, 1, -1, 2, 0) = 1/√2
//
// couples two spin-1/2 states with opposite projections into the
// triplet state |1 0⟩.
//
// Dive into the package docs for conventions, formulas and limits.
//
//	go get github.com/katalvlaran/spinath/wigner
package spinath
