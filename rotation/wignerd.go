// SPDX-License-Identifier: MIT

package rotation

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinath/wigner"
)

// D returns one element of the full Wigner rotation operator
//
//	D^j_{m1 m2}(alpha, beta, gamma)
//	  = <j m1| e^{+i alpha Jz} e^{+i beta Jy} e^{+i gamma Jz} |j m2>
//	  = e^{+i alpha m1/2} d^j_{m1 m2}(beta) e^{+i gamma m2/2},
//
// with j, m1, m2 doubled and the exponents halved back to physical
// projections. Validation matches wigner.SmallD.
func D(j, m1, m2 int, alpha, beta, gamma float64) (complex128, error) {
	d, err := wigner.SmallD(j, m1, m2, beta)
	if err != nil {
		return 0, err
	}

	return cmplx.Rect(d, (alpha*float64(m1)+gamma*float64(m2))/2), nil
}

// DMatrix builds the full complex rotation matrix D^j(alpha, beta, gamma)
// with the same (j+1)x(j+1) shape and descending-projection ordering as
// SmallDMatrix. The result is unitary to machine precision.
//
// Errors: wigner.ErrNegativeJ when j < 0, wigner.ErrBinomialRange when
// j exceeds wigner.MaxBinomialN.
func DMatrix(j int, alpha, beta, gamma float64) (*mat.CDense, error) {
	// --- 1. Validate, then reuse the real reduced matrix ---
	small, err := SmallDMatrix(j, beta)
	if err != nil {
		return nil, err
	}

	// --- 2. Precompute the column phases e^{+i gamma m2/2} ---
	n := j + 1
	colPhase := make([]complex128, n)
	for c := 0; c < n; c++ {
		colPhase[c] = cmplx.Rect(1, gamma*float64(j-2*c)/2)
	}

	// --- 3. Scale every entry by its row and column phase ---
	out := mat.NewCDense(n, n, nil)
	for r := 0; r < n; r++ {
		rowPhase := cmplx.Rect(1, alpha*float64(j-2*r)/2)
		for c := 0; c < n; c++ {
			out.Set(r, c, rowPhase*colPhase[c]*complex(small.At(r, c), 0))
		}
	}

	return out, nil
}
