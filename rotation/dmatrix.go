// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinath/wigner"
)

// SmallDMatrix builds the reduced rotation matrix d^j(beta) for the
// doubled label j, the matrix of e^{+i beta Jy} in the |j m> basis.
//
// The result is (j+1)x(j+1) with rows and columns ordered by descending
// projection: entry (r, c) holds d^j_{m1 m2}(beta) for m1 = j-2r and
// m2 = j-2c. Rows and columns are orthonormal, so the matrix is a
// proper rotation of determinant one.
//
// Errors: wigner.ErrNegativeJ when j < 0, wigner.ErrBinomialRange when
// j exceeds wigner.MaxBinomialN.
func SmallDMatrix(j int, beta float64) (*mat.Dense, error) {
	// --- 1. Validate the label before sizing the matrix ---
	if j < 0 {
		return nil, fmt.Errorf("%w: j=%d", wigner.ErrNegativeJ, j)
	}
	if j > wigner.MaxBinomialN {
		return nil, fmt.Errorf("%w: j=%d", wigner.ErrBinomialRange, j)
	}

	// --- 2. Fill element-wise from the scalar amplitude ---
	n := j + 1
	d := mat.NewDense(n, n, nil)
	for r := 0; r < n; r++ {
		m1 := j - 2*r
		for c := 0; c < n; c++ {
			v, err := wigner.SmallD(j, m1, j-2*c, beta)
			if err != nil {
				return nil, err
			}
			d.Set(r, c, v)
		}
	}

	return d, nil
}
