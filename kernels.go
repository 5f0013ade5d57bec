package interp

import (
	"math"

	"github.com/james-bowman/interp/blas"
)

// spMatSparseVec computes y := A * x where A is a CSC matrix held as a
// blas.SparseMatrix (major axis = columns) and x is a sparse vector given by
// parallel index/value slices.  x may have unsorted indices.  The output y is
// emitted with strictly ascending indices into yi/y and the number of non-zero
// components is returned.  Components at rows i with mask[i] >= 0 are
// suppressed.
//
// A dense version of y is accumulated into the scratch slice sv by summing
// columns of A scaled by the corresponding x component.  Each newly touched row
// is pushed onto a max-heap built inside yi; flag records membership so the
// heap contains no duplicates.  Draining the heap writes indices from the back
// of yi so the result ends up ascending, and clears flag as it goes.
//
// sv, flag and mask must be of length A.J.  flag must be all false on input
// and will be all false on output.  yi and y are assumed big enough to store
// the result.  sv is only written at rows admitted by the mask.
func spMatSparseVec(yi []int, y []float64, a *blas.SparseMatrix, xi []int, x []float64, sv []float64, flag []bool, mask []int) int {
	yn := 0
	for t, j := range xi {
		xj := x[t]
		if math.Abs(xj) == 0.0 {
			continue
		}
		for p := a.Indptr[j]; p < a.Indptr[j+1]; p++ {
			i := a.Ind[p]
			if mask[i] >= 0 {
				continue
			}
			if !flag[i] {
				// sift the new row index up the heap; yi is treated as
				// 1-based heap storage
				yn++
				hole := yn
				for hole > 1 {
					parent := hole >> 1
					ip := yi[parent-1]
					if i < ip {
						break
					}
					yi[hole-1] = ip
					hole = parent
				}
				yi[hole-1] = i
				flag[i] = true
				sv[i] = 0
			}
			sv[i] += a.Data[p] * xj
		}
	}
	// repeated delete-max, emitting from the back so yi ends up ascending
	for hi := yn; hi > 1; hi-- {
		i := yi[hi-1]
		yi[hi-1] = yi[0]
		// heap size = hi - 1
		hole := 1
		for {
			child := hole << 1
			r := child + 1
			if r < hi && yi[r-1] > yi[child-1] {
				child = r
			}
			if child >= hi || i >= yi[child-1] {
				break
			}
			yi[hole-1] = yi[child-1]
			hole = child
		}
		yi[hole-1] = i
	}
	for t := 0; t < yn; t++ {
		y[t] = sv[yi[t]]
		flag[yi[t]] = false
	}
	return yn
}

// residUpdate sets r := x - alpha * y in a single streaming pass merging the
// two index-ascending sparse vectors x and y, writing the result into ri/rp
// and returning nnz(r).  Components at indices with mask >= 0 are dropped
// from r.
//
// It also folds y into the dense energy accumulator beta: beta[i] += y_i^2
// wherever x is also present, and beta[i] = y_i^2 (a pure set, beta was
// undefined there) where only y is present.  beta updates are not masked.
//
// ri/rp must not alias xi/xp or yi/yp.
func residUpdate(ri []int, rp []float64, beta []float64, xi []int, xp []float64, alpha float64, yi []int, yp []float64, mask []int) int {
	rnz := 0
	ix, iy := 0, 0
	xn, yn := len(xi), len(yi)
	if xn > 0 && yn > 0 {
		i, j := xi[0], yi[0]
	merge:
		for {
			switch {
			case i < j:
				if mask[i] < 0 {
					ri[rnz] = i
					rp[rnz] = xp[ix]
					rnz++
				}
				ix++
				if ix == xn {
					break merge
				}
				i = xi[ix]
			case i > j:
				y := yp[iy]
				beta[j] = y * y
				if mask[j] < 0 {
					ri[rnz] = j
					rp[rnz] = -alpha * y
					rnz++
				}
				iy++
				if iy == yn {
					break merge
				}
				j = yi[iy]
			default:
				y := yp[iy]
				beta[j] += y * y
				if mask[i] < 0 {
					ri[rnz] = i
					rp[rnz] = xp[ix] - alpha*y
					rnz++
				}
				ix++
				iy++
				if ix == xn || iy == yn {
					break merge
				}
				i, j = xi[ix], yi[iy]
			}
		}
	}
	for ; ix < xn; ix++ {
		i := xi[ix]
		if mask[i] < 0 {
			ri[rnz] = i
			rp[rnz] = xp[ix]
			rnz++
		}
	}
	for ; iy < yn; iy++ {
		j := yi[iy]
		y := yp[iy]
		beta[j] = y * y
		if mask[j] < 0 {
			ri[rnz] = j
			rp[rnz] = -alpha * y
			rnz++
		}
	}
	return rnz
}
