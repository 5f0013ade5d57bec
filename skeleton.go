package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/interp/blas"
)

// StopPolicy selects the stopping criterion used to control the size of each
// skeleton column.  Candidate entries are the values |r_i / (D_i - beta_i)|
// that the next expansion steps would set.
type StopPolicy int

const (
	// StopMax stops expanding a column once the largest candidate entry would
	// be tol^2/2 or less.
	StopMax StopPolicy = iota + 1

	// StopSum stops expanding a column once the sum over all candidate
	// entries would be tol/2 or less.  This is the default policy.
	StopSum
)

// ErrNotPositiveDefinite is returned by Skeleton when the Schur complement of
// the fine-grid operator on a column's selected pivot support is not strictly
// positive, meaning the operator is not positive definite there.
var ErrNotPositiveDefinite = errors.New("interp: operator not positive definite on pivot support")

// initialBasisCols is the initial capacity, in columns, of the packed
// triangular basis store.  Doubled on overflow.
const initialBasisCols = 35

// Interpolator computes sparse interpolation skeletons.  The zero value is
// ready to use and applies the StopSum stopping policy.
type Interpolator struct {
	// Policy selects the stopping criterion.  The zero value selects StopSum.
	Policy StopPolicy
}

// InterpolationSkeleton computes, column-wise, the sparsity pattern of the
// sparse minimizer X of
//
//	f = 0.5 X^T A X - B^T X
//
// together with the weighted row sums X * u, using the default StopSum
// stopping policy.  See Interpolator.Skeleton for details.
func InterpolationSkeleton(a, b *CSC, d, u []float64, tol float64) (*Pattern, []float64, error) {
	var ip Interpolator
	return ip.Skeleton(a, b, d, u, tol)
}

// Skeleton computes, column-wise, the sparsity pattern of the sparse
// minimizer X of
//
//	f = 0.5 X^T A X - B^T X
//
// where a is a symmetric positive-definite m x m matrix, b is an m x n matrix
// whose columns are target interpolation directions and d is the diagonal of
// a, supplied separately.  The returned Pattern is the m x n support of X and
// the returned slice is X * u, the sum of the columns of X weighted by u.
// tol controls sparsity: larger tolerances produce emptier skeletons.
//
// For each column of b the solver greedily grows an A-orthonormal basis over
// a set of pivot rows, always extending by the row maximizing
// |r_i| / sqrt(D_i - beta_i) over the current sparse residual r, where beta
// accumulates the energy the basis has already absorbed at each row.  When two
// candidates tie, the one scanned first wins, i.e. the one appearing first in
// the residual's index array.  Expansion stops as soon as the stopping policy
// reports that all remaining candidate entries are negligible.
//
// Skeleton returns an error without producing outputs if a is not square, the
// row counts of a and b differ, d or u have lengths other than rows(a) and
// cols(b) respectively, or tol is not a positive real scalar.
// ErrNotPositiveDefinite is returned if a pivot exposes a non-positive Schur
// complement diagonal.
func (ip *Interpolator) Skeleton(a, b *CSC, d, u []float64, tol float64) (*Pattern, []float64, error) {
	policy := ip.Policy
	if policy == 0 {
		policy = StopSum
	}
	if policy != StopMax && policy != StopSum {
		return nil, nil, fmt.Errorf("interp: unrecognised stopping policy %d", int(policy))
	}

	ar, ac := a.Dims()
	if ar != ac {
		return nil, nil, errors.New("interp: matrix A is not square")
	}
	br, bc := b.Dims()
	if ar != br {
		return nil, nil, fmt.Errorf("interp: rows(A) = %d but rows(B) = %d", ar, br)
	}
	if len(d) != ar {
		return nil, nil, fmt.Errorf("interp: diagonal has length %d but rows(A) = %d", len(d), ar)
	}
	if len(u) != bc {
		return nil, nil, fmt.Errorf("interp: weight vector has length %d but cols(B) = %d", len(u), bc)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return nil, nil, fmt.Errorf("interp: tolerance must be a positive real scalar, got %v", tol)
	}

	// encode the "/2" (and the squaring for StopMax) into tol once so the
	// column loop can compare norm > tol directly
	switch policy {
	case StopMax:
		tol *= 0.5 * tol
	case StopSum:
		tol *= 0.5
	}

	m, n := br, bc
	am := a.RawMatrix()
	bm := b.RawMatrix()

	ws := newSkelWorkspace(m)
	xsum := make([]float64, m)
	indptr := make([]int, n+1)
	// initial guess: nnz(X_skel) = 2*nnz(B)
	ind := make([]int, 0, 2*bm.NNZ())

	for j := 0; j < n; j++ {
		indptr[j] = len(ind)

		begin, end := bm.Indptr[j], bm.Indptr[j+1]
		if begin == end {
			continue
		}

		var err error
		ind, err = ws.solveColumn(ind, am, bm.Ind[begin:end], bm.Data[begin:end], d, u[j], tol, policy, xsum)
		if err != nil {
			return nil, nil, err
		}
	}
	indptr[n] = len(ind)

	return NewPattern(m, n, indptr, ind), xsum, nil
}

// skelWorkspace holds the per-call state of a skeleton computation, allocated
// once and reused column to column.  flag is all false and mapToQi all -1
// between columns; solveColumn restores both before returning.
type skelWorkspace struct {
	beta []float64 // per-row energy absorbed by the basis, defined on residual support
	sv   []float64 // dense scratch for the masked sparse product
	rp   []float64 // residual values
	aqp  []float64 // A q_k values
	sp   []float64 // sparse scratch values, also Q^T gather output

	ri      []int // residual indices
	aqi     []int // A q_k indices
	si      []int // sparse scratch indices
	mapToQi []int // position of a row in the pivot list, -1 if not a pivot

	flag []bool // row membership marker for the masked sparse product

	q    []float64 // packed upper-triangular A-orthonormal basis
	maxQ int       // capacity of q in columns
	qi   []int     // pivot rows of the current column, in selection order
}

func newSkelWorkspace(m int) *skelWorkspace {
	ws := &skelWorkspace{
		beta:    make([]float64, m),
		sv:      make([]float64, m),
		rp:      make([]float64, m),
		aqp:     make([]float64, m),
		sp:      make([]float64, m),
		ri:      make([]int, m),
		aqi:     make([]int, m),
		si:      make([]int, m),
		mapToQi: make([]int, m),
		flag:    make([]bool, m),
		maxQ:    initialBasisCols,
	}
	ws.q = make([]float64, ws.maxQ*(ws.maxQ+1)/2)
	for i := range ws.mapToQi {
		ws.mapToQi[i] = -1
	}
	return ws
}

// solveColumn runs the greedy A-orthogonal expansion for one coarse column
// with initial residual b given by the index/value pair bi/bp, appending the
// column's sorted pivot rows to ind and accumulating uj-weighted column values
// into xsum.  It returns the extended ind slice.
func (ws *skelWorkspace) solveColumn(ind []int, am *blas.SparseMatrix, bi []int, bp []float64, d []float64, uj, tol float64, policy StopPolicy, xsum []float64) ([]int, error) {
	k := 0
	ws.qi = ws.qi[:0]

	// initial residual = B e_j
	rnz := copy(ws.ri, bi)
	copy(ws.rp, bp)

	// initialise beta over the residual support, and use the residual to find
	// the first pivot s, its weight w = X_sj and the stopping norm
	s := ws.ri[0]
	ws.beta[s] = 0
	w := ws.rp[0] / math.Sqrt(d[s])
	norm := math.Abs(ws.rp[0] / d[s])
	for t := 1; t < rnz; t++ {
		i := ws.ri[t]
		r := ws.rp[t]
		dd := d[i]
		tw := r / math.Sqrt(dd)
		tn := math.Abs(r / dd)
		ws.beta[i] = 0
		if math.Abs(tw) > math.Abs(w) {
			w, s = tw, i
		}
		if policy == StopMax {
			if tn > norm {
				norm = tn
			}
		} else {
			norm += tn
		}
	}

	for norm > tol {
		// check if we underestimated the basis size
		if k+1 > ws.maxQ {
			ws.maxQ *= 2
			q := make([]float64, ws.maxQ*(ws.maxQ+1)/2)
			copy(q, ws.q)
			ws.q = q
		}
		// column k of the packed triangular store
		qk := ws.q[k*(k+1)/2 : k*(k+1)/2+k+1]

		dsb := d[s] - ws.beta[s]
		if !(dsb > 0) {
			for _, i := range ws.qi {
				ws.mapToQi[i] = -1
			}
			return ind, fmt.Errorf("%w: pivot row %d", ErrNotPositiveDefinite, s)
		}

		// record the new non-zero and update the inverse map
		ws.qi = append(ws.qi, s)
		ws.mapToQi[s] = k

		// q_k := alpha^{-1} (I - Q Q^t A) e_s with alpha = sqrt(D_s - beta_s),
		// computed as Q Q^t A e_s on the pivot support then scaled; this keeps
		// q_k^t A q_k = 1 and q_k^t A q_l = 0 for l < k
		begin, end := am.Indptr[s], am.Indptr[s+1]
		gatherPivots(qk, k, ws.mapToQi, am.Ind[begin:end], am.Data[begin:end])
		mulQTrans(ws.sp, k, ws.q, qk)
		mulQ(qk, k, ws.q, ws.sp)
		normFac := -1.0 / math.Sqrt(dsb)
		for t := 0; t < k; t++ {
			qk[t] *= normFac
		}
		qk[k] = -normFac

		// X e_j += w Q e_k, so sum_j u_j X e_j += u_j w Q e_k
		ujw := uj * w
		for t := 0; t <= k; t++ {
			xsum[ws.qi[t]] += ujw * qk[t]
		}

		// A q_k as a sparse vector.  The mask zeroes every current pivot row:
		// the rows of earlier pivots because Q is A-orthogonal there, and row
		// s artificially, which is harmless because the updated residual
		// r_s - w (A q_k)_s is exactly 0 and row s is dropped from r anyway.
		aqnz := spMatSparseVec(ws.aqi, ws.aqp, am, ws.qi, qk, ws.sv, ws.flag, ws.mapToQi)

		// r := r - w A q_k, beta := beta + A q_k .* A q_k
		copy(ws.si, ws.ri[:rnz])
		copy(ws.sp, ws.rp[:rnz])
		rnz = residUpdate(ws.ri, ws.rp, ws.beta, ws.si[:rnz], ws.sp[:rnz], w, ws.aqi[:aqnz], ws.aqp[:aqnz], ws.mapToQi)

		// find the best next pivot, recompute the norm
		if rnz > 0 {
			s = ws.ri[0]
			w = ws.rp[0] / math.Sqrt(d[s]-ws.beta[s])
			norm = math.Abs(ws.rp[0] / (d[s] - ws.beta[s]))
		} else {
			norm = 0
		}
		for t := 1; t < rnz; t++ {
			i := ws.ri[t]
			r := ws.rp[t]
			dd := d[i] - ws.beta[i]
			tw := r / math.Sqrt(dd)
			tn := math.Abs(r / dd)
			if math.Abs(tw) > math.Abs(w) {
				w, s = tw, i
			}
			if policy == StopMax {
				if tn > norm {
					norm = tn
				}
			} else {
				norm += tn
			}
		}

		k++
	}

	// sort the non-zero indices for this column and restore the inverse map
	heapSort(ws.qi)
	ind = append(ind, ws.qi...)
	for _, i := range ws.qi {
		ws.mapToQi[i] = -1
	}
	return ind, nil
}
