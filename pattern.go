package interp

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	_ Sparser    = (*Pattern)(nil)
	_ mat.Matrix = (*Pattern)(nil)
)

// Pattern is a logical sparse matrix in compressed sparse column form.  It
// stores only a sparsity pattern: column pointers and row indices, with every
// stored entry implicitly equal to 1.  It is the output format of the
// interpolation skeleton solver, where only the support of the interpolation
// operator matters and not its values.
// As this type implements the gonum mat.Matrix interface (At returns 1 at
// stored entries and 0 elsewhere), it may be used with any of the Gonum mat
// functions that accept Matrix types as parameters.
type Pattern struct {
	r, c   int
	indptr []int
	ind    []int
}

// NewPattern creates a new logical CSC matrix of r rows and c columns with the
// specified column pointer and row index slices.  The supplied slices will be
// used as the backing storage to the matrix.  Row indices must be sorted in
// ascending order within each column.
func NewPattern(r int, c int, indptr []int, ind []int) *Pattern {
	if uint(r) < 0 {
		panic(mat.ErrRowAccess)
	}
	if uint(c) < 0 {
		panic(mat.ErrColAccess)
	}
	return &Pattern{r: r, c: c, indptr: indptr, ind: ind}
}

// Dims returns the size of the matrix as the number of rows and columns
func (p *Pattern) Dims() (int, int) {
	return p.r, p.c
}

// NNZ returns the Number of Non Zero elements in the sparse matrix.
func (p *Pattern) NNZ() int {
	return len(p.ind)
}

// At returns 1 if the element of the matrix located at row i and column j is
// stored and 0 otherwise.  At will panic if specified values for i or j fall
// outside the dimensions of the matrix.
func (p *Pattern) At(i, j int) float64 {
	if uint(i) < 0 || uint(i) >= uint(p.r) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) < 0 || uint(j) >= uint(p.c) {
		panic(mat.ErrColAccess)
	}

	col := p.ind[p.indptr[j]:p.indptr[j+1]]
	idx := sort.SearchInts(col, i)
	if idx < len(col) && col[idx] == i {
		return 1.0
	}
	return 0.0
}

// T performs an implicit transpose by returning the receiver inside a
// mat.Transpose.
func (p *Pattern) T() mat.Matrix {
	return mat.Transpose{Matrix: p}
}

// ColNNZ returns the Number of Non Zero values in the specified col j.  ColNNZ
// will panic if j is out of range.
func (p *Pattern) ColNNZ(j int) int {
	if uint(j) < 0 || uint(j) >= uint(p.c) {
		panic(mat.ErrColAccess)
	}
	return p.indptr[j+1] - p.indptr[j]
}

// ColSupport returns the row indices of the stored entries of column j.  The
// returned slice shares storage with the receiver and must not be modified.
// ColSupport will panic if j is out of range.
func (p *Pattern) ColSupport(j int) []int {
	if uint(j) < 0 || uint(j) >= uint(p.c) {
		panic(mat.ErrColAccess)
	}
	return p.ind[p.indptr[j]:p.indptr[j+1]]
}

// DoColNonZero calls the function fn for each of the stored entries of column
// j in the receiver.  The function fn takes a row/column index and the element
// value, which is always 1 for a Pattern.
func (p *Pattern) DoColNonZero(j int, fn func(i, j int, v float64)) {
	for _, i := range p.ColSupport(j) {
		fn(i, j, 1.0)
	}
}

// RawPattern returns the underlying column pointer and row index slices.
// Changes to the returned slices will be reflected in the receiver.
func (p *Pattern) RawPattern() (indptr []int, ind []int) {
	return p.indptr, p.ind
}

// ToCSC returns a CSC numeric format version of the matrix with every stored
// entry set to 1.  The returned CSC matrix will not share underlying storage
// with the receiver.
func (p *Pattern) ToCSC() *CSC {
	indptr := make([]int, len(p.indptr))
	ind := make([]int, len(p.ind))
	data := make([]float64, len(p.ind))
	copy(indptr, p.indptr)
	copy(ind, p.ind)
	for i := range data {
		data[i] = 1
	}
	return NewCSC(p.r, p.c, indptr, ind, data)
}
