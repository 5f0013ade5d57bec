package interp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/james-bowman/interp/blas"
)

var (
	_ Sparser    = (*CSC)(nil)
	_ mat.Matrix = (*CSC)(nil)

	_ Sparser    = (*CSR)(nil)
	_ mat.Matrix = (*CSR)(nil)
)

// CSC is a Compressed Sparse Column format sparse matrix implementation (sometimes
// called Compressed Column Storage (CCS) format).  This allows large sparse (mostly
// zero valued) matrices to be stored efficiently in memory (only storing non-zero
// values).  CSC matrices are poor for constructing sparse matrices incrementally
// but very good for arithmetic operations and are the native operand format of the
// interpolation skeleton solver.  The matrix is stored as an array of column
// pointers of length cols+1, an array of row indices (sorted in ascending order
// within each column) and a parallel array of data values.
// As this type implements the gonum mat.Matrix interface, it may be used with any
// of the Gonum mat functions that accept Matrix types as parameters in place of
// other matrix types included in the Gonum mat package e.g. mat.Dense.
type CSC struct {
	matrix blas.SparseMatrix
}

// NewCSC creates a new Compressed Sparse Column format sparse matrix.
// The matrix is initialised to the size of the specified r * c dimensions (rows *
// columns) with the specified slices containing column pointers and row indexes
// of non-zero elements and the non-zero data values themselves respectively.  The
// supplied slices will be used as the backing storage to the matrix so changes to
// values of the slices will be reflected in the created matrix and vice versa.
// Row indices must be sorted in ascending order within each column.
func NewCSC(r int, c int, indptr []int, ind []int, data []float64) *CSC {
	if uint(r) < 0 {
		panic(mat.ErrRowAccess)
	}
	if uint(c) < 0 {
		panic(mat.ErrColAccess)
	}

	return &CSC{
		matrix: blas.SparseMatrix{
			I: c, J: r,
			Indptr: indptr,
			Ind:    ind,
			Data:   data,
		},
	}
}

// NNZ returns the Number of Non Zero elements in the sparse matrix.
func (c *CSC) NNZ() int {
	return c.matrix.NNZ()
}

// Dims returns the size of the matrix as the number of rows and columns
func (c *CSC) Dims() (int, int) {
	return c.matrix.J, c.matrix.I
}

// At returns the element of the matrix located at row i and column j.  At will panic
// if specified values for i or j fall outside the dimensions of the matrix.
func (c *CSC) At(m, n int) float64 {
	return c.matrix.At(n, m)
}

// Set sets the element of the matrix located at row i and column j to value v.  Set
// will panic if specified values for i or j fall outside the dimensions of the matrix.
func (c *CSC) Set(m, n int, v float64) {
	c.matrix.Set(n, m, v)
}

// T transposes the matrix creating a new CSR matrix sharing the same backing data
// storage but switching column and row sizes and index & index pointer slices i.e.
// rows become columns and columns become rows.
func (c *CSC) T() mat.Matrix {
	return &CSR{matrix: c.matrix}
}

// RawMatrix returns a pointer to the underlying blas sparse matrix.  Changes made
// to the returned structure will be reflected in the receiver.
func (c *CSC) RawMatrix() *blas.SparseMatrix {
	return &c.matrix
}

// ColNNZ returns the Number of Non Zero values in the specified col i.  ColNNZ will
// panic if i is out of range.
func (c *CSC) ColNNZ(i int) int {
	if uint(i) < 0 || uint(i) >= uint(c.matrix.I) {
		panic(mat.ErrColAccess)
	}
	return c.matrix.Indptr[i+1] - c.matrix.Indptr[i]
}

// ColView returns the mat.Vector representing the column j.  The returned vector is
// a sparse Vector sharing the same storage as the matrix so any changes to the
// vector will be reflected in the matrix and vice versa.  ColView will panic if j
// is out of range.
func (c *CSC) ColView(j int) mat.Vector {
	if uint(j) < 0 || uint(j) >= uint(c.matrix.I) {
		panic(mat.ErrColAccess)
	}
	begin, end := c.matrix.Indptr[j], c.matrix.Indptr[j+1]
	return NewVector(c.matrix.J, c.matrix.Ind[begin:end], c.matrix.Data[begin:end])
}

// Diagonal extracts the main diagonal of the matrix into a newly allocated dense
// slice.  Diagonal will panic if the matrix is not square.
func (c *CSC) Diagonal() []float64 {
	r, cc := c.Dims()
	if r != cc {
		panic(mat.ErrShape)
	}
	d := make([]float64, r)
	for j := 0; j < cc; j++ {
		for k := c.matrix.Indptr[j]; k < c.matrix.Indptr[j+1]; k++ {
			if c.matrix.Ind[k] == j {
				d[j] = c.matrix.Data[k]
				break
			}
		}
	}
	return d
}

// MulVecTo performs matrix vector multiplication (dst+=A*x or dst+=A^T*x), where A
// is the receiver, and stores the result in dst.  MulVecTo panics if ac != len(x)
// or ar != len(dst).
func (c *CSC) MulVecTo(dst []float64, trans bool, x []float64) {
	ar, ac := c.Dims()
	if trans {
		ar, ac = ac, ar
	}
	if ac != len(x) || ar != len(dst) {
		panic(mat.ErrShape)
	}
	// the major axis of a CSC matrix is its columns so the blas transpose flag
	// is inverted relative to the receiver
	blas.Dusmv(!trans, 1, &c.matrix, x, 1, dst, 1)
}

// ToDense returns a mat.Dense dense format version of the matrix.  The returned
// mat.Dense matrix will not share underlying storage with the receiver nor is the
// receiver modified by this call.
func (c *CSC) ToDense() *mat.Dense {
	dense := mat.NewDense(c.matrix.J, c.matrix.I, nil)

	for i := 0; i < len(c.matrix.Indptr)-1; i++ {
		for j := c.matrix.Indptr[i]; j < c.matrix.Indptr[i+1]; j++ {
			dense.Set(c.matrix.Ind[j], i, c.matrix.Data[j])
		}
	}

	return dense
}

// ToCSR returns a Compressed Sparse Row sparse format version of the matrix.  The
// returned CSR matrix will not share underlying storage with the receiver nor is
// the receiver modified by this call.
// NB, the current implementation uses COO as an intermediate format so converts to
// COO before converting to CSR.
func (c *CSC) ToCSR() *CSR {
	return c.ToCOO().ToCSR()
}

// ToCOO returns a COOrdinate sparse format version of the matrix.  The returned
// COO matrix will not share underlying storage with the receiver nor is the
// receiver modified by this call.
func (c *CSC) ToCOO() *COO {
	rows := make([]int, c.NNZ())
	cols := make([]int, c.NNZ())
	data := make([]float64, c.NNZ())

	for i := 0; i < len(c.matrix.Indptr)-1; i++ {
		for j := c.matrix.Indptr[i]; j < c.matrix.Indptr[i+1]; j++ {
			cols[j] = i
		}
	}

	copy(rows, c.matrix.Ind)
	copy(data, c.matrix.Data)

	return NewCOO(c.matrix.J, c.matrix.I, rows, cols, data)
}

// DoColNonZero calls the function fn for each of the non-zero elements of column j
// in the receiver.  The function fn takes a row/column index and the element value
// of the receiver at (i, j).
func (c *CSC) DoColNonZero(j int, fn func(i, j int, v float64)) {
	if uint(j) < 0 || uint(j) >= uint(c.matrix.I) {
		panic(mat.ErrColAccess)
	}
	for k := c.matrix.Indptr[j]; k < c.matrix.Indptr[j+1]; k++ {
		fn(c.matrix.Ind[k], j, c.matrix.Data[k])
	}
}

// CSR is a Compressed Sparse Row format sparse matrix implementation (sometimes
// called Compressed Row Storage (CRS) format).  It is the transpose sibling of the
// CSC format: the slices are row major order rather than column major.
// As this type implements the gonum mat.Matrix interface, it may be used with any
// of the Gonum mat functions that accept Matrix types as parameters in place of
// other matrix types included in the Gonum mat package e.g. mat.Dense.
type CSR struct {
	matrix blas.SparseMatrix
}

// NewCSR creates a new Compressed Sparse Row format sparse matrix.
// The matrix is initialised to the size of the specified r * c dimensions (rows *
// columns) with the specified slices containing row pointers and column indexes of
// non-zero elements and the non-zero data values themselves respectively.  The
// supplied slices will be used as the backing storage to the matrix so changes to
// values of the slices will be reflected in the created matrix and vice versa.
func NewCSR(r int, c int, ia []int, ja []int, data []float64) *CSR {
	if uint(r) < 0 {
		panic(mat.ErrRowAccess)
	}
	if uint(c) < 0 {
		panic(mat.ErrColAccess)
	}

	return &CSR{
		matrix: blas.SparseMatrix{
			I: r, J: c,
			Indptr: ia,
			Ind:    ja,
			Data:   data,
		},
	}
}

// NNZ returns the Number of Non Zero elements in the sparse matrix.
func (c *CSR) NNZ() int {
	return c.matrix.NNZ()
}

// Dims returns the size of the matrix as the number of rows and columns
func (c *CSR) Dims() (int, int) {
	return c.matrix.I, c.matrix.J
}

// At returns the element of the matrix located at row i and column j.  At will panic
// if specified values for i or j fall outside the dimensions of the matrix.
func (c *CSR) At(m, n int) float64 {
	return c.matrix.At(m, n)
}

// Set sets the element of the matrix located at row i and column j to value v.  Set
// will panic if specified values for i or j fall outside the dimensions of the matrix.
func (c *CSR) Set(m, n int, v float64) {
	c.matrix.Set(m, n, v)
}

// T transposes the matrix creating a new CSC matrix sharing the same backing data
// storage but switching column and row sizes and index & index pointer slices i.e.
// rows become columns and columns become rows.
func (c *CSR) T() mat.Matrix {
	return &CSC{matrix: c.matrix}
}

// RawMatrix returns a pointer to the underlying blas sparse matrix.  Changes made
// to the returned structure will be reflected in the receiver.
func (c *CSR) RawMatrix() *blas.SparseMatrix {
	return &c.matrix
}

// RowNNZ returns the Number of Non Zero values in the specified row i.  RowNNZ will
// panic if i is out of range.
func (c *CSR) RowNNZ(i int) int {
	if uint(i) < 0 || uint(i) >= uint(c.matrix.I) {
		panic(mat.ErrRowAccess)
	}
	return c.matrix.Indptr[i+1] - c.matrix.Indptr[i]
}

// MulVecTo performs matrix vector multiplication (dst+=A*x or dst+=A^T*x), where A
// is the receiver, and stores the result in dst.  MulVecTo panics if ac != len(x)
// or ar != len(dst).
func (c *CSR) MulVecTo(dst []float64, trans bool, x []float64) {
	ar, ac := c.Dims()
	if trans {
		ar, ac = ac, ar
	}
	if ac != len(x) || ar != len(dst) {
		panic(mat.ErrShape)
	}
	blas.Dusmv(trans, 1, &c.matrix, x, 1, dst, 1)
}

// ToDense returns a mat.Dense dense format version of the matrix.  The returned
// mat.Dense matrix will not share underlying storage with the receiver nor is the
// receiver modified by this call.
func (c *CSR) ToDense() *mat.Dense {
	dense := mat.NewDense(c.matrix.I, c.matrix.J, nil)

	for i := 0; i < len(c.matrix.Indptr)-1; i++ {
		for j := c.matrix.Indptr[i]; j < c.matrix.Indptr[i+1]; j++ {
			dense.Set(i, c.matrix.Ind[j], c.matrix.Data[j])
		}
	}

	return dense
}

// ToCSC returns a Compressed Sparse Column sparse format version of the matrix.
// The returned CSC matrix will not share underlying storage with the receiver nor
// is the receiver modified by this call.
// NB, the current implementation uses COO as an intermediate format so converts to
// COO before converting to CSC.
func (c *CSR) ToCSC() *CSC {
	return c.ToCOO().ToCSC()
}

// ToCOO returns a COOrdinate sparse format version of the matrix.  The returned
// COO matrix will not share underlying storage with the receiver nor is the
// receiver modified by this call.
func (c *CSR) ToCOO() *COO {
	rows := make([]int, c.NNZ())
	cols := make([]int, c.NNZ())
	data := make([]float64, c.NNZ())

	for i := 0; i < len(c.matrix.Indptr)-1; i++ {
		for j := c.matrix.Indptr[i]; j < c.matrix.Indptr[i+1]; j++ {
			rows[j] = i
		}
	}

	copy(cols, c.matrix.Ind)
	copy(data, c.matrix.Data)

	return NewCOO(c.matrix.I, c.matrix.J, rows, cols, data)
}
