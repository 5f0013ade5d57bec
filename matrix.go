package interp

import (
	"gonum.org/v1/gonum/mat"

	"golang.org/x/exp/rand"
)

// Sparser is the interface for sparse matrices.  Sparser contains the mat.Matrix
// interface so automatically exposes all mat.Matrix methods.
type Sparser interface {
	mat.Matrix

	// NNZ returns the Number of Non Zero elements in the sparse matrix.
	NNZ() int
}

var (
	_ Sparser = (*CSC)(nil)
	_ Sparser = (*CSR)(nil)
	_ Sparser = (*COO)(nil)
	_ Sparser = (*Pattern)(nil)
)

// RandomCSC constructs a new CSC matrix with random values randomly placed
// through the matrix according to the matrix size, specified by dimensions
// r * c (rows * columns), and the specified density of non zero values.
// Density is a value between 0 and 1 (0 <= density <= 1).  density*r*c
// positions are drawn at random with replacement and values drawn at the same
// position are summed, so a density of 1 does not in general fill the matrix
// with non zero values; a density of 0 will have only zero values.
func RandomCSC(r int, c int, density float32, src rand.Source) *CSC {
	d := int(density * float32(r) * float32(c))

	rnd := rand.New(src)
	m := make([]int, d)
	n := make([]int, d)
	data := make([]float64, d)

	for i := 0; i < d; i++ {
		data[i] = rnd.Float64()
		m[i] = rnd.Intn(r)
		n[i] = rnd.Intn(c)
	}

	return NewCOO(r, c, m, n, data).ToCSC()
}
