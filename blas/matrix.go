package blas

// SparseMatrix represents the common structure for compressed sparse matrix
// formats e.g. CSR (Compressed Sparse Row) or CSC (Compressed Sparse Column).
// I is the size of the major (compressed) axis and J the size of the minor
// axis so a CSR matrix has I rows and a CSC matrix has I columns.
type SparseMatrix struct {
	I, J   int
	Indptr []int
	Ind    []int
	Data   []float64
}

// NNZ returns the Number of Non Zero elements stored in the matrix.
func (m *SparseMatrix) NNZ() int {
	return len(m.Data)
}

// At returns the element of the matrix located at major axis index i and
// minor axis index j.
func (m *SparseMatrix) At(i, j int) float64 {
	if uint(i) < 0 || uint(i) >= uint(m.I) {
		panic("sparse/blas: index out of range")
	}
	if uint(j) < 0 || uint(j) >= uint(m.J) {
		panic("sparse/blas: index out of range")
	}

	for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
		if m.Ind[k] == j {
			return m.Data[k]
		}
	}

	return 0
}

// Set sets the element of the matrix located at major axis index i and minor
// axis index j to v.
func (m *SparseMatrix) Set(i, j int, v float64) {
	if uint(i) < 0 || uint(i) >= uint(m.I) {
		panic("sparse/blas: index out of range")
	}
	if uint(j) < 0 || uint(j) >= uint(m.J) {
		panic("sparse/blas: index out of range")
	}

	insertionPoint := m.Indptr[i+1]
	for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
		if m.Ind[k] == j {
			// if element(i, j) is already a non-zero value then simply update the
			// existing value without altering the sparsity pattern
			m.Data[k] = v
			return
		}
		if m.Ind[k] > j {
			insertionPoint = k
			break
		}
	}

	if v == 0 {
		// don't bother storing new zero values
		return
	}

	// element(i, j) doesn't exist in the current sparsity pattern so insert it,
	// keeping minor axis indices sorted within each major axis vector
	m.insert(i, j, v, insertionPoint)
}

// insert inserts a new non-zero element into the sparse matrix, updating the
// sparsity pattern.
func (m *SparseMatrix) insert(i int, j int, v float64, insertionPoint int) {
	m.Ind = append(m.Ind, 0)
	copy(m.Ind[insertionPoint+1:], m.Ind[insertionPoint:])
	m.Ind[insertionPoint] = j

	m.Data = append(m.Data, 0)
	copy(m.Data[insertionPoint+1:], m.Data[insertionPoint:])
	m.Data[insertionPoint] = v

	for n := i + 1; n <= m.I; n++ {
		m.Indptr[n]++
	}
}
