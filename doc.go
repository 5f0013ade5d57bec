/*
Package interp computes sparse interpolation skeletons for algebraic multigrid (AMG)
setup.  Given a symmetric positive-definite fine-grid operator A, a target matrix B
whose columns are ideal coarse-to-fine interpolation directions, the diagonal of A and
a tolerance, the solver selects, column by column, a small set of fine-grid rows (the
column's skeleton) by a greedy A-orthogonal expansion that minimises the quadratic form

	f(X) = 0.5 X^T A X - B^T X

while keeping the residual sparse.  The interpolation operator X is never materialised
numerically; the outputs are its sparsity pattern and the weighted row sums X * u,
which is what an outer AMG setup needs to size and seed the interpolation operator.

Matrices are handled in compressed sparse column (CSC) form.  The package provides the
CSC and CSR compressed formats, a COO format for incremental construction, and a sparse
Vector type.  All matrix types implement the Matrix interface defined within the
gonum/mat package and so may be used interchangeably with matrix types defined within
that package e.g. mat.Dense, mat.VecDense, etc.
*/
package interp
