/*
Package blas provides implementations of sparse BLAS (Basic Linear Algebra Subprograms)
routines used by the interpolation skeleton solver for sparse vector gather/scatter
operations and sparse matrix vector products.

See http://www.netlib.org/blas/blast-forum/chapter3.pdf for further information.
*/
package blas
