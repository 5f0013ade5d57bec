package interp

import (
	"testing"

	"golang.org/x/exp/rand"
)

// benchmarkOperands builds a chain operator of order n and a random sparse
// aggregation-style target with roughly nnzPerCol entries per column.
func benchmarkOperands(n, nc, nnzPerCol int, src rand.Source) (*CSC, *CSC, []float64, []float64) {
	a := chainCSC(n)

	rnd := rand.New(src)
	coo := NewCOO(n, nc, nil, nil, nil)
	for j := 0; j < nc; j++ {
		for k := 0; k < nnzPerCol; k++ {
			coo.Set(rnd.Intn(n), j, rnd.Float64()+0.5)
		}
	}
	b := coo.ToCSC()

	u := make([]float64, nc)
	for i := range u {
		u[i] = rnd.Float64()
	}
	return a, b, a.Diagonal(), u
}

func benchmarkSkeleton(b *testing.B, n, nc, nnzPerCol int, tol float64, policy StopPolicy) {
	a, t, d, u := benchmarkOperands(n, nc, nnzPerCol, rand.NewSource(1))
	ip := Interpolator{Policy: policy}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := ip.Skeleton(a, t, d, u, tol); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSkeletonSum500(b *testing.B)   { benchmarkSkeleton(b, 500, 100, 4, 1e-2, StopSum) }
func BenchmarkSkeletonSum2000(b *testing.B)  { benchmarkSkeleton(b, 2000, 400, 4, 1e-2, StopSum) }
func BenchmarkSkeletonMax500(b *testing.B)   { benchmarkSkeleton(b, 500, 100, 4, 1e-2, StopMax) }
func BenchmarkSkeletonTight500(b *testing.B) { benchmarkSkeleton(b, 500, 100, 4, 1e-4, StopSum) }
