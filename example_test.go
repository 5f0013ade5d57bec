package interp_test

import (
	"fmt"

	"github.com/james-bowman/interp"
)

func ExampleInterpolationSkeleton() {
	// a small symmetric positive-definite operator, built incrementally in
	// COO format and compressed to CSC
	coo := interp.NewCOO(4, 4, nil, nil, nil)
	for i := 0; i < 4; i++ {
		coo.Set(i, i, 2)
		if i > 0 {
			coo.Set(i, i-1, -1)
			coo.Set(i-1, i, -1)
		}
	}
	a := coo.ToCSC()

	// two target interpolation directions
	b := interp.NewCOO(4, 2, nil, nil, nil)
	b.Set(0, 0, 1)
	b.Set(1, 0, 1)
	b.Set(3, 1, 1)
	bcsc := b.ToCSC()

	skel, sums, err := interp.InterpolationSkeleton(a, bcsc, a.Diagonal(), []float64{1, 1}, 0.45)
	if err != nil {
		fmt.Println(err)
		return
	}

	for j := 0; j < 2; j++ {
		fmt.Printf("column %d support: %v\n", j, skel.ColSupport(j))
	}
	fmt.Printf("%d row sums computed\n", len(sums))

	// Output:
	// column 0 support: [0 1 2 3]
	// column 1 support: [1 2 3]
	// 4 row sums computed
}
