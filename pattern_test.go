package interp

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPattern(t *testing.T) {
	t.Parallel()
	// | 1 0 |
	// | 0 1 |
	// | 1 1 |
	p := NewPattern(3, 2,
		[]int{0, 2, 4},
		[]int{0, 2, 1, 2},
	)

	if r, c := p.Dims(); r != 3 || c != 2 {
		t.Errorf("wanted dims 3x2 but received %dx%d", r, c)
	}
	if p.NNZ() != 4 {
		t.Errorf("wanted 4 stored entries but received %d", p.NNZ())
	}

	want := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	if !mat.Equal(p, want) {
		t.Errorf("pattern mismatch:\ngot  %v\nwant %v", mat.Formatted(p), mat.Formatted(want))
	}
	if !mat.Equal(p.T(), want.T()) {
		t.Error("transpose mismatch")
	}

	if p.ColNNZ(1) != 2 {
		t.Errorf("wanted 2 entries in column 1 but received %d", p.ColNNZ(1))
	}
	if !reflect.DeepEqual(p.ColSupport(1), []int{1, 2}) {
		t.Errorf("wanted support [1 2] but received %v", p.ColSupport(1))
	}

	var count int
	p.DoColNonZero(0, func(i, j int, v float64) {
		if v != 1 {
			t.Errorf("wanted every stored entry to be 1 but received %f at %d,%d", v, i, j)
		}
		count++
	})
	if count != 2 {
		t.Errorf("wanted 2 callbacks for column 0 but received %d", count)
	}

	if !mat.Equal(p.ToCSC(), want) {
		t.Error("ToCSC mismatch")
	}
}
