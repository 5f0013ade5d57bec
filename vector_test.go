package interp

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestVectorAtVec(t *testing.T) {
	t.Parallel()
	v := NewVector(6, []int{1, 3, 5}, []float64{1, 2, 3})

	want := []float64{0, 1, 0, 2, 0, 3}
	for i, w := range want {
		if got := v.AtVec(i); got != w {
			t.Errorf("wanted %f at %d but received %f", w, i, got)
		}
	}
	if v.NNZ() != 3 {
		t.Errorf("wanted 3 non-zeroes but received %d", v.NNZ())
	}
	if r, c := v.Dims(); r != 6 || c != 1 {
		t.Errorf("wanted dims 6x1 but received %dx%d", r, c)
	}
}

func TestVectorGatherScatter(t *testing.T) {
	t.Parallel()
	dense := mat.NewVecDense(5, []float64{10, 20, 30, 40, 50})
	v := NewVector(5, []int{0, 2, 4}, make([]float64, 3))

	v.Gather(dense)
	if v.AtVec(0) != 10 || v.AtVec(2) != 30 || v.AtVec(4) != 50 {
		t.Errorf("unexpected gathered values: %v", v.ToDense().RawVector().Data)
	}

	out := mat.NewVecDense(5, nil)
	v.Scatter(out)
	want := mat.NewVecDense(5, []float64{10, 0, 30, 0, 50})
	if !mat.Equal(out, want) {
		t.Errorf("wanted %v but received %v", want.RawVector().Data, out.RawVector().Data)
	}
}

func TestVectorCloneVec(t *testing.T) {
	t.Parallel()
	var v Vector

	v.CloneVec(NewVector(4, []int{1, 2}, []float64{5, 6}))
	if v.Len() != 4 || v.NNZ() != 2 || v.AtVec(2) != 6 {
		t.Error("clone of a sparse vector mismatch")
	}

	v.CloneVec(mat.NewVecDense(3, []float64{0, 7, 0}))
	if v.Len() != 3 || v.NNZ() != 1 || v.AtVec(1) != 7 {
		t.Error("clone of a dense vector mismatch")
	}
}

func TestVectorDot(t *testing.T) {
	t.Parallel()
	a := NewVector(6, []int{0, 3, 5}, []float64{1, 2, 3})
	b := NewVector(6, []int{1, 3, 4}, []float64{10, 20, 30})

	if got := Dot(a, b); got != 40 {
		t.Errorf("wanted sparse-sparse dot 40 but received %f", got)
	}

	dense := mat.NewVecDense(6, []float64{1, 1, 1, 1, 1, 1})
	if got := Dot(a, dense); got != 6 {
		t.Errorf("wanted sparse-dense dot 6 but received %f", got)
	}
	if got := Dot(dense, b); got != 60 {
		t.Errorf("wanted dense-sparse dot 60 but received %f", got)
	}
}
