package blas

import (
	"testing"
)

func TestDusdot(t *testing.T) {
	tests := []struct {
		x        []float64
		indx     []int
		y        []float64
		incy     int
		expected float64
	}{
		{
			x:        []float64{1, 3, 4},
			indx:     []int{0, 2, 3},
			y:        []float64{1, 2, 3, 4},
			incy:     1,
			expected: 26,
		},
		{
			x:        []float64{1, 3, 4, 5},
			indx:     []int{0, 2, 3, 4},
			y:        []float64{1, 2, 3, 4, 5},
			incy:     1,
			expected: 51,
		},
		{
			x:    []float64{1, 3, 4},
			indx: []int{0, 2, 3},
			y: []float64{
				1, 5, 5, 5,
				2, 5, 5, 5,
				3, 5, 5, 5,
				4, 5, 5, 5,
			},
			incy:     4,
			expected: 26,
		},
	}

	for ti, test := range tests {
		dot := Dusdot(test.x, test.indx, test.y, test.incy)

		if dot != test.expected {
			t.Errorf("Test %d: Wanted %f but received %f", ti+1, test.expected, dot)
		}
	}
}

func TestDusaxpy(t *testing.T) {
	tests := []struct {
		alpha    float64
		x        []float64
		indx     []int
		y        []float64
		incy     int
		expected []float64
	}{
		{
			alpha:    1,
			x:        []float64{1, 3, 4},
			indx:     []int{0, 2, 3},
			y:        []float64{1, 2, 3, 4},
			incy:     1,
			expected: []float64{2, 2, 6, 8},
		},
		{
			alpha:    2,
			x:        []float64{1, 3, 4},
			indx:     []int{0, 2, 3},
			y:        []float64{1, 2, 3, 4},
			incy:     1,
			expected: []float64{3, 2, 9, 12},
		},
		{
			alpha:    0,
			x:        []float64{1, 3, 4},
			indx:     []int{0, 2, 3},
			y:        []float64{1, 2, 3, 4},
			incy:     1,
			expected: []float64{1, 2, 3, 4},
		},
	}

	for ti, test := range tests {
		Dusaxpy(test.alpha, test.x, test.indx, test.y, test.incy)

		for i, v := range test.expected {
			if test.y[i] != v {
				t.Errorf("Test %d: Wanted %f at index %d but received %f", ti+1, v, i, test.y[i])
			}
		}
	}
}

func TestDusgaDussc(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	indx := []int{0, 2, 4}
	x := make([]float64, len(indx))

	Dusga(y, 1, x, indx)
	for i, index := range indx {
		if x[i] != y[index] {
			t.Errorf("Wanted %f gathered at %d but received %f", y[index], i, x[i])
		}
	}

	z := make([]float64, len(y))
	Dussc(x, z, 1, indx)
	for i, index := range indx {
		if z[index] != x[i] {
			t.Errorf("Wanted %f scattered to %d but received %f", x[i], index, z[index])
		}
	}
}

func TestDusgz(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	indx := []int{1, 3}
	x := make([]float64, len(indx))

	Dusgz(y, 1, x, indx)

	if x[0] != 2 || x[1] != 4 {
		t.Errorf("Wanted gathered values [2 4] but received %v", x)
	}
	for _, index := range indx {
		if y[index] != 0 {
			t.Errorf("Wanted zeroed element at %d but received %f", index, y[index])
		}
	}
}
