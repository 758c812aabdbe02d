package bedges

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AlongKernel builds the structuring element that extends direction d along its
// own edge line. Opposite directions share a kernel, so d is taken mod 4:
//
//	0 (S/N)    horizontal line through the center row
//	1 (SE/NW)  anti-diagonal
//	2 (E/W)    vertical line through the center column
//	3 (NE/SW)  main diagonal
//
// The kernel is (2*radius+1) square. Radius 0 gives the 1x1 identity element.
func AlongKernel(d Direction, radius int) (*mat.Dense, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	size := 2*radius + 1
	kern := mat.NewDense(size, size, nil)

	switch ((int(d) % 4) + 4) % 4 {
	case 0: // S/N
		for j := 0; j < size; j++ {
			kern.Set(radius, j, 1)
		}
	case 1: // SE/NW
		for i := 0; i < size; i++ {
			kern.Set(size-1-i, i, 1)
		}
	case 2: // E/W
		for i := 0; i < size; i++ {
			kern.Set(i, radius, 1)
		}
	case 3: // NE/SW
		for i := 0; i < size; i++ {
			kern.Set(i, i, 1)
		}
	}
	return kern, nil
}

// BoxKernel builds the all-ones (2*radius+1) square structuring element.
func BoxKernel(radius int) (*mat.Dense, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	size := 2*radius + 1
	ones := make([]float64, size*size)
	for i := range ones {
		ones[i] = 1
	}
	return mat.NewDense(size, size, ones), nil
}
