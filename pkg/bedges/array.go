package bedges

import "fmt"

// Array is a dense row-major n-dimensional array of intensities.
//
// A rank 2 array is a single image (rows, cols) and a rank 3 array is a batch of
// images (N, rows, cols). The color path reads the last axis as channels instead.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray wraps data with the given shape. The data slice is not copied.
func NewArray(data []float64, shape ...int) (*Array, error) {
	a := &Array{Shape: append([]int(nil), shape...), Data: data}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.Shape)
}

// At returns the sample at the given index.
func (a *Array) At(idx ...int) float64 {
	off := 0
	for i, v := range idx {
		off = off*a.Shape[i] + v
	}
	return a.Data[off]
}

func (a *Array) validate() error {
	if len(a.Shape) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidShape)
	}
	size := 1
	for _, d := range a.Shape {
		if d <= 0 {
			return fmt.Errorf("%w: dimensions must be positive, got %v", ErrInvalidShape, a.Shape)
		}
		size *= d
	}
	if size != len(a.Data) {
		return fmt.Errorf("%w: shape %v needs %d samples, got %d", ErrInvalidShape, a.Shape, size, len(a.Data))
	}
	return nil
}

// image returns image n of a rank 3 array as a rank 2 view sharing the data.
func (a *Array) image(n int) *Array {
	rows, cols := a.Shape[1], a.Shape[2]
	size := rows * cols
	return &Array{Shape: []int{rows, cols}, Data: a.Data[n*size : (n+1)*size]}
}

// channel extracts channel c of an array whose last axis holds channels.
func (a *Array) channel(c int) *Array {
	nch := a.Shape[len(a.Shape)-1]
	shape := append([]int(nil), a.Shape[:len(a.Shape)-1]...)
	data := make([]float64, len(a.Data)/nch)
	for i := range data {
		data[i] = a.Data[i*nch+c]
	}
	return &Array{Shape: shape, Data: data}
}
