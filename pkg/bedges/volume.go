package bedges

import (
	"bytes"
	"fmt"
)

// Volume is a binary feature volume. Every element is 0 or 1.
//
// The shape is one of
//
//	(8, rows, cols)       single image, directions first
//	(N, 8, rows, cols)    batch, directions first
//	(rows, cols, 8)       single image, directions last
//	(N, rows, cols, 8)    batch, directions last
type Volume struct {
	Data     []uint8
	shape    []int
	lastAxis bool
}

// newVolume allocates a zeroed batch volume with directions first.
func newVolume(n, rows, cols int) *Volume {
	return &Volume{
		Data:  make([]uint8, n*NumDirections*rows*cols),
		shape: []int{n, NumDirections, rows, cols},
	}
}

// Shape returns a copy of the volume shape.
func (v *Volume) Shape() []int {
	return append([]int(nil), v.shape...)
}

// LastAxis reports whether the direction axis is the last one.
func (v *Volume) LastAxis() bool {
	return v.lastAxis
}

// Batched reports whether the volume carries a leading batch axis.
func (v *Volume) Batched() bool {
	return len(v.shape) == 4
}

// Len returns the number of images in the volume.
func (v *Volume) Len() int {
	if v.Batched() {
		return v.shape[0]
	}
	return 1
}

// Rows returns the image height.
func (v *Volume) Rows() int {
	if v.lastAxis {
		return v.shape[len(v.shape)-3]
	}
	return v.shape[len(v.shape)-2]
}

// Cols returns the image width.
func (v *Volume) Cols() int {
	if v.lastAxis {
		return v.shape[len(v.shape)-2]
	}
	return v.shape[len(v.shape)-1]
}

func (v *Volume) offset(n int, d Direction, r, c int) int {
	rows, cols := v.Rows(), v.Cols()
	if v.lastAxis {
		return ((n*rows+r)*cols+c)*NumDirections + int(d)
	}
	return ((n*NumDirections+int(d))*rows+r)*cols + c
}

// At returns the feature bit of image n, direction d at (r, c). For a single
// image volume n must be 0.
func (v *Volume) At(n int, d Direction, r, c int) uint8 {
	return v.Data[v.offset(n, d, r, c)]
}

// Plane returns a row-major copy of the feature plane of image n, direction d.
func (v *Volume) Plane(n int, d Direction) ([]uint8, error) {
	if n < 0 || n >= v.Len() {
		return nil, fmt.Errorf("image index %d out of range [0, %d)", n, v.Len())
	}
	if d < 0 || d >= NumDirections {
		return nil, fmt.Errorf("direction %d out of range", int(d))
	}
	rows, cols := v.Rows(), v.Cols()
	if !v.lastAxis {
		start := v.offset(n, d, 0, 0)
		return append([]uint8(nil), v.Data[start:start+rows*cols]...), nil
	}
	plane := make([]uint8, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			plane[r*cols+c] = v.Data[v.offset(n, d, r, c)]
		}
	}
	return plane, nil
}

// Count returns the number of set features.
func (v *Volume) Count() int {
	count := 0
	for _, b := range v.Data {
		count += int(b)
	}
	return count
}

// Clone returns a deep copy.
func (v *Volume) Clone() *Volume {
	return &Volume{
		Data:     append([]uint8(nil), v.Data...),
		shape:    v.Shape(),
		lastAxis: v.lastAxis,
	}
}

// Equal reports whether both volumes have the same layout, shape and bits.
func (v *Volume) Equal(o *Volume) bool {
	return v.lastAxis == o.lastAxis && sameShape(v.shape, o.shape) && bytes.Equal(v.Data, o.Data)
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
