// Package morphology provides binary morphological operations on row-major
// uint8 planes, with structuring elements given as gonum matrices.
package morphology

import (
	"gonum.org/v1/gonum/mat"
)

// Binary dilates binary planes.
type Binary struct{}

// Dilate returns the dilation of src (rows x cols, values 0/1) by the structuring
// element se. An output pixel is set when any set pixel of src falls under the
// reflected element centered on it. Pixels outside src count as unset.
//
// The element must have odd dimensions; its center is (r/2, c/2).
func (Binary) Dilate(src []uint8, rows, cols int, se mat.Matrix) []uint8 {
	return Dilate(src, rows, cols, se)
}

// Dilate is the function form of Binary.Dilate.
func Dilate(src []uint8, rows, cols int, se mat.Matrix) []uint8 {
	dst := make([]uint8, rows*cols)
	offsets := footprint(se)
	if len(offsets) == 0 {
		return dst
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if src[r*cols+c] == 0 {
				continue
			}
			// Scatter each set pixel over the footprint.
			for _, o := range offsets {
				rr, cc := r+o[0], c+o[1]
				if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
					continue
				}
				dst[rr*cols+cc] = 1
			}
		}
	}
	return dst
}

// footprint lists the (row, col) offsets of the non-zero entries of se relative
// to its center.
func footprint(se mat.Matrix) [][2]int {
	kr, kc := se.Dims()
	cr, cc := kr/2, kc/2
	var offsets [][2]int
	for i := 0; i < kr; i++ {
		for j := 0; j < kc; j++ {
			if se.At(i, j) != 0 {
				offsets = append(offsets, [2]int{i - cr, j - cc})
			}
		}
	}
	return offsets
}
