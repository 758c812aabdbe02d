package bedges

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"bedges/pkg/morphology"
)

// InflateMode selects how feature planes are spatially expanded.
type InflateMode string

const (
	// InflateNone leaves the features untouched.
	InflateNone InflateMode = "none"
	// InflateBox dilates every plane with the same square kernel, so any pixel
	// within radius (Chebyshev distance) of an edge becomes an edge.
	InflateBox InflateMode = "box"
	// InflateAlong dilates each plane with a line kernel that follows the edge
	// orientation of its direction.
	InflateAlong InflateMode = "along"
)

// ParseInflateMode maps a user supplied mode name to an InflateMode.
// "perpendicular" is accepted as an alias of "along". Unknown names are an error.
func ParseInflateMode(s string) (InflateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box", "true":
		return InflateBox, nil
	case "along", "perpendicular":
		return InflateAlong, nil
	case "", "none", "off", "false":
		return InflateNone, nil
	default:
		return "", fmt.Errorf("%w: %q (must be box, along or none)", ErrInvalidInflate, s)
	}
}

// Dilator is the binary dilation primitive used by the Inflator.
type Dilator interface {
	Dilate(src []uint8, rows, cols int, se mat.Matrix) []uint8
}

// Inflator spatially expands binary feature planes.
type Inflator struct {
	Mode   InflateMode
	Radius int

	// Dilator performs the dilation. Nil means morphology.Binary.
	Dilator Dilator
}

// Inflate returns an inflated copy of v with the same shape and layout.
func (in *Inflator) Inflate(v *Volume) (*Volume, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil volume", ErrInvalidShape)
	}
	if in.Radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, in.Radius)
	}

	var kernels [NumDirections]mat.Matrix
	switch in.Mode {
	case "", InflateNone:
		return v.Clone(), nil
	case InflateBox:
		box, err := BoxKernel(in.Radius)
		if err != nil {
			return nil, err
		}
		for d := range kernels {
			kernels[d] = box
		}
	case InflateAlong:
		for _, d := range Directions {
			kern, err := AlongKernel(d, in.Radius)
			if err != nil {
				return nil, err
			}
			kernels[d] = kern
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidInflate, in.Mode)
	}

	dilator := in.Dilator
	if dilator == nil {
		dilator = morphology.Binary{}
	}

	canon, err := v.Canonical()
	if err != nil {
		return nil, err
	}
	out := newVolume(canon.Len(), canon.Rows(), canon.Cols())
	size := canon.Rows() * canon.Cols()
	for n := 0; n < canon.Len(); n++ {
		for d := 0; d < NumDirections; d++ {
			start := (n*NumDirections + d) * size
			dilated := dilator.Dilate(canon.Data[start:start+size], canon.Rows(), canon.Cols(), kernels[d])
			copy(out.Data[start:start+size], dilated)
		}
	}
	return ToLayout(out, !v.Batched(), v.lastAxis)
}
