package bedges

import (
	"fmt"

	"gorgonia.org/tensor"
)

// ToLayout converts a batch volume with directions first, shape (N, 8, rows, cols),
// into the requested output layout. lastAxis moves the direction axis to the end and
// single drops the batch axis, which requires N == 1. Bits are never changed.
func ToLayout(v *Volume, single, lastAxis bool) (*Volume, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil volume", ErrInvalidShape)
	}
	if !v.Batched() || v.lastAxis {
		return nil, fmt.Errorf("%w: layout conversion needs a (N, 8, rows, cols) volume, got %v", ErrShapeMismatch, v.shape)
	}
	if single && v.shape[0] != 1 {
		return nil, fmt.Errorf("%w: cannot collapse a batch of %d images", ErrShapeMismatch, v.shape[0])
	}

	out := &Volume{Data: v.Data, shape: v.Shape()}
	if lastAxis {
		data, shape, err := transpose(v.Data, v.shape, 0, 2, 3, 1)
		if err != nil {
			return nil, err
		}
		out = &Volume{Data: data, shape: shape, lastAxis: true}
	}
	if single {
		out.shape = out.shape[1:]
	}
	return out, nil
}

// Canonical returns v as a batch volume with directions first, shape
// (N, 8, rows, cols). A volume that already has that layout is returned as is.
func (v *Volume) Canonical() (*Volume, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil volume", ErrInvalidShape)
	}
	shape := v.Shape()
	if !v.Batched() {
		shape = append([]int{1}, shape...)
	}
	if !v.lastAxis {
		return &Volume{Data: v.Data, shape: shape}, nil
	}
	data, shape, err := transpose(v.Data, shape, 0, 3, 1, 2)
	if err != nil {
		return nil, err
	}
	return &Volume{Data: data, shape: shape}, nil
}

// transpose permutes the axes of a dense uint8 array and returns the
// materialized data with its new shape. The input slice is left untouched.
func transpose(data []uint8, shape []int, perm ...int) ([]uint8, []int, error) {
	t := tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(append([]uint8(nil), data...)),
	)
	if err := t.T(perm...); err != nil {
		return nil, nil, fmt.Errorf("failed to transpose volume: %w", err)
	}
	if err := t.Transpose(); err != nil {
		return nil, nil, fmt.Errorf("failed to transpose volume: %w", err)
	}
	return t.Data().([]uint8), []int(t.Shape().Clone()), nil
}
