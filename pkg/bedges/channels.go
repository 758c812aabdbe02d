package bedges

import "fmt"

// OrVolumes combines volumes element-wise with logical OR. All volumes must share
// shape and layout.
func OrVolumes(vols ...*Volume) (*Volume, error) {
	if len(vols) == 0 {
		return nil, fmt.Errorf("%w: no volumes to combine", ErrShapeMismatch)
	}
	for i, v := range vols {
		if v == nil {
			return nil, fmt.Errorf("%w: volume %d is nil", ErrInvalidShape, i)
		}
	}
	out := vols[0].Clone()
	for i, v := range vols[1:] {
		if v.lastAxis != out.lastAxis || !sameShape(v.shape, out.shape) {
			return nil, fmt.Errorf("%w: volume %d has shape %v, expected %v", ErrShapeMismatch, i+1, v.shape, out.shape)
		}
		for j, b := range v.Data {
			out.Data[j] |= b
		}
	}
	return out, nil
}
