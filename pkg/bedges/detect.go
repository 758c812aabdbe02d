package bedges

import (
	"fmt"
	"math"
)

// NumChecks is the number of contrast comparisons tested per direction.
const NumChecks = 6

// Detect extracts the eight directed binary edge features of every image, following
// Y. Amit, "2D Object Detection and Recognition", section 5.4.
//
// For a direction with step v and perpendicular step w, pixel z and its partner
// y = z + v, an edge is present at z when I(z) > I(y) and at least k of these six
// comparisons hold, with m = |I(z) - I(y)|:
//
//	m > |I(z+w) - I(z)|    m > |I(z-w) - I(z)|
//	m > |I(y+w) - I(y)|    m > |I(y-w) - I(y)|
//	m > |I(z-v) - I(z)|    m > |I(y+v) - I(y)|
//
// A pixel whose neighbourhood leaves the image is never an edge.
//
// images must have rank 2 (a single image, treated as a batch of one) or rank 3.
// The result always has the batch shape (N, 8, rows, cols).
func Detect(images *Array, k int) (*Volume, error) {
	batch, err := asBatch(images)
	if err != nil {
		return nil, err
	}
	if err := validateThreshold(k); err != nil {
		return nil, err
	}

	n, rows, cols := batch.Shape[0], batch.Shape[1], batch.Shape[2]
	vol := newVolume(n, rows, cols)
	for i := 0; i < n; i++ {
		detectImage(batch.image(i), k, vol.Data[i*NumDirections*rows*cols:(i+1)*NumDirections*rows*cols])
	}
	return vol, nil
}

// asBatch checks the rank and promotes a single image to a batch of one.
func asBatch(images *Array) (*Array, error) {
	if images == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidShape)
	}
	if err := images.validate(); err != nil {
		return nil, err
	}
	switch images.Rank() {
	case 2:
		return &Array{Shape: []int{1, images.Shape[0], images.Shape[1]}, Data: images.Data}, nil
	case 3:
		return images, nil
	default:
		return nil, fmt.Errorf("%w: got shape %v", ErrInvalidRank, images.Shape)
	}
}

func validateThreshold(k int) error {
	if k < 0 || k > NumChecks {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, k)
	}
	return nil
}

// detectImage writes the 8 planes of a single rank 2 image into out.
func detectImage(img *Array, k int, out []uint8) {
	rows, cols := img.Shape[0], img.Shape[1]
	px := func(r, c int) float64 { return img.Data[r*cols+c] }
	inside := func(r, c int) bool { return r >= 0 && r < rows && c >= 0 && c < cols }

	for d := 0; d < NumDirections; d++ {
		v, w := edgeSteps[d].v, edgeSteps[d].w
		plane := out[d*rows*cols : (d+1)*rows*cols]
		for z0 := 0; z0 < rows; z0++ {
			for z1 := 0; z1 < cols; z1++ {
				y0, y1 := z0+v.dr, z1+v.dc
				if !inside(z0-v.dr, z1-v.dc) || !inside(y0+v.dr, y1+v.dc) ||
					!inside(z0+w.dr, z1+w.dc) || !inside(z0-w.dr, z1-w.dc) ||
					!inside(y0+w.dr, y1+w.dc) || !inside(y0-w.dr, y1-w.dc) {
					continue
				}

				iz, iy := px(z0, z1), px(y0, y1)
				if iz <= iy {
					continue
				}
				m := iz - iy

				count := 0
				for _, other := range [NumChecks]float64{
					math.Abs(px(z0+w.dr, z1+w.dc) - iz),
					math.Abs(px(z0-w.dr, z1-w.dc) - iz),
					math.Abs(px(y0+w.dr, y1+w.dc) - iy),
					math.Abs(px(y0-w.dr, y1-w.dc) - iy),
					math.Abs(px(z0-v.dr, z1-v.dc) - iz),
					math.Abs(px(y0+v.dr, y1+v.dc) - iy),
				} {
					if m > other {
						count++
					}
				}
				if count >= k {
					plane[z0*cols+z1] = 1
				}
			}
		}
	}
}
