package bedges

import "fmt"

// Options controls feature extraction.
type Options struct {
	// K is how many of the 6 contrast comparisons must hold for an edge.
	// 6 gives the most conservative edges.
	K int

	// Inflate selects the inflation applied after extraction. An empty mode
	// behaves like InflateNone.
	Inflate InflateMode

	// Radius is the extent of the inflation.
	Radius int

	// LastAxis places the direction axis last: (rows, cols, 8) instead of
	// (8, rows, cols).
	LastAxis bool
}

// DefaultOptions returns k=6, box inflation with radius 1, directions first.
func DefaultOptions() Options {
	return Options{
		K:       NumChecks,
		Inflate: InflateBox,
		Radius:  1,
	}
}

// Validate rejects out of range thresholds, negative radii and unknown modes.
func (o Options) Validate() error {
	if err := validateThreshold(o.K); err != nil {
		return err
	}
	if o.Radius < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, o.Radius)
	}
	switch o.Inflate {
	case "", InflateNone, InflateBox, InflateAlong:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInflate, o.Inflate)
	}
	return nil
}
