package bedges

import "errors"

// Input and configuration errors. All of them are permanent: the computation is
// deterministic, so retrying with the same arguments yields the same error.
var (
	ErrInvalidRank      = errors.New("image must be 2D (rows, cols) or 3D (N, rows, cols)")
	ErrInvalidShape     = errors.New("invalid array shape")
	ErrInvalidChannels  = errors.New("color image must have exactly 3 channels")
	ErrInvalidThreshold = errors.New("k must be between 0 and 6")
	ErrInvalidRadius    = errors.New("radius must be non-negative")
	ErrInvalidInflate   = errors.New("unknown inflate mode")
	ErrShapeMismatch    = errors.New("volume shapes do not match")
)
