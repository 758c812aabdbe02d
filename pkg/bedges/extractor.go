package bedges

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Extractor runs extraction, inflation and layout conversion.
type Extractor struct {
	Options Options

	// Dilator is used for inflation. Nil means morphology.Binary.
	Dilator Dilator

	// Workers bounds the number of images or channels processed concurrently.
	// Values below 1 mean one worker per CPU.
	Workers int
}

// NewExtractor returns an Extractor using all CPUs and the default dilation.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{Options: opts, Workers: runtime.NumCPU()}
}

// Extract computes the binary edge features of a single image (rows, cols) or a
// batch (N, rows, cols). A single image yields (8, rows, cols) and a batch
// yields (N, 8, rows, cols); with LastAxis the direction axis moves last.
func (e *Extractor) Extract(images *Array) (*Volume, error) {
	if err := e.Options.Validate(); err != nil {
		return nil, err
	}
	batch, err := asBatch(images)
	if err != nil {
		return nil, err
	}
	single := images.Rank() == 2

	n, rows, cols := batch.Shape[0], batch.Shape[1], batch.Shape[2]
	features := newVolume(n, rows, cols)
	size := NumDirections * rows * cols

	g := new(errgroup.Group)
	g.SetLimit(e.workers())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			detectImage(batch.image(i), e.Options.K, features.Data[i*size:(i+1)*size])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inflator := &Inflator{Mode: e.Options.Inflate, Radius: e.Options.Radius, Dilator: e.Dilator}
	inflated, err := inflator.Inflate(features)
	if err != nil {
		return nil, err
	}
	return ToLayout(inflated, single, e.Options.LastAxis)
}

// ExtractColor computes features for a color image (rows, cols, 3) or a batch of
// color images (N, rows, cols, 3). Each channel is processed like a grayscale
// image and the three results are combined with logical OR.
func (e *Extractor) ExtractColor(im *Array) (*Volume, error) {
	if im == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidShape)
	}
	if err := im.validate(); err != nil {
		return nil, err
	}
	if im.Rank() != 3 && im.Rank() != 4 {
		return nil, fmt.Errorf("%w: color image must be (rows, cols, 3) or (N, rows, cols, 3), got %v", ErrInvalidRank, im.Shape)
	}
	if nch := im.Shape[im.Rank()-1]; nch != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, nch)
	}

	channels := make([]*Volume, 3)
	g := new(errgroup.Group)
	g.SetLimit(e.workers())
	for c := range channels {
		g.Go(func() error {
			vol, err := e.Extract(im.channel(c))
			if err != nil {
				return fmt.Errorf("channel %d: %w", c, err)
			}
			channels[c] = vol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return OrVolumes(channels...)
}

func (e *Extractor) workers() int {
	if e.Workers < 1 {
		return runtime.NumCPU()
	}
	return e.Workers
}

// Extract is a shorthand for NewExtractor(opts).Extract(images).
func Extract(images *Array, opts Options) (*Volume, error) {
	return NewExtractor(opts).Extract(images)
}

// ExtractColor is a shorthand for NewExtractor(opts).ExtractColor(im).
func ExtractColor(im *Array, opts Options) (*Volume, error) {
	return NewExtractor(opts).ExtractColor(im)
}
