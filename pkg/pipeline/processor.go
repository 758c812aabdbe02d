// Package pipeline runs binary edge extraction on an image file and writes the
// resulting feature planes.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"bedges/internal/models"
	"bedges/pkg/bedges"
	"bedges/pkg/imageio"
	"bedges/pkg/visualization"
)

// Params holds the pipeline parameters.
type Params struct {
	// InputPath is the image file to process
	InputPath string

	// OutputDir is where the feature planes are written. Empty disables writing.
	OutputDir string

	// NumCores bounds the number of channels processed concurrently
	NumCores int

	// Options controls extraction and inflation
	Options bedges.Options

	// SaveIntermediaryResults saves the input channels and the uninflated
	// features next to the final planes
	SaveIntermediaryResults bool

	// IntermediaryDir is where intermediary results are written
	IntermediaryDir string

	// Verbose prints the progress of each step
	Verbose bool
}

// Processor runs the extraction pipeline for one image:
//  1. Loading and decoding the input image
//  2. Extracting directed edges (per channel, OR-combined for color images)
//  3. Writing each direction plane and the composite
//  4. Computing per-direction metrics
type Processor struct {
	params *Params

	// image is the decoded input
	image *models.Image

	// volume holds the final features
	volume *bedges.Volume

	metrics Metrics
}

// NewProcessor creates a processor with the provided parameters
func NewProcessor(params *Params) *Processor {
	return &Processor{params: params}
}

// Process runs the complete pipeline
func (p *Processor) Process() error {
	if err := p.params.Options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if p.params.SaveIntermediaryResults {
		if err := os.MkdirAll(p.params.IntermediaryDir, 0755); err != nil {
			return fmt.Errorf("failed to create intermediary directory: %w", err)
		}
	}

	// Step 1: Load the image
	p.logf("Step 1: Loading %s...\n", p.params.InputPath)
	im, err := imageio.Load(p.params.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	p.image = im
	p.logf("Loaded %s image with dimensions %dx%d and %d channel(s)\n", im.Format, im.Width, im.Height, len(im.Channels))

	if p.params.SaveIntermediaryResults {
		p.logf("Saving input channels...\n")
		for c := range im.Channels {
			if err := p.saveChannel(c); err != nil {
				fmt.Printf("Warning: Failed to save channel %d: %v\n", c, err)
			}
		}
	}

	// Step 2: Extract features
	p.logf("Step 2: Extracting edges (k=%d, inflate=%s, radius=%d)...\n",
		p.params.Options.K, p.params.Options.Inflate, p.params.Options.Radius)
	vol, err := p.extract(p.params.Options)
	if err != nil {
		return fmt.Errorf("failed to extract features: %w", err)
	}
	p.volume = vol

	if p.params.SaveIntermediaryResults {
		p.logf("Saving uninflated features...\n")
		raw := p.params.Options
		raw.Inflate = bedges.InflateNone
		rawVol, err := p.extract(raw)
		if err != nil {
			return fmt.Errorf("failed to extract uninflated features: %w", err)
		}
		if err := visualization.NewViewer(rawVol).SavePlaneSequence(0, filepath.Join(p.params.IntermediaryDir, "02_raw_edges")); err != nil {
			fmt.Printf("Warning: Failed to save uninflated features: %v\n", err)
		}
	}

	// Step 3: Write planes
	if p.params.OutputDir != "" {
		p.logf("Step 3: Writing feature planes to %s...\n", p.params.OutputDir)
		if err := visualization.NewViewer(vol).SavePlaneSequence(0, p.params.OutputDir); err != nil {
			return fmt.Errorf("failed to save feature planes: %w", err)
		}
	}

	// Step 4: Metrics
	p.logf("Step 4: Calculating metrics...\n")
	p.metrics = ComputeMetrics(vol)

	return nil
}

// extract runs the gray or color path depending on the channel count
func (p *Processor) extract(opts bedges.Options) (*bedges.Volume, error) {
	e := bedges.NewExtractor(opts)
	if p.params.NumCores > 0 {
		e.Workers = p.params.NumCores
	}

	if p.image.IsGray() {
		arr, err := p.image.Gray()
		if err != nil {
			return nil, err
		}
		return e.Extract(arr)
	}

	arr, err := p.image.RGB()
	if err != nil {
		return nil, err
	}
	return e.ExtractColor(arr)
}

// saveChannel writes input channel c as a PNG under 01_input_channels
func (p *Processor) saveChannel(c int) error {
	stageDir := filepath.Join(p.params.IntermediaryDir, "01_input_channels")
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return fmt.Errorf("failed to create intermediary directory: %w", err)
	}

	img, err := imageio.ChannelImage(p.image, c)
	if err != nil {
		return err
	}
	return visualization.SavePNG(img, filepath.Join(stageDir, fmt.Sprintf("%03d.png", c)))
}

func (p *Processor) logf(format string, args ...any) {
	if p.params.Verbose {
		fmt.Printf(format, args...)
	}
}

// GetMetrics returns the metrics of the last run
func (p *Processor) GetMetrics() Metrics {
	return p.metrics
}

// GetVolume returns the features of the last run
func (p *Processor) GetVolume() *bedges.Volume {
	return p.volume
}
