package models

import (
	"fmt"

	"bedges/pkg/bedges"
)

// Image is a decoded input image with its samples split into channels
type Image struct {
	// Channels holds one row-major plane per color channel, samples in [0, 1].
	// Grayscale sources carry a single channel.
	Channels [][]float64

	// Width and Height are the image dimensions in pixels
	Width  int
	Height int

	// Filename is the file the image was read from, empty for in-memory images
	Filename string

	// Format is the decoder name reported by image.Decode
	Format string
}

// IsGray reports whether the image has a single channel
func (im *Image) IsGray() bool {
	return len(im.Channels) == 1
}

// Gray returns the image as a (rows, cols) array. Color images are converted
// with the ITU-R 601 luma weights.
func (im *Image) Gray() (*bedges.Array, error) {
	if im.IsGray() {
		return bedges.NewArray(im.Channels[0], im.Height, im.Width)
	}
	if len(im.Channels) != 3 {
		return nil, fmt.Errorf("%w: got %d", bedges.ErrInvalidChannels, len(im.Channels))
	}
	data := make([]float64, im.Width*im.Height)
	for i := range data {
		data[i] = 0.299*im.Channels[0][i] + 0.587*im.Channels[1][i] + 0.114*im.Channels[2][i]
	}
	return bedges.NewArray(data, im.Height, im.Width)
}

// RGB returns a color image as a (rows, cols, 3) array
func (im *Image) RGB() (*bedges.Array, error) {
	if len(im.Channels) != 3 {
		return nil, fmt.Errorf("%w: got %d", bedges.ErrInvalidChannels, len(im.Channels))
	}
	n := im.Width * im.Height
	data := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			data[3*i+c] = im.Channels[c][i]
		}
	}
	return bedges.NewArray(data, im.Height, im.Width, 3)
}
