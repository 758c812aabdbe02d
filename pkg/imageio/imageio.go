// Package imageio decodes image files into per-channel float samples.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"bedges/internal/models"
)

// Load decodes the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are
// recognised by content.
func Load(path string) (*models.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	im := FromImage(img)
	im.Filename = path
	im.Format = format
	return im, nil
}

// FromImage converts an in-memory image. Gray and Gray16 images give a single
// channel, everything else gives R, G and B with alpha dropped. Samples are
// scaled to [0, 1].
func FromImage(img image.Image) *models.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		gray := make([]float64, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				gray[y*width+x] = float64(r) / 65535.0
			}
		}
		return &models.Image{Channels: [][]float64{gray}, Width: width, Height: height}
	}

	channels := [][]float64{
		make([]float64, width*height),
		make([]float64, width*height),
		make([]float64, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := y*width + x
			channels[0][idx] = float64(r) / 65535.0
			channels[1][idx] = float64(g) / 65535.0
			channels[2][idx] = float64(b) / 65535.0
		}
	}
	return &models.Image{Channels: channels, Width: width, Height: height}
}

// ChannelImage renders channel c of im as an 8-bit grayscale image
func ChannelImage(im *models.Image, c int) (*image.Gray, error) {
	if c < 0 || c >= len(im.Channels) {
		return nil, fmt.Errorf("channel %d out of range [0, %d)", c, len(im.Channels))
	}
	out := image.NewGray(image.Rect(0, 0, im.Width, im.Height))
	for i, v := range im.Channels[c] {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out.Pix[i] = uint8(v*255 + 0.5)
	}
	return out, nil
}
