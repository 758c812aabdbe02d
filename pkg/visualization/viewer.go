package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"bedges/pkg/bedges"
)

// Viewer renders the planes of a binary feature volume as images.
type Viewer struct {
	// volume holds the features in any layout, single or batch
	volume *bedges.Volume

	// dimensions of each plane
	width  int
	height int
}

// NewViewer creates a new feature plane viewer
func NewViewer(volume *bedges.Volume) *Viewer {
	return &Viewer{
		volume: volume,
		width:  volume.Cols(),
		height: volume.Rows(),
	}
}

// ExtractPlane renders the feature plane of image n, direction d. Set features
// are white on black.
func (v *Viewer) ExtractPlane(n int, d bedges.Direction) (*image.Gray, error) {
	plane, err := v.volume.Plane(n, d)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, v.width, v.height))
	for i, b := range plane {
		if b != 0 {
			img.Pix[i] = 255
		}
	}
	return img, nil
}

// Composite renders image n with a pixel set when any direction fires there
func (v *Viewer) Composite(n int) (*image.Gray, error) {
	if n < 0 || n >= v.volume.Len() {
		return nil, fmt.Errorf("image index %d out of range [0, %d)", n, v.volume.Len())
	}

	img := image.NewGray(image.Rect(0, 0, v.width, v.height))
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			for _, d := range bedges.Directions {
				if v.volume.At(n, d, y, x) != 0 {
					img.SetGray(x, y, color.Gray{Y: 255})
					break
				}
			}
		}
	}
	return img, nil
}

// SavePlane saves a rendered plane as a PNG image
func (v *Viewer) SavePlane(img image.Image, filename string) error {
	return SavePNG(img, filename)
}

// SavePNG writes img to filename in PNG format
func SavePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SavePlaneSequence writes the 8 direction planes of image n and their composite
// to outputDir, as edges_<index>_<direction>.png and edges_any.png
func (v *Viewer) SavePlaneSequence(n int, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, d := range bedges.Directions {
		img, err := v.ExtractPlane(n, d)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("edges_%d_%s.png", int(d), d))
		if err := v.SavePlane(img, filename); err != nil {
			return err
		}
	}

	img, err := v.Composite(n)
	if err != nil {
		return err
	}
	return v.SavePlane(img, filepath.Join(outputDir, "edges_any.png"))
}
