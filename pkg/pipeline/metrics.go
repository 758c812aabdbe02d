package pipeline

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"

	"bedges/pkg/bedges"
)

// Metrics summarises a feature volume.
type Metrics struct {
	// EdgePixels counts the set features per direction, over all images
	EdgePixels [bedges.NumDirections]int

	// Density is the fraction of pixels set per direction
	Density [bedges.NumDirections]float64

	// MeanDensity and StdDensity are taken over the 8 directions
	MeanDensity float64
	StdDensity  float64

	// AnyDensity is the fraction of pixels where at least one direction fires
	AnyDensity float64

	// Pixels is the number of pixels per plane times the number of images
	Pixels int
}

// ComputeMetrics counts the features of v.
func ComputeMetrics(v *bedges.Volume) Metrics {
	var m Metrics
	m.Pixels = v.Len() * v.Rows() * v.Cols()
	if m.Pixels == 0 {
		return m
	}

	anySet := 0
	for n := 0; n < v.Len(); n++ {
		for r := 0; r < v.Rows(); r++ {
			for c := 0; c < v.Cols(); c++ {
				fired := false
				for _, d := range bedges.Directions {
					if v.At(n, d, r, c) != 0 {
						m.EdgePixels[d]++
						fired = true
					}
				}
				if fired {
					anySet++
				}
			}
		}
	}

	for d := range m.Density {
		m.Density[d] = float64(m.EdgePixels[d]) / float64(m.Pixels)
	}
	m.MeanDensity, m.StdDensity = stat.MeanStdDev(m.Density[:], nil)
	m.AnyDensity = float64(anySet) / float64(m.Pixels)
	return m
}

// Write renders the metrics as tables.
func (m Metrics) Write(w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Edge Features")
	t.AppendHeader(table.Row{"DIRECTION", "EDGE PIXELS", "DENSITY"})
	for _, d := range bedges.Directions {
		t.AppendRows([]table.Row{
			{d.String(), fmt.Sprintf("%d", m.EdgePixels[d]), fmt.Sprintf("%6.2f%%", 100*m.Density[d])},
		})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"MEAN", "", fmt.Sprintf("%6.2f%%", 100*m.MeanDensity)})
	t.AppendRow(table.Row{"STDDEV", "", fmt.Sprintf("%6.2f%%", 100*m.StdDensity)})
	t.AppendFooter(table.Row{"ANY", fmt.Sprintf("%d px", m.Pixels), fmt.Sprintf("%6.2f%%", 100*m.AnyDensity)})
	t.Render()

	return nil
}
