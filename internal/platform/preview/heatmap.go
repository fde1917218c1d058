// Package preview renders feature vectors as images for debugging.
package preview

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"digit_canvas/internal/feature/canvas/domain/entity"
)

// DefaultSize is the edge length of the rendered PNG.
const DefaultSize = 4 * vg.Inch

// featureGrid adapts a FeatureVector to plotter.GridXYZ.
// Row 0 of the vector is drawn at the top.
type featureGrid entity.FeatureVector

func (g featureGrid) Dims() (c, r int) { return entity.GridSize, entity.GridSize }

func (g featureGrid) Z(c, r int) float64 {
	return g[(entity.GridSize-1-r)*entity.GridSize+c]
}

func (g featureGrid) X(c int) float64 { return float64(c) }

func (g featureGrid) Y(r int) float64 { return float64(r) }

// RenderHeatmap draws the 8x8 grid as a heat map over the fixed [0,16] range and encodes it as PNG.
func RenderHeatmap(v entity.FeatureVector, size vg.Length) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	p := plot.New()
	p.Title.Text = "8x8 features"
	p.HideAxes()

	hm := plotter.NewHeatMap(featureGrid(v), palette.Heat(17, 1))
	hm.Min = 0
	hm.Max = entity.MaxIntensity
	p.Add(hm)

	w, err := p.WriterTo(size, size, "png")
	if err != nil {
		return nil, fmt.Errorf("create heatmap writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render heatmap: %w", err)
	}
	return buf.Bytes(), nil
}
