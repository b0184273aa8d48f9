// Package render draws figures as static images.
package render

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/view"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default image size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 640

	// Headroom above the largest value, axes start at zero.
	rangePadding = 1.05
)

// ErrNothingToDraw is returned when no visible series has points.
var ErrNothingToDraw = errors.New("no visible series with points to draw")

// pointStyle renders points only, sized and faded like the interactive chart.
// go-chart draws round dots only, highlighted series differ by size and opacity.
func pointStyle(marker view.Marker, color drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    float64(marker.Size) / 4,
		DotColor:    color.WithAlpha(uint8(math.Round(marker.Opacity * 255))),
	}
}

// axisRange spans from zero (or the smallest negative value) to slightly above the largest value.
func axisRange(values []float64) *chart.ContinuousRange {
	min, max := 0.0, 0.0
	for _, value := range values {
		min = math.Min(min, value)
		max = math.Max(max, value)
	}
	if max <= min {
		max = min + 1
	}
	return &chart.ContinuousRange{Min: min, Max: max * rangePadding}
}

// PNG writes figure as PNG image. Hidden and empty series are not drawn.
func PNG(w io.Writer, figure *view.Figure, width, height int) error {
	series := []chart.Series{}
	xs, ys := []float64{}, []float64{}
	for i, s := range figure.Series {
		if !s.Visible || len(s.Points) == 0 {
			continue
		}
		x, y := s.XValues(), s.YValues()
		xs = append(xs, x...)
		ys = append(ys, y...)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Category,
			XValues: x,
			YValues: y,
			Style:   pointStyle(s.Marker, chart.GetDefaultColor(i)),
		})
	}
	if len(series) == 0 {
		return ErrNothingToDraw
	}

	graph := chart.Chart{
		Title:      figure.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 40}},
		XAxis:      chart.XAxis{Name: figure.XLabel, Range: axisRange(xs)},
		YAxis:      chart.YAxis{Name: figure.YLabel, Range: axisRange(ys)},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "chart rendering failed")
	}
	return nil
}
