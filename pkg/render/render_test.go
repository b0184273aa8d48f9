package render

import (
	"bytes"
	"testing"

	"github.com/polyspectra/propview/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func figure(visible bool, points ...view.Point) *view.Figure {
	labels := make([]string, len(points))
	return &view.Figure{
		Title:  "Sintering",
		XLabel: "x",
		YLabel: "y",
		Series: []view.Series{{
			Category: "Sintering",
			Points:   points,
			Labels:   labels,
			Visible:  visible,
			Marker:   view.MarkerFor("Sintering", view.Options{}),
		}},
	}
}

func TestPNG(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := PNG(buffer, figure(true, view.Point{X: 1, Y: 2}, view.Point{X: 3, Y: 4}), DefaultWidth, DefaultHeight)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buffer.Bytes(), pngSignature))
}

func TestPNGSinglePoint(t *testing.T) {
	buffer := &bytes.Buffer{}
	require.NoError(t, PNG(buffer, figure(true, view.Point{X: 0, Y: 0}), 320, 240))
	assert.True(t, bytes.HasPrefix(buffer.Bytes(), pngSignature))
}

func TestPNGNothingToDraw(t *testing.T) {
	assert.Equal(t, ErrNothingToDraw, PNG(&bytes.Buffer{}, figure(false, view.Point{X: 1, Y: 2}), 320, 240))
	assert.Equal(t, ErrNothingToDraw, PNG(&bytes.Buffer{}, figure(true), 320, 240))
	assert.Equal(t, ErrNothingToDraw, PNG(&bytes.Buffer{}, &view.Figure{}, 320, 240))
}

func TestAxisRange(t *testing.T) {
	r := axisRange([]float64{2, 10})
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 10.5, r.Max, 1e-9)

	r = axisRange([]float64{-4, 2})
	assert.Equal(t, -4.0, r.Min)

	r = axisRange([]float64{0})
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 1.05, r.Max, 1e-9)
}

func TestPointStyle(t *testing.T) {
	highlight := view.MarkerFor("A", view.Options{Highlight: "A"})
	normal := view.MarkerFor("B", view.Options{Highlight: "A"})

	assert.Greater(t, pointStyle(highlight, chartColor()).DotWidth, pointStyle(normal, chartColor()).DotWidth)
	assert.Equal(t, uint8(255), pointStyle(highlight, chartColor()).DotColor.A)
	assert.Equal(t, uint8(153), pointStyle(normal, chartColor()).DotColor.A)
}

func chartColor() drawing.Color {
	return drawing.ColorBlue
}
