// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package view

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/catalog"
	"github.com/polyspectra/propview/pkg/conf"
	"github.com/polyspectra/propview/pkg/dataset"
)

// Marker sizes and opacities.
const (
	NormalSize       = 16
	LargeSize        = 22
	NormalOpacity    = 0.6
	HighlightOpacity = 1.0
	outlineWidth     = 0.1
	outlineColor     = "white"
)

// Symbol is the marker shape.
type Symbol string

// Marker shapes.
const (
	SymbolCircle Symbol = "circle"
	SymbolStar   Symbol = "star"
)

var (
	highlightFlag = conf.NewStringFlag(
		"highlight", "Class rendered with emphasized markers and hidden from the class chooser", "polySpectra COR Alpha")
	pinHighlightFlag = conf.NewBoolFlag(
		"pin_highlight", "Always plot the highlight class when a set of classes is selected", true)
)

// InvalidFieldError is returned when requested axis is not a numeric field of the table.
type InvalidFieldError struct {
	Axis    string
	Field   string
	Allowed []string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s axis field %q is not one of %q", e.Axis, e.Field, e.Allowed)
}

// IsInvalidFieldError checks if the root cause of err is an InvalidFieldError.
func IsInvalidFieldError(err error) bool {
	_, ok := errors.Cause(err).(*InvalidFieldError)
	return ok
}

// Options configure styling and filtering which do not come from user input.
type Options struct {
	// Highlight is the category drawn with large star markers. Empty disables it.
	Highlight string
	// PinHighlight keeps highlight category present in Set selections. Single selections stay exact.
	PinHighlight bool
}

// DefaultOptions returns Options configured from flags and environment.
func DefaultOptions() Options {
	return Options{
		Highlight:    highlightFlag.Value(),
		PinHighlight: pinHighlightFlag.Value(),
	}
}

func (o Options) isHighlight(category string) bool {
	return o.Highlight != "" && category == o.Highlight
}

// Marker describes how points of a series are drawn.
type Marker struct {
	Size      int
	Opacity   float64
	Symbol    Symbol
	LineWidth float64
	LineColor string
}

// MarkerFor returns marker for given category.
func MarkerFor(category string, options Options) Marker {
	if options.isHighlight(category) {
		return Marker{Size: LargeSize, Opacity: HighlightOpacity, Symbol: SymbolStar, LineWidth: outlineWidth, LineColor: outlineColor}
	}
	return Marker{Size: NormalSize, Opacity: NormalOpacity, Symbol: SymbolCircle, LineWidth: outlineWidth, LineColor: outlineColor}
}

// Point is a single (x, y) pair.
type Point struct {
	X float64
	Y float64
}

// Series is one category worth of points ready to plot.
// Points and Labels are parallel.
type Series struct {
	Category    string
	Points      []Point
	Labels      []string
	Visible     bool
	Highlighted bool
	Marker      Marker
}

// XValues returns x coordinates of points.
func (s Series) XValues() []float64 {
	values := make([]float64, 0, len(s.Points))
	for _, point := range s.Points {
		values = append(values, point.X)
	}
	return values
}

// YValues returns y coordinates of points.
func (s Series) YValues() []float64 {
	values := make([]float64, 0, len(s.Points))
	for _, point := range s.Points {
		values = append(values, point.Y)
	}
	return values
}

// BuildSeries projects table rows onto xField and yField, one series per working category.
// Rows missing either value are skipped. Unknown categories in selection are not an error.
func BuildSeries(table *dataset.Table, selection Selection, xField, yField string, options Options) ([]Series, error) {
	c, err := catalog.New(table)
	if err != nil {
		return nil, err
	}
	return BuildCatalogSeries(table, c, selection, xField, yField, options)
}

// BuildCatalogSeries is BuildSeries reusing fields and categories memoized in c.
func BuildCatalogSeries(table *dataset.Table, c *catalog.Catalog, selection Selection, xField, yField string, options Options) ([]Series, error) {
	if err := checkField("x", xField, c); err != nil {
		return nil, err
	}
	if err := checkField("y", yField, c); err != nil {
		return nil, err
	}

	series := []Series{}
	position := map[string]int{}
	for _, category := range c.Categories() {
		pinned := options.PinHighlight && options.isHighlight(category)

		var visible bool
		switch selection.Kind() {
		case KindAll:
			visible = true
		case KindSingle:
			visible = selection.Contains(category)
		case KindSet:
			if !selection.Contains(category) && !pinned {
				continue
			}
			visible = true
		}

		position[category] = len(series)
		series = append(series, Series{
			Category:    category,
			Points:      []Point{},
			Labels:      []string{},
			Visible:     visible,
			Highlighted: options.isHighlight(category),
			Marker:      MarkerFor(category, options),
		})
	}

	for _, row := range table.Rows() {
		i, ok := position[row.Class]
		if !ok {
			continue
		}
		x, ok := row.Value(xField)
		if !ok {
			continue
		}
		y, ok := row.Value(yField)
		if !ok {
			continue
		}
		series[i].Points = append(series[i].Points, Point{X: x, Y: y})
		series[i].Labels = append(series[i].Labels, row.Label())
	}

	return series, nil
}

func checkField(axis, field string, c *catalog.Catalog) error {
	if c.HasField(field) {
		return nil
	}
	return &InvalidFieldError{Axis: axis, Field: field, Allowed: c.Fields()}
}
