package view

import (
	"github.com/polyspectra/propview/pkg/catalog"
	"github.com/polyspectra/propview/pkg/dataset"
)

// Figure is everything needed to draw a chart for one selection.
type Figure struct {
	Title  string
	XField string
	YField string
	XLabel string
	YLabel string
	Series []Series
}

// BuildFigure builds series together with axis labels and title.
func BuildFigure(table *dataset.Table, selection Selection, xField, yField string, options Options) (*Figure, error) {
	c, err := catalog.New(table)
	if err != nil {
		return nil, err
	}
	return BuildCatalogFigure(table, c, selection, xField, yField, options)
}

// BuildCatalogFigure is BuildFigure reusing fields and categories memoized in c.
func BuildCatalogFigure(table *dataset.Table, c *catalog.Catalog, selection Selection, xField, yField string, options Options) (*Figure, error) {
	series, err := BuildCatalogSeries(table, c, selection, xField, yField, options)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Title:  selection.String(),
		XField: xField,
		YField: yField,
		XLabel: LabelFor(xField),
		YLabel: LabelFor(yField),
		Series: series,
	}, nil
}

// VisiblePoints returns number of points in visible series.
func (f *Figure) VisiblePoints() int {
	count := 0
	for _, series := range f.Series {
		if series.Visible {
			count += len(series.Points)
		}
	}
	return count
}
