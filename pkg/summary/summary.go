// Package summary computes descriptive statistics of plotted series.
package summary

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/view"
	"github.com/shopspring/decimal"
)

const precision = 2

// Axis holds statistics of one coordinate.
type Axis struct {
	Mean   float64
	Stdev  float64
	Min    float64
	Max    float64
	Median float64
}

// Summary describes one series. Axes are zero valued when Count is 0.
type Summary struct {
	Category string
	Count    int
	Visible  bool
	X        Axis
	Y        Axis
}

// Summarize computes statistics of every series in given order.
func Summarize(series []view.Series) ([]Summary, error) {
	summaries := make([]Summary, 0, len(series))
	for _, s := range series {
		summary := Summary{
			Category: s.Category,
			Count:    len(s.Points),
			Visible:  s.Visible,
		}
		if summary.Count > 0 {
			var err error
			summary.X, err = describe(s.XValues())
			if err != nil {
				return nil, errors.Wrapf(err, "x statistics of %q failed", s.Category)
			}
			summary.Y, err = describe(s.YValues())
			if err != nil {
				return nil, errors.Wrapf(err, "y statistics of %q failed", s.Category)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func describe(values []float64) (axis Axis, err error) {
	data := stats.Float64Data(values)
	if axis.Mean, err = stats.Mean(data); err != nil {
		return axis, errors.Wrap(err, "mean computation failed")
	}
	if axis.Stdev, err = stats.StandardDeviation(data); err != nil {
		return axis, errors.Wrap(err, "standard deviation computation failed")
	}
	if axis.Min, err = stats.Min(data); err != nil {
		return axis, errors.Wrap(err, "min computation failed")
	}
	if axis.Max, err = stats.Max(data); err != nil {
		return axis, errors.Wrap(err, "max computation failed")
	}
	if axis.Median, err = stats.Median(data); err != nil {
		return axis, errors.Wrap(err, "median computation failed")
	}
	return axis, nil
}

// Format renders value rounded to two decimal places.
func Format(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(precision)
}

// String renders axis as "mean (+/- stdev) [min, max]".
func (a Axis) String() string {
	return fmt.Sprintf("%s (+/- %s) [%s, %s]", Format(a.Mean), Format(a.Stdev), Format(a.Min), Format(a.Max))
}

// Rows renders summaries as table rows under Headers.
func Rows(summaries []Summary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		x, y := "-", "-"
		if s.Count > 0 {
			x, y = s.X.String(), s.Y.String()
		}
		rows = append(rows, []string{s.Category, fmt.Sprintf("%d", s.Count), fmt.Sprintf("%v", s.Visible), x, y})
	}
	return rows
}

// Headers returns table headers for Rows, naming chosen axes.
func Headers(xLabel, yLabel string) []string {
	return []string{"Class", "Points", "Visible", xLabel, yLabel}
}
