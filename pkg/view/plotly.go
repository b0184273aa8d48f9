package view

// Plotly figure JSON, consumed by plotly.js in the browser.

const legendOnly = "legendonly"

// PlotlyFigure is the JSON document accepted by Plotly.react.
type PlotlyFigure struct {
	Data   []PlotlyTrace `json:"data"`
	Layout PlotlyLayout  `json:"layout"`
}

// PlotlyTrace is a single scatter trace.
type PlotlyTrace struct {
	Type    string       `json:"type"`
	Mode    string       `json:"mode"`
	Name    string       `json:"name"`
	X       []float64    `json:"x"`
	Y       []float64    `json:"y"`
	Text    []string     `json:"text"`
	Visible interface{}  `json:"visible"`
	Marker  PlotlyMarker `json:"marker"`
}

// PlotlyMarker is marker styling of a trace.
type PlotlyMarker struct {
	Size    int        `json:"size"`
	Symbol  string     `json:"symbol"`
	Opacity float64    `json:"opacity"`
	Line    PlotlyLine `json:"line"`
}

// PlotlyLine is marker outline.
type PlotlyLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// PlotlyAxis is axis layout.
type PlotlyAxis struct {
	Title     string `json:"title"`
	RangeMode string `json:"rangemode"`
}

// PlotlyMargin is plot margin in pixels.
type PlotlyMargin struct {
	L int `json:"l"`
	B int `json:"b"`
	T int `json:"t"`
	R int `json:"r"`
}

// PlotlyLayout is figure layout.
type PlotlyLayout struct {
	Title     string       `json:"title"`
	XAxis     PlotlyAxis   `json:"xaxis"`
	YAxis     PlotlyAxis   `json:"yaxis"`
	Margin    PlotlyMargin `json:"margin"`
	HoverMode string       `json:"hovermode"`
}

// Plotly converts figure to plotly.js document. Hidden series are kept as legend entries.
func (f *Figure) Plotly() PlotlyFigure {
	traces := make([]PlotlyTrace, 0, len(f.Series))
	for _, series := range f.Series {
		var visible interface{} = true
		if !series.Visible {
			visible = legendOnly
		}
		traces = append(traces, PlotlyTrace{
			Type:    "scatter",
			Mode:    "markers",
			Name:    series.Category,
			X:       series.XValues(),
			Y:       series.YValues(),
			Text:    append([]string{}, series.Labels...),
			Visible: visible,
			Marker: PlotlyMarker{
				Size:    series.Marker.Size,
				Symbol:  string(series.Marker.Symbol),
				Opacity: series.Marker.Opacity,
				Line:    PlotlyLine{Width: series.Marker.LineWidth, Color: series.Marker.LineColor},
			},
		})
	}

	return PlotlyFigure{
		Data: traces,
		Layout: PlotlyLayout{
			Title:     f.Title,
			XAxis:     PlotlyAxis{Title: f.XLabel, RangeMode: "tozero"},
			YAxis:     PlotlyAxis{Title: f.YLabel, RangeMode: "tozero"},
			Margin:    PlotlyMargin{L: 50, B: 40, T: 50, R: 50},
			HoverMode: "closest",
		},
	}
}
