package view

import "github.com/polyspectra/propview/pkg/dataset"

var axisLabels = map[string]string{
	dataset.HeatDeflectionLowField:  "Heat Deflection Temperature at 0.455 MPa (°C)",
	dataset.HeatDeflectionHighField: "Heat Deflection Temperature at 1.82 MPa (°C)",
}

// LabelFor returns axis title for a field. Heat deflection fields get a degree Celsius unit,
// other names are returned unchanged.
func LabelFor(field string) string {
	if label, ok := axisLabels[field]; ok {
		return label
	}
	return field
}
