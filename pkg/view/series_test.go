package view

import (
	"testing"

	"github.com/polyspectra/propview/pkg/catalog"
	"github.com/polyspectra/propview/pkg/dataset"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	xField = dataset.ElongationAtBreakField
	yField = dataset.TensileModulusField
)

var columns = []string{
	dataset.ClassField, dataset.NameField, dataset.SupplierField, dataset.SpecificTypeField,
	dataset.ElongationAtBreakField, dataset.TensileModulusField,
}

func measured(class, name string, x, y float64) dataset.Row {
	return dataset.NewRow(class, name, "", "", map[string]float64{xField: x, yField: y})
}

func twoRowTable() *dataset.Table {
	return dataset.NewTable(columns, []dataset.Row{
		measured("A", "p1", 1, 2),
		measured("B", "p2", 3, 4),
	})
}

func materialsTable() *dataset.Table {
	return dataset.NewTable(columns, []dataset.Row{
		dataset.NewRow("Sintering", "PA12", "EOS", "Nylon", map[string]float64{xField: 20, yField: 1.7}),
		dataset.NewRow("Extrusion", "ABS", "Stratasys", "ABS", map[string]float64{xField: 6, yField: 2.2}),
		dataset.NewRow("Sintering", "PA11", "EOS", "Nylon", map[string]float64{xField: 45}),
		dataset.NewRow("Photopolymer", "Tough", "Formlabs", "Resin", map[string]float64{yField: 2.8}),
		dataset.NewRow("COR", "Alpha", "polySpectra", "Resin", map[string]float64{xField: 14, yField: 2.1}),
		dataset.NewRow("Sintering", "PA2200", "EOS", "Nylon", map[string]float64{xField: 18, yField: 1.65}),
	})
}

func pointsOf(series []Series) map[string][]Point {
	points := map[string][]Point{}
	for _, s := range series {
		points[s.Category] = s.Points
	}
	return points
}

func TestBuildSeriesExamples(t *testing.T) {
	Convey("While building series of a two row table", t, func() {
		table := twoRowTable()

		Convey("All selection gives both series visible", func() {
			series, err := BuildSeries(table, All(), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 2)

			So(series[0].Category, ShouldEqual, "A")
			So(series[0].Points, ShouldResemble, []Point{{X: 1, Y: 2}})
			So(series[0].Labels, ShouldResemble, []string{"p1"})
			So(series[0].Visible, ShouldBeTrue)

			So(series[1].Category, ShouldEqual, "B")
			So(series[1].Points, ShouldResemble, []Point{{X: 3, Y: 4}})
			So(series[1].Labels, ShouldResemble, []string{"p2"})
			So(series[1].Visible, ShouldBeTrue)
		})

		Convey("Single selection keeps both series but shows only the chosen one", func() {
			series, err := BuildSeries(table, Single("A"), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 2)
			So(series[0].Visible, ShouldBeTrue)
			So(series[1].Visible, ShouldBeFalse)
			So(series[1].Points, ShouldResemble, []Point{{X: 3, Y: 4}})
		})

		Convey("Row with missing y is skipped but its category stays", func() {
			table := dataset.NewTable(columns, []dataset.Row{
				measured("A", "p1", 1, 2),
				dataset.NewRow("A", "p3", "", "", map[string]float64{xField: 5}),
				measured("B", "p2", 3, 4),
			})
			series, err := BuildSeries(table, All(), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series[0].Points, ShouldResemble, []Point{{X: 1, Y: 2}})
			So(series[0].Labels, ShouldResemble, []string{"p1"})
		})
	})
}

func TestBuildSeriesProperties(t *testing.T) {
	Convey("While building series of a materials table", t, func() {
		table := materialsTable()
		fields, err := catalog.NumericFields(table)
		So(err, ShouldBeNil)

		Convey("Points are conserved for every pair of fields", func() {
			for _, x := range fields {
				for _, y := range fields {
					series, err := BuildSeries(table, All(), x, y, Options{})
					So(err, ShouldBeNil)

					expected := 0
					for _, row := range table.Rows() {
						_, okX := row.Value(x)
						_, okY := row.Value(y)
						if okX && okY {
							expected++
						}
					}

					got := 0
					for _, s := range series {
						So(len(s.Points), ShouldEqual, len(s.Labels))
						So(s.Visible, ShouldBeTrue)
						got += len(s.Points)
					}
					So(got, ShouldEqual, expected)
				}
			}
		})

		Convey("Series follow first-seen category order", func() {
			series, err := BuildSeries(table, All(), xField, yField, Options{})
			So(err, ShouldBeNil)
			categories := []string{}
			for _, s := range series {
				categories = append(categories, s.Category)
			}
			So(categories, ShouldResemble, []string{"Sintering", "Extrusion", "Photopolymer", "COR"})
		})

		Convey("Points keep row order and labels join identification fields", func() {
			series, err := BuildSeries(table, All(), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series[0].Points, ShouldResemble, []Point{{X: 20, Y: 1.7}, {X: 18, Y: 1.65}})
			So(series[0].Labels, ShouldResemble, []string{"EOS\nPA12\nNylon", "EOS\nPA2200\nNylon"})
		})

		Convey("Category without qualifying rows yields empty series", func() {
			series, err := BuildSeries(table, All(), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series[2].Category, ShouldEqual, "Photopolymer")
			So(series[2].Points, ShouldBeEmpty)
			So(series[2].Labels, ShouldBeEmpty)
		})

		Convey("Single selection never drops data", func() {
			all, err := BuildSeries(table, All(), xField, yField, Options{})
			So(err, ShouldBeNil)

			for _, category := range catalog.Categories(table) {
				single, err := BuildSeries(table, Single(category), xField, yField, Options{})
				So(err, ShouldBeNil)
				So(single, ShouldHaveLength, len(all))
				So(pointsOf(single), ShouldResemble, pointsOf(all))
				for _, s := range single {
					So(s.Visible, ShouldEqual, s.Category == category)
				}
			}
		})

		Convey("Single selection of unknown category hides every series", func() {
			series, err := BuildSeries(table, Single("Unknown"), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 4)
			for _, s := range series {
				So(s.Visible, ShouldBeFalse)
			}
		})

		Convey("Set selection keeps catalog order and drops unknown categories", func() {
			series, err := BuildSeries(table, Set("COR", "Unknown", "Sintering"), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 2)
			So(series[0].Category, ShouldEqual, "Sintering")
			So(series[1].Category, ShouldEqual, "COR")
		})

		Convey("Set selection without known categories is empty", func() {
			series, err := BuildSeries(table, Set("Unknown"), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldBeEmpty)

			series, err = BuildSeries(table, Set(), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldBeEmpty)
		})

		Convey("Highlight category gets emphasized markers for every selection", func() {
			options := Options{Highlight: "COR"}
			for _, selection := range []Selection{All(), Single("Sintering"), Single("COR"), Set("COR", "Extrusion")} {
				series, err := BuildSeries(table, selection, xField, yField, options)
				So(err, ShouldBeNil)
				for _, s := range series {
					if s.Category == "COR" {
						So(s.Highlighted, ShouldBeTrue)
						So(s.Marker.Opacity, ShouldEqual, HighlightOpacity)
						So(s.Marker.Size, ShouldEqual, LargeSize)
						So(s.Marker.Symbol, ShouldEqual, SymbolStar)
					} else {
						So(s.Highlighted, ShouldBeFalse)
						So(s.Marker.Opacity, ShouldEqual, NormalOpacity)
						So(s.Marker.Size, ShouldEqual, NormalSize)
						So(s.Marker.Symbol, ShouldEqual, SymbolCircle)
					}
				}
			}
		})

		Convey("Without pinning highlight follows the selection", func() {
			series, err := BuildSeries(table, Set("Extrusion"), xField, yField, Options{Highlight: "COR"})
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 1)
			So(series[0].Category, ShouldEqual, "Extrusion")
		})

		Convey("Pinned highlight is never dropped by selection", func() {
			options := Options{Highlight: "COR", PinHighlight: true}

			series, err := BuildSeries(table, Set("Extrusion"), xField, yField, options)
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 2)
			So(series[0].Category, ShouldEqual, "Extrusion")
			So(series[1].Category, ShouldEqual, "COR")
			So(series[1].Visible, ShouldBeTrue)

		})

		Convey("Single selection shows only the chosen category even with pinned highlight", func() {
			options := Options{Highlight: "COR", PinHighlight: true}

			series, err := BuildSeries(table, Single("Extrusion"), xField, yField, options)
			So(err, ShouldBeNil)
			for _, s := range series {
				So(s.Visible, ShouldEqual, s.Category == "Extrusion")
				So(s.Highlighted, ShouldEqual, s.Category == "COR")
			}
		})

		Convey("Memoized catalog gives the same series", func() {
			c, err := catalog.New(table)
			So(err, ShouldBeNil)

			expected, err := BuildSeries(table, Set("Extrusion"), xField, yField, Options{})
			So(err, ShouldBeNil)
			series, err := BuildCatalogSeries(table, c, Set("Extrusion"), xField, yField, Options{})
			So(err, ShouldBeNil)
			So(series, ShouldResemble, expected)

			_, err = BuildCatalogSeries(table, c, All(), dataset.FlexuralModulusField, yField, Options{})
			So(IsInvalidFieldError(err), ShouldBeTrue)
		})

		Convey("Pinned highlight absent from table is not invented", func() {
			series, err := BuildSeries(table, Set("Extrusion"), xField, yField, Options{Highlight: "Missing", PinHighlight: true})
			So(err, ShouldBeNil)
			So(series, ShouldHaveLength, 1)
		})

		Convey("Unknown axis field is rejected", func() {
			_, err := BuildSeries(table, All(), dataset.FlexuralModulusField, yField, Options{})
			So(err, ShouldNotBeNil)
			So(IsInvalidFieldError(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "x axis")

			_, err = BuildSeries(table, All(), xField, "Name", Options{})
			So(IsInvalidFieldError(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "y axis")
		})

		Convey("Table without numeric fields is a schema error", func() {
			bare := dataset.NewTable([]string{dataset.ClassField}, nil)
			_, err := BuildSeries(bare, All(), xField, yField, Options{})
			So(catalog.IsSchemaError(err), ShouldBeTrue)
		})
	})
}
