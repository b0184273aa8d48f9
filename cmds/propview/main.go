package main

import (
	"context"
	"os"

	"github.com/polyspectra/propview/pkg/catalog"
	"github.com/polyspectra/propview/pkg/conf"
	"github.com/polyspectra/propview/pkg/dataset"
	"github.com/polyspectra/propview/pkg/server"
	"github.com/polyspectra/propview/pkg/utils/errutil"
	"github.com/polyspectra/propview/pkg/view"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	serveCmd  = conf.Command("serve", "Serve the interactive dashboard.").Default()
	fieldsCmd = conf.Command("fields", "List axis fields and material classes.")
	showCmd   = conf.Command("show", "Print statistics of plotted series.")
	renderCmd = conf.Command("render", "Render the chart as PNG.")
	fetchCmd  = conf.Command("fetch", "Download the dataset to a local file.")
	configCmd = conf.Command("config", "Print configuration as environment variables.")

	showSelection   = newSelectionFlags(showCmd)
	renderSelection = newSelectionFlags(renderCmd)
	renderOutput    = renderCmd.Flag("output", "PNG file to write.").Short('o').Default("chart.png").String()
	renderWidth     = renderCmd.Flag("width", "Image width in pixels.").Default("1024").Int()
	renderHeight    = renderCmd.Flag("height", "Image height in pixels.").Default("640").Int()
	fetchOutput     = fetchCmd.Flag("output", "File to write the dataset to.").Short('o').Default("materials.csv").String()
)

// selectionFlags are per command flags choosing classes and axes.
type selectionFlags struct {
	mode    *string
	classes *[]string
	x       *string
	y       *string
}

func newSelectionFlags(cmd *kingpin.CmdClause) selectionFlags {
	return selectionFlags{
		mode:    cmd.Flag("mode", "Class selection mode: all, single or set. Empty picks all without classes and set otherwise.").String(),
		classes: cmd.Flag("class", "Material class to select. Can be repeated.").Strings(),
		x:       cmd.Flag("x", "X axis field (defaults to x_axis).").String(),
		y:       cmd.Flag("y", "Y axis field (defaults to y_axis).").String(),
	}
}

func (f selectionFlags) axes() (string, string) {
	x, y := *f.x, *f.y
	if x == "" {
		x = server.DefaultXFlag.Value()
	}
	if y == "" {
		y = server.DefaultYFlag.Value()
	}
	return x, y
}

func newCache() *dataset.Cache {
	options, err := dataset.DefaultOptions()
	errutil.CheckWithContext(err, "invalid class overrides")
	source := dataset.NewSource(conf.DatasetSource.Value(), conf.FetchTimeout.Value())
	return dataset.NewCache(source, options)
}

// loadTable loads dataset and exits when it is unusable.
func loadTable() (*dataset.Table, *catalog.Catalog) {
	table, err := newCache().Get(context.Background())
	errutil.CheckWithContext(err, "cannot load materials")
	c, err := catalog.New(table)
	errutil.CheckWithContext(err, "cannot use materials")
	return table, c
}

func buildFigure(flags selectionFlags) *view.Figure {
	table, _ := loadTable()
	selection, err := view.ParseSelection(*flags.mode, *flags.classes)
	errutil.CheckWithContext(err, "invalid selection")
	x, y := flags.axes()
	figure, err := view.BuildFigure(table, selection, x, y, view.DefaultOptions())
	errutil.CheckWithContext(err, "cannot build chart")
	return figure
}

func main() {
	conf.SetAppName("propview")
	conf.SetHelp(`Compares mechanical and thermal properties of additive manufacturing materials.
The dataset is loaded once from a CSV (URL or file) and plotted per material class.`)

	command, err := conf.ParseFlags()
	errutil.Check(err)

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(conf.LogLevel())

	switch command {
	case serveCmd.FullCommand():
		serve()
	case fieldsCmd.FullCommand():
		listFields(os.Stdout)
	case showCmd.FullCommand():
		show(os.Stdout, buildFigure(showSelection))
	case renderCmd.FullCommand():
		renderChart(buildFigure(renderSelection), *renderOutput, *renderWidth, *renderHeight)
	case fetchCmd.FullCommand():
		fetch(*fetchOutput)
	case configCmd.FullCommand():
		os.Stdout.WriteString(conf.DumpConfig() + "\n")
	}
}
