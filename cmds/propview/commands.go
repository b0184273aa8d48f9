package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/catalog"
	"github.com/polyspectra/propview/pkg/conf"
	"github.com/polyspectra/propview/pkg/dataset"
	"github.com/polyspectra/propview/pkg/render"
	"github.com/polyspectra/propview/pkg/server"
	"github.com/polyspectra/propview/pkg/summary"
	"github.com/polyspectra/propview/pkg/utils/errutil"
	httputil "github.com/polyspectra/propview/pkg/utils/http"
	"github.com/polyspectra/propview/pkg/view"
	"github.com/polyspectra/propview/pkg/visualization"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

const readinessTimeout = time.Second

func serve() {
	cache := newCache()

	// Load before listening; a failed load is served as an error page.
	if _, err := cache.Get(context.Background()); err != nil {
		logrus.Errorf("Dataset is not available: %v", err)
	}

	dashboard := server.New(cache, server.DefaultOptions())
	errutil.Check(dashboard.Start(server.ListenAddress.Value()))
	if !httputil.IsListening(dashboard.Address(), readinessTimeout) {
		logrus.Warnf("Dashboard does not accept connections on %s yet", dashboard.Address())
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- dashboard.Wait()
	}()

	select {
	case sig := <-signals:
		logrus.Infof("Received %v", sig)
		errutil.Check(dashboard.Stop())
	case err := <-done:
		errutil.Check(err)
	}
}

func listFields(w io.Writer) {
	table, c := loadTable()

	labels := []string{}
	for _, field := range c.Fields() {
		labels = append(labels, view.LabelFor(field))
	}
	visualization.NewList(labels, "Axis fields:").Draw(w)
	visualization.NewList(c.Categories(), "Material classes:").Draw(w)
	visualization.NewList(catalog.Chooser(table, view.DefaultOptions().Highlight), "Offered in class chooser:").Draw(w)
}

func show(w io.Writer, figure *view.Figure) {
	summaries, err := summary.Summarize(figure.Series)
	errutil.CheckWithContext(err, "cannot summarize series")

	fmt.Fprintf(w, "%s: %s vs %s\n", figure.Title, figure.YLabel, figure.XLabel)
	visualization.NewTable(summary.Headers(figure.XLabel, figure.YLabel), summary.Rows(summaries)).Draw(w)
}

func renderChart(figure *view.Figure, output string, width, height int) {
	file, err := os.Create(output)
	errutil.CheckWithContext(err, "cannot create output")
	defer file.Close()

	err = render.PNG(file, figure, width, height)
	errutil.CheckWithContext(err, "cannot render chart")
	logrus.Infof("Chart with %d points written to %q", figure.VisiblePoints(), output)
}

// fetch downloads the configured source into output. The file is replaced only when it parses.
func fetch(output string) {
	source := dataset.NewSource(conf.DatasetSource.Value(), conf.FetchTimeout.Value())
	reader, err := source.Open(context.Background())
	errutil.CheckWithContext(err, "cannot fetch dataset")
	defer reader.Close()

	temp, err := ioutil.TempFile(filepath.Dir(output), ".propview-")
	errutil.CheckWithContext(err, "cannot create temporary file")
	defer os.Remove(temp.Name())

	bar := pb.New64(0).SetUnits(pb.U_BYTES)
	bar.Output = os.Stderr
	bar.Start()
	_, err = io.Copy(temp, bar.NewProxyReader(reader))
	bar.Finish()
	errutil.CheckWithContext(err, "cannot download dataset")
	errutil.CheckWithContext(temp.Close(), "cannot write dataset")

	errutil.CheckWithContext(validate(temp.Name()), "downloaded dataset is unusable")
	errutil.CheckWithContext(os.Rename(temp.Name(), output), "cannot move dataset into place")
	logrus.Infof("Dataset from %q saved to %q", source.Location(), output)
}

func validate(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "cannot open %q", path)
	}
	defer file.Close()

	table, err := dataset.Parse(file, dataset.Options{})
	if err != nil {
		return err
	}
	_, err = catalog.New(table)
	return err
}
