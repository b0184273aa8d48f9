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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/facebookgo/httpdown"
	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/catalog"
	"github.com/polyspectra/propview/pkg/conf"
	"github.com/polyspectra/propview/pkg/dataset"
	"github.com/polyspectra/propview/pkg/render"
	"github.com/polyspectra/propview/pkg/view"
	"github.com/sirupsen/logrus"
)

const (
	stopTimeout = 10 * time.Second
	killTimeout = time.Second
)

var (
	// ListenAddress is the address HTTP server binds to.
	ListenAddress = conf.NewStringFlag("listen", "HTTP listen address of the dashboard", ":8050")
	// DefaultXFlag is the x axis shown before the user picks one.
	DefaultXFlag = conf.NewStringFlag("x_axis", "Default x axis field", dataset.ElongationAtBreakField)
	// DefaultYFlag is the y axis shown before the user picks one.
	DefaultYFlag = conf.NewStringFlag("y_axis", "Default y axis field", dataset.TensileModulusField)
)

// TableProvider returns the loaded table or the load failure.
type TableProvider interface {
	Get(ctx context.Context) (*dataset.Table, error)
	Location() string
}

// Options configure the dashboard.
type Options struct {
	View     view.Options
	DefaultX string
	DefaultY string
	Width    int
	Height   int
}

// DefaultOptions returns Options configured from flags and environment.
func DefaultOptions() Options {
	return Options{
		View:     view.DefaultOptions(),
		DefaultX: DefaultXFlag.Value(),
		DefaultY: DefaultYFlag.Value(),
		Width:    render.DefaultWidth,
		Height:   render.DefaultHeight,
	}
}

// Server is the HTTP dashboard over a single immutable table.
type Server struct {
	provider TableProvider
	options  Options

	once    sync.Once
	table   *dataset.Table
	catalog *catalog.Catalog
	err     error

	server  httpdown.Server
	address string
}

// New creates Server. It does not listen until Start is called.
func New(provider TableProvider, options Options) *Server {
	return &Server{
		provider: provider,
		options:  options,
	}
}

// Handler returns routes of the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.index)
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/api/schema", s.schema)
	mux.HandleFunc("/api/figure", s.figure)
	mux.HandleFunc("/chart.png", s.chart)
	return logRequests(mux)
}

// Start binds address and serves in background.
func (s *Server) Start(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrapf(err, "cannot listen on %q", address)
	}

	hd := &httpdown.HTTP{StopTimeout: stopTimeout, KillTimeout: killTimeout}
	s.server = hd.Serve(&http.Server{Handler: s.Handler()}, listener)
	s.address = listener.Addr().String()
	logrus.Infof("Serving dashboard on %s", s.address)
	return nil
}

// Address returns bound address after Start.
func (s *Server) Address() string {
	return s.address
}

// Wait blocks until server is stopped.
func (s *Server) Wait() error {
	if s.server == nil {
		return errors.New("server is not started")
	}
	return s.server.Wait()
}

// Stop gracefully stops the server.
func (s *Server) Stop() error {
	if s.server == nil {
		return errors.New("server is not started")
	}
	logrus.Info("Stopping dashboard")
	return s.server.Stop()
}

// state returns table with its catalog or writes 503 and returns false.
// load returns the table with its catalog, both computed once.
func (s *Server) load(ctx context.Context) (*dataset.Table, *catalog.Catalog, error) {
	s.once.Do(func() {
		s.table, s.err = s.provider.Get(ctx)
		if s.err == nil {
			s.catalog, s.err = catalog.New(s.table)
		}
	})
	return s.table, s.catalog, s.err
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) (*dataset.Table, *catalog.Catalog, bool) {
	table, c, err := s.load(r.Context())
	if err != nil {
		logrus.Errorf("Dataset is not available: %v", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return nil, nil, false
	}
	return table, c, true
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := s.state(w, r); !ok {
		return
	}
	w.Write([]byte("ok"))
}

type fieldJSON struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type schemaJSON struct {
	Fields     []fieldJSON `json:"fields"`
	Categories []string    `json:"categories"`
	Chooser    []string    `json:"chooser"`
	Highlight  string      `json:"highlight"`
	DefaultX   string      `json:"default_x"`
	DefaultY   string      `json:"default_y"`
}

func (s *Server) schemaOf(table *dataset.Table, c *catalog.Catalog) schemaJSON {
	fields := []fieldJSON{}
	for _, field := range c.Fields() {
		fields = append(fields, fieldJSON{Name: field, Label: view.LabelFor(field)})
	}
	return schemaJSON{
		Fields:     fields,
		Categories: c.Categories(),
		Chooser:    catalog.Chooser(table, s.options.View.Highlight),
		Highlight:  s.options.View.Highlight,
		DefaultX:   s.options.DefaultX,
		DefaultY:   s.options.DefaultY,
	}
}

func (s *Server) schema(w http.ResponseWriter, r *http.Request) {
	table, c, ok := s.state(w, r)
	if !ok {
		return
	}
	writeJSON(w, s.schemaOf(table, c))
}

// buildFigure reads x, y, mode and class query parameters.
func (s *Server) buildFigure(w http.ResponseWriter, r *http.Request) (*view.Figure, bool) {
	table, c, ok := s.state(w, r)
	if !ok {
		return nil, false
	}

	query := r.URL.Query()
	selection, err := view.ParseSelection(query.Get("mode"), query["class"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	x, y := query.Get("x"), query.Get("y")
	if x == "" {
		x = s.options.DefaultX
	}
	if y == "" {
		y = s.options.DefaultY
	}

	figure, err := view.BuildCatalogFigure(table, c, selection, x, y, s.options.View)
	if err != nil {
		status := http.StatusInternalServerError
		if view.IsInvalidFieldError(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return nil, false
	}
	return figure, true
}

func (s *Server) figure(w http.ResponseWriter, r *http.Request) {
	figure, ok := s.buildFigure(w, r)
	if !ok {
		return
	}
	writeJSON(w, figure.Plotly())
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	figure, ok := s.buildFigure(w, r)
	if !ok {
		return
	}

	// Render into a buffer first so failures can still change the status code.
	buffer := &bytes.Buffer{}
	err := render.PNG(buffer, figure, s.options.Width, s.options.Height)
	if err == render.ErrNothingToDraw {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buffer.Bytes())
}

func writeJSON(w http.ResponseWriter, value interface{}) {
	buffer := &bytes.Buffer{}
	if err := json.NewEncoder(buffer).Encode(value); err != nil {
		logrus.Errorf("Cannot encode response: %v", err)
		http.Error(w, errors.Wrap(err, "cannot encode response").Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buffer.Bytes())
}
