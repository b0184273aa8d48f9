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

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/conf"
	errcollection "github.com/polyspectra/propview/pkg/utils/err_collection"
	"github.com/polyspectra/propview/pkg/utils/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const overrideDelimiter = "="

var classOverrideFlag = conf.NewSliceFlag(
	"class_override",
	"Patch class of a data row after load, as row=class (0-based row index). Can be repeated.",
	"26=polySpectra COR Alpha")

// LoadError is returned when dataset cannot be fetched or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load dataset from %q: %v", e.Source, e.Err)
}

// Unwrap returns underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError checks if the root cause of err is a LoadError.
func IsLoadError(err error) bool {
	_, ok := errors.Cause(err).(*LoadError)
	return ok
}

// Options tune how raw rows become a Table.
type Options struct {
	// ClassOverrides maps 0-based data row index to class replacing the one from file.
	ClassOverrides map[int]string
}

// DefaultOptions returns Options configured from flags and environment.
func DefaultOptions() (Options, error) {
	overrides, err := ParseClassOverrides(classOverrideFlag.Value())
	if err != nil {
		return Options{}, err
	}
	return Options{ClassOverrides: overrides}, nil
}

// ParseClassOverrides parses "row=class" entries.
func ParseClassOverrides(entries []string) (map[int]string, error) {
	overrides := map[int]string{}
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		fields := strings.SplitN(entry, overrideDelimiter, 2)
		if len(fields) != 2 || fields[1] == "" {
			return nil, errors.Errorf("class override %q should have row=class format", entry)
		}
		row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || row < 0 {
			return nil, errors.Errorf("class override %q has invalid row index", entry)
		}
		overrides[row] = fields[1]
	}
	return overrides, nil
}

// Load fetches and parses the dataset. Any failure is reported as LoadError.
func Load(ctx context.Context, source Source, options Options) (*Table, error) {
	log := logrus.WithFields(logrus.Fields{
		"load_id": uuid.New(),
		"source":  source.Location(),
	})
	log.Debug("Loading dataset")

	reader, err := source.Open(ctx)
	if err != nil {
		return nil, &LoadError{Source: source.Location(), Err: err}
	}
	defer reader.Close()

	table, err := Parse(reader, options)
	if err != nil {
		return nil, &LoadError{Source: source.Location(), Err: err}
	}

	log.Infof("Loaded %d rows with %d columns", table.Len(), len(table.columns))
	return table, nil
}

// Parse reads a CSV with header row into a Table and applies class overrides.
func Parse(reader io.Reader, options Options) (*Table, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, errors.New("dataset is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read header")
	}

	index := map[string]int{}
	columns := make([]string, 0, len(header))
	for i, column := range header {
		column = strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))
		columns = append(columns, column)
		if _, ok := index[column]; !ok {
			index[column] = i
		}
	}

	var missing errcollection.ErrorCollection
	for _, required := range RequiredColumns() {
		if _, ok := index[required]; !ok {
			missing.Add(errors.Errorf("missing required column %q", required))
		}
	}
	if err := missing.GetErrIfAny(); err != nil {
		return nil, err
	}

	rows := []Row{}
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read row %d", len(rows))
		}
		rows = append(rows, parseRow(record, index))
	}

	for rowIndex, class := range options.ClassOverrides {
		if rowIndex >= len(rows) {
			logrus.Warnf("Skipping class override for row %d: dataset has %d rows", rowIndex, len(rows))
			continue
		}
		logrus.Debugf("Overriding class of row %d from %q to %q", rowIndex, rows[rowIndex].Class, class)
		rows[rowIndex].Class = class
	}

	return NewTable(columns, rows), nil
}

func parseRow(record []string, index map[string]int) Row {
	cell := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	values := map[string]float64{}
	for _, field := range numericFields {
		if value, ok := parseNumber(cell(field)); ok {
			values[field] = value
		}
	}

	return NewRow(cell(ClassField), cell(NameField), cell(SupplierField), cell(SpecificTypeField), values)
}

// parseNumber accepts plain decimal numbers. Empty and textual cells are treated as missing.
func parseNumber(cell string) (float64, bool) {
	if cell == "" {
		return 0, false
	}
	number, err := decimal.NewFromString(cell)
	if err != nil {
		return 0, false
	}
	value, _ := number.Float64()
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}
