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

// Package catalog derives selectable axis fields and material classes from a loaded table.
package catalog

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/polyspectra/propview/pkg/dataset"
)

// SchemaError is returned when a table has none of the known numeric fields.
type SchemaError struct {
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("none of the numeric fields %q found in columns %q", dataset.NumericFields(), e.Columns)
}

// IsSchemaError checks if the root cause of err is a SchemaError.
func IsSchemaError(err error) bool {
	_, ok := errors.Cause(err).(*SchemaError)
	return ok
}

// NumericFields returns fixed numeric fields present in the table, in fixed order.
func NumericFields(table *dataset.Table) ([]string, error) {
	fields := []string{}
	for _, field := range dataset.NumericFields() {
		if table.HasColumn(field) {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil, &SchemaError{Columns: table.Columns()}
	}
	return fields, nil
}

// Categories returns distinct class values in first-seen order.
func Categories(table *dataset.Table) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, row := range table.Rows() {
		if seen[row.Class] {
			continue
		}
		seen[row.Class] = true
		categories = append(categories, row.Class)
	}
	return categories
}

// Chooser returns categories offered to the user, which excludes the highlight category.
func Chooser(table *dataset.Table, highlight string) []string {
	chooser := []string{}
	for _, category := range Categories(table) {
		if highlight != "" && category == highlight {
			continue
		}
		chooser = append(chooser, category)
	}
	return chooser
}

// Catalog memoizes NumericFields and Categories of an immutable table.
type Catalog struct {
	fields     []string
	categories []string
}

// New builds a Catalog. It fails with SchemaError when the table has no numeric fields.
func New(table *dataset.Table) (*Catalog, error) {
	fields, err := NumericFields(table)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		fields:     fields,
		categories: Categories(table),
	}, nil
}

// Fields returns axis candidates.
func (c *Catalog) Fields() []string {
	return append([]string{}, c.fields...)
}

// Categories returns class filter candidates.
func (c *Catalog) Categories() []string {
	return append([]string{}, c.categories...)
}

// HasField reports whether name is an axis candidate.
func (c *Catalog) HasField(name string) bool {
	for _, field := range c.fields {
		if field == name {
			return true
		}
	}
	return false
}
