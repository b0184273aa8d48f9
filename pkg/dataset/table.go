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

import "strings"

const labelSeparator = "\n"

// Row is a single material measurement record.
type Row struct {
	Class        string
	Name         string
	Supplier     string
	SpecificType string
	values       map[string]float64
}

// NewRow creates a Row. Only numeric values that were present and parsable should be passed in values.
func NewRow(class, name, supplier, specificType string, values map[string]float64) Row {
	copied := make(map[string]float64, len(values))
	for field, value := range values {
		copied[field] = value
	}
	return Row{
		Class:        class,
		Name:         name,
		Supplier:     supplier,
		SpecificType: specificType,
		values:       copied,
	}
}

// Value returns numeric value of given field and whether it is present.
func (r Row) Value(field string) (float64, bool) {
	value, ok := r.values[field]
	return value, ok
}

// Label joins non-empty identification fields (supplier, name, specific type) with line breaks.
func (r Row) Label() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{r.Supplier, r.Name, r.SpecificType} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, labelSeparator)
}

// Table is an ordered, immutable sequence of rows.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable creates a Table from header columns and rows. Both are copied.
func NewTable(columns []string, rows []Row) *Table {
	return &Table{
		columns: append([]string{}, columns...),
		rows:    append([]Row{}, rows...),
	}
}

// Columns returns header columns in file order.
func (t *Table) Columns() []string {
	return append([]string{}, t.columns...)
}

// HasColumn reports whether header contains given column.
func (t *Table) HasColumn(name string) bool {
	for _, column := range t.columns {
		if column == name {
			return true
		}
	}
	return false
}

// Len returns number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns a copy of all rows.
func (t *Table) Rows() []Row {
	return append([]Row{}, t.rows...)
}
