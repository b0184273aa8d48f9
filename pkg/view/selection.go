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

package view

import (
	"strings"

	"github.com/pkg/errors"
)

// AllTitle is display form of the selection of every category.
const AllTitle = "All Database Materials"

// SelectionKind tells how a Selection picks categories.
type SelectionKind int

// Kinds of Selection.
const (
	// KindAll selects every category present in the table.
	KindAll SelectionKind = iota
	// KindSingle keeps every category as a legend entry but shows points of one.
	KindSingle
	// KindSet selects exactly the given categories.
	KindSet
)

// String returns the name used in query parameters.
func (k SelectionKind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindSingle:
		return "single"
	case KindSet:
		return "set"
	}
	return "unknown"
}

// Selection is the user's choice of categories: All, Single or Set.
type Selection struct {
	kind   SelectionKind
	values []string
}

// All selects every category.
func All() Selection {
	return Selection{kind: KindAll}
}

// Single selects one visible category out of all.
func Single(value string) Selection {
	return Selection{kind: KindSingle, values: []string{value}}
}

// Set selects given categories. Duplicates are dropped.
func Set(values ...string) Selection {
	seen := map[string]bool{}
	unique := []string{}
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		unique = append(unique, value)
	}
	return Selection{kind: KindSet, values: unique}
}

// ParseSelection builds Selection from a mode name and values.
// Empty mode means All without values and Set otherwise.
func ParseSelection(mode string, values []string) (Selection, error) {
	switch strings.ToLower(mode) {
	case "":
		if len(values) == 0 {
			return All(), nil
		}
		return Set(values...), nil
	case KindAll.String():
		return All(), nil
	case KindSingle.String():
		if len(values) != 1 {
			return Selection{}, errors.Errorf("single selection needs exactly one class, got %d", len(values))
		}
		return Single(values[0]), nil
	case KindSet.String():
		return Set(values...), nil
	}
	return Selection{}, errors.Errorf("unknown selection mode %q", mode)
}

// Kind returns kind of selection.
func (s Selection) Kind() SelectionKind {
	return s.kind
}

// Values returns selected categories; empty for All.
func (s Selection) Values() []string {
	return append([]string{}, s.values...)
}

// Contains reports whether category is picked by Single or Set. All contains everything.
func (s Selection) Contains(category string) bool {
	if s.kind == KindAll {
		return true
	}
	for _, value := range s.values {
		if value == category {
			return true
		}
	}
	return false
}

// String returns display form used as chart title.
func (s Selection) String() string {
	if s.kind == KindAll {
		return AllTitle
	}
	return strings.Join(s.values, ", ")
}
