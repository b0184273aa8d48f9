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

// Column names of the materials table.
const (
	ClassField        = "AM Process"
	NameField         = "Name"
	SupplierField     = "Supplier"
	SpecificTypeField = "Specific Type"

	TensileStrengthField    = "Ultimate Tensile Strength (MPa)"
	TensileModulusField     = "Tensile Modulus (GPa)"
	ElongationAtBreakField  = "Elongation at Break (%)"
	FlexuralModulusField    = "Flexural Modulus (GPa)"
	HeatDeflectionLowField  = "Heat Deflection Temperature at 0.455 MPa (oC)"
	HeatDeflectionHighField = "Heat Deflection Temperature at 1.82 MPa (oC)"
)

var numericFields = []string{
	TensileStrengthField,
	TensileModulusField,
	ElongationAtBreakField,
	FlexuralModulusField,
	HeatDeflectionLowField,
	HeatDeflectionHighField,
}

// NumericFields returns the fixed list of measurement columns in display order.
func NumericFields() []string {
	return append([]string{}, numericFields...)
}

// IsNumericField reports whether name is one of the fixed measurement columns.
func IsNumericField(name string) bool {
	for _, field := range numericFields {
		if field == name {
			return true
		}
	}
	return false
}

// RequiredColumns returns columns which every loaded table must carry.
func RequiredColumns() []string {
	return []string{ClassField, NameField, SupplierField, SpecificTypeField}
}
