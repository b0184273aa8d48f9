package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionDisplayForm(t *testing.T) {
	assert.Equal(t, AllTitle, All().String())
	assert.Equal(t, "Sintering", Single("Sintering").String())
	assert.Equal(t, "Sintering, Extrusion", Set("Sintering", "Extrusion", "Sintering").String())
	assert.Equal(t, "", Set().String())
}

func TestSelectionContains(t *testing.T) {
	assert.True(t, All().Contains("anything"))
	assert.True(t, Single("A").Contains("A"))
	assert.False(t, Single("A").Contains("B"))
	assert.True(t, Set("A", "B").Contains("B"))
	assert.False(t, Set().Contains("A"))
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		mode   string
		values []string
		kind   SelectionKind
		want   []string
	}{
		{"", nil, KindAll, []string{}},
		{"", []string{"A", "B"}, KindSet, []string{"A", "B"}},
		{"all", []string{"A"}, KindAll, []string{}},
		{"ALL", nil, KindAll, []string{}},
		{"single", []string{"A"}, KindSingle, []string{"A"}},
		{"set", nil, KindSet, []string{}},
		{"set", []string{"B", "B"}, KindSet, []string{"B"}},
	}

	for _, test := range tests {
		selection, err := ParseSelection(test.mode, test.values)
		require.NoError(t, err, test.mode)
		assert.Equal(t, test.kind, selection.Kind(), test.mode)
		assert.Equal(t, test.want, selection.Values(), test.mode)
	}
}

func TestParseSelectionErrors(t *testing.T) {
	_, err := ParseSelection("single", nil)
	assert.Error(t, err)
	_, err = ParseSelection("single", []string{"A", "B"})
	assert.Error(t, err)
	_, err = ParseSelection("some", nil)
	assert.Error(t, err)
}

func TestSelectionKindString(t *testing.T) {
	assert.Equal(t, "all", KindAll.String())
	assert.Equal(t, "single", KindSingle.String())
	assert.Equal(t, "set", KindSet.String())
	assert.Equal(t, "unknown", SelectionKind(42).String())
}
