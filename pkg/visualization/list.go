package visualization

import (
	"fmt"
	"io"
)

// List is a model for data.
type List struct {
	elements []string
	label    string
}

// NewList creates new model of data representation.
func NewList(elements []string, label string) *List {
	return &List{
		elements,
		label,
	}
}

// Draw prints label followed by one element per line.
func (l *List) Draw(w io.Writer) {
	fmt.Fprintln(w, l.label)
	for _, value := range l.elements {
		fmt.Fprintln(w, "  "+value)
	}
}
