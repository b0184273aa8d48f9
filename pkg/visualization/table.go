package visualization

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// Draw draws headers and data rows into writer.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	output.SetAutoFormatHeaders(false)
	output.SetAutoWrapText(false)
	output.AppendBulk(t.data)
	output.Render()
}
