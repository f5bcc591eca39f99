package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter outputs rows as an aligned ASCII table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes rows as a bordered table with a header row
func (t *TableFormatter) Format(rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	columns := columnNames(rows)

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
