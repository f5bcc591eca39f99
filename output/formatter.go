package output

import (
	"fmt"
	"io"
	"sort"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert rows to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// columnNames collects the union of column names across rows, sorted for a
// stable header. Rows may be heterogeneous when they come from files with
// sparse or evolving schemas.
func columnNames(rows []map[string]interface{}) []string {
	columnSet := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}

// formatValue converts a value to its string rendering for CSV and table
// output.
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
