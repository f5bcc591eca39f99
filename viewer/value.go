package viewer

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// rowsFromRecord decodes a record into row maps keyed by column name.
// columns selects a subset of the record's columns by index; nil means all.
func rowsFromRecord(rec arrow.RecordBatch, columns []int) []map[string]interface{} {
	fields := rec.Schema().Fields()
	if columns == nil {
		columns = make([]int, len(fields))
		for i := range columns {
			columns[i] = i
		}
	}

	numRows := int(rec.NumRows())
	rows := make([]map[string]interface{}, numRows)
	for i := 0; i < numRows; i++ {
		row := make(map[string]interface{}, len(columns))
		for _, j := range columns {
			col := rec.Column(j)
			if col.IsNull(i) {
				row[fields[j].Name] = nil
			} else {
				row[fields[j].Name] = convertArrowValue(col, i)
			}
		}
		rows[i] = row
	}
	return rows
}

// convertArrowValue converts a single non-null array cell into a plain Go
// value suitable for JSON serialization. Strings and byte slices are copied
// so nothing keeps a reference into Arrow buffer memory.
func convertArrowValue(col arrow.Array, i int) interface{} {
	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(i)
	case *array.Int8:
		return int64(c.Value(i))
	case *array.Int16:
		return int64(c.Value(i))
	case *array.Int32:
		return int64(c.Value(i))
	case *array.Int64:
		return c.Value(i)
	case *array.Uint8:
		return uint64(c.Value(i))
	case *array.Uint16:
		return uint64(c.Value(i))
	case *array.Uint32:
		return uint64(c.Value(i))
	case *array.Uint64:
		return c.Value(i)
	case *array.Float32:
		return float64(c.Value(i))
	case *array.Float64:
		return c.Value(i)
	case *array.String:
		return strings.Clone(c.Value(i))
	case *array.LargeString:
		return strings.Clone(c.Value(i))
	case *array.Binary:
		b := c.Value(i)
		copied := make([]byte, len(b))
		copy(copied, b)
		return copied
	case *array.LargeBinary:
		b := c.Value(i)
		copied := make([]byte, len(b))
		copy(copied, b)
		return copied
	case *array.Timestamp:
		// Normalize to epoch milliseconds regardless of the column's unit.
		tsType := c.DataType().(*arrow.TimestampType)
		ts := c.Value(i)
		switch tsType.Unit {
		case arrow.Second:
			ts *= 1000
		case arrow.Millisecond:
			// already ms
		case arrow.Microsecond:
			ts /= 1000
		case arrow.Nanosecond:
			ts /= 1000000
		}
		return int64(ts)
	case *array.Null:
		return nil
	case *array.List:
		return convertListValue(c, i)
	case *array.LargeList:
		return convertLargeListValue(c, i)
	case *array.Struct:
		return convertStructValue(c, i)
	case *array.Map:
		return convertMapValue(c, i)
	default:
		// Dates, times, decimals and anything else fall back to the array's
		// own string rendering.
		return c.ValueStr(i)
	}
}

// convertListValue converts a List array value to a Go slice.
func convertListValue(arr *array.List, i int) interface{} {
	if arr.IsNull(i) {
		return nil
	}

	start, end := arr.ValueOffsets(i)
	values := arr.ListValues()

	result := make([]interface{}, 0, end-start)
	for j := start; j < end; j++ {
		if values.IsNull(int(j)) {
			result = append(result, nil)
		} else {
			result = append(result, convertArrowValue(values, int(j)))
		}
	}
	return result
}

// convertLargeListValue converts a LargeList array value to a Go slice.
func convertLargeListValue(arr *array.LargeList, i int) interface{} {
	if arr.IsNull(i) {
		return nil
	}

	start, end := arr.ValueOffsets(i)
	values := arr.ListValues()

	result := make([]interface{}, 0, end-start)
	for j := start; j < end; j++ {
		if values.IsNull(int(j)) {
			result = append(result, nil)
		} else {
			result = append(result, convertArrowValue(values, int(j)))
		}
	}
	return result
}

// convertStructValue converts a Struct array value to a Go map.
func convertStructValue(arr *array.Struct, i int) interface{} {
	if arr.IsNull(i) {
		return nil
	}

	dt := arr.DataType().(*arrow.StructType)
	fields := dt.Fields()

	result := make(map[string]interface{}, len(fields))
	for j, field := range fields {
		col := arr.Field(j)
		if col.IsNull(i) {
			result[field.Name] = nil
		} else {
			result[field.Name] = convertArrowValue(col, i)
		}
	}
	return result
}

// convertMapValue converts a Map array value to a Go map keyed by the
// entries' string renderings.
func convertMapValue(arr *array.Map, i int) interface{} {
	if arr.IsNull(i) {
		return nil
	}

	start, end := arr.ValueOffsets(i)
	keys := arr.Keys()
	items := arr.Items()

	result := make(map[string]interface{}, end-start)
	for j := start; j < end; j++ {
		key := keys.ValueStr(int(j))
		if items.IsNull(int(j)) {
			result[key] = nil
		} else {
			result[key] = convertArrowValue(items, int(j))
		}
	}
	return result
}
