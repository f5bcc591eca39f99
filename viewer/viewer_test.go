package viewer

import (
	"fmt"
	"os"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/goccy/go-json"
)

// testSchema returns the fixture schema shared across tests.
func testSchema(md *arrow.Metadata) *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: false},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, md)
}

// buildRecord builds a record with sequential ids starting at start. Every
// fifth name is null.
func buildRecord(t *testing.T, sc *arrow.Schema, start, rows int) arrow.RecordBatch {
	t.Helper()

	b := array.NewRecordBuilder(memory.DefaultAllocator, sc)
	defer b.Release()

	for i := 0; i < rows; i++ {
		id := int64(start + i)
		b.Field(0).(*array.Int64Builder).Append(id)
		if id%5 == 0 {
			b.Field(1).(*array.StringBuilder).AppendNull()
		} else {
			b.Field(1).(*array.StringBuilder).Append(fmt.Sprintf("name-%d", id))
		}
		b.Field(2).(*array.Float64Builder).Append(float64(id) / 2)
	}
	return b.NewRecordBatch()
}

// writeParquetFile writes rows fixture rows to path, splitting row groups
// every chunk rows.
func writeParquetFile(t *testing.T, path string, rows int, chunk int64) {
	t.Helper()

	sc := testSchema(nil)
	rec := buildRecord(t, sc, 0, rows)
	defer rec.Release()

	tbl := array.NewTableFromRecords(sc, []arrow.RecordBatch{rec})
	defer tbl.Release()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	err = pqarrow.WriteTable(tbl, f, chunk, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		t.Fatalf("failed to write parquet file: %v", err)
	}
}

// writeArrowFile writes the records to path in the IPC file encoding.
func writeArrowFile(t *testing.T, path string, sc *arrow.Schema, recs ...arrow.RecordBatch) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(sc))
	if err != nil {
		t.Fatalf("failed to create ipc file writer: %v", err)
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			t.Fatalf("failed to write record: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close ipc file writer: %v", err)
	}
}

// writeArrowStream writes the records to path in the IPC stream encoding.
func writeArrowStream(t *testing.T, path string, sc *arrow.Schema, recs ...arrow.RecordBatch) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	w := ipc.NewWriter(f, ipc.WithSchema(sc))
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			t.Fatalf("failed to write record: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close ipc stream writer: %v", err)
	}
}

// decodeRows flattens a batch set back into row maps, checking that each
// batch's declared row count matches its document.
func decodeRows(t *testing.T, batches RecordBatchSet) []map[string]interface{} {
	t.Helper()

	var rows []map[string]interface{}
	for i, b := range batches {
		var batchRows []map[string]interface{}
		if err := json.Unmarshal([]byte(b.Rows), &batchRows); err != nil {
			t.Fatalf("batch %d: failed to decode rows: %v", i, err)
		}
		if len(batchRows) != b.NumRows {
			t.Fatalf("batch %d: NumRows = %d, document has %d rows", i, b.NumRows, len(batchRows))
		}
		rows = append(rows, batchRows...)
	}
	return rows
}
