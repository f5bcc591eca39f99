package viewer

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/apache/arrow-go/v18/parquet/schema"
)

// defaultParquetBatchSize is the row count per batch when the caller passes
// zero; Arrow IPC inputs use the file's own record-batch boundaries instead.
const defaultParquetBatchSize = 1000

// RecordBatch is one chunk of decoded rows. Rows holds a row-major JSON array
// of objects (one per row, column name to value); NumRows and NumColumns are
// carried redundantly for O(1) access without re-parsing the document.
type RecordBatch struct {
	Rows       string `json:"rows"`
	NumRows    int    `json:"num_rows"`
	NumColumns int    `json:"num_columns"`
}

// RecordBatchSet is a sequence of batches in file-traversal order. Batch
// boundaries are a performance knob only: concatenating the rows of all
// batches yields the same sequence for any batch size.
type RecordBatchSet []RecordBatch

// TotalRows returns the summed row count of all batches.
func (s RecordBatchSet) TotalRows() int {
	total := 0
	for _, b := range s {
		total += b.NumRows
	}
	return total
}

// ReadData reads all rows of a Parquet or Arrow IPC file in batches.
//
// batchSize caps the rows per batch; zero selects a format-appropriate
// default. limit stops production once that many rows have been read, with
// the final batch truncated to land exactly on the limit; zero means
// unbounded.
func ReadData(path string, batchSize, limit int) (RecordBatchSet, error) {
	return readData(path, nil, batchSize, limit)
}

// ReadDataWithProjection behaves like ReadData restricted to the columns
// named by zero-based indices into the schema's field order. Duplicate or
// out-of-range indices are a validation error, not silently dropped.
func ReadDataWithProjection(path string, columns []int, batchSize, limit int) (RecordBatchSet, error) {
	if err := checkProjectionShape(columns); err != nil {
		return nil, err
	}
	return readData(path, columns, batchSize, limit)
}

func readData(path string, columns []int, batchSize, limit int) (RecordBatchSet, error) {
	if batchSize < 0 {
		return nil, NewError(KindOperationFailed, "batch size must not be negative, got %d", batchSize)
	}
	if limit < 0 {
		return nil, NewError(KindOperationFailed, "limit must not be negative, got %d", limit)
	}

	format, err := resolveFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatParquet:
		return readParquetData(path, columns, batchSize, limit)
	default:
		return readArrowData(path, columns, batchSize, limit)
	}
}

// checkProjectionShape rejects the projection lists that are invalid
// regardless of the file's schema.
func checkProjectionShape(columns []int) error {
	if len(columns) == 0 {
		return NewError(KindProjectionOutOfRange, "projection must select at least one column")
	}
	seen := make(map[int]bool, len(columns))
	for _, c := range columns {
		if seen[c] {
			return NewError(KindProjectionOutOfRange, "duplicate column index %d", c)
		}
		seen[c] = true
	}
	return nil
}

// validateProjection checks the projection list against the schema width.
func validateProjection(columns []int, numFields int) error {
	for _, c := range columns {
		if c < 0 || c >= numFields {
			return NewError(KindProjectionOutOfRange, "column index %d out of range for schema with %d fields", c, numFields)
		}
	}
	return nil
}

// batchBuilder accumulates serialized batches while enforcing the row limit.
type batchBuilder struct {
	batches    RecordBatchSet
	numColumns int
	limit      int
	produced   int
}

// done reports whether the limit has been reached.
func (b *batchBuilder) done() bool {
	return b.limit > 0 && b.produced >= b.limit
}

// remaining returns how many rows may still be produced, or -1 if unbounded.
func (b *batchBuilder) remaining() int {
	if b.limit <= 0 {
		return -1
	}
	return b.limit - b.produced
}

// add serializes rows into one batch. Rows beyond the limit must already be
// trimmed by the caller.
func (b *batchBuilder) add(rows []map[string]interface{}) error {
	doc, err := marshalRows(rows)
	if err != nil {
		return err
	}
	b.batches = append(b.batches, RecordBatch{
		Rows:       doc,
		NumRows:    len(rows),
		NumColumns: b.numColumns,
	})
	b.produced += len(rows)
	return nil
}

// readParquetData streams the file through the Arrow record reader, letting
// the parquet layer skip decoding of unselected leaf columns.
func readParquetData(path string, columns []int, batchSize, limit int) (RecordBatchSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	defer func() { _ = f.Close() }()

	pf, err := file.NewParquetReader(f)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to read parquet footer of %s", path)
	}
	defer func() { _ = pf.Close() }()

	if batchSize == 0 {
		batchSize = defaultParquetBatchSize
	}
	props := pqarrow.ArrowReadProperties{BatchSize: int64(batchSize)}
	fr, err := pqarrow.NewFileReader(pf, props, memory.DefaultAllocator)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to create arrow reader for %s", path)
	}

	sc, err := fr.Schema()
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to convert parquet schema of %s", path)
	}

	var leaves []int
	numColumns := sc.NumFields()
	if columns != nil {
		if err := validateProjection(columns, sc.NumFields()); err != nil {
			return nil, err
		}
		leaves = leafColumnIndices(pf.MetaData().Schema, columns)
		numColumns = len(columns)
	}

	rr, err := fr.GetRecordReader(context.Background(), leaves, nil)
	if err != nil {
		return nil, WrapError(KindOperationFailed, err, "failed to create record reader for %s", path)
	}
	defer rr.Release()

	b := &batchBuilder{batches: RecordBatchSet{}, numColumns: numColumns, limit: limit}
	for !b.done() {
		rec, err := rr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, WrapError(KindOperationFailed, err, "failed to read rows of %s", path)
		}
		if err := addRecord(b, rec); err != nil {
			return nil, err
		}
	}
	return b.batches, nil
}

// readArrowData iterates the IPC record batches, re-chunking only when the
// caller asked for a specific batch size.
func readArrowData(path string, columns []int, batchSize, limit int) (RecordBatchSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	defer func() { _ = f.Close() }()

	isFile, err := isArrowFile(f)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to read arrow ipc header of %s", path)
	}

	if isFile {
		fr, err := ipc.NewFileReader(f)
		if err != nil {
			return nil, WrapError(KindCorruptFile, err, "failed to open arrow ipc file %s", path)
		}
		defer func() { _ = fr.Close() }()

		b, err := newArrowBatchBuilder(fr.Schema(), columns, limit)
		if err != nil {
			return nil, err
		}
		for i := 0; i < fr.NumRecords() && !b.done(); i++ {
			rec, err := fr.RecordBatch(i)
			if err != nil {
				return nil, WrapError(KindCorruptFile, err, "failed to read record batch %d of %s", i, path)
			}
			if err := addRecordChunked(b, rec, columns, batchSize); err != nil {
				return nil, err
			}
		}
		return b.batches, nil
	}

	sr, err := ipc.NewReader(f)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to read arrow ipc header of %s", path)
	}
	defer sr.Release()

	b, err := newArrowBatchBuilder(sr.Schema(), columns, limit)
	if err != nil {
		return nil, err
	}
	for sr.Next() && !b.done() {
		if err := addRecordChunked(b, sr.RecordBatch(), columns, batchSize); err != nil {
			return nil, err
		}
	}
	if err := sr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, WrapError(KindCorruptFile, err, "failed to read arrow ipc stream %s", path)
	}
	return b.batches, nil
}

// newArrowBatchBuilder validates the projection against the IPC schema and
// sets up the accumulator.
func newArrowBatchBuilder(sc *arrow.Schema, columns []int, limit int) (*batchBuilder, error) {
	numColumns := sc.NumFields()
	if columns != nil {
		if err := validateProjection(columns, sc.NumFields()); err != nil {
			return nil, err
		}
		numColumns = len(columns)
	}
	return &batchBuilder{batches: RecordBatchSet{}, numColumns: numColumns, limit: limit}, nil
}

// addRecord appends one record as one batch, trimmed to the remaining limit.
// Projection is not needed here: parquet records arrive already projected.
func addRecord(b *batchBuilder, rec arrow.RecordBatch) error {
	rows := rowsFromRecord(rec, nil)
	if rem := b.remaining(); rem >= 0 && len(rows) > rem {
		rows = rows[:rem]
	}
	return b.add(rows)
}

// addRecordChunked appends one record, splitting its rows into chunks of
// batchSize when a positive batch size was requested. Chunks never span two
// records, so the file's own boundaries are preserved.
func addRecordChunked(b *batchBuilder, rec arrow.RecordBatch, columns []int, batchSize int) error {
	rows := rowsFromRecord(rec, columns)
	if rem := b.remaining(); rem >= 0 && len(rows) > rem {
		rows = rows[:rem]
	}

	if batchSize <= 0 || len(rows) <= batchSize {
		return b.add(rows)
	}
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := b.add(rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// leafColumnIndices maps top-level field indices to the parquet leaf column
// indices beneath them, preserving the caller's field order. Nested fields
// span several leaf columns; flat fields map one to one.
func leafColumnIndices(sc *schema.Schema, fields []int) []int {
	perField := make(map[int][]int)
	for i := 0; i < sc.NumColumns(); i++ {
		root := sc.Root().FieldIndexByField(sc.ColumnRoot(i))
		perField[root] = append(perField[root], i)
	}

	var leaves []int
	for _, f := range fields {
		leaves = append(leaves, perField[f]...)
	}
	return leaves
}
