package viewer

import (
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/parquet-go/parquet-go"
)

// KeyValueEntry is one application-defined metadata pair stored in the file.
// The key is always non-empty; the value may be empty. Ordering follows the
// file's storage order.
type KeyValueEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FileMetadata carries file-level statistics and footer metadata.
//
// TotalRecords is -1 when the format cannot report an exact count without a
// full scan (Arrow IPC streams, which have no footer); all other counts are
// always >= 0.
type FileMetadata struct {
	FileSize       uint64          `json:"file_size"`
	TotalRecords   int64           `json:"total_records"`
	TotalFields    uint64          `json:"total_fields"`
	TotalRowGroups uint64          `json:"total_row_groups"`
	Version        int32           `json:"version"`
	CreatedBy      string          `json:"created_by,omitempty"`
	KeyValues      []KeyValueEntry `json:"key_value_metadata,omitempty"`
}

// arrowCreatedBy is reported as the producer for Arrow IPC inputs, which
// carry no writer string of their own.
const arrowCreatedBy = "Arrow IPC"

// ReadMetadata extracts file-level metadata from a Parquet or Arrow IPC file.
//
// For Parquet everything comes from the footer; the file size comes from the
// filesystem. For Arrow IPC files the record count is summed from the file's
// record batches and TotalRowGroups is the batch count. Arrow IPC streams
// have no footer, so TotalRecords is reported as -1 and TotalRowGroups as 0
// instead of paying for a full scan.
func ReadMetadata(path string) (*FileMetadata, error) {
	format, err := resolveFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, WrapError(KindOperationFailed, err, "failed to stat %s", path)
	}

	switch format {
	case FormatParquet:
		return readParquetMetadata(f, stat.Size(), path)
	default:
		return readArrowMetadata(f, stat.Size(), path)
	}
}

// readParquetMetadata pulls everything out of the Parquet footer without
// materializing row data.
func readParquetMetadata(f *os.File, size int64, path string) (*FileMetadata, error) {
	pq, err := parquet.OpenFile(f, size)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to open parquet file %s", path)
	}

	md := pq.Metadata()
	out := &FileMetadata{
		FileSize:       uint64(size),
		TotalRecords:   md.NumRows,
		TotalFields:    uint64(len(pq.Schema().Fields())),
		TotalRowGroups: uint64(len(md.RowGroups)),
		Version:        md.Version,
		CreatedBy:      md.CreatedBy,
	}

	for _, kv := range md.KeyValueMetadata {
		out.KeyValues = append(out.KeyValues, KeyValueEntry{Key: kv.Key, Value: kv.Value})
	}

	return out, nil
}

// readArrowMetadata handles both the footer-carrying file encoding and the
// stream encoding.
func readArrowMetadata(f *os.File, size int64, path string) (*FileMetadata, error) {
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

		// The footer locates record batches but does not carry row counts,
		// so records are walked once to sum them up.
		var totalRecords int64
		for i := 0; i < fr.NumRecords(); i++ {
			rec, err := fr.RecordBatch(i)
			if err != nil {
				return nil, WrapError(KindCorruptFile, err, "failed to read record batch %d of %s", i, path)
			}
			totalRecords += rec.NumRows()
		}

		sc := fr.Schema()
		return &FileMetadata{
			FileSize:       uint64(size),
			TotalRecords:   totalRecords,
			TotalFields:    uint64(sc.NumFields()),
			TotalRowGroups: uint64(fr.NumRecords()),
			Version:        int32(fr.Version()),
			CreatedBy:      arrowCreatedBy,
			KeyValues:      keyValuesFromSchemaMetadata(sc),
		}, nil
	}

	sr, err := ipc.NewReader(f)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to read arrow ipc header of %s", path)
	}
	defer sr.Release()

	// No footer: report -1 records rather than scanning the whole stream.
	sc := sr.Schema()
	return &FileMetadata{
		FileSize:       uint64(size),
		TotalRecords:   -1,
		TotalFields:    uint64(sc.NumFields()),
		TotalRowGroups: 0,
		Version:        0,
		CreatedBy:      arrowCreatedBy,
		KeyValues:      keyValuesFromSchemaMetadata(sc),
	}, nil
}

// keyValuesFromSchemaMetadata copies the Arrow schema's custom metadata in
// storage order.
func keyValuesFromSchemaMetadata(sc *arrow.Schema) []KeyValueEntry {
	md := sc.Metadata()
	if md.Len() == 0 {
		return nil
	}
	out := make([]KeyValueEntry, md.Len())
	keys, values := md.Keys(), md.Values()
	for i := range out {
		out[i] = KeyValueEntry{Key: keys[i], Value: values[i]}
	}
	return out
}
