package viewer

import (
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// FieldDescriptor describes a single top-level field of a file's schema.
//
// Nested types are flattened into a single composite type tag (for example
// "list<item: int64, nullable>") rather than exploded into child descriptors.
type FieldDescriptor struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Nullable bool   `json:"nullable"`
}

// Schema is the ordered field list of a file, in on-disk column order.
type Schema struct {
	Fields []FieldDescriptor `json:"fields"`
}

// NumFields returns the number of fields in the schema.
func (s *Schema) NumFields() int {
	return len(s.Fields)
}

// ReadSchema extracts the schema of a Parquet or Arrow IPC file.
//
// The file is opened in metadata-only mode; no row data is materialized.
// A fresh Schema is produced on every call.
func ReadSchema(path string) (*Schema, error) {
	format, err := resolveFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatParquet:
		return readParquetSchema(path)
	default:
		return readArrowSchema(path)
	}
}

// readParquetSchema converts the Parquet footer schema to its Arrow
// equivalent so both formats report the same type vocabulary.
func readParquetSchema(path string) (*Schema, error) {
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

	sc, err := pqarrow.FromParquet(pf.MetaData().Schema, nil, pf.MetaData().KeyValueMetadata())
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to convert parquet schema of %s", path)
	}

	return schemaFromArrow(sc), nil
}

// readArrowSchema reads the schema of an IPC file, falling back to the
// footer-less stream encoding.
func readArrowSchema(path string) (*Schema, error) {
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
		return schemaFromArrow(fr.Schema()), nil
	}

	sr, err := ipc.NewReader(f)
	if err != nil {
		return nil, WrapError(KindCorruptFile, err, "failed to read arrow ipc header of %s", path)
	}
	defer sr.Release()

	return schemaFromArrow(sr.Schema()), nil
}

// schemaFromArrow flattens an Arrow schema into field descriptors.
func schemaFromArrow(sc *arrow.Schema) *Schema {
	fields := make([]FieldDescriptor, sc.NumFields())
	for i, f := range sc.Fields() {
		fields[i] = FieldDescriptor{
			Name:     f.Name,
			DataType: f.Type.String(),
			Nullable: f.Nullable,
		}
	}
	return &Schema{Fields: fields}
}
