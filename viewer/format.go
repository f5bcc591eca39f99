package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/ipc"
)

// FileFormat identifies the container format of an input file.
type FileFormat int

const (
	// FormatUnknown means the file matched no known extension or magic bytes.
	FormatUnknown FileFormat = iota
	// FormatParquet is an Apache Parquet file.
	FormatParquet
	// FormatArrowIPC is an Arrow IPC file or stream (including Feather v2).
	FormatArrowIPC
)

// String returns the format name.
func (f FileFormat) String() string {
	switch f {
	case FormatParquet:
		return "parquet"
	case FormatArrowIPC:
		return "arrow-ipc"
	default:
		return "unknown"
	}
}

var (
	parquetMagic = []byte("PAR1")
	// A length-prefixed IPC stream starts with the continuation marker.
	ipcStreamMagic = []byte{0xff, 0xff, 0xff, 0xff}
)

// DetectFormat classifies a file as Parquet or Arrow IPC.
//
// The extension is checked first against a fixed table; if it is absent or
// unrecognized, the first bytes of the file are matched against each format's
// magic signature. Files matching neither are reported as FormatUnknown with
// a nil error; errors are returned only when the file cannot be read at all.
func DetectFormat(path string) (FileFormat, error) {
	if path == "" {
		return FormatUnknown, NewError(KindInvalidPath, "empty file path")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet, nil
	case ".arrow", ".arrows", ".ipc", ".feather":
		return FormatArrowIPC, nil
	}

	return sniffFormat(path)
}

// sniffFormat reads the first bytes of the file and matches magic signatures.
func sniffFormat(path string) (FileFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, classifyOpenError(path, err)
	}
	defer func() { _ = f.Close() }()

	magic := make([]byte, len(ipc.Magic))
	n, err := f.Read(magic)
	if err != nil && n == 0 {
		// Too short to carry any magic signature.
		return FormatUnknown, nil
	}
	magic = magic[:n]

	switch {
	case bytes.HasPrefix(magic, parquetMagic):
		return FormatParquet, nil
	case bytes.HasPrefix(magic, ipc.Magic):
		return FormatArrowIPC, nil
	case bytes.HasPrefix(magic, ipcStreamMagic):
		return FormatArrowIPC, nil
	default:
		return FormatUnknown, nil
	}
}

// resolveFormat runs detection and turns FormatUnknown into the
// UnsupportedFormat failure every read operation reports. Detection happens
// before any parse attempt so a malformed but correctly named file still gets
// a format-specific parse error.
func resolveFormat(path string) (FileFormat, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return FormatUnknown, err
	}
	if format == FormatUnknown {
		return FormatUnknown, NewError(KindUnsupportedFormat, "%s is neither a Parquet nor an Arrow IPC file", path)
	}
	return format, nil
}
