package viewer

import (
	"bytes"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"
)

// isArrowFile reports whether f starts with the Arrow IPC file magic, leaving
// the offset back at the start. Arrow inputs without it are treated as the
// footer-less stream encoding.
func isArrowFile(f *os.File) (bool, error) {
	hdr := make([]byte, len(ipc.Magic))
	n, err := io.ReadFull(f, hdr)
	if err != nil && n == 0 {
		return false, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return bytes.Equal(hdr[:n], ipc.Magic), nil
}
