// Package main builds the C library behind parquet_viewer.h.
//
// It exports the parquet_viewer_* symbols over the viewer and sqlfmt
// packages so non-Go hosts can inspect Parquet and Arrow IPC files. Build
// with -buildmode=c-shared or -buildmode=c-archive; the hand-maintained
// header in this directory is the public contract.
//
// Every exported function follows the same conventions: failures return
// NULL after recording a message retrievable with
// parquet_viewer_get_last_error, all returned memory is C-allocated and
// owned by the caller until passed to the matching free function, and no
// Go panic ever crosses the boundary.
package main

func main() {}
