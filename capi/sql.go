package main

/*
#include <stdlib.h>
#include "parquet_viewer.h"
*/
import "C"

import (
	"unsafe"

	"github.com/vegasq/parquetview/sqlfmt"
	"github.com/vegasq/parquetview/viewer"
)

//export parquet_viewer_format_sql
func parquet_viewer_format_sql(sql *C.char, style C.int) (out *C.char) {
	defer func() {
		if r := recover(); r != nil {
			recordPanic(r)
			out = nil
		}
	}()

	if sql == nil {
		recordError(viewer.NewError(viewer.KindSQLParse, "null sql string"))
		return nil
	}

	var s sqlfmt.Style
	switch style {
	case 0:
		s = sqlfmt.StyleMinimal
	case 1:
		s = sqlfmt.StyleBeautify
	default:
		recordError(viewer.NewError(viewer.KindOperationFailed, "unknown style %d", int(style)))
		return nil
	}

	formatted, err := sqlfmt.Format(C.GoString(sql), s)
	if err != nil {
		recordError(err)
		return nil
	}
	return C.CString(formatted)
}

//export parquet_viewer_free_string
func parquet_viewer_free_string(s *C.char) {
	cFree(unsafe.Pointer(s))
}
