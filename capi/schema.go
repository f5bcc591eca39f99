package main

/*
#include <stdlib.h>
#include "parquet_viewer.h"
*/
import "C"

import (
	"unsafe"

	"github.com/vegasq/parquetview/viewer"
)

//export parquet_viewer_read_schema
func parquet_viewer_read_schema(filePath *C.char) (out *C.CSchema) {
	defer func() {
		if r := recover(); r != nil {
			recordPanic(r)
			out = nil
		}
	}()

	if filePath == nil {
		recordError(viewer.NewError(viewer.KindInvalidPath, "null file path"))
		return nil
	}

	schema, err := viewer.ReadSchema(C.GoString(filePath))
	if err != nil {
		recordError(err)
		return nil
	}

	cs := (*C.CSchema)(cCalloc(1, C.sizeof_CSchema))
	n := len(schema.Fields)
	cs.num_fields = C.size_t(n)
	if n > 0 {
		cs.fields = (*C.CField)(cCalloc(C.size_t(n), C.sizeof_CField))
		fields := unsafe.Slice(cs.fields, n)
		for i, f := range schema.Fields {
			fields[i].name = C.CString(f.Name)
			fields[i].data_type = C.CString(f.DataType)
			if f.Nullable {
				fields[i].nullable = 1
			}
		}
	}
	return cs
}

//export parquet_viewer_free_schema
func parquet_viewer_free_schema(schema *C.CSchema) {
	if schema == nil {
		return
	}
	if schema.fields != nil {
		fields := unsafe.Slice(schema.fields, int(schema.num_fields))
		for i := range fields {
			cFree(unsafe.Pointer(fields[i].name))
			cFree(unsafe.Pointer(fields[i].data_type))
		}
		cFree(unsafe.Pointer(schema.fields))
	}
	cFree(unsafe.Pointer(schema))
}
