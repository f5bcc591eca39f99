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

//export parquet_viewer_read_metadata
func parquet_viewer_read_metadata(filePath *C.char) (out *C.CFileMetadata) {
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

	md, err := viewer.ReadMetadata(C.GoString(filePath))
	if err != nil {
		recordError(err)
		return nil
	}

	cm := (*C.CFileMetadata)(cCalloc(1, C.sizeof_CFileMetadata))
	cm.file_size = C.size_t(md.FileSize)
	cm.total_records = C.int64_t(md.TotalRecords)
	cm.total_fields = C.size_t(md.TotalFields)
	cm.total_row_groups = C.size_t(md.TotalRowGroups)
	cm.version = C.int32_t(md.Version)
	cm.created_by = cStringOrNil(md.CreatedBy)

	n := len(md.KeyValues)
	cm.key_value_count = C.size_t(n)
	if n > 0 {
		cm.key_value_metadata = (*C.CKeyValue)(cCalloc(C.size_t(n), C.sizeof_CKeyValue))
		pairs := unsafe.Slice(cm.key_value_metadata, n)
		for i, kv := range md.KeyValues {
			pairs[i].key = C.CString(kv.Key)
			pairs[i].value = C.CString(kv.Value)
		}
	}
	return cm
}

//export parquet_viewer_free_metadata
func parquet_viewer_free_metadata(metadata *C.CFileMetadata) {
	if metadata == nil {
		return
	}
	cFree(unsafe.Pointer(metadata.created_by))
	if metadata.key_value_metadata != nil {
		pairs := unsafe.Slice(metadata.key_value_metadata, int(metadata.key_value_count))
		for i := range pairs {
			cFree(unsafe.Pointer(pairs[i].key))
			cFree(unsafe.Pointer(pairs[i].value))
		}
		cFree(unsafe.Pointer(metadata.key_value_metadata))
	}
	cFree(unsafe.Pointer(metadata))
}
