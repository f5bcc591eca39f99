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

//export parquet_viewer_read_data
func parquet_viewer_read_data(filePath *C.char, batchSize, limit C.size_t) (out *C.CRecordBatchArray) {
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

	batches, err := viewer.ReadData(C.GoString(filePath), int(batchSize), int(limit))
	if err != nil {
		recordError(err)
		return nil
	}
	return newBatchArray(batches)
}

//export parquet_viewer_read_data_with_projection
func parquet_viewer_read_data_with_projection(filePath *C.char, columnIndices *C.size_t, columnCount, batchSize, limit C.size_t) (out *C.CRecordBatchArray) {
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
	if columnIndices == nil || columnCount == 0 {
		recordError(viewer.NewError(viewer.KindProjectionOutOfRange, "projection must select at least one column"))
		return nil
	}

	indices := unsafe.Slice(columnIndices, int(columnCount))
	columns := make([]int, len(indices))
	for i, v := range indices {
		columns[i] = int(v)
	}

	batches, err := viewer.ReadDataWithProjection(C.GoString(filePath), columns, int(batchSize), int(limit))
	if err != nil {
		recordError(err)
		return nil
	}
	return newBatchArray(batches)
}

// newBatchArray copies a batch set into C-owned memory.
func newBatchArray(batches viewer.RecordBatchSet) *C.CRecordBatchArray {
	arr := (*C.CRecordBatchArray)(cCalloc(1, C.sizeof_CRecordBatchArray))
	n := len(batches)
	arr.count = C.size_t(n)
	if n > 0 {
		arr.batches = (*C.CRecordBatch)(cCalloc(C.size_t(n), C.sizeof_CRecordBatch))
		out := unsafe.Slice(arr.batches, n)
		for i, b := range batches {
			out[i].json = C.CString(b.Rows)
			out[i].num_rows = C.size_t(b.NumRows)
			out[i].num_columns = C.size_t(b.NumColumns)
		}
	}
	return arr
}

//export parquet_viewer_free_data
func parquet_viewer_free_data(data *C.CRecordBatchArray) {
	if data == nil {
		return
	}
	if data.batches != nil {
		batches := unsafe.Slice(data.batches, int(data.count))
		for i := range batches {
			cFree(unsafe.Pointer(batches[i].json))
		}
		cFree(unsafe.Pointer(data.batches))
	}
	cFree(unsafe.Pointer(data))
}
