// Package viewer inspects Parquet and Arrow IPC files without a query engine.
//
// It exposes three read operations over both formats: ReadSchema extracts the
// ordered field list, ReadMetadata extracts file-level statistics and
// key/value metadata, and ReadData streams row batches serialized as JSON
// documents, with optional column projection and row limits.
//
// The file format is detected once per call, by extension first and by magic
// bytes as a fallback. All operations are synchronous and share no state
// between calls, so they are safe to invoke concurrently on different files.
//
// Example usage:
//
//	schema, err := viewer.ReadSchema("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range schema.Fields {
//	    fmt.Println(f.Name, f.DataType, f.Nullable)
//	}
package viewer
