// Package output provides formatters for printing decoded rows.
//
// This package defines the Formatter interface and provides implementations
// for common output formats. All formatters work with rows represented as
// []map[string]interface{}, the shape the viewer package decodes batches
// into.
//
// # Supported Formats
//
//   - JSON Lines: One JSON object per line (suitable for streaming)
//   - CSV: Comma-separated values with header row
//   - Table: aligned ASCII table for terminal display
//
// # Basic Usage
//
// Using the JSON formatter:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//
//	file, err := os.Create("output.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(rows []map[string]interface{}) error
//	    SetOutput(w io.Writer)
//	}
//
// # Type Handling
//
//   - Strings, numbers (int, float), booleans are output directly
//   - JSON formatter preserves nested objects and arrays
//   - CSV and table formatters flatten nested structures to strings
//   - Null/nil values are handled appropriately for each format
package output
