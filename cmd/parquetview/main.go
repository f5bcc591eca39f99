// Command parquetview inspects Parquet and Arrow IPC files.
//
// It exposes the engine's read operations as subcommands:
//
//	parquetview schema data.parquet
//	parquetview metadata data.arrow
//	parquetview data -b 500 -l 20 -f csv data.parquet
//	parquetview sql -style beautify "select a from t where x > 1"
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/parquetview/output"
	"github.com/vegasq/parquetview/sqlfmt"
	"github.com/vegasq/parquetview/viewer"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "schema":
		err = runSchema(os.Args[2:])
	case "metadata":
		err = runMetadata(os.Args[2:])
	case "data":
		err = runData(os.Args[2:])
	case "sql":
		err = runSQL(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [options] <args>\n\n", os.Args[0])
	fmt.Fprintf(w, "A tool to inspect Parquet and Arrow IPC files.\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  schema <file>      Show the file's schema\n")
	fmt.Fprintf(w, "  metadata <file>    Show file-level metadata\n")
	fmt.Fprintf(w, "  data <file>        Print the file's rows\n")
	fmt.Fprintf(w, "  sql <statement>    Re-format a SQL statement\n\n")
	fmt.Fprintf(w, "Run '%s <command> -h' for command options.\n", os.Args[0])
}

// runSchema implements the schema subcommand.
func runSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	formatFlag := fs.String("f", "table", "Output format: table, jsonl, csv")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("schema requires exactly one file argument")
	}
	path := fs.Arg(0)

	schema, err := viewer.ReadSchema(path)
	if err != nil {
		return err
	}

	fmt.Printf("Schema for: %s\n", path)

	if *formatFlag == "table" {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field Name", "Data Type", "Nullable"})
		table.SetAutoFormatHeaders(false)
		for _, f := range schema.Fields {
			nullable := "No"
			if f.Nullable {
				nullable = "Yes"
			}
			table.Append([]string{f.Name, f.DataType, nullable})
		}
		table.Render()
		return nil
	}

	rows := make([]map[string]interface{}, len(schema.Fields))
	for i, f := range schema.Fields {
		rows[i] = map[string]interface{}{
			"name":      f.Name,
			"data_type": f.DataType,
			"nullable":  f.Nullable,
		}
	}
	formatter, err := newFormatter(*formatFlag)
	if err != nil {
		return err
	}
	return formatter.Format(rows)
}

// runMetadata implements the metadata subcommand.
func runMetadata(args []string) error {
	fs := flag.NewFlagSet("metadata", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("metadata requires exactly one file argument")
	}
	path := fs.Arg(0)

	md, err := viewer.ReadMetadata(path)
	if err != nil {
		return err
	}

	fmt.Printf("Metadata for: %s\n", path)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAutoFormatHeaders(false)
	table.Append([]string{"File size", fmt.Sprintf("%d bytes", md.FileSize)})
	table.Append([]string{"Total records", strconv.FormatInt(md.TotalRecords, 10)})
	table.Append([]string{"Total fields", strconv.FormatUint(md.TotalFields, 10)})
	table.Append([]string{"Total row groups", strconv.FormatUint(md.TotalRowGroups, 10)})
	table.Append([]string{"Version", strconv.FormatInt(int64(md.Version), 10)})
	if md.CreatedBy != "" {
		table.Append([]string{"Created by", md.CreatedBy})
	}
	table.Render()

	if len(md.KeyValues) > 0 {
		fmt.Printf("\nKey-Value Metadata:\n")
		kvTable := tablewriter.NewWriter(os.Stdout)
		kvTable.SetHeader([]string{"Key", "Value"})
		kvTable.SetAutoFormatHeaders(false)
		for _, kv := range md.KeyValues {
			value := kv.Value
			// Truncate long values for better display
			if len(value) > 100 {
				value = value[:100] + "..."
			}
			kvTable.Append([]string{kv.Key, value})
		}
		kvTable.Render()
	}

	return nil
}

// runData implements the data subcommand.
func runData(args []string) error {
	fs := flag.NewFlagSet("data", flag.ExitOnError)
	batchFlag := fs.Int("b", 0, "Number of rows per batch (0 = format default)")
	limitFlag := fs.Int("l", 0, "Maximum number of rows to read (0 = unlimited)")
	columnsFlag := fs.String("c", "", "Comma-separated column indices to project (default: all)")
	formatFlag := fs.String("f", "jsonl", "Output format: jsonl, csv, table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("data requires exactly one file argument")
	}
	path := fs.Arg(0)

	var batches viewer.RecordBatchSet
	var err error
	if *columnsFlag != "" {
		columns, perr := parseColumns(*columnsFlag)
		if perr != nil {
			return perr
		}
		batches, err = viewer.ReadDataWithProjection(path, columns, *batchFlag, *limitFlag)
	} else {
		batches, err = viewer.ReadData(path, *batchFlag, *limitFlag)
	}
	if err != nil {
		return err
	}

	formatter, err := newFormatter(*formatFlag)
	if err != nil {
		return err
	}

	for _, batch := range batches {
		var rows []map[string]interface{}
		if err := json.Unmarshal([]byte(batch.Rows), &rows); err != nil {
			return fmt.Errorf("failed to decode batch: %w", err)
		}
		if err := formatter.Format(rows); err != nil {
			return err
		}
	}
	return nil
}

// runSQL implements the sql subcommand.
func runSQL(args []string) error {
	fs := flag.NewFlagSet("sql", flag.ExitOnError)
	styleFlag := fs.String("style", "minimal", "Formatting style: minimal, beautify")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("sql requires exactly one statement argument")
	}

	var style sqlfmt.Style
	switch *styleFlag {
	case "minimal":
		style = sqlfmt.StyleMinimal
	case "beautify":
		style = sqlfmt.StyleBeautify
	default:
		return fmt.Errorf("unknown style %q (want minimal or beautify)", *styleFlag)
	}

	formatted, err := sqlfmt.Format(fs.Arg(0), style)
	if err != nil {
		return err
	}
	fmt.Println(formatted)
	return nil
}

// parseColumns parses a comma-separated list of column indices.
func parseColumns(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	columns := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid column index %q", part)
		}
		columns = append(columns, n)
	}
	return columns, nil
}

// newFormatter maps a format name to an output formatter.
func newFormatter(name string) (output.Formatter, error) {
	switch name {
	case "jsonl", "json":
		return output.NewJSONFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want jsonl, csv, or table)", name)
	}
}
