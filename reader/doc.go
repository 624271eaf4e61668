// Package reader loads tabular files into memory as row maps.
//
// The primary format is delimited UTF-8 text with a header row (CSV);
// files with a .parquet extension are read with the parquet decoder
// instead. Both return the same shape: the ordered header and one map per
// row. CSV cells are coerced on load, so a cell is a float64 when it parses
// as a number and a string otherwise.
//
// # Basic Usage
//
//	header, rows, err := reader.ReadFile("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Multi-file Operations
//
// ReadFile also accepts glob patterns. Rows from a multi-file read are
// tagged with a "_file" column holding the source path:
//
//	header, rows, err := reader.ReadFile("data/*.csv")
package reader
