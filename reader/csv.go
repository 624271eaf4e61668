package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvcat/query"
)

// Reader reads a delimited text file and returns rows as maps.
type Reader struct {
	file *os.File
	csv  *csv.Reader
}

// NewReader opens a CSV file for reading.
//
// The file handle is held until Close is called; ReadFile wraps the
// open/read/close cycle for callers that want the whole file at once.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := csv.NewReader(file)
	r.TrimLeadingSpace = true

	return &Reader{
		file: file,
		csv:  r,
	}, nil
}

// ReadAll reads the header row and all data rows into memory.
//
// The first record defines the column names. Each cell is coerced on load,
// so numeric-looking cells arrive as float64 and everything else as string.
// The entire file is loaded into memory, so this method may not be suitable
// for very large files.
func (r *Reader) ReadAll() ([]string, []map[string]interface{}, error) {
	header, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("file has no header row")
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	rows := make([]map[string]interface{}, 0)
	for {
		record, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(map[string]interface{}, len(header))
		for i, col := range header {
			row[col] = query.Coerce(record[i])
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// Close closes the underlying file. It is safe to call Close multiple
// times.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadFile reads all rows from the file or glob pattern.
//
// Files with a .parquet extension are decoded as parquet; everything else
// is read as CSV. For glob patterns each row is tagged with a "_file"
// column containing the source file path, and the returned header is the
// first-seen union of the matched files' columns.
//
// Returns an error if no files match the pattern or if any file fails to
// read.
func ReadFile(pattern string) ([]string, []map[string]interface{}, error) {
	// Check if pattern contains glob wildcards
	if !strings.ContainsAny(pattern, "*?[]{}") {
		return readSingleFile(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	// Limit number of files to prevent resource exhaustion
	const maxFiles = 1000
	if len(matches) > maxFiles {
		return nil, nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var header []string
	seen := make(map[string]bool)
	var allRows []map[string]interface{}

	for _, filePath := range matches {
		fileHeader, rows, err := readSingleFile(filePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		for _, col := range fileHeader {
			if !seen[col] {
				seen[col] = true
				header = append(header, col)
			}
		}

		// Tag each row with the source file (only for multi-file reads)
		for i := range rows {
			rows[i]["_file"] = filePath
		}

		allRows = append(allRows, rows...)
	}

	if !seen["_file"] {
		header = append(header, "_file")
	}

	return header, allRows, nil
}

// readSingleFile dispatches on the file extension and wraps the
// open/read/close cycle so the handle is released even on read failure.
func readSingleFile(path string) ([]string, []map[string]interface{}, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		r, err := newParquetReader(path)
		if err != nil {
			return nil, nil, err
		}

		header, rows, readErr := r.ReadAll()
		closeErr := r.Close()
		if readErr != nil {
			return nil, nil, readErr
		}
		if closeErr != nil {
			return nil, nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		return header, rows, nil
	}

	r, err := NewReader(path)
	if err != nil {
		return nil, nil, err
	}

	header, rows, readErr := r.ReadAll()
	closeErr := r.Close()
	if readErr != nil {
		return nil, nil, readErr
	}
	if closeErr != nil {
		return nil, nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return header, rows, nil
}
