package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// parquetReader reads parquet files and returns rows as maps.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type parquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// newParquetReader opens and validates a parquet file.
func newParquetReader(path string) (*parquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &parquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads all rows from the parquet file into memory.
//
// The header is the schema's field order. Values keep their decoded scalar
// types; numeric widening happens downstream in the query layer.
func (r *parquetReader) ReadAll() ([]string, []map[string]interface{}, error) {
	schema := r.pqFile.Schema()
	fields := schema.Fields()
	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = field.Name()
	}

	rows := make([]map[string]interface{}, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// Close closes the parquet reader and releases associated resources. It is
// safe to call Close multiple times.
func (r *parquetReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
