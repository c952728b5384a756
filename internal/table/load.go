package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadOptions controls how an export file is read.
type LoadOptions struct {
	// Delimiter for CSV. If 0, picked from the file extension.
	Delimiter rune
	// Sheet selects the XLSX sheet by name; empty means the first sheet.
	Sheet string
}

// InputFileError wraps any failure to open, read or parse an input table.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	if e == nil {
		return "input file error"
	}
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error { return e.Err }

// ErrEmpty indicates a file with no header row.
var ErrEmpty = errors.New("no header row")

// Load reads a CSV, TSV or XLSX export into memory.
func Load(path string, opt LoadOptions) (*Table, error) {
	var (
		t   *Table
		err error
	)
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		t, err = loadXLSX(path, opt.Sheet)
	} else {
		t, err = loadCSV(path, opt.Delimiter)
	}
	if err != nil {
		return nil, &InputFileError{Path: path, Err: err}
	}
	return t, nil
}

func loadCSV(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	var records [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return FromRecords(filepath.Base(path), header, records)
}

func loadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmpty
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet '%s' not found in workbook '%s'; available sheets: %s",
			sheet, filepath.Base(path), strings.Join(f.GetSheetList(), ", "))
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return FromRecords(filepath.Base(path), rows[0], rows[1:])
}

// FromRecords builds a table from a header and raw string records. A record
// wider than the header means the delimiter structure is broken.
func FromRecords(name string, header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrEmpty
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	rows := make([]Row, 0, len(records))
	for n, rec := range records {
		if len(rec) > len(cols) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", n+1, len(rec), len(cols))
		}
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(cols))
		for j, cell := range rec {
			row[j] = ParseValue(cell)
		}
		rows = append(rows, row)
	}
	return New(name, cols, rows), nil
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
