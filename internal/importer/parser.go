package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const encodingCheckSize = 4096

var (
	// ErrEmptyFile is returned when the CSV input has no content
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the CSV input is not UTF-8
	ErrInvalidEncoding = errors.New("CSV file is not valid UTF-8")

	// ErrMissingHeader is returned when the CSV input has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")
)

// Row is one data line of an import file keyed by (mapped) column name
type Row struct {
	Number int
	Data   map[string]string
}

// Get returns the trimmed value of a column, "" when the column is absent
func (r *Row) Get(column string) string {
	return r.Data[column]
}

func (r *Row) isEmpty() bool {
	for _, v := range r.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// Sheet is a parsed CSV file
type Sheet struct {
	Columns []string
	Rows    []*Row
}

// HasColumn reports whether the header row contains column
func (s *Sheet) HasColumn(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Parse reads a UTF-8 CSV with a header row. A leading BOM is dropped and
// headers are renamed through mapping (source header to field name).
// Blank lines are skipped; data rows are numbered from 1.
func Parse(r io.Reader, mapping map[string]string) (*Sheet, error) {
	buf := bufio.NewReader(r)

	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	sample, err := buf.Peek(encodingCheckSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file for encoding validation: %w", err)
	}
	if len(sample) == 0 {
		return nil, ErrEmptyFile
	}
	if !validPrefix(sample) {
		return nil, ErrInvalidEncoding
	}

	reader := csv.NewReader(buf)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	sheet := &Sheet{Columns: make([]string, len(header))}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if mapped, ok := mapping[name]; ok && mapped != "" {
			name = mapped
		}
		sheet.Columns[i] = name
	}

	number := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", number+1, err)
		}
		if !utf8.Valid([]byte(strings.Join(record, ""))) {
			return nil, ErrInvalidEncoding
		}

		row := &Row{Data: make(map[string]string, len(sheet.Columns))}
		for i, column := range sheet.Columns {
			if i < len(record) {
				row.Data[column] = strings.TrimSpace(record[i])
			} else {
				row.Data[column] = ""
			}
		}
		if row.isEmpty() {
			continue
		}
		number++
		row.Number = number
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// validPrefix is utf8.Valid that tolerates a rune cut off at the end of the sample
func validPrefix(b []byte) bool {
	if utf8.Valid(b) {
		return true
	}
	for cut := 1; cut < utf8.UTFMax && cut < len(b); cut++ {
		if utf8.Valid(b[:len(b)-cut]) {
			return len(b) == encodingCheckSize
		}
	}
	return false
}
