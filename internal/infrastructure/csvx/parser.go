// Package csvx provides the CSV parsing used by the guest list and
// playlist import/export features: header-row files with
// case-insensitive column-name aliases and per-row error reporting.
package csvx

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNoHeader is returned when the file has no header row
var ErrNoHeader = errors.New("csv file has no header row")

var fold = cases.Fold()

// normalize folds case and strips spaces/underscores so that
// "First Name", "first_name" and "FIRSTNAME" all match the same column
func normalize(header string) string {
	s := fold.String(strings.TrimSpace(header))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// Parser reads a header-row CSV file and resolves columns through
// alias sets
type Parser struct {
	reader  *csv.Reader
	columns map[string]int // normalized header -> column index
	headers []string
	row     int
}

// NewParser creates a parser and consumes the header row
func NewParser(r io.Reader) (*Parser, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoHeader
		}
		return nil, err
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[normalize(h)] = i
	}

	return &Parser{
		reader:  cr,
		columns: columns,
		headers: headers,
		row:     1,
	}, nil
}

// ParseBytes creates a parser over an in-memory file
func ParseBytes(data []byte) (*Parser, error) {
	return NewParser(bytes.NewReader(data))
}

// Headers returns the raw header row
func (p *Parser) Headers() []string {
	return p.headers
}

// HasColumn reports whether any alias resolves to a column
func (p *Parser) HasColumn(aliases ...string) bool {
	for _, a := range aliases {
		if _, ok := p.columns[normalize(a)]; ok {
			return true
		}
	}
	return false
}

// Row is a single parsed data row
type Row struct {
	Number int // 1-based file line number, header is row 1
	fields []string
	parser *Parser
}

// Get returns the trimmed cell under the first alias that resolves to a
// column, or "" when none does
func (r *Row) Get(aliases ...string) string {
	for _, a := range aliases {
		if idx, ok := r.parser.columns[normalize(a)]; ok && idx < len(r.fields) {
			return strings.TrimSpace(r.fields[idx])
		}
	}
	return ""
}

// IsEmpty reports whether every cell in the row is blank
func (r *Row) IsEmpty() bool {
	for _, f := range r.fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Read returns the next data row, io.EOF at end of file. Rows the csv
// reader cannot parse are returned as a RowError so callers can decide
// whether to skip or abort.
func (p *Parser) Read() (*Row, error) {
	fields, err := p.reader.Read()
	p.row++
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, RowError{Row: p.row, Message: err.Error()}
	}
	return &Row{Number: p.row, fields: fields, parser: p}, nil
}

// ReadAll returns all remaining parseable rows plus the errors of rows
// that failed to parse. Empty rows are skipped.
func (p *Parser) ReadAll() ([]*Row, []RowError) {
	var rows []*Row
	var rowErrors []RowError
	for {
		row, err := p.Read()
		if err != nil {
			if err == io.EOF {
				return rows, rowErrors
			}
			var re RowError
			if errors.As(err, &re) {
				rowErrors = append(rowErrors, re)
				continue
			}
			rowErrors = append(rowErrors, RowError{Row: p.row, Message: err.Error()})
			continue
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
}
