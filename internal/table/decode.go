package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"srgmap/internal/names"
)

// Column counts of the three tables.
const (
	ClassColumns  = 3
	FieldColumns  = 3
	MethodColumns = 6
)

// Delimiter separates columns in every table.
const Delimiter = ','

// Row is one data row of a table.
type Row struct {
	// Line is the 1-based line number in the resource.
	Line   int
	Fields []string
}

// Table is a decoded resource without its header.
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// Decode parses data as a table whose rows need at least columns fields.
// It stops at the first malformed row.
func Decode(name string, data []byte, columns int) (*Table, error) {
	t, errs := decode(name, data, columns, true)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	return t, nil
}

// DecodeLenient parses data like Decode but skips malformed rows, returning
// them as errors alongside the rows that were usable.
func DecodeLenient(name string, data []byte, columns int) (*Table, []error) {
	return decode(name, data, columns, false)
}

func decode(name string, data []byte, columns int, strict bool) (*Table, []error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = Delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	t := &Table{Name: name}

	var errs []error

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			if strict {
				return nil, errs
			}

			continue
		}

		line, _ := r.FieldPos(0)

		if t.Header == nil {
			t.Header = record
			continue
		}

		if len(record) < columns {
			errs = append(errs, &names.MalformedRowError{
				Resource: name,
				Line:     line,
				Got:      len(record),
				Want:     columns,
			})
			if strict {
				return nil, errs
			}

			continue
		}

		t.Rows = append(t.Rows, Row{Line: line, Fields: record})
	}

	return t, errs
}
