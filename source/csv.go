package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/realty"
)

// ReadCSV reads a CSV stream whose first line holds the column names.
// Empty cells are read as nil.
func ReadCSV(r io.Reader, schema realty.Schema) (*realty.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv, want a header line")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	b := newBuilder(header, schema)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read csv: %w", err)
		}
		values := make([]any, len(record))
		for i, cell := range record {
			if cell = strings.TrimSpace(cell); cell != "" {
				values[i] = cell
			}
		}
		if err := b.append(values); err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return b.table, nil
}
