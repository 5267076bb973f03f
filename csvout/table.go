// Package csvout serializes result tables as comma-separated files without
// quoting.
package csvout

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnquotableCell is returned for a cell that would need quoting.
var ErrUnquotableCell = errors.New("cell contains a comma, quote or line break")

// Table is a header row followed by data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Encode renders the table. Every row must have as many cells as the header.
func (t *Table) Encode() ([]byte, error) {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	records = append(records, t.Rows...)

	for i, record := range records {
		if len(record) != len(t.Header) {
			return nil, fmt.Errorf("row %d has %d cells; expected %d", i, len(record), len(t.Header))
		}
		for _, cell := range record {
			if strings.ContainsAny(cell, ",\"\r\n") {
				return nil, fmt.Errorf("row %d cell %q: %w", i, cell, ErrUnquotableCell)
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes t and writes it to dir/name in a single call, creating dir
// if needed and replacing any existing file.
func Write(dir, name string, t *Table) (string, error) {
	data, err := t.Encode()
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
