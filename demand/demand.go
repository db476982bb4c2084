// SPDX-License-Identifier: MIT

package demand

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for demand parsing.
var (
	// ErrNotFound indicates the demand file does not exist at the given path.
	ErrNotFound = errors.New("demand: file not found")

	// ErrInvalidRow indicates a malformed demand row.
	ErrInvalidRow = errors.New("demand: invalid row")

	// ErrEmptyTable indicates the input did not even contain a header row.
	ErrEmptyTable = errors.New("demand: empty table")
)

// columns is the number of cells in every demand row.
const columns = 3

// Row is one line of the demand table: Count units from From to To.
type Row struct {
	From  int
	To    int
	Count int
}

// String renders the row in table form.
func (r Row) String() string {
	return fmt.Sprintf("%d,%d,%d", r.From, r.To, r.Count)
}

// ReadFile opens path and parses it with Parse.
//
// A missing file yields an error that matches both ErrNotFound and
// fs.ErrNotExist and names the path.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("demand: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// Parse reads a header row and then every demand row from r.
// Cells are trimmed; blank lines are skipped.
//
// Complexity: O(rows).
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape is checked per row to report ErrInvalidRow
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("demand: header: %w", err)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRow, err)
		}
		line, _ := cr.FieldPos(0)

		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidRow, line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Total returns the number of demand units over all rows.
func Total(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return total
}

func parseRecord(rec []string) (Row, error) {
	if len(rec) != columns {
		return Row{}, fmt.Errorf("want %d columns, got %d", columns, len(rec))
	}

	var vals [columns]int
	for i, cell := range rec {
		v, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return Row{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 {
		return Row{}, fmt.Errorf("negative count %d", vals[2])
	}

	return Row{From: vals[0], To: vals[1], Count: vals[2]}, nil
}
