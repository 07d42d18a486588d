package k2tree

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvMatrix adapts a dense [][]string parsed out of a CSV document
// into Matrix[string]; out-of-range reads are padded with "" the way
// Matrix callers are already expected to handle ragged input.
type csvMatrix struct {
	rows [][]string
}

func (m csvMatrix) Rows() int { return len(m.rows) }

func (m csvMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

func (m csvMatrix) At(i, j int) string {
	if i >= len(m.rows) || j >= len(m.rows[i]) {
		return ""
	}
	return m.rows[i][j]
}

// FromCSV builds a string-valued tree (Mode M) from a dense CSV
// matrix read from r: each record is a row, each field a column, and
// a field equal to null (typically "") is absent.
func FromCSV(r io.Reader, kr, kc int, null string) (*Tree[string], error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("k2tree: reading CSV matrix: %w", err)
	}
	return NewFromMatrix[string](csvMatrix{rows: records}, kr, kc, null)
}

// FromCSVPairs builds a string-valued tree (Mode P) from a
// "row,col,value" CSV read from r.
func FromCSVPairs(r io.Reader, kr, kc int, null string) (*Tree[string], error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("k2tree: reading CSV pairs: %w", err)
	}
	pairs := make([]Pair[string], 0, len(records))
	for n, rec := range records {
		if len(rec) != 3 {
			return nil, fmt.Errorf("k2tree: CSV pairs record %d has %d fields, want 3", n, len(rec))
		}
		row, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("k2tree: CSV pairs record %d row: %w", n, err)
		}
		col, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("k2tree: CSV pairs record %d col: %w", n, err)
		}
		pairs = append(pairs, Pair[string]{Row: row, Col: col, Value: rec[2]})
	}
	return NewFromPairs[string](pairs, kr, kc, null)
}
