package k2tree

import (
	"strings"
	"testing"
)

func TestFromCSVMatchesDirectMatrixBuild(t *testing.T) {
	// Scenario G: a CSV-sourced tree must be bit-for-bit identical to
	// the same relation built straight from an in-memory Matrix.
	const csvDoc = ",,,v5\n,v3,,\n,,,\nv7,,,v9\n"
	fromCSV, err := FromCSV(strings.NewReader(csvDoc), 2, 2, "")
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}

	rows := [][]string{
		{"", "", "", "v5"},
		{"", "v3", "", ""},
		{"", "", "", ""},
		{"v7", "", "", "v9"},
	}
	direct, err := NewFromMatrix[string](stringMatrix{rows: rows}, 2, 2, "")
	if err != nil {
		t.Fatalf("NewFromMatrix: %v", err)
	}

	if !sameEncoding(fromCSV, direct) {
		t.Fatal("FromCSV produced a different encoding than building the same relation directly")
	}
}

func TestFromCSVPairs(t *testing.T) {
	const csvDoc = "0,3,v5\n1,1,v3\n3,0,v7\n3,3,v9\n"
	tr, err := FromCSVPairs(strings.NewReader(csvDoc), 2, 2, "")
	if err != nil {
		t.Fatalf("FromCSVPairs: %v", err)
	}
	if got := tr.GetElement(0, 3); got != "v5" {
		t.Errorf("GetElement(0,3) = %q, want %q", got, "v5")
	}
	if got := tr.GetElement(3, 3); got != "v9" {
		t.Errorf("GetElement(3,3) = %q, want %q", got, "v9")
	}
}

func TestFromCSVPairsRejectsMalformedRecord(t *testing.T) {
	const csvDoc = "0,3,v5,extra\n"
	if _, err := FromCSVPairs(strings.NewReader(csvDoc), 2, 2, ""); err == nil {
		t.Fatal("expected an error for a record with the wrong field count")
	}
}

func TestFromCSVPairsRejectsNonIntegerCoordinate(t *testing.T) {
	const csvDoc = "zero,3,v5\n"
	if _, err := FromCSVPairs(strings.NewReader(csvDoc), 2, 2, ""); err == nil {
		t.Fatal("expected an error for a non-integer row coordinate")
	}
}

// stringMatrix is a Matrix[string] test helper.
type stringMatrix struct {
	rows [][]string
}

func (m stringMatrix) Rows() int { return len(m.rows) }
func (m stringMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}
func (m stringMatrix) At(i, j int) string { return m.rows[i][j] }
