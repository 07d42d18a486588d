package k2tree

import "testing"

func TestComputeDims(t *testing.T) {
	cases := []struct {
		rows, cols, kr, kc int
		wantH              int
		wantNumRows        int
		wantNumCols        int
	}{
		{rows: 1, cols: 1, kr: 2, kc: 3, wantH: 1, wantNumRows: 2, wantNumCols: 3},
		{rows: 4, cols: 4, kr: 2, kc: 2, wantH: 2, wantNumRows: 4, wantNumCols: 4},
		{rows: 5, cols: 4, kr: 2, kc: 2, wantH: 3, wantNumRows: 8, wantNumCols: 8},
		{rows: 0, cols: 0, kr: 2, kc: 2, wantH: 1, wantNumRows: 2, wantNumCols: 2},
		{rows: 9, cols: 2, kr: 3, kc: 2, wantH: 2, wantNumRows: 9, wantNumCols: 4},
	}
	for _, c := range cases {
		d := computeDims(c.rows, c.cols, c.kr, c.kc)
		if d.h != c.wantH || d.numRows != c.wantNumRows || d.numCols != c.wantNumCols {
			t.Errorf("computeDims(%d,%d,%d,%d) = {h:%d numRows:%d numCols:%d}, want {h:%d numRows:%d numCols:%d}",
				c.rows, c.cols, c.kr, c.kc, d.h, d.numRows, d.numCols, c.wantH, c.wantNumRows, c.wantNumCols)
		}
	}
}

func TestValidateWindowAccepts(t *testing.T) {
	h, err := validateWindow(8, 8, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 3 {
		t.Fatalf("h = %d, want 3", h)
	}
}

func TestValidateWindowRejectsNonPower(t *testing.T) {
	_, err := validateWindow(6, 8, 2, 2)
	if err == nil {
		t.Fatal("expected an error for a non-power-of-kr row extent")
	}
}

func TestValidateWindowRejectsMismatchedHeights(t *testing.T) {
	// 4 is a power of 2 at h=2, but 27 is a power of 3 at h=3: the
	// two arities must agree on a single height.
	_, err := validateWindow(4, 27, 2, 3)
	if err == nil {
		t.Fatal("expected an error when kr and kc imply different heights")
	}
}
