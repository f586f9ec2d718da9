package locator

import "testing"

// testGrid is a mutable brightness grid for building scan fixtures.
type testGrid struct {
	w, h int
	pix  []uint8
}

func newTestGrid(t *testing.T, w, h int, fill uint8) *testGrid {
	t.Helper()
	g := &testGrid{w: w, h: h, pix: make([]uint8, w*h)}
	for i := range g.pix {
		g.pix[i] = fill
	}
	return g
}

func (g *testGrid) Width() int            { return g.w }
func (g *testGrid) Height() int           { return g.h }
func (g *testGrid) At(x, y int) uint8     { return g.pix[y*g.w+x] }
func (g *testGrid) set(x, y int, v uint8) { g.pix[y*g.w+x] = v }

// setCols fills columns [x1, x2) across all rows.
func (g *testGrid) setCols(x1, x2 int, v uint8) {
	for y := 0; y < g.h; y++ {
		for x := x1; x < x2; x++ {
			g.set(x, y, v)
		}
	}
}

// gapGrid is the reference fixture: a 100x50 background at brightness 200
// with a simulated gap (brightness 60) occupying columns 60..79.
func gapGrid(t *testing.T) *testGrid {
	t.Helper()
	g := newTestGrid(t, 100, 50, 200)
	g.setCols(60, 80, 60)
	return g
}

func TestLocate_FindsGapLeftEdge(t *testing.T) {
	g := gapGrid(t)

	x := Locate(g, 20, 50, 0)
	if x != 60 {
		t.Errorf("Locate: got %d, want 60", x)
	}
}

func TestLocate_Deterministic(t *testing.T) {
	g := gapGrid(t)

	first := Locate(g, 20, 50, 0)
	for i := 0; i < 5; i++ {
		if x := Locate(g, 20, 50, 0); x != first {
			t.Fatalf("call %d: got %d, want %d", i, x, first)
		}
	}
}

func TestLocate_NoiseSpeckDoesNotWin(t *testing.T) {
	// A single black pixel at column 30 contributes one row's worth of
	// drop; the real edge at column 60 contributes every row's.
	g := gapGrid(t)
	g.set(30, 10, 0)

	x := Locate(g, 20, 50, 0)
	if x != 60 {
		t.Errorf("Locate with noise speck: got %d, want 60", x)
	}
}

func TestScan_WindowContainment(t *testing.T) {
	g := gapGrid(t)

	res := DefaultParams().Scan(g, 20, 50, 0)
	if !res.Found {
		t.Fatal("expected a found gap")
	}
	if res.WindowLo != 25 || res.WindowHi != 75 {
		t.Errorf("window: got [%d,%d), want [25,75)", res.WindowLo, res.WindowHi)
	}
	if res.BestX < res.WindowLo || res.BestX >= res.WindowHi {
		t.Errorf("BestX %d outside window [%d,%d)", res.BestX, res.WindowLo, res.WindowHi)
	}
	if len(res.Scores) != res.WindowHi-res.WindowLo {
		t.Errorf("Scores length: got %d, want %d", len(res.Scores), res.WindowHi-res.WindowLo)
	}
}

func TestScan_MonotonicPreference(t *testing.T) {
	// Column 40 drops by 100 per row, column 60 by 140. The bigger
	// accumulated drop must win regardless of scan order.
	g := newTestGrid(t, 100, 50, 200)
	g.setCols(40, 50, 100)
	g.setCols(60, 80, 60)

	res := DefaultParams().Scan(g, 20, 50, 0)
	if res.BestX != 60 {
		t.Errorf("BestX: got %d, want 60", res.BestX)
	}
	if got := res.Scores[40-res.WindowLo]; got >= res.Score {
		t.Errorf("runner-up score %d not below winner %d", got, res.Score)
	}
}

func TestScan_TieKeepsLeftmost(t *testing.T) {
	// Two identical drops; replacement happens on strict improvement only.
	g := newTestGrid(t, 120, 40, 200)
	g.setCols(40, 45, 100)
	g.setCols(70, 75, 100)

	res := DefaultParams().Scan(g, 20, 40, 0)
	if res.BestX != 40 {
		t.Errorf("BestX: got %d, want leftmost tie 40", res.BestX)
	}
}

func TestScan_NoiseRejection(t *testing.T) {
	// Alternating 200/185 columns: every per-row diff is exactly +15 or
	// -15, never above the threshold, so nothing may score.
	g := newTestGrid(t, 100, 50, 200)
	for x := 0; x < 100; x += 2 {
		g.setCols(x, x+1, 185)
	}

	res := DefaultParams().Scan(g, 20, 50, 0)
	if res.Found {
		t.Fatalf("Found=true for sub-threshold grid, BestX=%d Score=%d", res.BestX, res.Score)
	}
	if res.BestX != 0 || res.Score != 0 {
		t.Errorf("degenerate result: got BestX=%d Score=%d, want 0/0", res.BestX, res.Score)
	}
}

func TestScan_RowBandClippedAtHeight(t *testing.T) {
	// Band extends 40 rows past the bottom; only rows 40..49 may count.
	g := gapGrid(t)

	res := DefaultParams().Scan(g, 20, 50, 40)
	if res.BestX != 60 {
		t.Errorf("BestX: got %d, want 60", res.BestX)
	}
	if want := 10 * 140; res.Score != want {
		t.Errorf("Score: got %d, want %d (10 in-bounds rows)", res.Score, want)
	}
}

func TestScan_BandEntirelyBelowImage(t *testing.T) {
	g := gapGrid(t)

	res := DefaultParams().Scan(g, 20, 50, 50)
	if res.Found || res.BestX != 0 {
		t.Errorf("band below image: got Found=%v BestX=%d, want false/0", res.Found, res.BestX)
	}
}

func TestScan_EmptyWindowDefaultsToZero(t *testing.T) {
	// Piece wider than half the image leaves no columns to scan.
	g := newTestGrid(t, 50, 30, 200)

	res := DefaultParams().Scan(g, 25, 30, 0)
	if res.Found || res.BestX != 0 {
		t.Errorf("empty window: got Found=%v BestX=%d, want false/0", res.Found, res.BestX)
	}
	if res.Scores != nil {
		t.Errorf("Scores: got %d entries, want nil", len(res.Scores))
	}
}

func TestScan_DropThresholdIsExclusive(t *testing.T) {
	g := newTestGrid(t, 60, 10, 200)
	g.setCols(30, 35, 184) // per-row drop of 16

	tests := []struct {
		name      string
		threshold int
		wantFound bool
	}{
		{"drop above threshold", 15, true},
		{"drop equal to threshold", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{EdgeMargin: DefaultEdgeMargin, DropThreshold: tt.threshold}
			res := p.Scan(g, 10, 10, 0)
			if res.Found != tt.wantFound {
				t.Errorf("Found: got %v, want %v (score %d)", res.Found, tt.wantFound, res.Score)
			}
		})
	}
}

func TestScan_CustomEdgeMargin(t *testing.T) {
	// A drop just inside the default window must fall outside a wider one.
	g := newTestGrid(t, 100, 20, 200)
	g.setCols(26, 30, 60)

	def := DefaultParams().Scan(g, 20, 20, 0)
	if def.BestX != 26 {
		t.Fatalf("default margin: got %d, want 26", def.BestX)
	}

	wide := Params{EdgeMargin: 10, DropThreshold: DefaultDropThreshold}.Scan(g, 20, 20, 0)
	if wide.Found {
		t.Errorf("widened margin: unexpectedly found %d", wide.BestX)
	}
}
