package locator

// Default tuning for the gap scan. Both values are field-tested heuristics,
// not derived bounds; adjust them through Params rather than editing the
// scan itself.
const (
	// DefaultEdgeMargin is the number of columns excluded on each side of
	// the scan window, on top of the piece width.
	DefaultEdgeMargin = 5

	// DefaultDropThreshold is the minimum rightward brightness drop (0-255)
	// that counts toward a column score. Smaller drops are anti-aliasing or
	// sensor noise.
	DefaultDropThreshold = 15
)

// Grid is the read-only pixel access the scan needs.
// *imaging.IntensityGrid satisfies it.
type Grid interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// At returns the brightness (0-255) at column x, row y.
	At(x, y int) uint8
}

// Params tunes the gap scan. Use DefaultParams unless a deployment has
// measured better values for its captcha provider.
type Params struct {
	// EdgeMargin is the per-side column margin of the scan window.
	EdgeMargin int

	// DropThreshold is the minimum per-row brightness drop that scores.
	DropThreshold int
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		EdgeMargin:    DefaultEdgeMargin,
		DropThreshold: DefaultDropThreshold,
	}
}

// Result describes one scan of a background grid.
type Result struct {
	// BestX is the winning column: the left edge of the gap. Zero when no
	// column scored (see Found).
	BestX int

	// Score is the accumulated brightness drop of the winning column.
	Score int

	// Found is false for degenerate geometry: an empty scan window, or a
	// band in which no column scored at all. BestX is 0 in that case and
	// should be treated as "no confident gap", not a coordinate.
	Found bool

	// Confidence estimates how sharply the winner stands out from the rest
	// of the scanned columns, in [0, 1].
	Confidence float64

	// Scores holds the per-column totals for the scanned window,
	// Scores[i] belonging to column WindowLo+i. Nil when the window is
	// empty.
	Scores []int

	// WindowLo and WindowHi bound the scanned columns: [WindowLo, WindowHi).
	WindowLo, WindowHi int
}

// Locate returns the column of the gap's left edge in g.
//
// sliderWidth and sliderHeight are the pixel dimensions of the slider
// piece; only its size is used, never its content. sliderY is the top row
// of the band the gap occupies, detected upstream. Rows at or past the
// grid height are skipped; other input validation is the caller's job.
//
// Degenerate inputs return 0 without error. Use Params.Scan when the
// caller needs to tell that case apart from a genuine hit at column 0.
func Locate(g Grid, sliderWidth, sliderHeight, sliderY int) int {
	return DefaultParams().Scan(g, sliderWidth, sliderHeight, sliderY).BestX
}

// Scan scores every candidate column and returns the full result.
func (p Params) Scan(g Grid, sliderWidth, sliderHeight, sliderY int) Result {
	width, height := g.Width(), g.Height()

	lo := sliderWidth + p.EdgeMargin
	hi := width - sliderWidth - p.EdgeMargin

	res := Result{WindowLo: lo, WindowHi: hi}
	if lo >= hi {
		return res
	}

	res.Scores = make([]int, hi-lo)
	bestX, maxScore := 0, 0

	for x := lo; x < hi; x++ {
		score := 0
		for y := sliderY; y < sliderY+sliderHeight && y < height; y++ {
			diff := int(g.At(x-1, y)) - int(g.At(x, y))
			if diff > p.DropThreshold {
				score += diff
			}
		}
		res.Scores[x-lo] = score
		// Strict improvement only, so ties keep the leftmost column.
		if score > maxScore {
			maxScore = score
			bestX = x
		}
	}

	res.BestX = bestX
	res.Score = maxScore
	res.Found = maxScore > 0
	res.Confidence = confidence(res.Scores, maxScore)
	return res
}
