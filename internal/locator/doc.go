// Package locator finds the horizontal offset of a puzzle-piece gap in a
// slider captcha background.
//
// The background image arrives as a grayscale intensity grid. The gap is a
// piece-shaped hole punched into the background, which renders as a region
// darker than its surroundings; its left edge therefore shows up as a
// sustained brightness drop between adjacent columns across the rows the
// piece occupies. The scan walks every candidate column inside a bounded
// window, accumulates the per-row drops that exceed a noise threshold, and
// picks the column with the highest total.
//
// # Scan Window
//
// Candidate columns are restricted to
//
//	[sliderWidth+EdgeMargin, width-sliderWidth-EdgeMargin)
//
// The piece rests at the left edge of the image and the gap is never
// generated flush against either side, so columns near the borders can only
// produce false positives. EdgeMargin is a tuned heuristic, not a derived
// bound.
//
// # Noise Rejection
//
// A single bright or dark speck produces a large drop in at most one row of
// the band. A real gap edge produces a directional drop in most of them.
// Counting only drops strictly greater than DropThreshold, and only in the
// darkening direction, lets the accumulated total separate the two cleanly.
//
// # Failure Semantics
//
// The scan never returns an error. Degenerate geometry (a window that is
// empty because the piece is too wide, or a band in which no column drops at
// all) yields column 0; Result.Found reports that case so callers can treat
// it as "no confident gap" instead of a coordinate.
//
// All functions are pure and safe for concurrent use.
package locator
