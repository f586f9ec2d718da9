package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxOverlayWidth caps debug renders; wider images are downscaled to keep
// response payloads reasonable.
const maxOverlayWidth = 1024

// ScoreOverlayResult contains the rendered score heatmap.
type ScoreOverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	BestX       int    `json:"best_x"`
}

// ScoreOverlay renders a diagnostic view of one scan: each scanned column is
// tinted by its normalized score (blue for no drop through red for the
// strongest), and the winning column gets a solid marker line. scores[i]
// belongs to column windowLo+i, as produced by locator.Params.Scan.
func ScoreOverlay(img image.Image, scores []int, windowLo, bestX int) (*ScoreOverlayResult, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	result := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	cold := colorful.Color{R: 0.1, G: 0.3, B: 0.9}
	hot := colorful.Color{R: 0.95, G: 0.15, B: 0.1}

	if maxScore > 0 {
		for i, s := range scores {
			if s == 0 {
				continue
			}
			x := windowLo + i
			if x < 0 || x >= width {
				continue
			}
			tint := cold.BlendLuv(hot, float64(s)/float64(maxScore))
			tr, tg, tb := tint.RGB255()
			// Tint every other row so the background stays legible.
			for y := 0; y < height; y += 2 {
				base := result.RGBAAt(x, y)
				result.SetRGBA(x, y, color.RGBA{
					R: uint8((int(base.R) + int(tr)) / 2),
					G: uint8((int(base.G) + int(tg)) / 2),
					B: uint8((int(base.B) + int(tb)) / 2),
					A: 255,
				})
			}
		}
	}

	if bestX >= 0 && bestX < width {
		marker := color.RGBA{255, 255, 0, 255}
		for y := 0; y < height; y++ {
			result.SetRGBA(bestX, y, marker)
		}
	}

	out := image.Image(result)
	outWidth, outHeight := width, height
	if width > maxOverlayWidth {
		outHeight = height * maxOverlayWidth / width
		out = imaging.Resize(result, maxOverlayWidth, outHeight, imaging.Lanczos)
		outWidth = maxOverlayWidth
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &ScoreOverlayResult{
		Width:       outWidth,
		Height:      outHeight,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		BestX:       bestX,
	}, nil
}
