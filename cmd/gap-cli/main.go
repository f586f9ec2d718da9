// Command gap-cli locates a slider captcha gap in images on disk.
//
// It exists for tuning sessions: point it at a saved background and piece,
// try margin/threshold values, and write the score heatmap next to them.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/slidekit/gapfinder/internal/imaging"
	"github.com/slidekit/gapfinder/internal/locator"
)

func main() {
	bgPath := flag.String("bg", "", "background image file")
	piecePath := flag.String("piece", "", "slider piece image file (only its size is used)")
	sliderY := flag.Int("y", 0, "vertical offset of the gap's top row")
	margin := flag.Int("margin", locator.DefaultEdgeMargin, "scan window edge margin in columns")
	threshold := flag.Int("threshold", locator.DefaultDropThreshold, "minimum scoring brightness drop")
	overlayPath := flag.String("overlay", "", "optional path to write a score heatmap PNG")
	flag.Parse()

	if *bgPath == "" || *piecePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	background, err := imaging.LoadFile(*bgPath)
	if err != nil {
		log.Fatalf("background: %v", err)
	}
	piece, err := imaging.LoadFile(*piecePath)
	if err != nil {
		log.Fatalf("piece: %v", err)
	}

	params := locator.Params{EdgeMargin: *margin, DropThreshold: *threshold}
	grid := imaging.NewIntensityGrid(background)
	res := params.Scan(grid, piece.Bounds().Dx(), piece.Bounds().Dy(), *sliderY)

	fmt.Printf("x=%d score=%d found=%v confidence=%.2f window=[%d,%d)\n",
		res.BestX, res.Score, res.Found, res.Confidence, res.WindowLo, res.WindowHi)

	if *overlayPath != "" {
		overlay, err := imaging.ScoreOverlay(background, res.Scores, res.WindowLo, res.BestX)
		if err != nil {
			log.Fatalf("overlay: %v", err)
		}
		data, err := base64.StdEncoding.DecodeString(overlay.ImageBase64)
		if err != nil {
			log.Fatalf("overlay: %v", err)
		}
		if err := os.WriteFile(*overlayPath, data, 0o644); err != nil {
			log.Fatalf("overlay: %v", err)
		}
		log.Printf("wrote %s", *overlayPath)
	}
}
