package server

import (
	"encoding/json"
	"fmt"
	"image"
	"net/http"

	"github.com/slidekit/gapfinder/internal/imaging"
	"github.com/slidekit/gapfinder/internal/ocr"
)

// SlideRequest is the payload for the slide endpoints. SliderY is a pointer
// so a missing field can be told apart from a legitimate zero.
type SlideRequest struct {
	BackgroundImage string `json:"background_image"`
	SliderImage     string `json:"slider_image"`
	SliderY         *int   `json:"slider_y"`
}

// SlideResult is the response for POST /api/slide.
type SlideResult struct {
	// X is the located left edge of the gap. Zero with Found=false means
	// the scan saw nothing, not a hit at the origin.
	X          int     `json:"x"`
	Score      int     `json:"score"`
	Found      bool    `json:"found"`
	Confidence float64 `json:"confidence"`
}

// OCRRequest is the payload for POST /api/ocr.
type OCRRequest struct {
	Image    string     `json:"image"`
	Language string     `json:"language,omitempty"`
	Region   *OCRRegion `json:"region,omitempty"`
}

// OCRRegion restricts recognition to a rectangle: inclusive top-left,
// exclusive bottom-right.
type OCRRegion struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// slideInput is a parsed and validated slide request.
type slideInput struct {
	background   image.Image
	grid         *imaging.IntensityGrid
	sliderWidth  int
	sliderHeight int
	sliderY      int
}

// parseSlide validates a slide request and decodes both images. It writes
// the error response itself and returns nil when the request is bad.
func (s *Server) parseSlide(w http.ResponseWriter, r *http.Request) *slideInput {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	var req SlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid JSON body", http.StatusBadRequest)
		return nil
	}

	if req.BackgroundImage == "" {
		respondError(w, "background_image is required", http.StatusBadRequest)
		return nil
	}
	if req.SliderImage == "" {
		respondError(w, "slider_image is required", http.StatusBadRequest)
		return nil
	}
	if req.SliderY == nil {
		respondError(w, "slider_y is required", http.StatusBadRequest)
		return nil
	}
	if *req.SliderY < 0 {
		respondError(w, "slider_y must be non-negative", http.StatusBadRequest)
		return nil
	}

	background, err := imaging.DecodeImage(req.BackgroundImage)
	if err != nil {
		respondError(w, fmt.Sprintf("background_image: %v", err), http.StatusBadRequest)
		return nil
	}

	// The slider image contributes only its dimensions; its pixel content
	// is never read.
	piece, err := imaging.DecodeImage(req.SliderImage)
	if err != nil {
		respondError(w, fmt.Sprintf("slider_image: %v", err), http.StatusBadRequest)
		return nil
	}

	return &slideInput{
		background:   background,
		grid:         imaging.NewIntensityGrid(background),
		sliderWidth:  piece.Bounds().Dx(),
		sliderHeight: piece.Bounds().Dy(),
		sliderY:      *req.SliderY,
	}
}

// handleSlide locates the gap and returns its horizontal offset.
func (s *Server) handleSlide(w http.ResponseWriter, r *http.Request) {
	in := s.parseSlide(w, r)
	if in == nil {
		return
	}

	res := s.params.Scan(in.grid, in.sliderWidth, in.sliderHeight, in.sliderY)
	respondJSON(w, SlideResult{
		X:          res.BestX,
		Score:      res.Score,
		Found:      res.Found,
		Confidence: res.Confidence,
	}, http.StatusOK)
}

// handleSlideOverlay runs the same scan and returns a heatmap render.
func (s *Server) handleSlideOverlay(w http.ResponseWriter, r *http.Request) {
	in := s.parseSlide(w, r)
	if in == nil {
		return
	}

	res := s.params.Scan(in.grid, in.sliderWidth, in.sliderHeight, in.sliderY)
	overlay, err := imaging.ScoreOverlay(in.background, res.Scores, res.WindowLo, res.BestX)
	if err != nil {
		respondError(w, fmt.Sprintf("failed to render overlay: %v", err), http.StatusInternalServerError)
		return
	}
	respondJSON(w, overlay, http.StatusOK)
}

// handleOCR recognizes a text captcha.
func (s *Server) handleOCR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	var req OCRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Image == "" {
		respondError(w, "image is required", http.StatusBadRequest)
		return
	}

	img, err := imaging.DecodeImage(req.Image)
	if err != nil {
		respondError(w, fmt.Sprintf("image: %v", err), http.StatusBadRequest)
		return
	}

	language := req.Language
	if language == "" {
		language = s.cfg.OCRLanguage
	}

	var result *ocr.Result
	if req.Region != nil {
		result, err = ocr.RecognizeRegion(img, req.Region.X1, req.Region.Y1, req.Region.X2, req.Region.Y2, language)
	} else {
		result, err = ocr.Recognize(img, language)
	}
	if err != nil {
		respondError(w, fmt.Sprintf("recognition failed: %v", err), http.StatusInternalServerError)
		return
	}

	respondJSON(w, result, http.StatusOK)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}
