package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Result contains text recognized from a captcha image.
type Result struct {
	// Text is the recognized string with surrounding whitespace trimmed.
	Text string `json:"text"`

	// Confidence is the mean word confidence (0.0 to 1.0). Zero when the
	// engine reports no word boxes.
	Confidence float64 `json:"confidence"`
}

// Recognize runs OCR over an entire image. language is a Tesseract
// language code such as "eng".
func Recognize(img image.Image, language string) (*Result, error) {
	path, err := saveTemp(img)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return recognizeFile(path, language)
}

// RecognizeRegion runs OCR on a rectangular region of an image only.
// (x1, y1) is the inclusive top-left corner, (x2, y2) the exclusive
// bottom-right. The region is clamped to the image bounds.
func RecognizeRegion(img image.Image, x1, y1, x2, y2 int, language string) (*Result, error) {
	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	if cropped.Bounds().Empty() {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) is outside the image", x1, y1, x2, y2)
	}
	return Recognize(cropped, language)
}

func recognizeFile(path, language string) (*Result, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	confidence := 0.0
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		for _, box := range boxes {
			confidence += float64(box.Confidence)
		}
		confidence /= float64(len(boxes)) * 100.0
	}

	return &Result{
		Text:       strings.TrimSpace(text),
		Confidence: confidence,
	}, nil
}

// saveTemp writes an image to a temporary PNG file for the engine. The
// caller removes the file.
func saveTemp(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "captcha-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
