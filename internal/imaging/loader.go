package imaging

import (
	"fmt"
	"image"
	"os"
)

// LoadFile reads and decodes an image from disk. Supported formats are the
// same as DecodeImage. Captcha images are one-shot, so loads are not cached.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
