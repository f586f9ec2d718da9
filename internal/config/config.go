// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/slidekit/gapfinder/internal/locator"
)

// Config carries everything the binaries need. Values are read once at
// startup and passed explicitly; nothing reads the environment after Load.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// LogLevel enables extra startup logging when set to "debug".
	LogLevel string

	// MaxBodyBytes caps request bodies; base64 image payloads get big.
	MaxBodyBytes int64

	// EdgeMargin and DropThreshold override the locator tuning.
	EdgeMargin    int
	DropThreshold int

	// OCRLanguage is the default Tesseract language code.
	OCRLanguage string
}

// Load reads the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("GAP_LOG_LEVEL", "info"),
		MaxBodyBytes:  getEnvInt64("GAP_MAX_BODY_BYTES", 10<<20),
		EdgeMargin:    getEnvInt("GAP_EDGE_MARGIN", locator.DefaultEdgeMargin),
		DropThreshold: getEnvInt("GAP_DROP_THRESHOLD", locator.DefaultDropThreshold),
		OCRLanguage:   getEnv("GAP_OCR_LANGUAGE", "eng"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}
