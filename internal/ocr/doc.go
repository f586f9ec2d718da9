// Package ocr recognizes text captchas using the Tesseract engine via
// gosseract/v2.
//
// Tesseract must be installed on the system together with the language data
// for each language used (e.g. tesseract-ocr and tesseract-ocr-eng on
// Debian/Ubuntu). Recognition runs on a temporary PNG file because the
// engine consumes file paths; the file is removed when the call returns.
//
// Text captchas are short, distorted strings, so results carry a single
// text value with a mean word confidence rather than per-word layout.
package ocr
