// Package server exposes the gap locator and the text-captcha OCR over an
// HTTP JSON API.
//
// Endpoints:
//
//   - POST /api/slide          locate the gap in a slider captcha
//   - POST /api/slide/overlay  same scan, rendered as a score heatmap
//   - POST /api/ocr            recognize a text captcha
//   - GET  /health             liveness probe
//
// Images travel as base64 strings (optionally with a data-URL prefix) in
// JSON bodies. Missing parameters, undecodable payloads and out-of-range
// values are client errors (HTTP 400) and never reach the scan; the scan
// itself has no failure path, so a degenerate request still yields a 200
// with found=false.
package server
