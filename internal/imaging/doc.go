// Package imaging converts captcha request payloads into the pixel data the
// gap scan consumes, and renders scan diagnostics.
//
// The pipeline is deliberately small: decode the transport format (base64
// over HTTP, or a file for the CLI), collapse chrominance into a flat
// brightness grid, and hand the grid to the locator. Nothing here mutates an
// image after construction.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Supported Formats
//
// PNG, JPEG and GIF via the standard library, plus WEBP and BMP via
// golang.org/x/image. Captcha providers commonly deliver WEBP backgrounds.
package imaging
