// Package encode writes rendered frames to disk as WebP or TGA.
package encode

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format selects the output encoding.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
)

// ParseFormat accepts a format name or file extension, case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(s), ".")); f {
	case WebP, TGA:
		return f, nil
	default:
		return "", fmt.Errorf("encode: unknown format %q", s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("encode: webp: %w", err)
		}
	case TGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("encode: tga: %w", err)
		}
	default:
		return fmt.Errorf("encode: unknown format %q", string(f))
	}
	return nil
}

// WriteFile encodes img to path, creating parent directories.
func WriteFile(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("encode: mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}

	if err := Encode(out, img, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
