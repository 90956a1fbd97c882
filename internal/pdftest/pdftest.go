// Package pdftest generates small PDF fixtures for tests.
package pdftest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/phpdave11/gofpdf"
)

// Write creates a PDF at dir/name with one page per text and returns its
// path. The document carries a Title and Author entry so metadata surfaces
// have something to show.
func Write(t *testing.T, dir, name string, pageTexts ...string) string {
	t.Helper()
	return write(t, dir, name, -1, pageTexts)
}

// WriteWithImage is Write with a small PNG placed on the 0-based imagePage.
func WriteWithImage(t *testing.T, dir, name string, imagePage int, pageTexts ...string) string {
	t.Helper()
	return write(t, dir, name, imagePage, pageTexts)
}

func write(t *testing.T, dir, name string, imagePage int, pageTexts []string) string {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Test Document", false)
	doc.SetAuthor("Test Author", false)
	doc.SetFont("Helvetica", "", 12)

	for i, text := range pageTexts {
		doc.AddPage()
		if text != "" {
			doc.Text(10, 20, text)
		}
		if i == imagePage {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			doc.RegisterImageOptionsReader("fixture.png", opts, bytes.NewReader(tinyPNG(t)))
			doc.ImageOptions("fixture.png", 10, 40, 20, 20, false, opts, 0, "")
		}
	}

	path := filepath.Join(dir, name)
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("generating test PDF: %v", err)
	}
	return path
}

// tinyPNG returns an opaque 8x8 PNG. Opaque pixels keep the encoder on
// plain RGB, so the embedded object stays a single image XObject with no
// soft mask.
func tinyPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture png: %v", err)
	}
	return buf.Bytes()
}
