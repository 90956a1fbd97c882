package pdf

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdftest"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

func TestExtractPageImagesNone(t *testing.T) {
	dir := t.TempDir()
	path := pdftest.Write(t, dir, "plain.pdf", "text only page")
	outDir := filepath.Join(dir, "out")

	paths, err := ExtractPageImages(path, 0, outDir, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("ExtractPageImages: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %d image paths, want 0", len(paths))
	}
	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestExtractPageImagesWritesPNG(t *testing.T) {
	dir := t.TempDir()
	path := pdftest.WriteWithImage(t, dir, "withimage.pdf", 0, "page with a picture", "plain page")
	outDir := filepath.Join(dir, "out")

	paths, err := ExtractPageImages(path, 0, outDir, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("ExtractPageImages: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d image paths, want 1: %v", len(paths), paths)
	}

	if got, want := filepath.Base(paths[0]), "page_0_img_0.png"; got != want {
		t.Errorf("image file name = %q, want %q", got, want)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatalf("opening extracted image: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("extracted file is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("image bounds = %v, want 8x8", img.Bounds())
	}

	// The second page carries no images.
	paths, err = ExtractPageImages(path, 1, outDir, logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("ExtractPageImages(page 1): %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("page 1: got %d image paths, want 0", len(paths))
	}
}

func TestExtractPageImagesPathErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("source file removed", func(t *testing.T) {
		path := pdftest.Write(t, dir, "gone.pdf", "page")
		if err := os.Remove(path); err != nil {
			t.Fatalf("removing fixture: %v", err)
		}

		_, err := ExtractPageImages(path, 0, filepath.Join(dir, "out"), logger.NewNoOpLogger())
		if err == nil {
			t.Fatal("ExtractPageImages succeeded on a removed file")
		}
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("error kind = %v, want ErrNotFound", err)
		}
		if !strings.Contains(err.Error(), "File not found") {
			t.Errorf("error = %q, want substring %q", err.Error(), "File not found")
		}
	})

	t.Run("output dir blocked by a file", func(t *testing.T) {
		path := pdftest.Write(t, dir, "ok.pdf", "page")
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("writing blocker: %v", err)
		}

		_, err := ExtractPageImages(path, 0, filepath.Join(blocker, "out"), logger.NewNoOpLogger())
		if err == nil {
			t.Fatal("ExtractPageImages succeeded with an unusable output dir")
		}
		if !errors.Is(err, models.ErrPermissionDenied) {
			t.Errorf("error kind = %v, want ErrPermissionDenied", err)
		}
	})
}
