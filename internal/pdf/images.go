package pdf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	_ "golang.org/x/image/tiff"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// ExtractPageImages pulls the embedded raster images of the 0-based page
// index out of the PDF at path and writes each as a PNG under dir, named
// page_<pageIndex>_img_<k>.png. The returned paths follow the page's image
// resource order (ascending object number). A page with no images yields an
// empty slice and no error. Failures on individual images are logged as
// warnings and skipped so one corrupt stream never fails the page.
func ExtractPageImages(path string, pageIndex int, dir string, log logger.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NotFoundf("File not found: %s", path)
		}
		return nil, models.PermissionDeniedf("File is not readable: %s", path)
	}
	defer f.Close()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, models.PermissionDeniedf("Failed to create image directory: %v", err)
	}

	// pdfcpu page selections are 1-based.
	conf := model.NewDefaultConfiguration()
	pages := []string{strconv.Itoa(pageIndex + 1)}
	extracted, err := api.ExtractImagesRaw(f, pages, conf)
	if err != nil {
		return nil, models.ParseFailuref("Failed to extract images: %v", err)
	}

	var paths []string
	for _, pageImages := range extracted {
		objNrs := make([]int, 0, len(pageImages))
		for objNr, img := range pageImages {
			if img.Thumb {
				continue
			}
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for k, objNr := range objNrs {
			img := pageImages[objNr]
			outPath := filepath.Join(dir, fmt.Sprintf("page_%d_img_%d.png", pageIndex, k))
			if err := saveAsPNG(img, outPath); err != nil {
				log.Warn("Could not extract image %d from page %d: %v", k, pageIndex, err)
				continue
			}
			paths = append(paths, outPath)
		}
	}
	return paths, nil
}

// saveAsPNG decodes one extracted image stream and writes it to outPath as
// a PNG, converting CMYK samples to RGB first. DCTDecode streams can carry
// CMYK; PNG output is always RGB.
func saveAsPNG(img model.Image, outPath string) error {
	decoded, _, err := image.Decode(img)
	if err != nil {
		return fmt.Errorf("decode %s (%s): %w", img.Name, img.FileType, err)
	}

	if decoded.ColorModel() == color.CMYKModel {
		b := decoded.Bounds()
		rgba := image.NewRGBA(b)
		draw.Draw(rgba, b, decoded, b.Min, draw.Src)
		decoded = rgba
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, decoded); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
