package pdf

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// Document is an open PDF handle. The page count is resolved once at open
// time; the handle is not safe for concurrent use and is invalid after Close.
type Document struct {
	doc       *fitz.Document
	pageCount int
}

// NormalizePath expands a leading ~ and resolves path to absolute form.
func NormalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// ValidatePath verifies that path exists, is a regular file, and is readable.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NotFoundf("File not found: %s", path)
		}
		return models.PermissionDeniedf("File is not readable: %s", path)
	}
	if !info.Mode().IsRegular() {
		return models.PermissionDeniedf("Path is not a file: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return models.PermissionDeniedf("File is not readable: %s", path)
	}
	f.Close()
	return nil
}

// looksLikePDF reports whether the file carries a %PDF- header. Readers
// tolerate junk before the header, so the whole first kilobyte is scanned.
func looksLikePDF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, 1024))
	if err != nil {
		return false
	}
	return bytes.Contains(head, []byte("%PDF-"))
}

// Open parses the file at path as a PDF. The path is expected to already be
// normalized and validated (see NormalizePath, ValidatePath). MuPDF happily
// opens images and EPUBs as documents, so the header check runs first.
func Open(path string) (*Document, error) {
	if !looksLikePDF(path) {
		return nil, models.ParseFailuref("Failed to open PDF: %s is not a PDF document", path)
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, models.ParseFailuref("Failed to open PDF: %v", err)
	}
	return &Document{doc: doc, pageCount: doc.NumPage()}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// PageText returns the raw text of the 0-based page index.
func (d *Document) PageText(pageIndex int) (string, error) {
	return d.doc.Text(pageIndex)
}

// Metadata returns the document information dictionary as reported by MuPDF.
// Values may be empty; callers filter and order for display.
func (d *Document) Metadata() map[string]string {
	return d.doc.Metadata()
}

// Close releases the underlying handle.
func (d *Document) Close() error {
	return d.doc.Close()
}
