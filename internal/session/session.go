package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// Session is one open PDF document: a stable id, the absolute source path,
// the exclusively owned parse handle, and the per-page cache of extracted
// image paths. The handle is not safe for concurrent use, so every accessor
// takes the session lock.
type Session struct {
	id   string
	path string

	mu     sync.Mutex
	doc    *pdf.Document
	images map[int][]string
	imgDir string
	closed bool
	log    logger.Logger
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Path returns the absolute source path. Immutable for the session's life.
func (s *Session) Path() string { return s.path }

// BaseName returns the file's base name for display.
func (s *Session) BaseName() string { return filepath.Base(s.path) }

// ImageDir returns the directory extracted images are written to.
func (s *Session) ImageDir() string { return s.imgDir }

// PageCount returns the document's page count, or 0 after close.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	return s.doc.PageCount()
}

// PageText returns the raw text of the 0-based page index. The index must
// lie in [0, PageCount); out-of-range indices fail with the valid range in
// the message.
func (s *Session) PageText(pageIndex int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", models.InvalidArgumentf("Invalid PDF ID")
	}
	if err := s.checkPageIndex(pageIndex); err != nil {
		return "", err
	}
	return s.doc.PageText(pageIndex)
}

// Metadata returns a copy of the document's metadata map. Values may be
// empty; callers filter for display.
func (s *Session) Metadata() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	md := s.doc.Metadata()
	out := make(map[string]string, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}

// FullText extracts the inclusive page range as one string. Out-of-range
// bounds reset to their defaults (0 and the last page) and an inverted pair
// is swapped, never rejected. With markers on, each page with raw text
// renders under a "--- PAGE i/N ---" header and pages without text get a
// placeholder marker; with markers off, textless pages are dropped. Returns
// the text and the normalized bounds.
func (s *Session) FullText(includeMarkers bool, startPage, endPage int) (string, int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", 0, 0, models.InvalidArgumentf("Invalid PDF ID")
	}
	total := s.doc.PageCount()
	if total == 0 {
		return "", 0, 0, nil
	}
	start, end := normalizeRange(startPage, endPage, total)

	var segments []string
	for p := start; p <= end; p++ {
		raw, err := s.doc.PageText(p)
		if err != nil {
			raw = ""
		}
		if raw != "" {
			text := pdf.CleanText(raw)
			if includeMarkers {
				segments = append(segments, fmt.Sprintf("\n--- PAGE %d/%d ---\n%s", p+1, total, text))
			} else {
				segments = append(segments, text)
			}
		} else if includeMarkers {
			segments = append(segments, fmt.Sprintf("\n--- PAGE %d/%d ---\n[No extractable text on this page]", p+1, total))
		}
	}
	return strings.Join(segments, "\n"), start, end, nil
}

// ExtractImages returns the extracted image file paths for the 0-based page
// index, writing them on first request and serving the cached paths after
// that. The index must lie in [0, PageCount).
func (s *Session) ExtractImages(pageIndex int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, models.InvalidArgumentf("Invalid PDF ID")
	}
	if err := s.checkPageIndex(pageIndex); err != nil {
		return nil, err
	}
	if paths, ok := s.images[pageIndex]; ok {
		return append([]string(nil), paths...), nil
	}
	paths, err := pdf.ExtractPageImages(s.path, pageIndex, s.imgDir, s.log)
	if err != nil {
		return nil, err
	}
	s.images[pageIndex] = paths
	return append([]string(nil), paths...), nil
}

// CachedImages returns the image paths already extracted for the page, or
// nil when the page has not been extracted. It never triggers extraction.
func (s *Session) CachedImages(pageIndex int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := s.images[pageIndex]
	if len(paths) == 0 {
		return nil
	}
	return append([]string(nil), paths...)
}

func (s *Session) checkPageIndex(pageIndex int) error {
	n := s.doc.PageCount()
	if pageIndex < 0 || pageIndex >= n {
		return models.InvalidArgumentf("Invalid page number. PDF has %d pages (0-%d)", n, n-1)
	}
	return nil
}

// release closes the handle, drops the image cache, and removes the image
// directory. Idempotent.
func (s *Session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if err := s.doc.Close(); err != nil {
		s.log.Warn("Failed to close document handle for %s: %v", s.path, err)
	}
	s.images = nil
	if err := os.RemoveAll(s.imgDir); err != nil {
		s.log.Warn("Failed to remove image directory %s: %v", s.imgDir, err)
	}
}

// normalizeRange resets out-of-range bounds to their defaults (0 and
// total-1), then swaps an inverted pair. total must be at least 1.
func normalizeRange(start, end, total int) (int, int) {
	if start < 0 || start >= total {
		start = 0
	}
	if end < 0 || end >= total {
		end = total - 1
	}
	if start > end {
		start, end = end, start
	}
	return start, end
}
