package resources

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// PDFResourceHandler serves the raw bytes of open PDF documents
type PDFResourceHandler struct {
	registry *session.Registry
}

// NewPDFResourceHandler creates a new PDF resource handler
func NewPDFResourceHandler(reg *session.Registry) *PDFResourceHandler {
	return &PDFResourceHandler{registry: reg}
}

// BuildResource describes an open session as a listable resource. The server
// registers one of these per session so clients see the open set.
func BuildResource(s *session.Session) *mcp.Resource {
	return &mcp.Resource{
		URI:         "pdf://" + s.ID(),
		Name:        fmt.Sprintf("PDF: %s", s.BaseName()),
		Description: fmt.Sprintf("PDF document at %s", s.Path()),
		MIMEType:    "application/pdf",
	}
}

// ReadResource reads a PDF's content by its pdf://<id> URI
func (h *PDFResourceHandler) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	if !strings.HasPrefix(uri, "pdf://") {
		scheme, _, _ := strings.Cut(uri, "://")
		return nil, models.InvalidArgumentf("Unsupported URI scheme: %s", scheme)
	}

	id, _, _ := strings.Cut(strings.TrimPrefix(uri, "pdf://"), "/")
	s, ok := h.registry.Get(id)
	if !ok {
		return nil, models.InvalidArgumentf("PDF not found: %s", id)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF file: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/pdf",
				Blob:     data,
			},
		},
	}, nil
}
