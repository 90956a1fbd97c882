package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdftest"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

func testRegistry(t *testing.T) *session.Registry {
	t.Helper()
	return session.NewRegistry(t.TempDir(), logger.NewNoOpLogger())
}

func openTestPDF(t *testing.T, reg *session.Registry, pageTexts ...string) *session.Session {
	t.Helper()
	path := pdftest.Write(t, t.TempDir(), "doc.pdf", pageTexts...)
	s, err := reg.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test PDF: %v", err)
	}
	return s
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("Result has no content")
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Result content is %T, want *mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

// Walks a document through its whole life: open, count, read, close, and
// verify the id is dead afterwards.
func TestToolLifecycle(t *testing.T) {
	log := logger.NewNoOpLogger()
	ctx := context.Background()
	reg := testRegistry(t)
	path := pdftest.Write(t, t.TempDir(), "doc.pdf", "page one", "page two", "page three")

	_, opened, err := OpenPDFToolHandler(ctx, nil, OpenPDFQuery{Path: path}, reg, log)
	if err != nil {
		t.Fatalf("OpenPDFToolHandler failed: %v", err)
	}
	id := opened.PDFID

	countResult, _, err := GetPDFPageCountToolHandler(ctx, nil, GetPDFPageCountQuery{PDFID: id}, reg, log)
	if err != nil {
		t.Fatalf("GetPDFPageCountToolHandler failed: %v", err)
	}
	if got, want := resultText(t, countResult), "'doc.pdf' has 3 pages"; got != want {
		t.Errorf("Page count text = %q, want %q", got, want)
	}

	_, _, err = GetPDFPageTextToolHandler(ctx, nil, GetPDFPageTextQuery{PDFID: id, PageNumber: intPtr(3)}, reg, false, log)
	if err == nil {
		t.Fatal("Expected error for page index past the end")
	}
	if !strings.Contains(err.Error(), "0-2") {
		t.Errorf("Expected error to name the valid range 0-2, got: %v", err)
	}

	closeResult, _, err := ClosePDFToolHandler(ctx, nil, ClosePDFQuery{PDFID: id}, reg, log)
	if err != nil {
		t.Fatalf("ClosePDFToolHandler failed: %v", err)
	}
	if got, want := resultText(t, closeResult), "Closed PDF 'doc.pdf'"; got != want {
		t.Errorf("Close text = %q, want %q", got, want)
	}

	_, _, err = GetPDFPageCountToolHandler(ctx, nil, GetPDFPageCountQuery{PDFID: id}, reg, log)
	if err == nil {
		t.Fatal("Expected error for closed PDF ID")
	}
	if err.Error() != "Invalid PDF ID" {
		t.Errorf("Expected 'Invalid PDF ID', got: %v", err)
	}
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Expected invalid-argument kind, got: %v", err)
	}
}
