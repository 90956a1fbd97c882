package resources

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdftest"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

func testRegistry(t *testing.T) *session.Registry {
	t.Helper()
	return session.NewRegistry(t.TempDir(), logger.NewNoOpLogger())
}

func openTestPDF(t *testing.T, reg *session.Registry) *session.Session {
	t.Helper()
	path := pdftest.Write(t, t.TempDir(), "doc.pdf", "page one", "page two")
	s, err := reg.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test PDF: %v", err)
	}
	return s
}

func TestBuildResource(t *testing.T) {
	reg := testRegistry(t)
	s := openTestPDF(t, reg)

	resource := BuildResource(s)
	if resource.URI != "pdf://"+s.ID() {
		t.Errorf("URI = %q, want %q", resource.URI, "pdf://"+s.ID())
	}
	if resource.Name != "PDF: doc.pdf" {
		t.Errorf("Name = %q, want %q", resource.Name, "PDF: doc.pdf")
	}
	if !strings.HasPrefix(resource.Description, "PDF document at ") || !strings.HasSuffix(resource.Description, "doc.pdf") {
		t.Errorf("Description = %q, want path description", resource.Description)
	}
	if resource.MIMEType != "application/pdf" {
		t.Errorf("MIMEType = %q, want application/pdf", resource.MIMEType)
	}
}

func TestReadResource(t *testing.T) {
	reg := testRegistry(t)
	s := openTestPDF(t, reg)
	handler := NewPDFResourceHandler(reg)

	uri := "pdf://" + s.ID()
	result, err := handler.ReadResource(context.Background(), uri)
	if err != nil {
		t.Fatalf("ReadResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content item, got %d", len(result.Contents))
	}

	content := result.Contents[0]
	if content.URI != uri {
		t.Errorf("Content URI = %q, want %q", content.URI, uri)
	}
	if content.MIMEType != "application/pdf" {
		t.Errorf("Content MIMEType = %q, want application/pdf", content.MIMEType)
	}

	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	if !bytes.Equal(content.Blob, raw) {
		t.Errorf("Blob has %d bytes, want the %d bytes of the file on disk", len(content.Blob), len(raw))
	}
}

func TestReadResourceErrors(t *testing.T) {
	reg := testRegistry(t)
	s := openTestPDF(t, reg)
	handler := NewPDFResourceHandler(reg)
	ctx := context.Background()

	t.Run("unsupported scheme", func(t *testing.T) {
		_, err := handler.ReadResource(ctx, "http://"+s.ID())
		if err == nil {
			t.Fatal("Expected error for non-pdf scheme")
		}
		if err.Error() != "Unsupported URI scheme: http" {
			t.Errorf("Expected scheme error, got: %v", err)
		}
		if !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected invalid argument error, got: %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := handler.ReadResource(ctx, "pdf://bogus")
		if err == nil {
			t.Fatal("Expected error for unknown id")
		}
		if err.Error() != "PDF not found: bogus" {
			t.Errorf("Expected not-found error, got: %v", err)
		}
	})

	t.Run("closed session", func(t *testing.T) {
		uri := "pdf://" + s.ID()
		if _, err := reg.Close(s.ID()); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		_, err := handler.ReadResource(ctx, uri)
		if err == nil {
			t.Fatal("Expected error after close")
		}
		if !strings.Contains(err.Error(), "PDF not found:") {
			t.Errorf("Expected not-found error after close, got: %v", err)
		}
	})
}
