// Package tools implements the MCP tool surface of the PDF reader server.
// Each tool lives in its own file as a query struct, a schema constructor,
// and a handler taking the session registry and logger as dependencies.
package tools

import (
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// lookupSession resolves a pdf_id argument to an open session. A missing or
// unknown id is reported as the same invalid-id failure so callers cannot
// probe which ids exist.
func lookupSession(reg *session.Registry, pdfID string) (*session.Session, error) {
	if pdfID == "" {
		return nil, models.InvalidArgumentf("Invalid PDF ID")
	}
	s, ok := reg.Get(pdfID)
	if !ok {
		return nil, models.InvalidArgumentf("Invalid PDF ID")
	}
	return s, nil
}
