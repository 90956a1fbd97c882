// Package prompts implements the MCP prompt surface of the PDF reader
// server. Each prompt composes an instructional message from the text of an
// already-open session; composition never extracts images or mutates the
// session, so repeated prompt requests are side-effect free.
package prompts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// resolveSession maps the pdf_id prompt argument to an open session.
func resolveSession(req *mcp.GetPromptRequest, reg *session.Registry) (*session.Session, error) {
	args := req.Params.Arguments
	pdfID, ok := args["pdf_id"]
	if !ok {
		return nil, models.InvalidArgumentf("Missing required PDF ID argument")
	}
	s, found := reg.Get(pdfID)
	if !found {
		return nil, models.InvalidArgumentf("PDF not found: %s", pdfID)
	}
	return s, nil
}

// pageContent renders the inclusive page range as the prompt templates
// expect it: one marked block per page that has text, empty pages skipped.
func pageContent(s *session.Session, startPage, endPage int) string {
	total := s.PageCount()
	var b strings.Builder
	for p := startPage; p <= endPage; p++ {
		raw, err := s.PageText(p)
		if err != nil || raw == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- PAGE %d/%d ---\n%s\n", p+1, total, pdf.CleanText(raw))
	}
	return b.String()
}

// imageSection formats a list of extracted image files under a heading, or
// returns "" when there are none.
func imageSection(heading string, paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = "- " + filepath.Base(p)
	}
	return "\n\n" + heading + "\n" + strings.Join(names, "\n")
}

func userMessage(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}
