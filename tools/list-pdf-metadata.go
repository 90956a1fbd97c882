package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
)

type ListPDFMetadataQuery struct {
	PDFID string `json:"pdf_id" jsonschema:"ID of the PDF to get metadata for"`
}

type ListPDFMetadataResponse struct {
	PDFID    string            `json:"pdf_id"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func ListPDFMetadataTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ListPDFMetadataQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "list-pdf-metadata",
		Description: "List metadata of an open PDF",
		InputSchema: inputschema,
	}
}

func ListPDFMetadataToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ListPDFMetadataQuery, reg *session.Registry, log logger.Logger) (*mcp.CallToolResult, *ListPDFMetadataResponse, error) {
	log.Info("list-pdf-metadata tool called")
	s, err := lookupSession(reg, query.PDFID)
	if err != nil {
		log.Error("list-pdf-metadata tool failed: %v", err)
		return nil, nil, err
	}

	md := s.Metadata()
	metadataText := "No metadata available"
	if lines := pdf.MetadataLines(md, ""); len(lines) > 0 {
		metadataText = strings.Join(lines, "\n")
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Metadata for '%s':\n\n%s", s.BaseName(), metadataText),
			},
		},
	}
	response := &ListPDFMetadataResponse{
		PDFID:    s.ID(),
		Metadata: md,
	}
	return result, response, nil
}
