package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

type OpenPDFQuery struct {
	Path string `json:"path" jsonschema:"Path to the PDF file"`
}

type OpenPDFResponse struct {
	PDFID     string `json:"pdf_id"`
	Path      string `json:"path"`
	PageCount int    `json:"page_count"`
}

func OpenPDFTool() *mcp.Tool {
	inputschema, err := jsonschema.For[OpenPDFQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "open-pdf",
		Description: "Open a PDF file",
		InputSchema: inputschema,
	}
}

func OpenPDFToolHandler(ctx context.Context, req *mcp.CallToolRequest, query OpenPDFQuery, reg *session.Registry, log logger.Logger) (*mcp.CallToolResult, *OpenPDFResponse, error) {
	log.Info("open-pdf tool called")
	if query.Path == "" {
		return nil, nil, models.InvalidArgumentf("Missing path")
	}

	s, err := reg.Open(query.Path)
	if err != nil {
		log.Error("open-pdf tool failed: %v", err)
		return nil, nil, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Opened PDF '%s' with %d pages. PDF ID: %s", s.BaseName(), s.PageCount(), s.ID()),
			},
		},
	}
	response := &OpenPDFResponse{
		PDFID:     s.ID(),
		Path:      s.Path(),
		PageCount: s.PageCount(),
	}
	return result, response, nil
}
