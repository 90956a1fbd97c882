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

type ClosePDFQuery struct {
	PDFID string `json:"pdf_id" jsonschema:"ID of the PDF to close"`
}

type ClosePDFResponse struct {
	PDFID string `json:"pdf_id"`
	Path  string `json:"path"`
}

func ClosePDFTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ClosePDFQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "close-pdf",
		Description: "Close an open PDF file",
		InputSchema: inputschema,
	}
}

func ClosePDFToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ClosePDFQuery, reg *session.Registry, log logger.Logger) (*mcp.CallToolResult, *ClosePDFResponse, error) {
	log.Info("close-pdf tool called")
	if query.PDFID == "" {
		return nil, nil, models.InvalidArgumentf("Invalid PDF ID")
	}

	s, err := reg.Close(query.PDFID)
	if err != nil {
		log.Error("close-pdf tool failed: %v", err)
		return nil, nil, models.InvalidArgumentf("Invalid PDF ID")
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Closed PDF '%s'", s.BaseName()),
			},
		},
	}
	response := &ClosePDFResponse{
		PDFID: s.ID(),
		Path:  s.Path(),
	}
	return result, response, nil
}
