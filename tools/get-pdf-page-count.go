package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
)

type GetPDFPageCountQuery struct {
	PDFID string `json:"pdf_id" jsonschema:"ID of the PDF to get page count for"`
}

type GetPDFPageCountResponse struct {
	PDFID     string `json:"pdf_id"`
	PageCount int    `json:"page_count"`
}

func GetPDFPageCountTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetPDFPageCountQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get-pdf-page-count",
		Description: "Get the page count of a PDF",
		InputSchema: inputschema,
	}
}

func GetPDFPageCountToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetPDFPageCountQuery, reg *session.Registry, log logger.Logger) (*mcp.CallToolResult, *GetPDFPageCountResponse, error) {
	log.Info("get-pdf-page-count tool called")
	s, err := lookupSession(reg, query.PDFID)
	if err != nil {
		log.Error("get-pdf-page-count tool failed: %v", err)
		return nil, nil, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("'%s' has %d pages", s.BaseName(), s.PageCount()),
			},
		},
	}
	response := &GetPDFPageCountResponse{
		PDFID:     s.ID(),
		PageCount: s.PageCount(),
	}
	return result, response, nil
}
