package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
)

type PDFToTextQuery struct {
	PDFID              string `json:"pdf_id" jsonschema:"ID of the PDF to extract text from"`
	IncludePageNumbers *bool  `json:"include_page_numbers,omitempty" jsonschema:"Whether to include page number markers in the output"`
	StartPage          *int   `json:"start_page,omitempty" jsonschema:"Start page number (0-based, inclusive)"`
	EndPage            *int   `json:"end_page,omitempty" jsonschema:"End page number (0-based, inclusive)"`
}

type PDFToTextResponse struct {
	PDFID     string `json:"pdf_id"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
	Text      string `json:"text"`
}

func PDFToTextTool() *mcp.Tool {
	inputschema, err := jsonschema.For[PDFToTextQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "pdf-to-text",
		Description: "Extract all text from a PDF document",
		InputSchema: inputschema,
	}
}

func PDFToTextToolHandler(ctx context.Context, req *mcp.CallToolRequest, query PDFToTextQuery, reg *session.Registry, log logger.Logger) (*mcp.CallToolResult, *PDFToTextResponse, error) {
	log.Info("pdf-to-text tool called")
	s, err := lookupSession(reg, query.PDFID)
	if err != nil {
		log.Error("pdf-to-text tool failed: %v", err)
		return nil, nil, err
	}

	total := s.PageCount()
	includeMarkers := true
	if query.IncludePageNumbers != nil {
		includeMarkers = *query.IncludePageNumbers
	}
	startPage := 0
	if query.StartPage != nil {
		startPage = *query.StartPage
	}
	endPage := total - 1
	if query.EndPage != nil {
		endPage = *query.EndPage
	}

	fullText, start, end, err := s.FullText(includeMarkers, startPage, endPage)
	if err != nil {
		log.Error("pdf-to-text tool failed: %v", err)
		return nil, nil, err
	}

	var rangeDesc string
	switch {
	case start == 0 && end == total-1:
		rangeDesc = fmt.Sprintf("all pages (1-%d)", total)
	case start == end:
		rangeDesc = fmt.Sprintf("page %d", start+1)
	default:
		rangeDesc = fmt.Sprintf("pages %d-%d", start+1, end+1)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Text extracted from %s of '%s'%s\n\n%s",
					rangeDesc, s.BaseName(), pdf.MetadataBlock(s.Metadata()), fullText),
			},
		},
	}
	response := &PDFToTextResponse{
		PDFID:     s.ID(),
		StartPage: start,
		EndPage:   end,
		Text:      fullText,
	}
	return result, response, nil
}
