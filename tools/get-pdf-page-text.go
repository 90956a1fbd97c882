package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

type GetPDFPageTextQuery struct {
	PDFID      string `json:"pdf_id" jsonschema:"ID of the PDF to get page text from"`
	PageNumber *int   `json:"page_number" jsonschema:"Page number (0-based index)"`
}

type GetPDFPageTextResponse struct {
	PDFID      string   `json:"pdf_id"`
	PageNumber int      `json:"page_number"`
	Text       string   `json:"text"`
	ImagePaths []string `json:"image_paths,omitempty"`
}

func GetPDFPageTextTool() *mcp.Tool {
	inputschema, err := jsonschema.For[GetPDFPageTextQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "get-pdf-page-text",
		Description: "Get the text content of a specific page in a PDF",
		InputSchema: inputschema,
	}
}

// GetPDFPageTextToolHandler reads one page of text. With withImages set it
// also extracts the page's images and annotates the text with their count.
func GetPDFPageTextToolHandler(ctx context.Context, req *mcp.CallToolRequest, query GetPDFPageTextQuery, reg *session.Registry, withImages bool, log logger.Logger) (*mcp.CallToolResult, *GetPDFPageTextResponse, error) {
	log.Info("get-pdf-page-text tool called")
	s, err := lookupSession(reg, query.PDFID)
	if err != nil {
		log.Error("get-pdf-page-text tool failed: %v", err)
		return nil, nil, err
	}
	if query.PageNumber == nil {
		return nil, nil, models.InvalidArgumentf("Missing page number")
	}
	pageNumber := *query.PageNumber

	raw, err := s.PageText(pageNumber)
	if err != nil {
		log.Error("get-pdf-page-text tool failed: %v", err)
		return nil, nil, err
	}
	text := pdf.CleanText(raw)
	if text == "" {
		text = fmt.Sprintf("No extractable text found on page %d", pageNumber)
	}

	body := fmt.Sprintf("Text from page %d of '%s':\n\n%s", pageNumber, s.BaseName(), text)

	var imagePaths []string
	if withImages {
		imagePaths, err = s.ExtractImages(pageNumber)
		if err != nil {
			log.Error("get-pdf-page-text tool failed: %v", err)
			return nil, nil, err
		}
		body += fmt.Sprintf("\n\nImages on page: %d", len(imagePaths))
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: body},
		},
	}
	response := &GetPDFPageTextResponse{
		PDFID:      s.ID(),
		PageNumber: pageNumber,
		Text:       text,
		ImagePaths: imagePaths,
	}
	return result, response, nil
}
