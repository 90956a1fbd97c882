package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

type ExtractImagesQuery struct {
	PDFID      string `json:"pdf_id" jsonschema:"ID of the PDF"`
	PageNumber *int   `json:"page_number" jsonschema:"Page number (0-based)"`
}

type ExtractImagesResponse struct {
	PDFID      string   `json:"pdf_id"`
	PageNumber int      `json:"page_number"`
	ImagePaths []string `json:"image_paths,omitempty"`
}

func ExtractImagesTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ExtractImagesQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "extract-images",
		Description: "Extract images from a PDF page",
		InputSchema: inputschema,
	}
}

func ExtractImagesToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ExtractImagesQuery, reg *session.Registry, log logger.Logger) (*mcp.CallToolResult, *ExtractImagesResponse, error) {
	log.Info("extract-images tool called")
	s, err := lookupSession(reg, query.PDFID)
	if err != nil {
		log.Error("extract-images tool failed: %v", err)
		return nil, nil, err
	}
	if query.PageNumber == nil {
		return nil, nil, models.InvalidArgumentf("Missing page number")
	}
	pageNumber := *query.PageNumber

	paths, err := s.ExtractImages(pageNumber)
	if err != nil {
		log.Error("extract-images tool failed: %v", err)
		return nil, nil, err
	}

	text := fmt.Sprintf("No images found on page %d", pageNumber)
	if len(paths) > 0 {
		names := make([]string, len(paths))
		for i, p := range paths {
			names[i] = "- " + filepath.Base(p)
		}
		text = fmt.Sprintf("Extracted %d image(s) from page %d:\n%s", len(paths), pageNumber, strings.Join(names, "\n"))
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
	response := &ExtractImagesResponse{
		PDFID:      s.ID(),
		PageNumber: pageNumber,
		ImagePaths: paths,
	}
	return result, response, nil
}
