package prompts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

func ExtractTextFromPDFPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "extract-text-from-pdf",
		Description: "Extract text from a specific page or range of a PDF",
		Arguments: []*mcp.PromptArgument{
			{Name: "pdf_id", Description: "The ID of the PDF to extract text from", Required: true},
			{Name: "page", Description: "Page number to extract (starts at 0)"},
			{Name: "start_page", Description: "Start page for range extraction (inclusive)"},
			{Name: "end_page", Description: "End page for range extraction (inclusive)"},
		},
	}
}

// ExtractTextFromPDFPromptHandler serves both forms of the prompt: a single
// page when the page argument is present, a validated inclusive range
// otherwise. Image file names are taken from the session's cache, so only
// pages whose images were already extracted list them.
func ExtractTextFromPDFPromptHandler(ctx context.Context, req *mcp.GetPromptRequest, reg *session.Registry, log logger.Logger) (*mcp.GetPromptResult, error) {
	log.Info("extract-text-from-pdf prompt called")
	s, err := resolveSession(req, reg)
	if err != nil {
		log.Error("extract-text-from-pdf prompt failed: %v", err)
		return nil, err
	}

	args := req.Params.Arguments
	total := s.PageCount()

	if pageRaw, hasPage := args["page"]; hasPage {
		page, err := strconv.Atoi(pageRaw)
		if err != nil {
			return nil, models.InvalidArgumentf("Invalid page number: %s", pageRaw)
		}
		if page < 0 || page >= total {
			return nil, models.InvalidArgumentf("Invalid page number: %d", page)
		}

		raw, err := s.PageText(page)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			raw = fmt.Sprintf("No text found on page %d", page)
		}

		text := fmt.Sprintf(
			"# PDF Text Extraction\n\n"+
				"Below is the text extracted from page %d (of %d) of the PDF document titled '%s'."+
				"%s\n\n"+
				"```\n%s\n```%s\n\n"+
				"Please work with this text to answer any questions, summarize, or analyze as needed.",
			page+1, total, s.BaseName(),
			pdf.MetadataBlock(s.Metadata()),
			pdf.CleanText(raw),
			imageSection("Images found on this page:", s.CachedImages(page)),
		)
		return userMessage(fmt.Sprintf("Text from page %d of %s", page+1, s.BaseName()), text), nil
	}

	startRaw, endRaw := args["start_page"], args["end_page"]
	if startRaw == "" {
		startRaw = "0"
	}
	if endRaw == "" {
		endRaw = strconv.Itoa(total - 1)
	}
	startPage, errStart := strconv.Atoi(startRaw)
	endPage, errEnd := strconv.Atoi(endRaw)
	if errStart != nil || errEnd != nil {
		return nil, models.InvalidArgumentf("Invalid page range: %s-%s", startRaw, endRaw)
	}
	if startPage < 0 || endPage >= total || startPage > endPage {
		return nil, models.InvalidArgumentf("Invalid page range: %d-%d", startPage, endPage)
	}

	var images []string
	for p := startPage; p <= endPage; p++ {
		images = append(images, s.CachedImages(p)...)
	}

	text := fmt.Sprintf(
		"# PDF Text Extraction\n\n"+
			"Below is the text extracted from pages %d-%d (of %d) of the PDF document titled '%s'."+
			"%s\n\n"+
			"```\n%s\n```%s\n\n"+
			"Please work with this text to answer any questions, summarize, or analyze as needed.",
		startPage+1, endPage+1, total, s.BaseName(),
		pdf.MetadataBlock(s.Metadata()),
		pageContent(s, startPage, endPage),
		imageSection("Images found in this range:", images),
	)
	return userMessage(fmt.Sprintf("Text from pages %d-%d of %s", startPage+1, endPage+1, s.BaseName()), text), nil
}
