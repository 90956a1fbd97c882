package prompts

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

func AnalyzePDFPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "analyze-pdf",
		Description: "Analyze a PDF and answer questions about its content",
		Arguments: []*mcp.PromptArgument{
			{Name: "pdf_id", Description: "The ID of the PDF to analyze", Required: true},
			{Name: "question", Description: "The specific question to answer about the PDF content", Required: true},
			{Name: "page_range", Description: "Optional specific page range to focus on (format: '0-5')"},
		},
	}
}

func AnalyzePDFPromptHandler(ctx context.Context, req *mcp.GetPromptRequest, reg *session.Registry, log logger.Logger) (*mcp.GetPromptResult, error) {
	log.Info("analyze-pdf prompt called")
	s, err := resolveSession(req, reg)
	if err != nil {
		log.Error("analyze-pdf prompt failed: %v", err)
		return nil, err
	}

	args := req.Params.Arguments
	question := args["question"]
	if question == "" {
		return nil, models.InvalidArgumentf("Missing question for PDF analysis")
	}

	total := s.PageCount()
	startPage, endPage := 0, total-1

	// A focus range is either "a-b" or a single page number; bounds are
	// clamped into the document rather than rejected.
	if pageRange := args["page_range"]; pageRange != "" {
		parts := strings.Split(pageRange, "-")
		if len(parts) == 2 {
			a, errA := strconv.Atoi(parts[0])
			b, errB := strconv.Atoi(parts[1])
			if errA != nil || errB != nil {
				return nil, models.InvalidArgumentf("Invalid page range format: %s", pageRange)
			}
			startPage = max(0, a)
			endPage = min(total-1, b)
		} else {
			p, err := strconv.Atoi(pageRange)
			if err != nil {
				return nil, models.InvalidArgumentf("Invalid page range format: %s", pageRange)
			}
			startPage = min(total-1, max(0, p))
			endPage = startPage
		}
	}

	pagesDesc := fmt.Sprintf("pages %d-%d", startPage+1, endPage+1)
	if startPage == endPage {
		pagesDesc = fmt.Sprintf("page %d", startPage+1)
	}

	text := fmt.Sprintf(
		"# PDF Analysis Request\n\n"+
			"I need your help analyzing the following PDF document titled '%s' (%d total pages).\n"+
			"I'm specifically looking at %s."+
			"%s\n\n"+
			"## Question\n%s\n\n"+
			"## Document Content\n```\n%s\n```\n\n"+
			"Please analyze the document content carefully and provide a thorough and accurate answer to my question, "+
			"citing specific parts of the text where relevant.",
		s.BaseName(), total, pagesDesc,
		pdf.MetadataBlock(s.Metadata()),
		question,
		pageContent(s, startPage, endPage),
	)
	return userMessage(fmt.Sprintf("Analysis of %s (%s)", s.BaseName(), question), text), nil
}
