package prompts

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
)

func SummarizePDFPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "summarize-pdf",
		Description: "Creates a summary of a PDF document",
		Arguments: []*mcp.PromptArgument{
			{Name: "pdf_id", Description: "The ID of the PDF to summarize", Required: true},
			{Name: "style", Description: "Style of the summary (brief/detailed)"},
		},
	}
}

func SummarizePDFPromptHandler(ctx context.Context, req *mcp.GetPromptRequest, reg *session.Registry, log logger.Logger) (*mcp.GetPromptResult, error) {
	log.Info("summarize-pdf prompt called")
	s, err := resolveSession(req, reg)
	if err != nil {
		log.Error("summarize-pdf prompt failed: %v", err)
		return nil, err
	}

	style := req.Params.Arguments["style"]
	if style == "" {
		style = "brief"
	}
	detailPrompt := ""
	if style == "detailed" {
		detailPrompt = " Give extensive details."
	}

	total := s.PageCount()
	text := fmt.Sprintf(
		"# PDF Analysis Task\n\n"+
			"You are an expert document analyst specializing in PDF analysis and summarization. "+
			"Your task is to provide a clear, accurate, and well-structured %s summary of this PDF document titled '%s' (%d pages).%s"+
			"%s\n\n"+
			"Document Content:\n%s\n\n"+
			"Based on the content above, please provide:\n"+
			"1. A concise overview of what this document is about\n"+
			"2. The main points or arguments presented\n"+
			"3. Any key findings, conclusions, or recommendations\n"+
			"4. The structure and organization of the document",
		style, s.BaseName(), total, detailPrompt,
		pdf.MetadataBlock(s.Metadata()),
		pageContent(s, 0, total-1),
	)

	return userMessage(fmt.Sprintf("Summarize PDF: %s", s.BaseName()), text), nil
}
