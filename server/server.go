package server

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/session"
	"github.com/Epistemic-Technology/pdf-reader-mcp/prompts"
	"github.com/Epistemic-Technology/pdf-reader-mcp/resources"
	"github.com/Epistemic-Technology/pdf-reader-mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func CreateServer(log logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "pdf-reader-mcp", Version: "v0.1.1"}, nil)

	reg, err := initializeRegistry(log)
	if err != nil {
		log.Fatal("Failed to initialize session registry: %v", err)
	}

	withImages := imagesEnabled()
	if !withImages {
		log.Info("Image extraction is disabled")
	}

	pdfResourceHandler := resources.NewPDFResourceHandler(reg)

	// Every open session is published as a pdf:// resource; the listener
	// keeps the server's resource list in step with the registry.
	reg.SetListener(&resourceListener{server: server, handler: pdfResourceHandler})

	// Register tools with registry and logger dependencies
	mcp.AddTool(server, tools.OpenPDFTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.OpenPDFQuery) (*mcp.CallToolResult, *tools.OpenPDFResponse, error) {
		return tools.OpenPDFToolHandler(ctx, req, query, reg, log)
	})

	mcp.AddTool(server, tools.ClosePDFTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ClosePDFQuery) (*mcp.CallToolResult, *tools.ClosePDFResponse, error) {
		return tools.ClosePDFToolHandler(ctx, req, query, reg, log)
	})

	mcp.AddTool(server, tools.ListPDFMetadataTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ListPDFMetadataQuery) (*mcp.CallToolResult, *tools.ListPDFMetadataResponse, error) {
		return tools.ListPDFMetadataToolHandler(ctx, req, query, reg, log)
	})

	mcp.AddTool(server, tools.GetPDFPageCountTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetPDFPageCountQuery) (*mcp.CallToolResult, *tools.GetPDFPageCountResponse, error) {
		return tools.GetPDFPageCountToolHandler(ctx, req, query, reg, log)
	})

	mcp.AddTool(server, tools.GetPDFPageTextTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.GetPDFPageTextQuery) (*mcp.CallToolResult, *tools.GetPDFPageTextResponse, error) {
		return tools.GetPDFPageTextToolHandler(ctx, req, query, reg, withImages, log)
	})

	mcp.AddTool(server, tools.PDFToTextTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.PDFToTextQuery) (*mcp.CallToolResult, *tools.PDFToTextResponse, error) {
		return tools.PDFToTextToolHandler(ctx, req, query, reg, log)
	})

	if withImages {
		mcp.AddTool(server, tools.ExtractImagesTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ExtractImagesQuery) (*mcp.CallToolResult, *tools.ExtractImagesResponse, error) {
			return tools.ExtractImagesToolHandler(ctx, req, query, reg, log)
		})
	}

	server.AddPrompt(prompts.SummarizePDFPrompt(), func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return prompts.SummarizePDFPromptHandler(ctx, req, reg, log)
	})

	server.AddPrompt(prompts.ExtractTextFromPDFPrompt(), func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return prompts.ExtractTextFromPDFPromptHandler(ctx, req, reg, log)
	})

	server.AddPrompt(prompts.AnalyzePDFPrompt(), func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return prompts.AnalyzePDFPromptHandler(ctx, req, reg, log)
	})

	return server
}

// resourceListener mirrors session registry changes into the server's
// resource list. AddResource and RemoveResources make the SDK notify
// subscribed clients that the list of resources changed.
type resourceListener struct {
	server  *mcp.Server
	handler *resources.PDFResourceHandler
}

func (l *resourceListener) SessionOpened(s *session.Session) {
	l.server.AddResource(resources.BuildResource(s), func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return l.handler.ReadResource(ctx, req.Params.URI)
	})
}

func (l *resourceListener) SessionClosed(s *session.Session) {
	l.server.RemoveResources("pdf://" + s.ID())
}

// initializeRegistry creates the session registry backed by the directory
// that holds per-session extracted images.
func initializeRegistry(log logger.Logger) (*session.Registry, error) {
	// Determine the image temp root
	tempRoot := os.Getenv("PDF_READER_TEMP_DIR")
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	if err := os.MkdirAll(tempRoot, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	log.Info("Storing extracted images under: %s", tempRoot)

	return session.NewRegistry(tempRoot, log), nil
}

// imagesEnabled reports whether the image extraction capability is exposed.
// PDF_READER_DISABLE_IMAGES=true (or 1) turns it off; unset or unparseable
// values leave it on.
func imagesEnabled() bool {
	v := os.Getenv("PDF_READER_DISABLE_IMAGES")
	if v == "" {
		return true
	}
	disabled, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return !disabled
}
