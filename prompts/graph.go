package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func RegisterGraphPrompts(s *server.MCPServer) {
	prompt := mcp.NewPrompt("analyze_graph",
		mcp.WithPromptDescription("Summarize the knowledge graph built from a document"),
		mcp.WithArgument("document_path", mcp.ArgumentDescription("Path of the document to build the graph from")),
	)
	s.AddPrompt(prompt, adaptPromptHandler(analyzeGraphHandler))
}

// adaptPromptHandler lifts a context-style prompt handler to the bare-arguments
// shape the pinned mcp-go server expects, mirroring util.AdaptLegacyHandler.
func adaptPromptHandler(handler func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)) server.PromptHandlerFunc {
	return func(arguments map[string]string) (*mcp.GetPromptResult, error) {
		var request mcp.GetPromptRequest
		request.Params.Arguments = arguments
		return handler(context.Background(), request)
	}
}

func analyzeGraphHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	documentPath := request.Params.Arguments["document_path"]

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Knowledge graph analysis for %s", documentPath),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Use graph_generate on %s, then graph_stats. Summarize the entities found, the dominant relationship types, and anything unusual in the node type distribution.", documentPath),
				},
			},
		},
	}, nil
}
