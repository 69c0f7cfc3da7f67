package prompts

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeGraphHandler(t *testing.T) {
	var request mcp.GetPromptRequest
	request.Params.Arguments = map[string]string{"document_path": "/data/report.txt"}

	result, err := analyzeGraphHandler(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, "Knowledge graph analysis for /data/report.txt", result.Description)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)

	text, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "graph_generate on /data/report.txt")
	assert.Contains(t, text.Text, "graph_stats")
}
