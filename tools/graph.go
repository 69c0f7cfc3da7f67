package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/service"
	"github.com/Ahmed-lashari/Text2Graph/util"
)

// RegisterGraphTools registers the knowledge-graph tools. Handlers close over
// the service so the Neo4j connection is owned by main, not a global.
func RegisterGraphTools(s *server.MCPServer, svc *service.Service) {
	generateTool := mcp.NewTool("graph_generate",
		mcp.WithDescription("Process a document (txt, csv, json, html, pdf) into a knowledge graph. Extracts entities and relationships from text, or maps structured records to property nodes, then replaces the stored graph with the result"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the document to process (e.g. /data/report.txt)"),
		),
	)
	s.AddTool(generateTool, util.ErrorGuard(graphGenerateHandler(svc)))

	statsTool := mcp.NewTool("graph_stats",
		mcp.WithDescription("Get statistics about the stored knowledge graph: node and relationship totals, node type distribution, and the most common relationship types"),
	)
	s.AddTool(statsTool, util.ErrorGuard(graphStatsHandler(svc)))

	visualizeTool := mcp.NewTool("graph_visualize",
		mcp.WithDescription("Render the stored knowledge graph as a standalone interactive HTML page (D3 force layout)"),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path to write the HTML file to (e.g. /tmp/graph.html)"),
		),
		mcp.WithString("graph_name",
			mcp.Description("Title for the rendered graph; defaults to Knowledge_Graph"),
		),
	)
	s.AddTool(visualizeTool, util.ErrorGuard(graphVisualizeHandler(svc)))
}

func graphGenerateHandler(svc *service.Service) server.ToolHandlerFunc {
	return func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		filePath, ok := arguments["file_path"].(string)
		if !ok || filePath == "" {
			return mcp.NewToolResultError("file_path must be a non-empty string"), nil
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read file: %s", err)), nil
		}

		result := svc.ProcessAndCreateGraph(context.Background(), &graph.InputFile{
			Name: filepath.Base(filePath),
			Data: data,
		})
		if !result.Success {
			return mcp.NewToolResultError(result.Message), nil
		}

		response := result.Message + "\n\n"
		if result.Summary != nil {
			response += fmt.Sprintf("File type: %s\n", result.Summary.FileType)
			response += fmt.Sprintf("Rows: %d\n", result.Summary.Rows)
			if result.Summary.Entities > 0 {
				response += fmt.Sprintf("Entities: %d\n", result.Summary.Entities)
			}
			if result.Summary.Relationships > 0 {
				response += fmt.Sprintf("Relationships: %d\n", result.Summary.Relationships)
			}
			if len(result.Summary.Keywords) > 0 {
				response += fmt.Sprintf("Keywords: %s\n", strings.Join(result.Summary.Keywords, ", "))
			}
		}
		response += fmt.Sprintf("Run ID: %s", result.RunID)

		return mcp.NewToolResultText(response), nil
	}
}

func graphStatsHandler(svc *service.Service) server.ToolHandlerFunc {
	return func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		stats, err := svc.Stats()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read graph statistics: %s", err)), nil
		}

		response := "Knowledge graph statistics:\n"
		response += fmt.Sprintf("Nodes: %d\n", stats.Nodes)
		response += fmt.Sprintf("Relationships: %d\n", stats.Relationships)
		response += fmt.Sprintf("Node types: %d\n", stats.NodeTypes)

		if len(stats.NodeTypeDistribution) > 0 {
			response += "\nNode type distribution:\n"
			for _, line := range sortedCounts(stats.NodeTypeDistribution) {
				response += line
			}
		}
		if len(stats.TopRelationships) > 0 {
			response += "\nTop relationship types:\n"
			for _, line := range sortedCounts(stats.TopRelationships) {
				response += line
			}
		}

		return mcp.NewToolResultText(response), nil
	}
}

func graphVisualizeHandler(svc *service.Service) server.ToolHandlerFunc {
	return func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		outputPath, ok := arguments["output_path"].(string)
		if !ok || outputPath == "" {
			return mcp.NewToolResultError("output_path must be a non-empty string"), nil
		}

		graphName, _ := arguments["graph_name"].(string)
		if graphName == "" {
			graphName = "Knowledge_Graph"
		}

		payload, err := svc.Visualize(graphName, outputPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render visualization: %s", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Visualization saved to %s (%d nodes, %d edges)",
			outputPath, len(payload.Nodes), len(payload.Edges))), nil
	}
}

// sortedCounts renders a count map as "- name: n" lines, largest first.
func sortedCounts(counts map[string]int64) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("- %s: %d\n", name, counts[name]))
	}
	return lines
}
