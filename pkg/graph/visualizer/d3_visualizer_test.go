package visualizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "viz", "graph.html")
	payload := &Payload{
		GraphName: "Acme Graph",
		Nodes: []Node{
			{ID: "Alice", Label: "Alice", Type: "Person", Title: "Person: Alice", Color: "#FF6B6B", Size: 25},
			{ID: "Acme", Label: "Acme", Type: "Organization", Title: "Organization: Acme", Color: "#4ECDC4", Size: 25},
		},
		Edges: []Edge{
			{Source: "Alice", Target: "Acme", Type: "WORKS_AT", Label: "WORKS_AT", Title: "WORKS_AT", Color: "#3498DB", Width: 3},
		},
	}

	require.NoError(t, NewD3Visualizer(out).Visualize(payload))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Acme Graph</title>")
	assert.Contains(t, html, "Nodes: 2, Edges: 1")
	assert.Contains(t, html, "const graphData = {")
	assert.Contains(t, html, `"id":"Alice"`, "payload JSON must be embedded unescaped")
}

func TestVisualizeDefaultTitle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.html")

	require.NoError(t, NewD3Visualizer(out).Visualize(&Payload{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Knowledge Graph</title>")
}
