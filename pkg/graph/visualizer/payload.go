// Package visualizer reads the materialized graph back out of the database
// and prepares it for display: colored nodes and edges as a JSON payload,
// plus a self-contained HTML rendering.
package visualizer

import (
	"github.com/pkg/errors"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/storage"
)

// nodeColors assigns each node type its display color. Types outside the
// table render gray.
var nodeColors = map[string]string{
	"Person":       "#FF6B6B",
	"Organization": "#4ECDC4",
	"Location":     "#45B7D1",
	"Date":         "#FFA07A",
	"Product":      "#98D8C8",
	"Event":        "#F7DC6F",
	"Entity":       "#95A5A6",
	"App":          "#9B59B6",
}

const defaultNodeColor = "#95A5A6"

// edgeColors assigns the common relationship types their display color.
var edgeColors = map[string]string{
	"OWNS":              "#E74C3C",
	"FOUNDED":           "#8E44AD",
	"WORKS_AT":          "#3498DB",
	"MANAGES":           "#E67E22",
	"REPORTS_TO":        "#16A085",
	"COLLABORATES_WITH": "#27AE60",
	"HIRED":             "#2ECC71",
	"LOCATED_IN":        "#3498DB",
}

const defaultEdgeColor = "#7F8C8D"

// edgeWidths scales edge thickness by extraction confidence.
var edgeWidths = map[string]int{
	graph.ConfidenceHigh:   3,
	graph.ConfidenceMedium: 2,
	graph.ConfidenceLow:    1,
}

const defaultEdgeWidth = 2

// Node is one displayable node. ID doubles as the display label; names are
// what the graph merges on.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

// Edge is one displayable relationship. Source and Target reference node
// IDs, which is what the renderer's link force expects.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Color  string `json:"color"`
	Width  int    `json:"width"`
}

// Payload is a complete colored rendering of one graph.
type Payload struct {
	GraphName string `json:"graph_name,omitempty"`
	Nodes     []Node `json:"nodes"`
	Edges     []Edge `json:"edges"`
}

// Builder turns the current database contents into a payload.
type Builder struct {
	runner storage.Runner
}

func NewBuilder(runner storage.Runner) *Builder {
	return &Builder{runner: runner}
}

// Build reads every node and relationship and colors them. The stored type
// property wins over the label; nodes materialized through the Entity
// fallback still display as their intended type.
func (b *Builder) Build(graphName string) (*Payload, error) {
	payload := &Payload{GraphName: graphName}

	rows, err := b.runner.Run(`
		MATCH (n)
		RETURN DISTINCT n.name AS name,
			   labels(n)[0] AS type,
			   n.type AS stored_type
	`, nil)
	if err != nil {
		return nil, errors.Wrap(err, "reading nodes")
	}
	for _, row := range rows {
		name, ok := row["name"].(string)
		if !ok || name == "" {
			continue
		}
		nodeType := stringOr(row["stored_type"], stringOr(row["type"], "Entity"))
		payload.Nodes = append(payload.Nodes, Node{
			ID:    name,
			Label: name,
			Type:  nodeType,
			Title: nodeType + ": " + name,
			Color: colorFor(nodeColors, nodeType, defaultNodeColor),
			Size:  25,
		})
	}

	rows, err = b.runner.Run(`
		MATCH (n)-[r]->(m)
		RETURN n.name AS from,
			   m.name AS to,
			   type(r) AS rel,
			   r.confidence AS confidence
	`, nil)
	if err != nil {
		return nil, errors.Wrap(err, "reading relationships")
	}
	for _, row := range rows {
		from, ok := row["from"].(string)
		if !ok {
			continue
		}
		to, ok := row["to"].(string)
		if !ok {
			continue
		}
		rel := stringOr(row["rel"], "RELATED_TO")
		confidence := stringOr(row["confidence"], graph.ConfidenceMedium)

		width, ok := edgeWidths[confidence]
		if !ok {
			width = defaultEdgeWidth
		}
		payload.Edges = append(payload.Edges, Edge{
			Source: from,
			Target: to,
			Type:   rel,
			Label:  rel,
			Title:  rel,
			Color:  colorFor(edgeColors, rel, defaultEdgeColor),
			Width:  width,
		})
	}

	return payload, nil
}

func colorFor(palette map[string]string, key, fallback string) string {
	if c, ok := palette[key]; ok {
		return c
	}
	return fallback
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
