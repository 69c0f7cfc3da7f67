package processors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

func TestTextProcessor(t *testing.T) {
	annotator, err := nlp.NewAnnotator("")
	require.NoError(t, err)

	table, summary, err := NewTextProcessor(annotator).Process(context.Background(), graph.InputFile{
		Name: "report.txt",
		Data: []byte("Acme Corporation owns Beta Labs. Beta Labs produces software tools."),
	})
	require.NoError(t, err)

	assert.True(t, table.IsRelationshipTable())
	assert.Equal(t, "TXT", summary.FileType)
	assert.Equal(t, len(table.Rows), summary.Relationships)
	assert.GreaterOrEqual(t, summary.Entities, 2)
	assert.Contains(t, summary.Keywords, "acme")
	assert.Contains(t, summary.Keywords, "beta")

	var owns map[string]interface{}
	for _, row := range table.Rows {
		if row[graph.ColSource] == "Acme Corporation" &&
			row[graph.ColRelationship] == "OWNS" &&
			row[graph.ColTarget] == "Beta Labs" {
			owns = row
			break
		}
	}
	require.NotNil(t, owns, "the ownership statement must survive reconciliation")
	assert.Equal(t, graph.ConfidenceHigh, owns[graph.ColConfidence])
}
