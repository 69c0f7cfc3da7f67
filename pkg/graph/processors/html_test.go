package processors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

func TestHTMLProcessor(t *testing.T) {
	annotator, err := nlp.NewAnnotator("")
	require.NoError(t, err)

	page := `<!DOCTYPE html>
<html>
<head>
  <style>body { color: red; }</style>
  <script>console.log("Evil Corp owns Bad Inc.");</script>
</head>
<body>
  <h1>Company News</h1>
  <p>Acme Corporation owns Beta Labs.</p>
</body>
</html>`

	table, summary, err := NewHTMLProcessor(annotator).Process(context.Background(), graph.InputFile{
		Name: "news.html",
		Data: []byte(page),
	})
	require.NoError(t, err)

	assert.Equal(t, "HTML", summary.FileType)

	var sawOwns bool
	for _, row := range table.Rows {
		if row[graph.ColSource] == "Acme Corporation" && row[graph.ColRelationship] == "OWNS" {
			sawOwns = true
		}
		sentence, _ := row[graph.ColSentence].(string)
		assert.NotContains(t, sentence, "Evil Corp", "script content must not reach the pipeline")
	}
	assert.True(t, sawOwns)
}
