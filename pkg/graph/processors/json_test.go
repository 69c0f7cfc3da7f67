package processors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
)

func TestJSONProcessorArrayOfObjects(t *testing.T) {
	data := `[
		{"name": "billing", "meta": {"owner": "bob", "tier": 1}, "tags": ["go", "neo4j"]},
		{"name": "search", "meta": {"owner": "alice"}}
	]`

	table, summary, err := NewJSONProcessor().Process(context.Background(), graph.InputFile{
		Name: "apps.json",
		Data: []byte(data),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "meta_owner", "meta_tier", "tags"}, table.Columns,
		"columns follow document order with nested keys flattened")
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "billing", table.Rows[0]["name"])
	assert.Equal(t, "bob", table.Rows[0]["meta_owner"])
	assert.Equal(t, float64(1), table.Rows[0]["meta_tier"])
	assert.Equal(t, []interface{}{"go", "neo4j"}, table.Rows[0]["tags"])

	_, present := table.Rows[1]["tags"]
	assert.False(t, present, "absent keys stay absent rather than filling with zero values")

	assert.Equal(t, "JSON", summary.FileType)
	assert.Equal(t, 2, summary.MissingValues)
}

func TestJSONProcessorSingleObject(t *testing.T) {
	table, _, err := NewJSONProcessor().Process(context.Background(), graph.InputFile{
		Name: "app.json",
		Data: []byte(`{"name": "api", "port": null}`),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "port"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "api", table.Rows[0]["name"])
	assert.Nil(t, table.Rows[0]["port"])
}

func TestJSONProcessorRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", `{oops`, "invalid json"},
		{"scalar root", `42`, "unsupported json structure"},
		{"array of scalars", `[1, 2]`, "array elements must be objects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewJSONProcessor().Process(context.Background(), graph.InputFile{
				Name: "bad.json",
				Data: []byte(tt.data),
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
