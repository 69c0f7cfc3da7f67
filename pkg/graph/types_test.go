package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelationshipTable(t *testing.T) {
	rel := &Table{Columns: []string{ColSource, ColRelationship, ColTarget, ColSentence}}
	assert.True(t, rel.IsRelationshipTable())

	structured := &Table{Columns: []string{"name", "owner", ColSource}}
	assert.False(t, structured.IsRelationshipTable())

	assert.False(t, (&Table{}).IsRelationshipTable())
}

func TestHasColumn(t *testing.T) {
	table := &Table{Columns: []string{"name", "owner"}}
	assert.True(t, table.HasColumn("owner"))
	assert.False(t, table.HasColumn("tier"))
}

func TestMissingValues(t *testing.T) {
	table := &Table{
		Columns: []string{"a", "b", "c"},
		Rows: []map[string]interface{}{
			{"a": "x", "b": nil, "c": "y"},
			{"a": "x"},
		},
	}
	assert.Equal(t, 3, table.MissingValues(), "nil cells and absent keys both count")
}

func TestRelationshipTable(t *testing.T) {
	table := RelationshipTable([]Record{
		{
			Source:     "Alice",
			Relation:   "WORKS_AT",
			Target:     "Acme",
			Sentence:   "Alice works at Acme.",
			SourceType: "Person",
			TargetType: "Organization",
			Confidence: ConfidenceHigh,
		},
	})

	assert.Equal(t, []string{
		ColSource, ColRelationship, ColTarget, ColSentence,
		ColSourceType, ColTargetType, ColConfidence,
	}, table.Columns)
	assert.True(t, table.IsRelationshipTable())

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Alice", table.Rows[0][ColSource])
	assert.Equal(t, "WORKS_AT", table.Rows[0][ColRelationship])
	assert.Equal(t, "Acme", table.Rows[0][ColTarget])
	assert.Equal(t, ConfidenceHigh, table.Rows[0][ColConfidence])
}

func TestInputFile(t *testing.T) {
	f := &InputFile{Name: "dir/Report.TXT", Data: make([]byte, 1<<20)}
	assert.Equal(t, ".txt", f.Ext())
	assert.Equal(t, "Report", f.Stem())
	assert.InDelta(t, 1.0, f.SizeMB(), 0.001)

	bare := &InputFile{Name: "README"}
	assert.Equal(t, "", bare.Ext())
	assert.Equal(t, "README", bare.Stem())
}
