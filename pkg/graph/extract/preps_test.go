package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

func TestPrepositionStrategyNounHead(t *testing.T) {
	text := "Acme Corp in Lahore"
	s := annotated(text,
		[]tok{
			{"Acme", "NNP", "compound", 1},
			{"Corp", "NNP", "", -1},
			{"in", "IN", nlp.DepPreposition, 1},
			{"Lahore", "NNP", nlp.DepPrepObject, 2},
		},
		[]nlp.Phrase{
			{Start: 0, End: 2, Head: 1, Text: "Acme Corp"},
			{Start: 3, End: 4, Head: 3, Text: "Lahore"},
		},
		nil,
	)
	entities := nlp.NewEntities()
	entities.Add("Acme Corp", "ORG")
	entities.Add("Lahore", "GPE")

	got := NewPrepositionStrategy().Extract(s, entities)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Source)
	assert.Equal(t, "LOCATED_IN", got[0].Relation)
	assert.Equal(t, "Lahore", got[0].Target)
	assert.Equal(t, "ORG", got[0].SourceType)
	assert.Equal(t, "GPE", got[0].TargetType)
	assert.Empty(t, got[0].Confidence)
}

func TestPrepositionStrategyRequiresKnownEntities(t *testing.T) {
	text := "Acme Corp in Lahore"
	s := annotated(text,
		[]tok{
			{"Acme", "NNP", "compound", 1},
			{"Corp", "NNP", "", -1},
			{"in", "IN", nlp.DepPreposition, 1},
			{"Lahore", "NNP", nlp.DepPrepObject, 2},
		},
		[]nlp.Phrase{
			{Start: 0, End: 2, Head: 1, Text: "Acme Corp"},
			{Start: 3, End: 4, Head: 3, Text: "Lahore"},
		},
		nil,
	)
	entities := nlp.NewEntities()
	entities.Add("Acme Corp", "ORG")

	assert.Empty(t, NewPrepositionStrategy().Extract(s, entities))
}

func TestPrepositionStrategyVerbAttachmentNeverNamesAnEntity(t *testing.T) {
	// when the preposition hangs off a verb, the head text is the verb
	// itself, which no registry contains
	text := "Bob works at Acme Corp"
	s := annotated(text,
		[]tok{
			{"Bob", "NNP", nlp.DepSubject, 1},
			{"works", "VBZ", nlp.DepRoot, -1},
			{"at", "IN", nlp.DepPreposition, 1},
			{"Acme", "NNP", "compound", 4},
			{"Corp", "NNP", nlp.DepPrepObject, 2},
		},
		[]nlp.Phrase{
			{Start: 0, End: 1, Head: 0, Text: "Bob"},
			{Start: 3, End: 5, Head: 4, Text: "Acme Corp"},
		},
		nil,
	)
	entities := nlp.NewEntities()
	entities.Add("Bob", "PERSON")
	entities.Add("Acme Corp", "ORG")

	assert.Empty(t, NewPrepositionStrategy().Extract(s, entities))
}

func TestPrepositionStrategySkipsSameEndpoints(t *testing.T) {
	text := "Acme of acme"
	s := annotated(text,
		[]tok{
			{"Acme", "NNP", "", -1},
			{"of", "IN", nlp.DepPreposition, 0},
			{"acme", "NN", nlp.DepPrepObject, 1},
		},
		[]nlp.Phrase{
			{Start: 0, End: 1, Head: 0, Text: "Acme"},
			{Start: 2, End: 3, Head: 2, Text: "acme"},
		},
		nil,
	)
	entities := nlp.NewEntities()
	entities.Add("Acme", "ORG")
	entities.Add("acme", "ORG")

	assert.Empty(t, NewPrepositionStrategy().Extract(s, entities))
}

func TestPrepositionRelationTables(t *testing.T) {
	tests := []struct {
		prep    string
		headTag string
		want    string
	}{
		{"at", "VBZ", "WORKS_AT"},
		{"for", "VBD", "WORKS_FOR"},
		{"with", "VBG", "COLLABORATES_WITH"},
		{"under", "VB", "REPORTS_TO"},
		{"to", "MD", "REPORTS_TO"},
		{"at", "NN", "LOCATED_AT"},
		{"in", "NNP", "LOCATED_IN"},
		{"of", "NN", "PART_OF"},
		{"with", "NNS", "ASSOCIATED_WITH"},
		{"from", "NN", "FROM"},
		{"beside", "NN", "RELATED_VIA_BESIDE"},
		{"Via", "VBZ", "RELATED_VIA_VIA"},
	}
	for _, tt := range tests {
		t.Run(tt.prep+"_"+tt.headTag, func(t *testing.T) {
			assert.Equal(t, tt.want, prepositionRelation(tt.prep, tt.headTag))
		})
	}
}
