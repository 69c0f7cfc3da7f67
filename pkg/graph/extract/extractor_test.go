package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// stubStrategy emits one candidate per sentence, tagged with its own name,
// and optionally panics on a chosen sentence.
type stubStrategy struct {
	name    string
	panicOn string
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Extract(sentence nlp.Sentence, _ *nlp.Entities) []graph.Candidate {
	if s.panicOn != "" && sentence.Text == s.panicOn {
		panic("strategy failure")
	}
	return []graph.Candidate{{Source: s.name, Relation: "SAW", Target: sentence.Text}}
}

func TestExtractorOrdersBySentenceThenStrategy(t *testing.T) {
	e := NewExtractor(&stubStrategy{name: "first"}, &stubStrategy{name: "second"})
	sentences := []nlp.Sentence{{Text: "one"}, {Text: "two"}}

	got := e.Extract(sentences, nlp.NewEntities())
	require.Len(t, got, 4)

	want := []struct{ source, target string }{
		{"first", "one"},
		{"second", "one"},
		{"first", "two"},
		{"second", "two"},
	}
	for i, w := range want {
		assert.Equal(t, w.source, got[i].Source)
		assert.Equal(t, w.target, got[i].Target)
	}
}

func TestExtractorAbandonsPanickingSentence(t *testing.T) {
	e := NewExtractor(
		&stubStrategy{name: "first"},
		&stubStrategy{name: "second", panicOn: "two"},
	)
	sentences := []nlp.Sentence{{Text: "one"}, {Text: "two"}, {Text: "three"}}

	got := e.Extract(sentences, nlp.NewEntities())
	require.Len(t, got, 4)
	for _, c := range got {
		assert.NotEqual(t, "two", c.Target, "the failed sentence contributes nothing")
	}
}

func TestExtractorDefaultStrategies(t *testing.T) {
	e := NewExtractor()
	require.Len(t, e.strategies, 3)
	assert.Equal(t, "lexical", e.strategies[0].Name())
	assert.Equal(t, "verb", e.strategies[1].Name())
	assert.Equal(t, "preposition", e.strategies[2].Name())
}
