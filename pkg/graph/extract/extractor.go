// Package extract turns annotated sentences into relationship candidates.
// Three strategies run over every sentence: lexical templates anchored on
// known entity names, verb-mediated subject/object pairs, and prepositional
// links between entities. Their combined output is raw; reconciliation
// dedupes and filters it afterwards.
package extract

import (
	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/metrics"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// Strategy produces relationship candidates from one annotated sentence,
// consulting the document-wide entity registry.
type Strategy interface {
	Name() string
	Extract(sentence nlp.Sentence, entities *nlp.Entities) []graph.Candidate
}

// Extractor runs a fixed set of strategies over every sentence of a
// document. A panic inside any strategy abandons that sentence and moves on;
// one malformed sentence must not sink the document.
type Extractor struct {
	strategies []Strategy
	logger     *logrus.Logger
}

func NewExtractor(strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = []Strategy{
			NewLexicalStrategy(),
			NewVerbStrategy(),
			NewPrepositionStrategy(),
		}
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &Extractor{strategies: strategies, logger: logger}
}

// Extract collects the candidates of every strategy for every sentence, in
// sentence order then strategy order.
func (e *Extractor) Extract(sentences []nlp.Sentence, entities *nlp.Entities) []graph.Candidate {
	var out []graph.Candidate
	for i := range sentences {
		out = append(out, e.extractSentence(sentences[i], entities)...)
	}
	return out
}

func (e *Extractor) extractSentence(sentence nlp.Sentence, entities *nlp.Entities) (candidates []graph.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(logrus.Fields{
				"sentence": sentence.Text,
				"panic":    r,
			}).Warn("Skipping sentence after extraction failure")
			candidates = nil
		}
	}()

	for _, s := range e.strategies {
		found := s.Extract(sentence, entities)
		if len(found) > 0 {
			metrics.CandidatesExtracted.WithLabelValues(s.Name()).Add(float64(len(found)))
		}
		candidates = append(candidates, found...)
	}
	return candidates
}
