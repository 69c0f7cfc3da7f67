package extract

import (
	"strings"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// verbPrepRelations names the link when the preposition hangs off a verb:
// "works at Acme" is employment, "reports to Bob" is hierarchy.
var verbPrepRelations = map[string]string{
	"at":    "WORKS_AT",
	"for":   "WORKS_FOR",
	"with":  "COLLABORATES_WITH",
	"under": "REPORTS_TO",
	"to":    "REPORTS_TO",
}

// nounPrepRelations names the link when the preposition modifies a noun:
// "the office in Lahore" is location, "head of Sales" is containment.
var nounPrepRelations = map[string]string{
	"at":   "LOCATED_AT",
	"in":   "LOCATED_IN",
	"of":   "PART_OF",
	"with": "ASSOCIATED_WITH",
	"from": "FROM",
}

// PrepositionStrategy links the phrase a preposition attaches to with the
// phrase it governs. Both phrases must name known entities; anything looser
// floods the graph with noise.
type PrepositionStrategy struct{}

func NewPrepositionStrategy() *PrepositionStrategy { return &PrepositionStrategy{} }

func (s *PrepositionStrategy) Name() string { return "preposition" }

func (s *PrepositionStrategy) Extract(sentence nlp.Sentence, entities *nlp.Entities) []graph.Candidate {
	var out []graph.Candidate
	for i, tok := range sentence.Tokens {
		if tok.Dep != nlp.DepPreposition || tok.Head < 0 {
			continue
		}
		pobj := prepObject(sentence.Tokens, i)
		if pobj < 0 {
			continue
		}

		headText := sentence.NounPhrase(tok.Head)
		objText := sentence.NounPhrase(pobj)
		if !entities.Has(headText) || !entities.Has(objText) {
			continue
		}
		if strings.EqualFold(headText, objText) {
			continue
		}

		out = append(out, graph.Candidate{
			Source:     headText,
			Relation:   prepositionRelation(tok.Text, sentence.Tokens[tok.Head].Tag),
			Target:     objText,
			Sentence:   sentence.Text,
			SourceType: entityType(entities, headText),
			TargetType: entityType(entities, objText),
		})
	}
	return out
}

func prepObject(tokens []nlp.Token, prep int) int {
	for j := range tokens {
		if tokens[j].Dep == nlp.DepPrepObject && tokens[j].Head == prep {
			return j
		}
	}
	return -1
}

func prepositionRelation(prep, headTag string) string {
	p := strings.ToLower(prep)
	table := nounPrepRelations
	if strings.HasPrefix(headTag, "VB") || headTag == "MD" {
		table = verbPrepRelations
	}
	if rel, ok := table[p]; ok {
		return rel
	}
	return "RELATED_VIA_" + strings.ToUpper(p)
}
