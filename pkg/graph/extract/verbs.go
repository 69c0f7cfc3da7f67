package extract

import (
	"strings"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// VerbStrategy reads each main verb as a relation between its subjects and
// its objects. The relation label is the verb's lemma; endpoints widen to
// their enclosing noun phrase and take the type of any entity span covering
// them. Candidates carry no confidence, the reconciler assigns the default.
type VerbStrategy struct{}

func NewVerbStrategy() *VerbStrategy { return &VerbStrategy{} }

func (s *VerbStrategy) Name() string { return "verb" }

func (s *VerbStrategy) Extract(sentence nlp.Sentence, entities *nlp.Entities) []graph.Candidate {
	var out []graph.Candidate
	for i, tok := range sentence.Tokens {
		if !isMainVerbToken(tok) {
			continue
		}
		subjects := sentence.Children(i, nlp.DepSubject, nlp.DepPassiveSubject)
		objects := sentence.Children(i, nlp.DepObject, nlp.DepPrepObject, nlp.DepAttribute)
		if len(subjects) == 0 || len(objects) == 0 {
			continue
		}

		relation := strings.ReplaceAll(strings.ToUpper(tok.Lemma), " ", "_")
		for _, subj := range subjects {
			for _, obj := range objects {
				out = append(out, graph.Candidate{
					Source:     sentence.NounPhrase(subj),
					Relation:   relation,
					Target:     sentence.NounPhrase(obj),
					Sentence:   sentence.Text,
					SourceType: sentence.TypeAt(subj),
					TargetType: sentence.TypeAt(obj),
				})
			}
		}
	}
	return out
}

// isMainVerbToken keeps verbs that head their group; auxiliaries carry the
// aux labels and are skipped.
func isMainVerbToken(tok nlp.Token) bool {
	if !strings.HasPrefix(tok.Tag, "VB") {
		return false
	}
	return tok.Dep != nlp.DepAux && tok.Dep != nlp.DepAuxPassive
}
