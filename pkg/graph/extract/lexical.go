package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// lexicalPattern is a relation template with two slots, source then target.
// Slots receive regex-escaped entity names before compilation.
type lexicalPattern struct {
	relation string
	template string
}

// lexicalPatterns is the template catalog. Grouped by the kind of statement
// they recognize; several relations carry a second template for an alternate
// phrasing.
var lexicalPatterns = []lexicalPattern{
	// Ownership and founding
	{"OWNS", `%s\s+owns?\s+%s`},
	{"FOUNDED", `%s\s+(?:founded|established|created|started)\s+%s`},

	// Employment
	{"WORKS_AT", `%s\s+works?\s+(?:at|for|with)\s+%s`},
	{"WORKS_AT", `%s\s+(?:is|was)\s+(?:a|an|the)?\s*(?:employee|engineer|developer|analyst|consultant|specialist)\s+(?:at|of|for)\s+%s`},

	// Management and leadership
	{"MANAGES", `%s\s+(?:manages?|leads?|heads?|runs?|oversees?|supervises?|directs?)\s+(?:the\s+)?%s`},
	{"MANAGES", `%s\s+(?:is|was)\s+(?:a|an|the)?\s*(?:manager|director|head|leader|supervisor|chief)\s+(?:of|at)\s+%s`},

	// Reporting structure
	{"REPORTS_TO", `%s\s+reports?\s+to\s+%s`},
	{"REPORTS_TO", `%s\s+works?\s+under\s+%s`},

	// Collaboration
	{"COLLABORATES_WITH", `%s\s+(?:collaborates?|works?|partners?|cooperates?)\s+with\s+%s`},
	{"COLLABORATES_WITH", `%s\s+(?:and\s+)?%s\s+(?:collaborate|work together|partner)`},

	// Team coordination
	{"COORDINATES_WITH", `%s\s+(?:coordinates?|cooperates?)\s+with\s+(?:the\s+)?%s`},
	{"COORDINATES_WITH", `(?:the\s+)?%s\s+(?:often\s+)?coordinates?\s+with\s+(?:the\s+)?%s`},

	// Products and services
	{"PRODUCES", `%s\s+(?:produces?|manufactures?|makes?|develops?|creates?)\s+%s`},
	{"OFFERS", `%s\s+(?:has|offers?|provides?)\s+%s`},
	{"SELLS", `%s\s+(?:sells?|markets?)\s+%s`},

	// Location
	{"LOCATED_IN", `%s\s+(?:is\s+)?(?:located|based|headquartered|situated)\s+(?:in|at)\s+%s`},
	{"HAS_OFFICE_IN", `%s\s+(?:has\s+)?(?:offices?|branches?|facilities?|locations?)\s+(?:in|at)\s+%s`},

	// Hiring
	{"HIRED", `%s\s+(?:hired|employed|recruited|brought on)\s+%s`},
	{"HIRED", `%s\s+recently\s+hired\s+%s`},

	// Internships and training
	{"INTERNED_AT", `%s\s+(?:previously\s+)?(?:interned?|worked)\s+(?:at|for|under|with)\s+%s`},
	{"INTERNED_UNDER", `%s\s+(?:interned?|worked)\s+under\s+%s`},

	// Professional history
	{"WORKED_WITH", `%s\s+(?:previously\s+)?worked\s+(?:with|alongside)\s+%s`},
	{"WORKED_WITH", `%s\s+(?:and\s+)?%s\s+worked\s+(?:together\s+)?on\s+(?:a\s+)?(?:joint\s+)?project`},

	// Events
	{"ATTENDED_WITH", `%s\s+(?:and\s+)?%s\s+attended\s+(?:the\s+)?same\s+(?:workshop|conference|event|meeting)`},
	{"ATTENDED", `%s\s+attended\s+%s`},

	// Membership
	{"MEMBER_OF", `%s\s+(?:is|was)\s+(?:a\s+)?(?:member|part)\s+of\s+%s`},
	{"JOINED", `%s\s+(?:joins?|joined)\s+%s`},
}

// LexicalStrategy matches relation templates instantiated with every ordered
// pair of entities named in the sentence. Compiled expressions are cached
// across sentences; the documents of one run repeat the same entity pairs
// over and over.
type LexicalStrategy struct {
	cache map[string]*regexp.Regexp
}

func NewLexicalStrategy() *LexicalStrategy {
	return &LexicalStrategy{cache: make(map[string]*regexp.Regexp)}
}

func (s *LexicalStrategy) Name() string { return "lexical" }

// Extract tries every template for every ordered entity pair. Only entities
// whose name occurs in the sentence participate, which keeps the pair loop
// proportional to the sentence, not the document. Longer names are tried
// first so "Acme Corporation" wins over a stray "Acme". Template matches are
// high confidence: the sentence spells the relation out.
func (s *LexicalStrategy) Extract(sentence nlp.Sentence, entities *nlp.Entities) []graph.Candidate {
	lower := strings.ToLower(sentence.Text)
	var present []string
	for _, name := range entities.SurfacesByLength() {
		if strings.Contains(lower, strings.ToLower(name)) {
			present = append(present, name)
		}
	}
	if len(present) < 2 {
		return nil
	}

	var out []graph.Candidate
	for _, source := range present {
		for _, target := range present {
			if source == target {
				continue
			}
			srcEsc := regexp.QuoteMeta(source)
			tgtEsc := regexp.QuoteMeta(target)
			for _, p := range lexicalPatterns {
				re := s.compile(fmt.Sprintf(p.template, srcEsc, tgtEsc))
				if !re.MatchString(sentence.Text) {
					continue
				}
				out = append(out, graph.Candidate{
					Source:     source,
					Relation:   p.relation,
					Target:     target,
					Sentence:   sentence.Text,
					SourceType: entityType(entities, source),
					TargetType: entityType(entities, target),
					Confidence: graph.ConfidenceHigh,
				})
			}
		}
	}
	return out
}

func (s *LexicalStrategy) compile(pattern string) *regexp.Regexp {
	if re, ok := s.cache[pattern]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)` + pattern)
	s.cache[pattern] = re
	return re
}

func entityType(entities *nlp.Entities, surface string) string {
	if t, ok := entities.Type(surface); ok {
		return t
	}
	return "Entity"
}
