package nlp

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Dependency labels emitted by the shallow annotation pass. Only the labels
// the relationship strategies consume are named; intra-phrase labels stay as
// plain strings.
const (
	DepSubject        = "nsubj"
	DepPassiveSubject = "nsubjpass"
	DepObject         = "dobj"
	DepAttribute      = "attr"
	DepPreposition    = "prep"
	DepPrepObject     = "pobj"
	DepAux            = "aux"
	DepAuxPassive     = "auxpass"
	DepRoot           = "ROOT"
)

// Token is one tagged word with its position in the sentence and its place
// in the shallow dependency structure. Head is a token index, -1 for
// unattached tokens and the root.
type Token struct {
	Text  string
	Tag   string
	Lemma string
	Dep   string
	Head  int
	Start int
	End   int
}

// Phrase is a noun phrase over a token range [Start, End); Head indexes the
// head noun inside the range.
type Phrase struct {
	Start int
	End   int
	Head  int
	Text  string
}

// Span is a typed entity mention located by byte offsets in the sentence.
type Span struct {
	Text  string
	Label string
	Start int
	End   int
}

// Sentence is one fully annotated sentence.
type Sentence struct {
	Text    string
	Tokens  []Token
	Phrases []Phrase
	Spans   []Span
}

// PhraseAt returns the noun phrase containing token i.
func (s *Sentence) PhraseAt(i int) (Phrase, bool) {
	for _, p := range s.Phrases {
		if i >= p.Start && i < p.End {
			return p, true
		}
	}
	return Phrase{}, false
}

// NounPhrase returns the text of the phrase enclosing token i, falling back
// to the token's own text.
func (s *Sentence) NounPhrase(i int) string {
	if p, ok := s.PhraseAt(i); ok {
		return p.Text
	}
	return s.Tokens[i].Text
}

// TypeAt returns the label of the entity span covering token i, or generic
// Entity when the token lies outside every span.
func (s *Sentence) TypeAt(i int) string {
	tok := s.Tokens[i]
	for _, span := range s.Spans {
		if tok.Start >= span.Start && tok.End <= span.End {
			return span.Label
		}
	}
	return "Entity"
}

// Children returns, in token order, the indices of tokens attached to head
// with one of the given dependency labels.
func (s *Sentence) Children(head int, labels ...string) []int {
	var out []int
	for i, tok := range s.Tokens {
		if tok.Head != head {
			continue
		}
		for _, l := range labels {
			if tok.Dep == l {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// Annotator wraps the prose tagger and derives sentence structure from it:
// token offsets, lemmas, noun phrases, shallow dependency labels and entity
// spans. Construction fails if the model cannot annotate; processing never
// silently degrades to an untyped mode.
type Annotator struct {
	model  *prose.Model
	logger *logrus.Logger
}

// NewAnnotator loads the tagging model, optionally from modelPath, and
// probes it once. A model that cannot be loaded is a configuration error,
// fatal to the caller's run.
func NewAnnotator(modelPath string) (*Annotator, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	a := &Annotator{logger: logger}
	if modelPath != "" {
		a.model = prose.ModelFromDisk(modelPath)
	}

	if _, err := prose.NewDocument("The tagger is ready.", a.docOpts()...); err != nil {
		return nil, errors.Wrap(err, "loading language model")
	}
	return a, nil
}

func (a *Annotator) docOpts(extra ...prose.DocOpt) []prose.DocOpt {
	var opts []prose.DocOpt
	if a.model != nil {
		opts = append(opts, prose.UsingModel(a.model))
	}
	return append(opts, extra...)
}

var (
	whitespaceRE  = regexp.MustCompile(`\s+`)
	strayCharsRE  = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;!?'-]`)
	sentenceEndRE = regexp.MustCompile(`[.!?]+\s+`)
)

// CleanText normalizes whitespace and strips characters that confuse the
// tagger, keeping the punctuation sentence segmentation relies on.
func CleanText(text string) string {
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strayCharsRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SplitSentences segments text into trimmed sentences. If the model-based
// segmenter fails the rule-based splitter takes over rather than dropping
// the document.
func (a *Annotator) SplitSentences(text string) []string {
	doc, err := prose.NewDocument(text, a.docOpts(prose.WithTagging(false), prose.WithExtraction(false))...)
	if err != nil {
		a.logger.WithError(err).Warn("Sentence segmentation failed, using rule-based splitter")
		return splitSentencesFallback(text)
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences
}

func splitSentencesFallback(text string) []string {
	parts := sentenceEndRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".") && !strings.HasSuffix(p, "!") && !strings.HasSuffix(p, "?") {
			p += "."
		}
		sentences = append(sentences, p)
	}
	return sentences
}

// Annotate runs the tagger over one sentence and builds the full annotation:
// positioned tokens, noun phrases, dependency labels and entity spans.
func (a *Annotator) Annotate(sentence string) (*Sentence, error) {
	doc, err := prose.NewDocument(sentence, a.docOpts()...)
	if err != nil {
		return nil, errors.Wrap(err, "annotating sentence")
	}

	s := &Sentence{Text: sentence}
	s.Tokens = buildTokens(sentence, doc.Tokens())
	s.Phrases = chunkPhrases(sentence, s.Tokens)
	assignDeps(s.Tokens, s.Phrases)
	s.Spans = collectSpans(sentence, doc.Entities())
	return s, nil
}

// buildTokens locates each tagged token in the sentence text so that spans
// and phrases can be expressed as byte ranges.
func buildTokens(text string, toks []prose.Token) []Token {
	tokens := make([]Token, 0, len(toks))
	cursor := 0
	for _, tok := range toks {
		start := cursor
		if idx := strings.Index(text[cursor:], tok.Text); idx >= 0 {
			start = cursor + idx
		}
		end := start + len(tok.Text)
		if end > len(text) {
			end = len(text)
		}
		tokens = append(tokens, Token{
			Text:  tok.Text,
			Tag:   tok.Tag,
			Lemma: Lemma(tok.Text, tok.Tag),
			Dep:   "",
			Head:  -1,
			Start: start,
			End:   end,
		})
		cursor = end
	}
	return tokens
}

// collectSpans merges model entity mentions with the pattern gazetteer.
// Model spans win on overlap; each mention is anchored at its first
// occurrence in the sentence.
func collectSpans(text string, ents []prose.Entity) []Span {
	var spans []Span
	for _, e := range ents {
		idx := strings.Index(text, e.Text)
		if idx < 0 {
			continue
		}
		spans = append(spans, Span{Text: e.Text, Label: e.Label, Start: idx, End: idx + len(e.Text)})
	}
	for _, m := range gazetteerSpans(text) {
		if overlapsAny(spans, m) {
			continue
		}
		spans = append(spans, m)
	}
	return spans
}

func overlapsAny(spans []Span, s Span) bool {
	for _, other := range spans {
		if s.Start < other.End && other.Start < s.End {
			return true
		}
	}
	return false
}
