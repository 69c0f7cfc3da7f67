package nlp

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

var phraseTags = mapset.NewSet[string]("DT", "PDT", "PRP$", "JJ", "JJR", "JJS", "NN", "NNS", "NNP", "NNPS", "CD")

func isNounTag(tag string) bool { return strings.HasPrefix(tag, "NN") }
func isVerbTag(tag string) bool { return strings.HasPrefix(tag, "VB") }

// chunkPhrases finds maximal noun phrases: runs of determiner/possessive/
// adjective/number/noun tags containing at least one noun, with the last
// noun as head. Personal pronouns chunk alone.
func chunkPhrases(text string, tokens []Token) []Phrase {
	var phrases []Phrase
	i := 0
	for i < len(tokens) {
		if tokens[i].Tag == "PRP" || tokens[i].Tag == "WP" {
			phrases = append(phrases, Phrase{Start: i, End: i + 1, Head: i, Text: tokens[i].Text})
			i++
			continue
		}
		if !phraseTags.Contains(tokens[i].Tag) {
			i++
			continue
		}
		j := i
		head := -1
		for j < len(tokens) && phraseTags.Contains(tokens[j].Tag) {
			if isNounTag(tokens[j].Tag) {
				head = j
			}
			j++
		}
		if head >= 0 {
			phrases = append(phrases, Phrase{
				Start: i,
				End:   j,
				Head:  head,
				Text:  text[tokens[i].Start:tokens[j-1].End],
			})
		}
		i = j
	}
	return phrases
}

// verbGroup is a maximal run of verb/adverb tokens; the last verb is the
// main verb, preceding verbs are auxiliaries.
type verbGroup struct {
	start   int
	main    int
	passive bool
	copula  bool
}

// assignDeps derives a shallow dependency structure from POS order:
// prepositions attach to the nearest verb or noun and claim the following
// noun phrase as pobj; each verb group then takes the nearest unclaimed
// phrase on its left as subject and on its right as object. The labels cover
// what relationship extraction consumes; tokens that play no such role keep
// an empty label.
func assignDeps(tokens []Token, phrases []Phrase) {
	labelPhraseInternals(tokens, phrases)

	groups := findVerbGroups(tokens)
	attachPrepositions(tokens, phrases, groups)
	for gi, g := range groups {
		if gi == 0 {
			tokens[g.main].Dep = DepRoot
		}
		attachSubject(tokens, phrases, g)
		attachObject(tokens, phrases, g)
	}
}

func labelPhraseInternals(tokens []Token, phrases []Phrase) {
	for _, p := range phrases {
		for i := p.Start; i < p.End; i++ {
			if i == p.Head {
				continue
			}
			tokens[i].Head = p.Head
			switch {
			case tokens[i].Tag == "DT" || tokens[i].Tag == "PDT":
				tokens[i].Dep = "det"
			case tokens[i].Tag == "PRP$":
				tokens[i].Dep = "poss"
			case strings.HasPrefix(tokens[i].Tag, "JJ"):
				tokens[i].Dep = "amod"
			case tokens[i].Tag == "CD":
				tokens[i].Dep = "nummod"
			case isNounTag(tokens[i].Tag):
				tokens[i].Dep = "compound"
			}
		}
	}
}

func findVerbGroups(tokens []Token) []verbGroup {
	var groups []verbGroup
	i := 0
	for i < len(tokens) {
		if !isVerbTag(tokens[i].Tag) && tokens[i].Tag != "MD" {
			i++
			continue
		}
		start := i
		lastVerb := -1
		var auxes []int
		for i < len(tokens) {
			tag := tokens[i].Tag
			if isVerbTag(tag) || tag == "MD" {
				if lastVerb >= 0 {
					auxes = append(auxes, lastVerb)
				}
				lastVerb = i
				i++
				continue
			}
			if tag == "RB" || strings.EqualFold(tokens[i].Text, "not") {
				i++
				continue
			}
			break
		}
		if lastVerb < 0 {
			continue
		}

		g := verbGroup{start: start, main: lastVerb}
		g.copula = tokens[lastVerb].Lemma == "be"
		for _, aux := range auxes {
			dep := DepAux
			if tokens[aux].Lemma == "be" && tokens[lastVerb].Tag == "VBN" {
				dep = DepAuxPassive
				g.passive = true
			}
			tokens[aux].Dep = dep
			tokens[aux].Head = g.main
		}
		groups = append(groups, g)
	}
	return groups
}

// attachSubject scans left from the verb group for the nearest unclaimed
// noun phrase; its head becomes nsubj (nsubjpass for passives). Phrases
// already claimed as prepositional objects are skipped. Another verb ends
// the scan: that phrase belongs to a different clause.
func attachSubject(tokens []Token, phrases []Phrase, g verbGroup) {
	label := DepSubject
	if g.passive {
		label = DepPassiveSubject
	}
	for i := g.start - 1; i >= 0; i-- {
		if isVerbTag(tokens[i].Tag) || tokens[i].Tag == "MD" {
			return
		}
		if p, ok := phraseAt(phrases, i); ok {
			if tokens[p.Head].Dep == "" {
				tokens[p.Head].Dep = label
				tokens[p.Head].Head = g.main
				return
			}
			i = p.Start
		}
	}
}

// attachObject scans right from the main verb for the nearest unclaimed noun
// phrase before any preposition or verb; its head becomes dobj, or attr
// after a copula.
func attachObject(tokens []Token, phrases []Phrase, g verbGroup) {
	label := DepObject
	if g.copula {
		label = DepAttribute
	}
	for i := g.main + 1; i < len(tokens); i++ {
		tag := tokens[i].Tag
		if tag == "IN" || tag == "TO" || isVerbTag(tag) || tag == "MD" {
			return
		}
		if p, ok := phraseAt(phrases, i); ok {
			if tokens[p.Head].Dep == "" {
				tokens[p.Head].Dep = label
				tokens[p.Head].Head = g.main
				return
			}
			i = p.End - 1
		}
	}
}

// attachPrepositions labels IN/TO tokens as prep, attaches each to the
// nearest main verb or phrase head on its left, and claims the following
// noun phrase head as its pobj. An infinitive "to" (followed by a verb) is
// left alone.
func attachPrepositions(tokens []Token, phrases []Phrase, groups []verbGroup) {
	for i := range tokens {
		tag := tokens[i].Tag
		if tag != "IN" && tag != "TO" {
			continue
		}
		if tag == "TO" && nextStartsVerb(tokens, i) {
			continue
		}

		pobj := -1
		for j := i + 1; j < len(tokens); j++ {
			t := tokens[j].Tag
			if t == "IN" || t == "TO" || isVerbTag(t) || t == "MD" {
				break
			}
			if p, ok := phraseAt(phrases, j); ok {
				pobj = p.Head
				break
			}
		}
		if pobj < 0 {
			continue
		}

		head := -1
		for j := i - 1; j >= 0; j-- {
			if isMainVerb(groups, j) {
				head = j
				break
			}
			if p, ok := phraseAt(phrases, j); ok {
				head = p.Head
				break
			}
		}
		if head < 0 {
			continue
		}

		tokens[i].Dep = DepPreposition
		tokens[i].Head = head
		if tokens[pobj].Dep == "" {
			tokens[pobj].Dep = DepPrepObject
			tokens[pobj].Head = i
		}
	}
}

func nextStartsVerb(tokens []Token, i int) bool {
	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].Tag == "RB" {
			continue
		}
		return isVerbTag(tokens[j].Tag)
	}
	return false
}

func isMainVerb(groups []verbGroup, i int) bool {
	for _, g := range groups {
		if g.main == i {
			return true
		}
	}
	return false
}

func phraseAt(phrases []Phrase, i int) (Phrase, bool) {
	for _, p := range phrases {
		if i >= p.Start && i < p.End {
			return p, true
		}
	}
	return Phrase{}, false
}
