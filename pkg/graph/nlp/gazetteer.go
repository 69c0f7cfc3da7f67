package nlp

import "regexp"

// gazetteerPattern pairs an entity label with the pattern that recognizes
// it. Patterns are applied in order; earlier matches shadow later ones.
type gazetteerPattern struct {
	label string
	re    *regexp.Regexp
}

// gazetteerPatterns supplements the statistical tagger, which only emits
// PERSON and GPE. Organizations, dates, money and the rest are cued by
// surface shape: suffix words, month names, currency markers.
var gazetteerPatterns = []gazetteerPattern{
	{"ORG", regexp.MustCompile(`\b[A-Z][\w&.'-]*(?:\s+[A-Z][\w&.'-]*)*\s+` +
		`(?:Inc|Corp|Corporation|LLC|Ltd|Limited|Company|Co|Group|Technologies|Technology|` +
		`Systems|Solutions|Labs|Software|Industries|Enterprises|Holdings|Partners|Consulting|` +
		`University|College|Institute|School|Bank|Agency|Department|Foundation|Association|Ventures)\b\.?`)},
	{"MONEY", regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|trillion|thousand))?` +
		`|\b\d[\d,]*(?:\.\d+)?\s?(?:dollars|euros|pounds|rupees|USD|EUR|GBP|PKR)\b`)},
	{"DATE", regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)` +
		`\s+\d{1,2}(?:st|nd|rd|th)?(?:,\s*\d{4})?\b` +
		`|\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)(?:\s+\d{4})?\b` +
		`|\b\d{1,2}/\d{1,2}/\d{2,4}\b` +
		`|\b(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b` +
		`|\b(?:19|20)\d{2}\b`)},
	{"TIME", regexp.MustCompile(`\b\d{1,2}:\d{2}(?:\s?(?:am|pm|AM|PM))?` +
		`|\b\d{1,2}\s?(?:am|pm|AM|PM)\b|\b\d{1,2}\s?[ap]\.m\.`)},
	{"EVENT", regexp.MustCompile(`\b[A-Z][\w'-]*(?:\s+[A-Z][\w'-]*)*\s+` +
		`(?:Conference|Summit|Expo|Festival|Olympics|Cup|Hackathon|Gala|Symposium|Workshop)\b`)},
	{"FAC", regexp.MustCompile(`\b[A-Z][\w'-]*(?:\s+[A-Z][\w'-]*)*\s+` +
		`(?:Airport|Bridge|Stadium|Tower|Station|Hospital|Museum|Library|Campus|Plaza|Mall)\b`)},
	{"NORP", regexp.MustCompile(`\b(?:American|British|Chinese|Indian|Pakistani|German|French|Japanese|` +
		`Korean|Russian|Canadian|Australian|Brazilian|Mexican|Italian|Spanish|Dutch|Swiss|European|Asian|African)s?\b`)},
	{"PRODUCT", regexp.MustCompile(`\b[A-Z][A-Za-z]+\s+(?:\d+(?:\.\d+)*|[A-Z]\d+)\b`)},
}

// gazetteerSpans runs every pattern over the sentence and returns the
// non-overlapping matches as labeled spans, earlier patterns winning.
func gazetteerSpans(text string) []Span {
	var spans []Span
	for _, gp := range gazetteerPatterns {
		for _, loc := range gp.re.FindAllStringIndex(text, -1) {
			s := Span{Text: text[loc[0]:loc[1]], Label: gp.label, Start: loc[0], End: loc[1]}
			if overlapsAny(spans, s) {
				continue
			}
			spans = append(spans, s)
		}
	}
	return spans
}
