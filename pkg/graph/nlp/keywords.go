package nlp

import (
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

var stopwords = mapset.NewSet(
	"the", "a", "an", "and", "or", "but", "if", "while", "as", "also",
	"in", "on", "at", "to", "for", "of", "with", "by", "from", "up",
	"about", "into", "through", "during", "before", "after", "above",
	"below", "between", "out", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "can", "will", "just", "should", "now",
	"is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"would", "could", "might", "must", "shall",
	"this", "that", "these", "those",
	"i", "you", "he", "she", "it", "we", "they", "them",
	"his", "her", "its", "our", "their", "my", "your",
	"what", "which", "who", "whom",
)

var wordRE = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Keywords returns the topN most frequent terms in the text, stopwords and
// short tokens excluded. Ties keep first-appearance order.
func Keywords(text string, topN int) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range wordRE.FindAllString(strings.ToLower(text), -1) {
		if len(w) <= 2 || stopwords.Contains(w) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}
	return order
}
