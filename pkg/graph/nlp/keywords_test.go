package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	text := "Acme develops software. Acme ships software tools, and the tools help."
	got := Keywords(text, 3)
	assert.Equal(t, []string{"acme", "software", "tools"}, got)
}

func TestKeywordsSkipsStopwordsAndShortTokens(t *testing.T) {
	got := Keywords("it is an AI system", 10)
	assert.Equal(t, []string{"system"}, got)
}

func TestKeywordsZeroLimitKeepsAll(t *testing.T) {
	got := Keywords("alpha beta alpha", 0)
	assert.Equal(t, []string{"alpha", "beta"}, got)
}

func TestKeywordsTiesKeepFirstAppearance(t *testing.T) {
	got := Keywords("beta gamma beta gamma", 10)
	assert.Equal(t, []string{"beta", "gamma"}, got)
}

func TestKeywordsEmptyText(t *testing.T) {
	assert.Empty(t, Keywords("", 5))
}
