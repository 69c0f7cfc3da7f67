package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteerSpans(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
		match string
	}{
		{"org suffix", "She joined Acme Corporation yesterday", "ORG", "Acme Corporation"},
		{"org labs", "Beta Labs announced a merger", "ORG", "Beta Labs"},
		{"money dollar amount", "The round raised $5 million", "MONEY", "$5 million"},
		{"money currency word", "It cost 500 dollars", "MONEY", "500 dollars"},
		{"date month day year", "They met on March 3, 2021", "DATE", "March 3, 2021"},
		{"date bare year", "Acme expanded in 2019", "DATE", "2019"},
		{"date weekday", "The review happens Monday", "DATE", "Monday"},
		{"time of day", "The call starts at 10:30 am", "TIME", "10:30 am"},
		{"event suffix", "He spoke at the Global Tech Summit", "EVENT", "Global Tech Summit"},
		{"facility suffix", "They landed at Kennedy Airport", "FAC", "Kennedy Airport"},
		{"nationality", "The American delegation arrived", "NORP", "American"},
		{"product with version", "The demo ran on Windows 11", "PRODUCT", "Windows 11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := gazetteerSpans(tt.text)
			require.NotEmpty(t, spans)

			found := false
			for _, s := range spans {
				if s.Text == tt.match && s.Label == tt.label {
					found = true
					assert.Equal(t, tt.match, tt.text[s.Start:s.End])
				}
			}
			assert.True(t, found, "expected %s span %q, got %v", tt.label, tt.match, spans)
		})
	}
}

func TestGazetteerSpansEarlierPatternWins(t *testing.T) {
	// "Acme University" is an ORG; the overlapping EVENT reading of
	// "Acme University Conference" must not produce a second span.
	spans := gazetteerSpans("He runs Acme University Conference operations")
	require.Len(t, spans, 1)
	assert.Equal(t, "ORG", spans[0].Label)
	assert.Equal(t, "Acme University", spans[0].Text)
}

func TestGazetteerSpansNoMatches(t *testing.T) {
	assert.Empty(t, gazetteerSpans("nothing notable happens here"))
}
