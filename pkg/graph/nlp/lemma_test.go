package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemma(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
		want string
	}{
		{"third person strips s", "works", "VBZ", "work"},
		{"third person keeps silent e", "manages", "VBZ", "manage"},
		{"third person es after sibilant", "watches", "VBZ", "watch"},
		{"third person es after x", "fixes", "VBZ", "fix"},
		{"third person ies to y", "studies", "VBZ", "study"},
		{"third person irregular", "goes", "VBZ", "go"},
		{"past tense drops ed", "joined", "VBD", "join"},
		{"past tense restores silent e", "created", "VBD", "create"},
		{"past tense collapses doubled consonant", "planned", "VBD", "plan"},
		{"past tense eed keeps stem", "agreed", "VBD", "agree"},
		{"past tense ied to y", "studied", "VBD", "study"},
		{"past participle", "taken", "VBN", "take"},
		{"founded stays distinct from found", "founded", "VBD", "found"},
		{"found is past of find", "found", "VBD", "find"},
		{"hired keeps silent e", "hired", "VBD", "hire"},
		{"gerund doubled consonant", "running", "VBG", "run"},
		{"gerund restores ate stem", "collaborating", "VBG", "collaborate"},
		{"gerund keeps double l", "selling", "VBG", "sell"},
		{"copula present", "is", "VBZ", "be"},
		{"copula past", "was", "VBD", "be"},
		{"copula participle", "been", "VBN", "be"},
		{"auxiliary have", "has", "VBZ", "have"},
		{"modal unchanged", "can", "MD", "can"},
		{"proper noun lowercased only", "Acme", "NNP", "acme"},
		{"plural noun untouched", "reports", "NNS", "reports"},
		{"empty", "", "VB", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lemma(tt.text, tt.tag))
		})
	}
}
