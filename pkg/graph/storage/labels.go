package storage

import (
	"regexp"
	"strings"
)

// Node labels and relationship types are interpolated into Cypher text, so
// both cleaners strip to an identifier charset before anything reaches a
// query. The materializer still falls back per operation when the store
// rejects a cleaned label.
var (
	relTypeReplacer  = strings.NewReplacer(" ", "_", "-", "_", ".", "_")
	relTypeCharset   = regexp.MustCompile(`[^A-Z0-9_]`)
	nodeLabelCharset = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// CleanRelationshipType makes a value usable as a Cypher relationship type:
// uppercase with separators collapsed to underscores and every remaining
// character outside [A-Z0-9_] stripped. Nothing left falls back to
// RELATED_TO.
func CleanRelationshipType(relType string) string {
	cleaned := relTypeReplacer.Replace(strings.ToUpper(relType))
	cleaned = relTypeCharset.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return "RELATED_TO"
	}
	return cleaned
}

// CleanNodeLabel makes a value usable as a Cypher node label. Spaces and
// hyphens are dropped rather than replaced so labels stay CamelCase; an
// empty or placeholder label falls back to Entity.
func CleanNodeLabel(label string) string {
	if label == "" || label == "nan" {
		return "Entity"
	}
	cleaned := nodeLabelCharset.ReplaceAllString(label, "")
	if cleaned == "" {
		return "Entity"
	}
	return cleaned
}
