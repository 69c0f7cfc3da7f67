package graph

import (
	"path/filepath"
	"strings"
)

// Confidence tiers attached to extracted relationships. They drive display
// weight, not filtering.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Relationship table column names shared by the extraction pipeline and the
// materializer.
const (
	ColSource       = "source"
	ColTarget       = "target"
	ColRelationship = "relationship"
	ColSentence     = "sentence"
	ColSourceType   = "source_type"
	ColTargetType   = "target_type"
	ColConfidence   = "confidence"
)

// Candidate is a raw relationship hypothesis emitted by one extraction
// strategy. Candidates are not unique; the same (source, target) pair may
// appear with several labels until the reconciler reduces them.
type Candidate struct {
	Source     string `json:"source"`
	Relation   string `json:"relationship"`
	Target     string `json:"target"`
	Sentence   string `json:"sentence"`
	SourceType string `json:"source_type"`
	TargetType string `json:"target_type"`
	Confidence string `json:"confidence,omitempty"`
}

// Record is a reconciled relationship, one per surviving
// (source, relation, target) triple. This is the unit persisted to the graph.
type Record Candidate

// Table is a rectangular record set with named columns. Text processing
// produces a relationship table; CSV/JSON ingestion produces an arbitrary
// one. Cell values are string, float64, bool, nil or []interface{}.
type Table struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

// IsRelationshipTable reports whether the table carries the three columns
// the materializer needs for text-derived mode. Mode dispatch happens on
// this property of the table, never at the call site.
func (t *Table) IsRelationshipTable() bool {
	required := map[string]bool{ColSource: false, ColTarget: false, ColRelationship: false}
	for _, c := range t.Columns {
		if _, ok := required[c]; ok {
			required[c] = true
		}
	}
	return required[ColSource] && required[ColTarget] && required[ColRelationship]
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingValues counts nil cells across all rows, including columns absent
// from a row's map.
func (t *Table) MissingValues() int {
	missing := 0
	for _, row := range t.Rows {
		for _, col := range t.Columns {
			if v, ok := row[col]; !ok || v == nil {
				missing++
			}
		}
	}
	return missing
}

// RelationshipTable converts reconciled records into a table the
// materializer consumes in text-derived mode.
func RelationshipTable(records []Record) *Table {
	t := &Table{
		Columns: []string{ColSource, ColRelationship, ColTarget, ColSentence, ColSourceType, ColTargetType, ColConfidence},
		Rows:    make([]map[string]interface{}, 0, len(records)),
	}
	for _, r := range records {
		t.Rows = append(t.Rows, map[string]interface{}{
			ColSource:       r.Source,
			ColRelationship: r.Relation,
			ColTarget:       r.Target,
			ColSentence:     r.Sentence,
			ColSourceType:   r.SourceType,
			ColTargetType:   r.TargetType,
			ColConfidence:   r.Confidence,
		})
	}
	return t
}

// Summary describes one processed document.
type Summary struct {
	Rows          int            `json:"rows"`
	Columns       []string       `json:"columns"`
	MissingValues int            `json:"missing_values"`
	FileType      string         `json:"file_type"`
	Entities      int            `json:"entities_found,omitempty"`
	Relationships int            `json:"relationships_found,omitempty"`
	EntityTypes   map[string]int `json:"entity_types,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
}

// Stats describes the materialized graph: totals, the node type
// distribution, and the most common relationship types.
type Stats struct {
	Nodes                int64            `json:"nodes"`
	Relationships        int64            `json:"relationships"`
	NodeTypes            int              `json:"node_types"`
	NodeTypeDistribution map[string]int64 `json:"node_type_distribution"`
	TopRelationships     map[string]int64 `json:"top_relationships"`
}

// Result is the orchestration boundary: every processing run ends in one of
// these, success or not, so callers can render a message without handling
// panics or raw errors.
type Result struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Table     *Table   `json:"table,omitempty"`
	Summary   *Summary `json:"summary,omitempty"`
	GraphName string   `json:"graph_name,omitempty"`
	RunID     string   `json:"run_id,omitempty"`
}

// InputFile is an uploaded document: a filename plus its raw bytes.
type InputFile struct {
	Name string
	Data []byte
}

// Ext returns the lowercased filename extension including the dot.
func (f *InputFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Stem returns the filename without directory or extension.
func (f *InputFile) Stem() string {
	base := filepath.Base(f.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SizeMB returns the payload size in megabytes.
func (f *InputFile) SizeMB() float64 {
	return float64(len(f.Data)) / (1024 * 1024)
}
