// Package reconcile cleans the raw candidate stream into the final triple
// set: empty relations and self-loops go first, exact duplicates collapse,
// labels are normalized, and each entity pair keeps only its most specific
// relation.
package reconcile

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/metrics"
)

// genericRelations ranks relation labels from most generic (1) upward.
// Labels outside the table are specific and outrank every entry. A pair
// whose best relation is still CO_OCCURS says nothing and is dropped.
var genericRelations = map[string]int{
	"CO_OCCURS":       1,
	"RELATED_TO":      2,
	"ASSOCIATED_WITH": 3,
	"CONNECTED_TO":    4,
	"HAS":             5,
	"OFFERS":          6,
}

const specificRank = 100

// entityTypeNames maps tagger labels to node type names. Unmapped labels
// pass through; an empty label becomes Entity.
var entityTypeNames = map[string]string{
	"PERSON":      "Person",
	"ORG":         "Organization",
	"GPE":         "Location",
	"LOC":         "Location",
	"DATE":        "Date",
	"TIME":        "Time",
	"MONEY":       "Money",
	"PRODUCT":     "Product",
	"EVENT":       "Event",
	"WORK_OF_ART": "WorkOfArt",
	"FAC":         "Facility",
	"NORP":        "Group",
}

// Reconciler turns raw candidates into the triple set that reaches the
// graph. Reconcile is deterministic: the same candidates in the same order
// always produce the same triples.
type Reconciler struct {
	logger *logrus.Logger
}

func NewReconciler() *Reconciler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &Reconciler{logger: logger}
}

// Reconcile applies the cleaning steps in a fixed order: empty relations,
// self-loops, duplicates, label normalization, specificity filtering, type
// normalization. Duplicates are judged before normalization, so variants
// that only differ in casing survive to the normalization step.
func (r *Reconciler) Reconcile(candidates []graph.Candidate) []graph.Candidate {
	before := len(candidates)

	out := dropEmptyRelations(candidates)
	out = dropSelfLoops(out)
	out = dedupe(out)
	out = normalizeRelations(out)
	out = prioritize(out)
	out = normalizeTypes(out)

	metrics.TriplesReconciled.Add(float64(len(out)))
	r.logger.WithFields(logrus.Fields{
		"candidates": before,
		"triples":    len(out),
	}).Debug("Reconciliation complete")
	return out
}

func dropEmptyRelations(in []graph.Candidate) []graph.Candidate {
	out := in[:0:0]
	for _, c := range in {
		if c.Relation == "" {
			metrics.CandidatesDropped.WithLabelValues("empty_relation").Inc()
			continue
		}
		out = append(out, c)
	}
	return out
}

func dropSelfLoops(in []graph.Candidate) []graph.Candidate {
	out := in[:0:0]
	for _, c := range in {
		if strings.EqualFold(c.Source, c.Target) {
			metrics.CandidatesDropped.WithLabelValues("self_loop").Inc()
			continue
		}
		out = append(out, c)
	}
	return out
}

func dedupe(in []graph.Candidate) []graph.Candidate {
	type tripleKey struct{ source, relation, target string }
	seen := make(map[tripleKey]bool, len(in))
	out := in[:0:0]
	for _, c := range in {
		k := tripleKey{c.Source, c.Relation, c.Target}
		if seen[k] {
			metrics.CandidatesDropped.WithLabelValues("duplicate").Inc()
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

func normalizeRelations(in []graph.Candidate) []graph.Candidate {
	for i := range in {
		in[i].Relation = strings.ReplaceAll(strings.ToUpper(in[i].Relation), " ", "_")
	}
	return in
}

// prioritize keeps one relation per (source, target) pair: the one with the
// highest specificity rank, earliest candidate winning ties. Pairs whose
// best relation ranks most generic are dropped outright. Pairs are emitted
// in sorted order so repeated runs produce identical tables.
func prioritize(in []graph.Candidate) []graph.Candidate {
	if len(in) == 0 {
		return in
	}

	type pairKey struct{ source, target string }
	groups := make(map[pairKey][]graph.Candidate)
	var keys []pairKey
	for _, c := range in {
		k := pairKey{c.Source, c.Target}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], c)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].source != keys[j].source {
			return keys[i].source < keys[j].source
		}
		return keys[i].target < keys[j].target
	})

	out := make([]graph.Candidate, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		best, bestRank := group[0], relationRank(group[0].Relation)
		for _, c := range group[1:] {
			if rank := relationRank(c.Relation); rank > bestRank {
				best, bestRank = c, rank
			}
		}
		if bestRank <= genericRelations["CO_OCCURS"] {
			metrics.CandidatesDropped.WithLabelValues("generic").Inc()
			continue
		}
		out = append(out, best)
	}
	return out
}

func relationRank(relation string) int {
	if rank, ok := genericRelations[relation]; ok {
		return rank
	}
	return specificRank
}

// normalizeTypes maps endpoint types to readable node type names and fills
// the confidence default for strategies that assign none.
func normalizeTypes(in []graph.Candidate) []graph.Candidate {
	for i := range in {
		in[i].SourceType = normalizeType(in[i].SourceType)
		in[i].TargetType = normalizeType(in[i].TargetType)
		if in[i].Confidence == "" {
			in[i].Confidence = graph.ConfidenceMedium
		}
	}
	return in
}

func normalizeType(label string) string {
	if label == "" {
		return "Entity"
	}
	if name, ok := entityTypeNames[label]; ok {
		return name
	}
	return label
}
