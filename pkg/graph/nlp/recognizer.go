package nlp

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/metrics"
)

// Entities is the registry of entity surface forms found in a document. The
// first label seen for a surface form wins; later sightings only bump the
// occurrence count. Insertion order is preserved so downstream choices
// (graph naming, tie-breaks) stay deterministic.
type Entities struct {
	order  []string
	types  map[string]string
	counts map[string]int
}

func NewEntities() *Entities {
	return &Entities{
		types:  make(map[string]string),
		counts: make(map[string]int),
	}
}

// Add records one sighting of a surface form. The label sticks only on the
// first sighting.
func (e *Entities) Add(surface, label string) {
	if surface == "" {
		return
	}
	if _, ok := e.types[surface]; !ok {
		e.order = append(e.order, surface)
		e.types[surface] = label
	}
	e.counts[surface]++
}

// Type returns the label recorded for a surface form.
func (e *Entities) Type(surface string) (string, bool) {
	t, ok := e.types[surface]
	return t, ok
}

// Has reports whether the exact surface form was recorded.
func (e *Entities) Has(surface string) bool {
	_, ok := e.types[surface]
	return ok
}

func (e *Entities) Len() int {
	if e == nil {
		return 0
	}
	return len(e.order)
}

// Surfaces returns the surface forms in first-seen order.
func (e *Entities) Surfaces() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// SurfacesByLength returns the surface forms longest first, first-seen order
// breaking ties. Matching longer forms first keeps "Acme Corporation" from
// being shadowed by "Acme".
func (e *Entities) SurfacesByLength() []string {
	out := e.Surfaces()
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// Count returns how many times the surface form was sighted.
func (e *Entities) Count(surface string) int {
	return e.counts[surface]
}

// MostFrequent returns the surface form with the highest sighting count,
// earliest-seen winning ties.
func (e *Entities) MostFrequent() (string, bool) {
	best, bestCount := "", 0
	for _, s := range e.order {
		if e.counts[s] > bestCount {
			best, bestCount = s, e.counts[s]
		}
	}
	return best, best != ""
}

// TypeCounts returns how many distinct surface forms carry each label.
func (e *Entities) TypeCounts() map[string]int {
	out := make(map[string]int, len(e.types))
	for _, t := range e.types {
		out[t]++
	}
	return out
}

// Recognizer aggregates the labeled spans of annotated sentences into a
// document-wide entity registry.
type Recognizer struct {
	logger *logrus.Logger
}

func NewRecognizer() *Recognizer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &Recognizer{logger: logger}
}

// Recognize walks every sentence's spans and registers each as an entity.
// The registry spans the whole document: an entity named in one sentence is
// known when any other sentence is examined.
func (r *Recognizer) Recognize(sentences []Sentence) *Entities {
	entities := NewEntities()
	for _, s := range sentences {
		for _, sp := range s.Spans {
			entities.Add(sp.Text, sp.Label)
		}
	}
	metrics.EntitiesRecognized.Add(float64(entities.Len()))
	r.logger.WithFields(logrus.Fields{
		"sentences": len(sentences),
		"entities":  entities.Len(),
	}).Debug("Entity recognition complete")
	return entities
}
