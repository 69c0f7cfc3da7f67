package processors

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/extract"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/metrics"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/reconcile"
)

// TextProcessor runs the full extraction pipeline over plain text: clean,
// split, annotate, recognize entities, extract candidates, reconcile. The
// result is a relationship table plus a summary with entity and keyword
// counts.
type TextProcessor struct {
	annotator  *nlp.Annotator
	recognizer *nlp.Recognizer
	extractor  *extract.Extractor
	reconciler *reconcile.Reconciler
	logger     *logrus.Logger
}

func NewTextProcessor(annotator *nlp.Annotator) *TextProcessor {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &TextProcessor{
		annotator:  annotator,
		recognizer: nlp.NewRecognizer(),
		extractor:  extract.NewExtractor(),
		reconciler: reconcile.NewReconciler(),
		logger:     logger,
	}
}

func (p *TextProcessor) Process(ctx context.Context, file graph.InputFile) (*graph.Table, *graph.Summary, error) {
	timer := prometheus.NewTimer(processingDuration.WithLabelValues("text"))
	defer timer.ObserveDuration()

	p.logger.WithFields(logrus.Fields{
		"file":  file.Name,
		"bytes": len(file.Data),
	}).Info("Starting text processing")

	text := nlp.CleanText(string(file.Data))
	sentences := p.annotator.SplitSentences(text)

	annotateTimer := prometheus.NewTimer(metrics.PipelineStageDuration.WithLabelValues("annotate"))
	annotated := make([]nlp.Sentence, 0, len(sentences))
	for _, s := range sentences {
		sent, err := p.annotator.Annotate(s)
		if err != nil {
			metrics.DocumentProcessingErrors.WithLabelValues("text", "annotation").Inc()
			p.logger.WithError(err).WithField("sentence", s).Warn("Skipping sentence")
			continue
		}
		annotated = append(annotated, *sent)
	}
	annotateTimer.ObserveDuration()
	metrics.SentencesAnnotated.Add(float64(len(annotated)))

	entities := p.recognizer.Recognize(annotated)
	p.logger.WithField("entities", entities.Len()).Info("Found unique entities")

	extractTimer := prometheus.NewTimer(metrics.PipelineStageDuration.WithLabelValues("extract"))
	candidates := p.extractor.Extract(annotated, entities)
	extractTimer.ObserveDuration()

	reconcileTimer := prometheus.NewTimer(metrics.PipelineStageDuration.WithLabelValues("reconcile"))
	triples := p.reconciler.Reconcile(candidates)
	reconcileTimer.ObserveDuration()

	records := make([]graph.Record, len(triples))
	for i, t := range triples {
		records[i] = graph.Record(t)
	}
	table := graph.RelationshipTable(records)

	summary := summarize(table, file)
	summary.Entities = entities.Len()
	summary.Relationships = len(table.Rows)
	summary.EntityTypes = entities.TypeCounts()
	summary.Keywords = nlp.Keywords(text, 10)

	p.logger.WithFields(logrus.Fields{
		"sentences":     len(annotated),
		"relationships": len(table.Rows),
	}).Info("Extracted relationships")

	return table, summary, nil
}

func (p *TextProcessor) SupportedTypes() []string {
	return []string{"text/plain", "text/markdown"}
}
