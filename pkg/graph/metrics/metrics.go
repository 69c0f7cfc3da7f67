package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// System metrics
	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_bytes",
		Help: "Current system memory usage",
	})

	SystemGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_goroutines",
		Help: "Number of goroutines",
	})

	// Pipeline metrics
	DocumentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_processed_total",
			Help: "Total number of documents processed",
		},
		[]string{"file_type", "status"},
	)

	DocumentProcessingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_processing_errors_total",
			Help: "Total number of document processing errors",
		},
		[]string{"processor", "error_type"},
	)

	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_stage_duration_seconds",
			Help:    "Time spent in each pipeline stage",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	// Extraction metrics
	SentencesAnnotated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentences_annotated_total",
		Help: "Total number of sentences annotated",
	})

	EntitiesRecognized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "entities_recognized_total",
		Help: "Total number of entities recognized",
	})

	CandidatesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relationship_candidates_total",
			Help: "Relationship candidates produced by each strategy",
		},
		[]string{"strategy"},
	)

	CandidatesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relationship_candidates_dropped_total",
			Help: "Relationship candidates removed during reconciliation",
		},
		[]string{"reason"},
	)

	TriplesReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triples_reconciled_total",
		Help: "Total number of triples surviving reconciliation",
	})

	// Graph metrics
	GraphBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_builds_total",
			Help: "Total number of graph materializations",
		},
		[]string{"mode", "status"},
	)

	GraphNodeCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graph_nodes_total",
			Help: "Total number of nodes in the graph",
		},
		[]string{"node_type"},
	)

	GraphEdgeCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graph_edges_total",
			Help: "Total number of edges in the graph",
		},
		[]string{"edge_type"},
	)
)

// UpdateSystemMetrics updates system-level metrics
func UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	SystemMemoryUsage.Set(float64(m.Alloc))
	SystemGoroutines.Set(float64(runtime.NumGoroutine()))
}
