// Package service orchestrates full processing runs: validate an upload,
// parse it into a table, replace the stored graph with the table's contents,
// and report the outcome as a structured result.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/config"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/metrics"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/processors"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/storage"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/visualizer"
)

// Service owns the Neo4j store and the processing pipeline for the lifetime
// of a run. It is not safe for concurrent use: materialization replaces the
// whole graph, so overlapping runs against one store corrupt each other.
type Service struct {
	cfg     *config.Config
	store   *storage.Store
	builder *storage.Materializer
	factory *processors.Factory
	viz     *visualizer.Builder
	logger  *logrus.Logger
}

// NewService connects to Neo4j and loads the annotator. Both are kept for
// the service lifetime and released by Close.
func NewService(cfg *config.Config) (*Service, error) {
	store, err := storage.NewStore(cfg)
	if err != nil {
		return nil, err
	}

	annotator, err := nlp.NewAnnotator(cfg.NLPModelPath)
	if err != nil {
		store.Close()
		return nil, errors.Wrap(err, "initializing annotator")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Service{
		cfg:     cfg,
		store:   store,
		builder: storage.NewMaterializer(store),
		factory: processors.NewFactory(annotator),
		viz:     visualizer.NewBuilder(store),
		logger:  logger,
	}, nil
}

// ProcessAndCreateGraph runs the whole pipeline for one uploaded file. It
// never returns an error: every failure, panics included, becomes a Result
// with Success false, and nothing is written to the store until the file has
// processed cleanly.
func (s *Service) ProcessAndCreateGraph(ctx context.Context, file *graph.InputFile) (result *graph.Result) {
	runID := uuid.NewString()
	fileType := strings.TrimPrefix(file.Ext(), ".")
	log := s.logger.WithFields(logrus.Fields{
		"run_id": runID,
		"file":   file.Name,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Recovered from panic during processing: %v", r)
			metrics.DocumentsProcessed.WithLabelValues(fileType, "panic").Inc()
			result = &graph.Result{
				Success: false,
				Message: fmt.Sprintf("processing failed: %v", r),
				RunID:   runID,
			}
		}
	}()

	if msg, ok := s.validate(file); !ok {
		log.WithField("reason", msg).Warn("Rejected file")
		metrics.DocumentsProcessed.WithLabelValues(fileType, "rejected").Inc()
		return &graph.Result{Success: false, Message: msg, RunID: runID}
	}

	processor, err := s.factory.ForFile(*file)
	if err != nil {
		metrics.DocumentsProcessed.WithLabelValues(fileType, "rejected").Inc()
		return &graph.Result{Success: false, Message: err.Error(), RunID: runID}
	}

	table, summary, err := processor.Process(ctx, *file)
	if err != nil {
		log.WithError(err).Error("Processing failed")
		metrics.DocumentsProcessed.WithLabelValues(fileType, "error").Inc()
		return &graph.Result{Success: false, Message: err.Error(), RunID: runID}
	}

	graphName := processors.InferGraphName(table, file.Name)

	if err := s.builder.CreateGraph(graphName, table); err != nil {
		log.WithError(err).Error("Materialization failed")
		metrics.DocumentsProcessed.WithLabelValues(fileType, "error").Inc()
		return &graph.Result{Success: false, Message: err.Error(), RunID: runID}
	}

	log.WithFields(logrus.Fields{
		"graph": graphName,
		"rows":  len(table.Rows),
	}).Info("Graph created")
	metrics.DocumentsProcessed.WithLabelValues(fileType, "success").Inc()

	return &graph.Result{
		Success:   true,
		Message:   fmt.Sprintf("Graph '%s' created successfully!", graphName),
		Table:     table,
		Summary:   summary,
		GraphName: graphName,
		RunID:     runID,
	}
}

// validate rejects files before anything touches the store.
func (s *Service) validate(file *graph.InputFile) (string, bool) {
	if !s.cfg.ExtensionAllowed(file.Ext()) {
		return fmt.Sprintf("Invalid file type. Allowed: %s",
			strings.Join(s.cfg.AllowedExtensions, ", ")), false
	}
	if file.SizeMB() > float64(s.cfg.MaxFileSizeMB) {
		return fmt.Sprintf("File too large. Max size: %dMB", s.cfg.MaxFileSizeMB), false
	}
	return "", true
}

// Stats reports totals and distributions for the stored graph and refreshes
// the graph and system gauges.
func (s *Service) Stats() (*graph.Stats, error) {
	metrics.UpdateSystemMetrics()

	stats, err := s.builder.Stats()
	if err != nil {
		return nil, err
	}

	for nodeType, count := range stats.NodeTypeDistribution {
		metrics.GraphNodeCount.WithLabelValues(nodeType).Set(float64(count))
	}
	for relType, count := range stats.TopRelationships {
		metrics.GraphEdgeCount.WithLabelValues(relType).Set(float64(count))
	}

	return stats, nil
}

// Visualize reads the stored graph back, renders it as a standalone D3 HTML
// page at outputPath, and returns the payload it rendered.
func (s *Service) Visualize(graphName, outputPath string) (*visualizer.Payload, error) {
	payload, err := s.viz.Build(graphName)
	if err != nil {
		return nil, err
	}
	if err := visualizer.NewD3Visualizer(outputPath).Visualize(payload); err != nil {
		return nil, errors.Wrap(err, "rendering visualization")
	}
	return payload, nil
}

// Snapshot writes the payload for graphName as JSON under dir and returns
// the payload.
func (s *Service) Snapshot(ctx context.Context, dir, graphName string) (*visualizer.Payload, error) {
	payload, err := s.viz.Build(graphName)
	if err != nil {
		return nil, err
	}
	snapshots := storage.NewJSONSnapshotStore(dir)
	if err := snapshots.Store(ctx, graphName, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Reconnect drops the session and dials the store again.
func (s *Service) Reconnect() error {
	return s.store.Reconnect()
}

// Close releases the store. The service is unusable afterwards.
func (s *Service) Close() error {
	return s.store.Close()
}
