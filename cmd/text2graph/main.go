package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/config"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/processors"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/service"
)

var (
	inputFile       = flag.String("input", "", "Document to process (txt, csv, json, html, pdf)")
	envFile         = flag.String("env", ".env", "Path to environment file")
	dryRun          = flag.Bool("dry-run", false, "Process the document without writing to Neo4j")
	snapshotDir     = flag.String("snapshot-dir", "", "Directory to write a JSON snapshot of the graph to")
	visualize       = flag.Bool("visualize", false, "Generate a visualization of the knowledge graph")
	visualizeOutput = flag.String("viz-output", "knowledge_graph.html", "Output file for the visualization")
	logLevel        = flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	// Configure logging
	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if *inputFile == "" {
		logger.Fatal("Input file must be specified")
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		logger.Fatalf("Failed to read input file: %v", err)
	}
	file := &graph.InputFile{
		Name: filepath.Base(*inputFile),
		Data: data,
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}
	ctx := context.Background()

	if *dryRun {
		runDry(ctx, logger, cfg, file)
		return
	}

	svc, err := service.NewService(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize graph service: %v", err)
	}
	defer svc.Close()

	result := svc.ProcessAndCreateGraph(ctx, file)
	if !result.Success {
		logger.Fatalf("Processing failed: %s", result.Message)
	}
	logger.Info(result.Message)
	logSummary(logger, result.Summary)

	stats, err := svc.Stats()
	if err != nil {
		logger.Errorf("Failed to read graph statistics: %v", err)
	} else {
		logger.Infof("Graph now holds %d nodes and %d relationships across %d node types",
			stats.Nodes, stats.Relationships, stats.NodeTypes)
	}

	if *snapshotDir != "" {
		if _, err := svc.Snapshot(ctx, *snapshotDir, result.GraphName); err != nil {
			logger.Errorf("Failed to write snapshot: %v", err)
		} else {
			logger.Infof("Snapshot saved under %s", *snapshotDir)
		}
	}

	if *visualize {
		payload, err := svc.Visualize(result.GraphName, *visualizeOutput)
		if err != nil {
			logger.Errorf("Failed to visualize knowledge graph: %v", err)
		} else {
			logger.Infof("Visualization saved to %s (%d nodes, %d edges)",
				*visualizeOutput, len(payload.Nodes), len(payload.Edges))
		}
	}
}

// runDry processes the document and prints what would be materialized,
// without connecting to Neo4j.
func runDry(ctx context.Context, logger *logrus.Logger, cfg *config.Config, file *graph.InputFile) {
	annotator, err := nlp.NewAnnotator(cfg.NLPModelPath)
	if err != nil {
		logger.Fatalf("Failed to load annotator: %v", err)
	}

	processor, err := processors.NewFactory(annotator).ForFile(*file)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	table, summary, err := processor.Process(ctx, *file)
	if err != nil {
		logger.Fatalf("Processing failed: %v", err)
	}

	graphName := processors.InferGraphName(table, file.Name)
	logger.Infof("Dry run: graph '%s' would hold %d rows", graphName, len(table.Rows))
	logSummary(logger, summary)

	if table.IsRelationshipTable() {
		for _, row := range table.Rows {
			logger.Infof("%v -[%v]-> %v", row[graph.ColSource], row[graph.ColRelationship], row[graph.ColTarget])
		}
	}
}

func logSummary(logger *logrus.Logger, summary *graph.Summary) {
	if summary == nil {
		return
	}
	fields := logrus.Fields{
		"file_type": summary.FileType,
		"rows":      summary.Rows,
	}
	if summary.Entities > 0 {
		fields["entities"] = summary.Entities
	}
	if summary.Relationships > 0 {
		fields["relationships"] = summary.Relationships
	}
	logger.WithFields(fields).Info("Processing summary")
}
