// Package processors turns uploaded files into tables ready for graph
// materialization. Text-bearing formats run the extraction pipeline and
// yield relationship tables; structured formats keep their own columns and
// are materialized as property graphs.
package processors

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

var (
	processingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "document_processing_duration_seconds",
			Help: "Time spent processing documents",
		},
		[]string{"processor_type"},
	)
)

func init() {
	prometheus.MustRegister(processingDuration)
}

// Processor turns one uploaded file into a table and its summary.
type Processor interface {
	Process(ctx context.Context, file graph.InputFile) (*graph.Table, *graph.Summary, error)
	SupportedTypes() []string
}

// Factory hands out the processor matching a file's extension. The shared
// annotator is loaded once; every text-bearing processor reuses it.
type Factory struct {
	annotator *nlp.Annotator
}

func NewFactory(annotator *nlp.Annotator) *Factory {
	return &Factory{annotator: annotator}
}

// ForFile picks the processor for the file's extension.
func (f *Factory) ForFile(file graph.InputFile) (Processor, error) {
	switch strings.ToLower(file.Ext()) {
	case ".txt", ".text", ".md":
		return NewTextProcessor(f.annotator), nil
	case ".csv":
		return NewCSVProcessor(), nil
	case ".json":
		return NewJSONProcessor(), nil
	case ".html", ".htm":
		return NewHTMLProcessor(f.annotator), nil
	case ".pdf":
		return NewPDFProcessor(f.annotator), nil
	default:
		return nil, errors.Errorf("unsupported file type: %s", file.Name)
	}
}

// nameColumns are checked in order when naming a graph from structured data.
var nameColumns = []string{"name", "title", "app_name", "project", "id", "application"}

var graphNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// InferGraphName names the graph from its content. Relationship tables are
// named after their most frequent entity; structured tables after the first
// value of an identifier-like column; anything else after the file.
func InferGraphName(table *graph.Table, filename string) string {
	if table != nil && table.HasColumn(graph.ColSource) && table.HasColumn(graph.ColTarget) {
		if entity, ok := mostFrequentEndpoint(table); ok {
			return entity + "_Graph"
		}
	}

	if table != nil {
		for _, col := range nameColumns {
			if !table.HasColumn(col) {
				continue
			}
			for _, row := range table.Rows {
				if row[col] == nil {
					continue
				}
				if v := strings.TrimSpace(fmt.Sprint(row[col])); v != "" {
					return v
				}
			}
		}
	}

	stem := filename
	if i := strings.LastIndex(stem, "."); i > 0 {
		stem = stem[:i]
	}
	if clean := graphNameSanitizer.ReplaceAllString(stem, "_"); clean != "" {
		return clean
	}
	return "Knowledge_Graph"
}

// mostFrequentEndpoint counts every source and target value and returns the
// winner, earliest occurrence breaking ties.
func mostFrequentEndpoint(table *graph.Table) (string, bool) {
	counts := make(map[string]int)
	var order []string
	tally := func(cell interface{}) {
		s, ok := cell.(string)
		if !ok || s == "" {
			return
		}
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	for _, row := range table.Rows {
		tally(row[graph.ColSource])
	}
	for _, row := range table.Rows {
		tally(row[graph.ColTarget])
	}

	best, bestCount := "", 0
	for _, s := range order {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best, best != ""
}

// summarize fills the base summary every processor reports.
func summarize(table *graph.Table, file graph.InputFile) *graph.Summary {
	ext := strings.TrimPrefix(strings.ToLower(file.Ext()), ".")
	return &graph.Summary{
		Rows:          len(table.Rows),
		Columns:       table.Columns,
		MissingValues: table.MissingValues(),
		FileType:      strings.ToUpper(ext),
	}
}
