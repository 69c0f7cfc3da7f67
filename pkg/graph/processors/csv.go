package processors

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
)

// nullTokens are the cell spellings treated as missing values.
var nullTokens = map[string]bool{
	"":     true,
	"nan":  true,
	"NaN":  true,
	"null": true,
	"NULL": true,
}

// CSVProcessor parses CSV files into structured tables. The first record
// names the columns; spaces in names become underscores so the labels stay
// legal in Cypher.
type CSVProcessor struct{}

func NewCSVProcessor() *CSVProcessor {
	return &CSVProcessor{}
}

func (p *CSVProcessor) Process(ctx context.Context, file graph.InputFile) (*graph.Table, *graph.Summary, error) {
	timer := prometheus.NewTimer(processingDuration.WithLabelValues("csv"))
	defer timer.ObserveDuration()

	reader := csv.NewReader(bytes.NewReader(file.Data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading csv")
	}
	if len(records) == 0 {
		return nil, nil, errors.New("empty csv file")
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.ReplaceAll(strings.TrimSpace(c), " ", "_")
	}

	rows := make([]map[string]interface{}, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if i >= len(rec) {
				row[col] = nil
				continue
			}
			row[col] = cleanCell(rec[i])
		}
		rows = append(rows, row)
	}

	table := &graph.Table{Columns: columns, Rows: rows}
	return table, summarize(table, file), nil
}

// cleanCell strips the value and converts null spellings to missing.
func cleanCell(v string) interface{} {
	v = strings.TrimSpace(v)
	if nullTokens[v] {
		return nil
	}
	return v
}

func (p *CSVProcessor) SupportedTypes() []string {
	return []string{"text/csv"}
}
