package processors

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
)

// JSONProcessor normalizes JSON documents into tables. An array of objects
// becomes one row per element; a single object becomes a one-row table.
// Nested objects flatten into underscore-joined columns; arrays stay whole
// as list cells and are unpacked during materialization.
type JSONProcessor struct{}

func NewJSONProcessor() *JSONProcessor {
	return &JSONProcessor{}
}

func (p *JSONProcessor) Process(ctx context.Context, file graph.InputFile) (*graph.Table, *graph.Summary, error) {
	timer := prometheus.NewTimer(processingDuration.WithLabelValues("json"))
	defer timer.ObserveDuration()

	if !gjson.ValidBytes(file.Data) {
		return nil, nil, errors.New("invalid json")
	}
	root := gjson.ParseBytes(file.Data)

	var (
		rows    []map[string]interface{}
		columns []string
	)
	seen := make(map[string]bool)
	addColumn := func(col string) {
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}
	record := func(obj gjson.Result) bool {
		if !obj.IsObject() {
			return false
		}
		row := make(map[string]interface{})
		flattenObject("", obj, row, addColumn)
		rows = append(rows, row)
		return true
	}

	switch {
	case root.IsArray():
		ok := true
		root.ForEach(func(_, v gjson.Result) bool {
			ok = record(v)
			return ok
		})
		if !ok {
			return nil, nil, errors.New("unsupported json structure: array elements must be objects")
		}
	case root.IsObject():
		record(root)
	default:
		return nil, nil, errors.New("unsupported json structure")
	}

	table := &graph.Table{Columns: columns, Rows: rows}
	return table, summarize(table, file), nil
}

// flattenObject writes the object's leaves into row, joining nested keys
// with underscores. Column registration happens in document order so the
// table's columns read like the source.
func flattenObject(prefix string, obj gjson.Result, row map[string]interface{}, addColumn func(string)) {
	obj.ForEach(func(key, value gjson.Result) bool {
		name := strings.ReplaceAll(strings.TrimSpace(key.String()), ".", "_")
		if prefix != "" {
			name = prefix + "_" + name
		}
		if value.IsObject() {
			flattenObject(name, value, row, addColumn)
			return true
		}
		addColumn(name)
		row[name] = jsonValue(value)
		return true
	})
}

func jsonValue(v gjson.Result) interface{} {
	switch {
	case v.Type == gjson.Null:
		return nil
	case v.IsArray():
		items := v.Array()
		out := make([]interface{}, len(items))
		for i, item := range items {
			out[i] = item.Value()
		}
		return out
	default:
		return v.Value()
	}
}

func (p *JSONProcessor) SupportedTypes() []string {
	return []string{"application/json"}
}
