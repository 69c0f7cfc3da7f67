package storage

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/metrics"
)

// Materializer rebuilds the database from a table. Every build clears the
// graph first, so the database always mirrors exactly one document and
// rebuilding the same table lands on the same graph.
type Materializer struct {
	runner Runner
	logger *logrus.Logger
}

func NewMaterializer(runner Runner) *Materializer {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return &Materializer{runner: runner, logger: logger}
}

// Clear deletes every node and relationship.
func (m *Materializer) Clear() error {
	_, err := m.runner.Run("MATCH (n) DETACH DELETE n", nil)
	return errors.Wrap(err, "clearing database")
}

// CreateGraph clears the database and materializes the table. Relationship
// tables become entity graphs; anything else becomes a property graph rooted
// at an App node named after the graph.
func (m *Materializer) CreateGraph(name string, table *graph.Table) error {
	if err := m.Clear(); err != nil {
		return err
	}

	mode := "structured"
	if table.IsRelationshipTable() {
		mode = "text"
	}

	var err error
	if mode == "text" {
		err = m.createEntityGraph(table)
	} else {
		err = m.createPropertyGraph(name, table)
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.GraphBuilds.WithLabelValues(mode, status).Inc()

	if err == nil {
		m.logger.WithFields(logrus.Fields{
			"graph": name,
			"mode":  mode,
			"rows":  len(table.Rows),
		}).Info("Graph materialized")
	}
	return err
}

// createEntityGraph merges one node per distinct endpoint name and one
// relationship per row. The first row naming an endpoint decides its label;
// later rows reuse the node.
func (m *Materializer) createEntityGraph(table *graph.Table) error {
	created := mapset.NewSet[string]()

	for _, row := range table.Rows {
		source, ok := cellString(row[graph.ColSource])
		if !ok {
			continue
		}
		target, ok := cellString(row[graph.ColTarget])
		if !ok {
			continue
		}

		relType := CleanRelationshipType(cellStringOr(row[graph.ColRelationship], "RELATED_TO"))
		sourceType := CleanNodeLabel(cellStringOr(row[graph.ColSourceType], "Entity"))
		targetType := CleanNodeLabel(cellStringOr(row[graph.ColTargetType], "Entity"))

		if !created.Contains(source) {
			if err := m.mergeNode(source, sourceType); err != nil {
				return err
			}
			created.Add(source)
		}
		if !created.Contains(target) {
			if err := m.mergeNode(target, targetType); err != nil {
				return err
			}
			created.Add(target)
		}

		sentence := cellStringOr(row[graph.ColSentence], "")
		confidence := cellStringOr(row[graph.ColConfidence], graph.ConfidenceMedium)
		if err := m.mergeRelationship(source, target, relType, sentence, confidence); err != nil {
			return err
		}
	}
	return nil
}

// mergeNode upserts a node by name. The label is interpolated into the
// query, so a label Cypher rejects fails the first attempt; the fallback
// files the node under Entity instead of losing it.
func (m *Materializer) mergeNode(name, nodeType string) error {
	query := fmt.Sprintf(`
		MERGE (n:%s {name: $name})
		SET n.type = $node_type,
			n.created = timestamp()
	`, nodeType)
	params := map[string]interface{}{"name": name, "node_type": nodeType}

	if _, err := m.runner.Run(query, params); err != nil {
		fallback := `
			MERGE (n:Entity {name: $name})
			SET n.type = $node_type,
				n.created = timestamp()
		`
		if _, ferr := m.runner.Run(fallback, params); ferr != nil {
			return errors.Wrapf(ferr, "creating node %q", name)
		}
	}
	return nil
}

// mergeRelationship upserts one edge between two named nodes. A rejected
// relationship type falls back to RELATED_TO with the intended type kept as
// a property.
func (m *Materializer) mergeRelationship(source, target, relType, sentence, confidence string) error {
	query := fmt.Sprintf(`
		MATCH (a {name: $source})
		MATCH (b {name: $target})
		MERGE (a)-[r:%s]->(b)
		SET r.sentence = $sentence,
			r.confidence = $confidence,
			r.created = timestamp()
	`, relType)
	params := map[string]interface{}{
		"source":     source,
		"target":     target,
		"sentence":   sentence,
		"confidence": confidence,
	}

	if _, err := m.runner.Run(query, params); err != nil {
		fallback := `
			MATCH (a {name: $source})
			MATCH (b {name: $target})
			MERGE (a)-[r:RELATED_TO]->(b)
			SET r.sentence = $sentence,
				r.original_type = $rel_type,
				r.confidence = $confidence
		`
		params["rel_type"] = relType
		if _, ferr := m.runner.Run(fallback, params); ferr != nil {
			return errors.Wrapf(ferr, "creating relationship %s-[%s]->%s", source, relType, target)
		}
	}
	return nil
}

// createPropertyGraph roots the table at an App node and hangs every cell
// off it as a DataEntity. List cells contribute one entity per element.
func (m *Materializer) createPropertyGraph(name string, table *graph.Table) error {
	if _, err := m.runner.Run("MERGE (a:App {name: $app_name})",
		map[string]interface{}{"app_name": name}); err != nil {
		return errors.Wrap(err, "creating app node")
	}

	for _, row := range table.Rows {
		for _, col := range table.Columns {
			value, ok := row[col]
			if !ok || value == nil {
				continue
			}
			if list, isList := value.([]interface{}); isList {
				for _, item := range list {
					if item == nil {
						continue
					}
					if err := m.mergeProperty(name, col, item); err != nil {
						return err
					}
				}
				continue
			}
			if err := m.mergeProperty(name, col, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeProperty links the app node to one data entity. The relationship
// type derives from the column name; a rejected type falls back to
// HAS_PROPERTY with the column kept as a property.
func (m *Materializer) mergeProperty(appName, key string, value interface{}) error {
	relType := "HAS_" + CleanRelationshipType(key)
	query := fmt.Sprintf(`
		MATCH (a:App {name: $app_name})
		MERGE (b:DataEntity {name: $value, property: $key})
		MERGE (a)-[r:%s]->(b)
	`, relType)
	params := map[string]interface{}{
		"app_name": appName,
		"value":    fmt.Sprint(value),
		"key":      key,
	}

	if _, err := m.runner.Run(query, params); err != nil {
		fallback := `
			MATCH (a:App {name: $app_name})
			MERGE (b:DataEntity {name: $value, property: $key})
			MERGE (a)-[r:HAS_PROPERTY]->(b)
			SET r.property_name = $key
		`
		if _, ferr := m.runner.Run(fallback, params); ferr != nil {
			return errors.Wrapf(ferr, "creating property %s for %s", key, appName)
		}
	}
	return nil
}

// Stats reads the shape of the current graph.
func (m *Materializer) Stats() (*graph.Stats, error) {
	stats := &graph.Stats{
		NodeTypeDistribution: make(map[string]int64),
		TopRelationships:     make(map[string]int64),
	}

	rows, err := m.runner.Run("MATCH (n) RETURN count(n) as count", nil)
	if err != nil {
		return nil, errors.Wrap(err, "counting nodes")
	}
	if len(rows) > 0 {
		stats.Nodes = int64Value(rows[0]["count"])
	}

	rows, err = m.runner.Run("MATCH ()-[r]->() RETURN count(r) as count", nil)
	if err != nil {
		return nil, errors.Wrap(err, "counting relationships")
	}
	if len(rows) > 0 {
		stats.Relationships = int64Value(rows[0]["count"])
	}

	rows, err = m.runner.Run(`
		MATCH (n)
		RETURN labels(n)[0] AS type, count(*) AS count
		ORDER BY count DESC
	`, nil)
	if err != nil {
		return nil, errors.Wrap(err, "counting node types")
	}
	for _, row := range rows {
		if t, ok := row["type"].(string); ok {
			stats.NodeTypeDistribution[t] = int64Value(row["count"])
		}
	}
	stats.NodeTypes = len(stats.NodeTypeDistribution)

	rows, err = m.runner.Run(`
		MATCH ()-[r]->()
		RETURN type(r) AS type, count(*) AS count
		ORDER BY count DESC
		LIMIT 10
	`, nil)
	if err != nil {
		return nil, errors.Wrap(err, "counting relationship types")
	}
	for _, row := range rows {
		if t, ok := row["type"].(string); ok {
			stats.TopRelationships[t] = int64Value(row["count"])
		}
	}

	return stats, nil
}

func cellString(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}

func cellStringOr(v interface{}, fallback string) string {
	s, ok := cellString(v)
	if !ok || s == "" {
		return fallback
	}
	return s
}

func int64Value(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
