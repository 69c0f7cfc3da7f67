package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-lashari/Text2Graph/config"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/extract"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/processors"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/reconcile"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/storage"
)

func testService() *Service {
	return &Service{cfg: &config.Config{
		AllowedExtensions: []string{".txt", ".csv"},
		MaxFileSizeMB:     1,
	}}
}

func TestValidateAccepts(t *testing.T) {
	msg, ok := testService().validate(&graph.InputFile{
		Name: "doc.txt",
		Data: []byte("hello"),
	})
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestValidateRejectsExtension(t *testing.T) {
	msg, ok := testService().validate(&graph.InputFile{
		Name: "doc.exe",
		Data: []byte("hello"),
	})
	assert.False(t, ok)
	assert.Contains(t, msg, "Invalid file type")
	assert.Contains(t, msg, ".txt, .csv")
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	msg, ok := testService().validate(&graph.InputFile{
		Name: "doc.txt",
		Data: make([]byte, 2<<20),
	})
	assert.False(t, ok)
	assert.Contains(t, msg, "File too large")
	assert.Contains(t, msg, "1MB")
}

type runnerCall struct {
	query  string
	params map[string]interface{}
}

type fakeRunner struct {
	calls []runnerCall
}

func (f *fakeRunner) Run(query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	f.calls = append(f.calls, runnerCall{query: query, params: params})
	return nil, nil
}

func (f *fakeRunner) find(token string) []runnerCall {
	var out []runnerCall
	for _, c := range f.calls {
		if strings.Contains(c.query, token) {
			out = append(out, c)
		}
	}
	return out
}

// A management statement travels the whole chain: lexical extraction over a
// known entity registry, reconciliation, then materialization as two typed
// nodes and one edge.
func TestManagementStatementReachesTheGraph(t *testing.T) {
	annotator, err := nlp.NewAnnotator("")
	require.NoError(t, err)

	sent, err := annotator.Annotate("Alice manages the Marketing team.")
	require.NoError(t, err)

	entities := nlp.NewEntities()
	entities.Add("Alice", "PERSON")
	entities.Add("Marketing", "ORG")

	candidates := extract.NewLexicalStrategy().Extract(*sent, entities)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Alice", candidates[0].Source)
	assert.Equal(t, "MANAGES", candidates[0].Relation)
	assert.Equal(t, "Marketing", candidates[0].Target)
	assert.Equal(t, graph.ConfidenceHigh, candidates[0].Confidence)

	triples := reconcile.NewReconciler().Reconcile(candidates)
	require.Len(t, triples, 1)
	assert.Equal(t, "Person", triples[0].SourceType)
	assert.Equal(t, "Organization", triples[0].TargetType)

	runner := &fakeRunner{}
	table := graph.RelationshipTable([]graph.Record{graph.Record(triples[0])})
	require.NoError(t, storage.NewMaterializer(runner).CreateGraph("Alice_Graph", table))

	assert.Len(t, runner.find("MERGE (n:Person"), 1)
	assert.Len(t, runner.find("MERGE (n:Organization"), 1)
	edges := runner.find("[r:MANAGES]")
	require.Len(t, edges, 1)
	assert.Equal(t, "Alice", edges[0].params["source"])
	assert.Equal(t, "Marketing", edges[0].params["target"])
}

// A structured row becomes a property graph: the name column names the root
// node and every other cell hangs off it.
func TestStructuredRowBecomesPropertyGraph(t *testing.T) {
	table, _, err := processors.NewCSVProcessor().Process(context.Background(), graph.InputFile{
		Name: "companies.csv",
		Data: []byte("name,city\nAcme,Lahore\n"),
	})
	require.NoError(t, err)

	name := processors.InferGraphName(table, "companies.csv")
	assert.Equal(t, "Acme", name)

	runner := &fakeRunner{}
	require.NoError(t, storage.NewMaterializer(runner).CreateGraph(name, table))

	apps := runner.find("MERGE (a:App")
	require.Len(t, apps, 1)
	assert.Equal(t, "Acme", apps[0].params["app_name"])

	cities := runner.find("[r:HAS_CITY]")
	require.Len(t, cities, 1)
	assert.Equal(t, "Lahore", cities[0].params["value"])
}
