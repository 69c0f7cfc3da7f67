package processors

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// HTMLProcessor strips markup and runs the text pipeline over what remains.
type HTMLProcessor struct {
	text *TextProcessor
}

func NewHTMLProcessor(annotator *nlp.Annotator) *HTMLProcessor {
	return &HTMLProcessor{text: NewTextProcessor(annotator)}
}

// Process extracts the body text of the document and hands it to the text
// processor. Scripts and styles are dropped first; their content is code,
// not prose.
func (p *HTMLProcessor) Process(ctx context.Context, file graph.InputFile) (*graph.Table, *graph.Summary, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(file.Data))
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing html")
	}

	doc.Find("script, style").Remove()
	text := strings.TrimSpace(doc.Find("body").Text())

	table, summary, err := p.text.Process(ctx, graph.InputFile{Name: file.Name, Data: []byte(text)})
	if err != nil {
		return nil, nil, err
	}
	summary.FileType = "HTML"
	return table, summary, nil
}

func (p *HTMLProcessor) SupportedTypes() []string {
	return []string{"text/html"}
}
