package processors

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"

	"github.com/Ahmed-lashari/Text2Graph/pkg/graph"
	"github.com/Ahmed-lashari/Text2Graph/pkg/graph/nlp"
)

// PDFProcessor concatenates the plain text of every page and runs the text
// pipeline over it. Pages that fail text extraction are skipped; a scanned
// page yields nothing either way.
type PDFProcessor struct {
	text *TextProcessor
}

func NewPDFProcessor(annotator *nlp.Annotator) *PDFProcessor {
	return &PDFProcessor{text: NewTextProcessor(annotator)}
}

func (p *PDFProcessor) Process(ctx context.Context, file graph.InputFile) (*graph.Table, *graph.Summary, error) {
	reader, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening pdf")
	}

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	table, summary, err := p.text.Process(ctx, graph.InputFile{Name: file.Name, Data: []byte(sb.String())})
	if err != nil {
		return nil, nil, err
	}
	summary.FileType = "PDF"
	return table, summary, nil
}

func (p *PDFProcessor) SupportedTypes() []string {
	return []string{"application/pdf"}
}
