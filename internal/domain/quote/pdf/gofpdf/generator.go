package gofpdf

import (
	"time"

	"github.com/jung-kurt/gofpdf"

	"eagles-events/go_backend/internal/domain/quote"
	"eagles-events/go_backend/internal/domain/quote/pdf"
	"eagles-events/go_backend/internal/domain/quote/pdf/layout"
)

type Generator struct {
	renderer pdf.Renderer
	now      func() time.Time
}

func New(company pdf.Company) *Generator {
	g := &Generator{now: time.Now}
	g.renderer = pdf.Renderer{Company: company, NewDocument: g.newDocument}
	return g
}

// WithClock pins the document's creation and modification dates. Two
// renders of the same quote with the same clock are byte-identical.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

func (g *Generator) Generate(q *quote.Quote) ([]byte, error) {
	return g.renderer.Generate(q)
}

func (g *Generator) newDocument() pdf.Document {
	f := gofpdf.New("P", "pt", "A4", "")
	f.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	f.SetAutoPageBreak(false, 0)
	f.SetCellMargin(0)
	f.SetCatalogSort(true)
	ts := g.now()
	f.SetCreationDate(ts)
	f.SetModificationDate(ts)
	f.SetTitle("Quotation", true)
	f.SetCreator("Eagles Events", true)
	f.AddPage()

	tr := f.UnicodeTranslatorFromDescriptor("")
	return &document{f: f, tr: tr, ellipsis: tr("…")}
}
