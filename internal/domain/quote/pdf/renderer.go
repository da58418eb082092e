package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"eagles-events/go_backend/internal/domain/quote"
	"eagles-events/go_backend/internal/domain/quote/pdf/layout"
)

var (
	ErrInvalidQuote = errors.New("invalid quote data provided")
	ErrRender       = errors.New("quote pdf generation failed")
)

// Document is a fresh page to draw on. Output streams the encoded document
// to w; an error the engine recorded while drawing surfaces there too.
type Document interface {
	layout.Surface
	Output(w io.Writer) error
}

// Renderer turns a quote into a finished PDF. It keeps no state between
// calls and is safe for concurrent use.
type Renderer struct {
	Company     Company
	NewDocument func() Document
}

var _ Generator = (*Renderer)(nil)

func (r *Renderer) Generate(q *quote.Quote) ([]byte, error) {
	if q == nil || q.ID == "" {
		return nil, ErrInvalidQuote
	}
	log.Printf("quote pdf: generation started id=%s items=%d", q.ID, len(q.Items))

	doc := r.NewDocument()
	c := compose(doc, newView(q), r.Company)
	if c.Overflows() {
		log.Printf("quote pdf: content runs past the page id=%s y=%.1f", q.ID, c.Y())
	}

	var out chunks
	if err := doc.Output(&out); err != nil {
		log.Printf("quote pdf: generation failed id=%s err=%v", q.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	b := out.join()
	log.Printf("quote pdf: generation completed id=%s chunks=%d bytes=%d", q.ID, len(out.parts), len(b))
	return b, nil
}

// chunks keeps every write in order and joins them once the writer is done.
type chunks struct {
	parts [][]byte
	size  int
}

func (c *chunks) Write(p []byte) (int, error) {
	c.parts = append(c.parts, bytes.Clone(p))
	c.size += len(p)
	return len(p), nil
}

func (c *chunks) join() []byte {
	out := make([]byte, 0, c.size)
	for _, p := range c.parts {
		out = append(out, p...)
	}
	return out
}
