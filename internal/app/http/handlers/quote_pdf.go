package handlers

import (
	"errors"
	"log"
	"net/http"

	"eagles-events/go_backend/internal/domain/quote"
	"eagles-events/go_backend/internal/domain/quote/pdf"
	"eagles-events/go_backend/internal/infra/cache/redis"
)

// QuotePDF renders a stored quote, reusing the cached document for the
// same revision.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	key := redis.Key(q.ID, q.UpdatedAt)
	if h.Cache != nil {
		b, found, err := h.Cache.Get(r.Context(), key)
		switch {
		case err != nil:
			log.Printf("pdf cache: get failed key=%s err=%v", key, err)
		case found:
			writePDF(w, filename(q), b)
			return
		}
	}

	b, ok := h.render(w, q)
	if !ok {
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), key, b); err != nil {
			log.Printf("pdf cache: set failed key=%s err=%v", key, err)
		}
	}
	writePDF(w, filename(q), b)
}

// PreviewQuotePDF renders the quote in the request body without storing it.
func (h *Handlers) PreviewQuotePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := decodeQuote(w, r)
	if !ok {
		return
	}
	b, ok := h.render(w, q)
	if !ok {
		return
	}
	writePDF(w, filename(q), b)
}

func (h *Handlers) render(w http.ResponseWriter, q *quote.Quote) ([]byte, bool) {
	b, err := h.PDF.Generate(q)
	if errors.Is(err, pdf.ErrInvalidQuote) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return nil, false
	}
	return b, true
}

func filename(q *quote.Quote) string {
	return "quote-" + q.ReferenceText() + ".pdf"
}
