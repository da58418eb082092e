package handlers

import (
	"context"
	"net/http"

	"eagles-events/go_backend/internal/app/config"
	"eagles-events/go_backend/internal/domain/quote"
	"eagles-events/go_backend/internal/domain/quote/pdf"
)

type QuoteStore interface {
	Get(ctx context.Context, id string) (*quote.Quote, error)
	Create(ctx context.Context, q *quote.Quote) error
}

// DocumentCache holds rendered PDFs. A miss is found=false with a nil error.
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Handlers struct {
	Quotes QuoteStore
	Cache  DocumentCache // nil disables caching
	PDF    pdf.Generator
	Cfg    config.Config
}

func New(quotes QuoteStore, cache DocumentCache, gen pdf.Generator, cfg config.Config) *Handlers {
	return &Handlers{
		Quotes: quotes,
		Cache:  cache,
		PDF:    gen,
		Cfg:    cfg,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
