package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eagles-events/go_backend/internal/domain/quote"
	"eagles-events/go_backend/internal/infra/db/postgres"
)

const maxQuoteBody = 1 << 20

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	q, ok := decodeQuote(w, r)
	if !ok {
		return
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	if err := h.Quotes.Create(r.Context(), q); err != nil {
		log.Printf("quotes: create failed id=%s err=%v", q.ID, err)
		http.Error(w, "store error", http.StatusBadGateway)
		return
	}
	log.Printf("quotes: created id=%s reference=%s items=%d", q.ID, q.Reference, len(q.Items))
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	q, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) loadQuote(w http.ResponseWriter, r *http.Request) (*quote.Quote, bool) {
	id := chi.URLParam(r, "id")
	q, err := h.Quotes.Get(r.Context(), id)
	if errors.Is(err, postgres.ErrNotFound) {
		http.Error(w, "quote not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Printf("quotes: get failed id=%s err=%v", id, err)
		http.Error(w, "store error", http.StatusBadGateway)
		return nil, false
	}
	return q, true
}

func decodeQuote(w http.ResponseWriter, r *http.Request) (*quote.Quote, bool) {
	var q quote.Quote
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQuoteBody)).Decode(&q); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &q, true
}
