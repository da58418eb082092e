package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"eagles-events/go_backend/internal/domain/quote"
)

var ErrNotFound = errors.New("quote not found")

const Schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id               text PRIMARY KEY,
	reference        text NOT NULL DEFAULT '',
	event_date       date,
	customer_name    text NOT NULL DEFAULT '',
	phone            text NOT NULL DEFAULT '',
	company          text NOT NULL DEFAULT '',
	location         text NOT NULL DEFAULT '',
	email            text NOT NULL DEFAULT '',
	event_type       text NOT NULL DEFAULT '',
	event_type_other text NOT NULL DEFAULT '',
	services         text[] NOT NULL DEFAULT '{}',
	guest_count      integer NOT NULL DEFAULT 0,
	items            jsonb NOT NULL DEFAULT '[]',
	total_amount     double precision,
	payment_method   text NOT NULL DEFAULT '',
	payment_status   text NOT NULL DEFAULT '',
	notes            text NOT NULL DEFAULT '',
	created_at       timestamptz NOT NULL DEFAULT now(),
	updated_at       timestamptz NOT NULL DEFAULT now()
)`

const quoteColumns = `id, reference, event_date, customer_name, phone, company, location, email,
	event_type, event_type_other, services, guest_count, items, total_amount,
	payment_method, payment_status, notes, created_at, updated_at`

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate quotes: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (*quote.Quote, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	q, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %s: %w", id, err)
	}
	return q, nil
}

// Create inserts q and fills in the timestamps the database assigned.
func (r *Repository) Create(ctx context.Context, q *quote.Quote) error {
	items, err := encodeItems(q.Items)
	if err != nil {
		return err
	}
	services := q.Services
	if services == nil {
		services = []string{}
	}
	err = r.db.Pool.QueryRow(ctx, `
		INSERT INTO quotes (id, reference, event_date, customer_name, phone, company, location, email,
			event_type, event_type_other, services, guest_count, items, total_amount,
			payment_method, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at`,
		q.ID, q.Reference, datePtr(q.EventDate), q.CustomerName, q.Phone, q.Company, q.Location, q.Email,
		q.EventType, q.EventTypeOther, services, q.GuestCount, items, q.TotalAmount.Ptr(),
		q.PaymentMethod, q.PaymentStatus, q.Notes,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create quote %s: %w", q.ID, err)
	}
	return nil
}

func scanQuote(row pgx.Row) (*quote.Quote, error) {
	var (
		q         quote.Quote
		eventDate *time.Time
		items     []byte
		total     *float64
	)
	err := row.Scan(
		&q.ID, &q.Reference, &eventDate, &q.CustomerName, &q.Phone, &q.Company, &q.Location, &q.Email,
		&q.EventType, &q.EventTypeOther, &q.Services, &q.GuestCount, &items, &total,
		&q.PaymentMethod, &q.PaymentStatus, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if eventDate != nil {
		q.EventDate = quote.NewDate(eventDate.Year(), eventDate.Month(), eventDate.Day())
	}
	if total != nil {
		q.TotalAmount = quote.NumberOf(*total)
	}
	if err := json.Unmarshal(items, &q.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &q, nil
}

func encodeItems(items quote.Items) ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return b, nil
}

func datePtr(d quote.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	return &d.Time
}
