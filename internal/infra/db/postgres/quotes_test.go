package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"eagles-events/go_backend/internal/domain/quote"
)

// fakeRow feeds scanQuote the values a SELECT of quoteColumns returns.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *[]string:
			*d = v.([]string)
		case *[]byte:
			*d = v.([]byte)
		case **time.Time:
			*d = v.(*time.Time)
		case **float64:
			*d = v.(*float64)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return errors.New("unexpected destination type")
		}
	}
	return nil
}

func TestScanQuote(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	eventDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	total := 200.0
	row := fakeRow{values: []any{
		"q1", "EE-2025-014", &eventDate, "Thandi", "0820000000", "", "Soweto", "t@example.com",
		"wedding", "", []string{"Decor"}, 120,
		[]byte(`[null, {"name": "Tent", "quantity": "2", "price": 100}]`), &total,
		"cash", "paid", "", created, created,
	}}

	got, err := scanQuote(row)
	if err != nil {
		t.Fatal(err)
	}
	want := &quote.Quote{
		ID: "q1", Reference: "EE-2025-014", EventDate: quote.NewDate(2025, time.March, 15),
		CustomerName: "Thandi", Phone: "0820000000", Location: "Soweto", Email: "t@example.com",
		EventType: "wedding", Services: []string{"Decor"}, GuestCount: 120,
		Items:       quote.Items{nil, {Name: "Tent", Quantity: quote.NumberOf(2), Price: quote.NumberOf(100)}},
		TotalAmount: quote.NumberOf(200), PaymentMethod: "cash", PaymentStatus: "paid",
		CreatedAt: created, UpdatedAt: created,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(quote.Number{})); diff != "" {
		t.Errorf("scanQuote mismatch (-want +got):\n%s", diff)
	}
}

func TestScanQuoteNullColumns(t *testing.T) {
	row := fakeRow{values: []any{
		"q2", "", (*time.Time)(nil), "", "", "", "", "",
		"", "", []string{}, 0, []byte(`[]`), (*float64)(nil),
		"", "", "", time.Time{}, time.Time{},
	}}
	got, err := scanQuote(row)
	if err != nil {
		t.Fatal(err)
	}
	if !got.EventDate.IsZero() {
		t.Errorf("event date = %v, want zero", got.EventDate)
	}
	if got.TotalAmount.Valid() {
		t.Error("null total decoded as a valid number")
	}
	if len(got.Items) != 0 {
		t.Errorf("items = %v, want none", got.Items)
	}
}

func TestScanQuotePassesErrors(t *testing.T) {
	cause := errors.New("conn reset")
	if _, err := scanQuote(fakeRow{err: cause}); !errors.Is(err, cause) {
		t.Errorf("err = %v, want %v", err, cause)
	}
}

func TestEncodeItems(t *testing.T) {
	b, err := encodeItems(nil)
	if err != nil || string(b) != "[]" {
		t.Errorf("encodeItems(nil) = %s, %v", b, err)
	}
	b, err = encodeItems(quote.Items{nil, {Name: "Tent", Quantity: quote.NumberOf(2)}})
	if err != nil {
		t.Fatal(err)
	}
	if want := `[null,{"name":"Tent","quantity":2,"price":null}]`; string(b) != want {
		t.Errorf("encodeItems = %s, want %s", b, want)
	}
}

func TestDatePtr(t *testing.T) {
	if datePtr(quote.Date{}) != nil {
		t.Error("zero date not stored as NULL")
	}
	d := quote.NewDate(2025, time.March, 15)
	if p := datePtr(d); p == nil || !p.Equal(d.Time) {
		t.Errorf("datePtr = %v, want %v", p, d.Time)
	}
}
