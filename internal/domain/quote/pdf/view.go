package pdf

import "eagles-events/go_backend/internal/domain/quote"

var paymentMethods = map[string]string{
	"card":          "Credit/Debit Card",
	"bank_transfer": "EFT/Bank Transfer",
	"cash":          "Cash",
	"mobile":        "Mobile Payment",
}

// view is a quote with every printed value already resolved to text.
type view struct {
	Reference string
	EventDate string

	CustomerName string
	Phone        string
	Company      string
	Location     string
	Email        string
	EventType    string

	Services   string
	GuestCount string

	HasItems bool
	Rows     []row
	Total    string

	PaymentMethod string
	PaymentStatus string

	Notes string
}

type row struct {
	Name      string
	Quantity  string
	UnitPrice string
	Total     string
}

func newView(q *quote.Quote) *view {
	v := &view{
		Reference:     q.ReferenceText(),
		EventDate:     Date(q.EventDate.Time),
		CustomerName:  orNA(q.CustomerName),
		Phone:         orNA(q.Phone),
		Company:       orNA(q.Company),
		Location:      orNA(q.Location),
		Email:         orNA(q.Email),
		EventType:     orNA(eventType(q.EventType, q.EventTypeOther)),
		Services:      joinOrNA(q.Services),
		GuestCount:    Quantity(float64(q.GuestCount)),
		HasItems:      len(q.Items) > 0,
		Total:         Currency(q.TotalAmount.Or(0)),
		PaymentMethod: orNA(paymentMethod(q.PaymentMethod)),
		PaymentStatus: paymentStatus(q.PaymentStatus),
		Notes:         q.Notes,
	}
	for _, it := range q.Items {
		if it == nil {
			continue
		}
		v.Rows = append(v.Rows, newRow(it))
	}
	return v
}

func newRow(it *quote.Item) row {
	qty := it.Quantity.Or(1)
	price := it.Price.Or(0)
	name := it.Name
	if name == "" {
		name = "Unknown Item"
	}
	return row{
		Name:      name,
		Quantity:  Quantity(qty),
		UnitPrice: Currency(price),
		Total:     Currency(qty * price),
	}
}

func eventType(kind, other string) string {
	if kind == "other" && other != "" {
		return kind + " (" + other + ")"
	}
	return kind
}

func paymentMethod(key string) string {
	if label, ok := paymentMethods[key]; ok {
		return label
	}
	return key
}

func paymentStatus(s string) string {
	if s == "" {
		s = "pending"
	}
	return upper(s)
}
