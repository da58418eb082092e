package quote

import "time"

type Quote struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`
	EventDate Date   `json:"event_date"`

	CustomerName string `json:"customer_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Company      string `json:"company,omitempty"`
	Location     string `json:"location,omitempty"`
	Email        string `json:"email,omitempty"`

	EventType      string   `json:"event_type,omitempty"`
	EventTypeOther string   `json:"event_type_other,omitempty"`
	Services       []string `json:"services"`
	GuestCount     int      `json:"guest_count"`

	Items       Items  `json:"items"`
	TotalAmount Number `json:"total_amount"`

	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is one line of a quote. Quantity and Price keep whatever the client
// sent; the renderer applies the defaults.
type Item struct {
	Name     string `json:"name,omitempty"`
	Quantity Number `json:"quantity"`
	Price    Number `json:"price"`
}

// ReferenceText is the human-readable reference, falling back to the id.
func (q *Quote) ReferenceText() string {
	if q.Reference != "" {
		return q.Reference
	}
	return q.ID
}
