package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number is a loosely typed numeric field. Clients send numbers, numeric
// strings, booleans or garbage; decoding never fails and Or decides the
// value at render time.
type Number struct {
	v  float64
	ok bool
}

// NumberOf returns a valid Number holding f. NaN and infinities are invalid.
func NumberOf(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Number{v: f, ok: true}
}

// Valid reports whether the field decoded to a finite number.
func (n Number) Valid() bool { return n.ok }

// Or returns the value, or def when the value is missing, invalid or zero.
func (n Number) Or(def float64) float64 {
	if !n.ok || n.v == 0 {
		return def
	}
	return n.v
}

// Ptr returns nil for an invalid number. Used for nullable columns.
func (n Number) Ptr() *float64 {
	if !n.ok {
		return nil
	}
	v := n.v
	return &v
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = parseNumber(bytes.TrimSpace(b))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.v, 'f', -1, 64), nil
}

func parseNumber(b []byte) Number {
	switch {
	case len(b) == 0:
		return Number{}
	case string(b) == "true":
		return NumberOf(1)
	case string(b) == "false":
		return NumberOf(0)
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return Number{}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return NumberOf(0)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}
		}
		return NumberOf(f)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return Number{}
	}
	return NumberOf(f)
}

// Items is the ordered item list. Falsy entries (null, false, 0, "") decode
// to nil so the renderer can skip them in place; truthy non-objects decode
// to an empty Item. A non-array value decodes to an empty list.
type Items []*Item

func (it *Items) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		*it = nil
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	out := make(Items, 0, len(raws))
	for i, raw := range raws {
		raw = bytes.TrimSpace(raw)
		switch {
		case isFalsy(raw):
			out = append(out, nil)
		case raw[0] == '{':
			var item Item
			if err := json.Unmarshal(raw, &item); err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
			out = append(out, &item)
		default:
			out = append(out, &Item{})
		}
	}
	*it = out
	return nil
}

func isFalsy(raw []byte) bool {
	switch string(raw) {
	case "", "null", "false", `""`:
		return true
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		f, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && f == 0
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a calendar date. JSON accepts "2006-01-02" or RFC 3339.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if string(bytes.TrimSpace(b)) == "null" {
		*d = Date{}
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("event date: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = Date{t}
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("event date %q: want YYYY-MM-DD or RFC 3339", s)
	}
	*d = Date{t}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}
