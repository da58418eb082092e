package pdf

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const currencySymbol = "R"

// Currency renders an amount as R<amount> with two decimals and no
// grouping.
func Currency(v float64) string {
	return currencySymbol + fixed2(v)
}

// fixed2 rounds the exact binary value of v to two decimals, ties away
// from zero: 0.125 gives "0.13" while 1.005 (stored as 1.00499...) gives
// "1.00".
func fixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	if v < 0 {
		return "-" + fixed2(-v)
	}
	// 1100 digits covers the full expansion of any float64.
	exact, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', 1100))
	if err != nil {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return exact.StringFixed(2)
}

// Quantity renders a quantity without decimal formatting.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Date renders day/month/year.
func Date(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format("02/01/2006")
}

// upper applies full Unicode case mapping ("ß" becomes "SS"). Casers are
// stateful, so each call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

const notAvailable = "N/A"

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func joinOrNA(items []string) string {
	return orNA(strings.Join(items, ", "))
}
