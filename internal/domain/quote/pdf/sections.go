package pdf

import (
	"strings"

	"eagles-events/go_backend/internal/domain/quote/pdf/layout"
)

const (
	indent     = 70.0
	rightCol   = 300.0
	labelWidth = 80.0
	labelGap   = 10.0
	valueWidth = 200.0

	// left-column values stop short of the right column
	leftValueWidth = rightCol - indent - labelWidth - 2*labelGap

	rowHeight    = 18.0
	headerHeight = 20.0
	nameWidth    = 200.0
	qtyCol       = 300.0
	priceCol     = 350.0
	totalCol     = 450.0
)

// page is the state one render threads through its sections.
type page struct {
	s  layout.Surface
	c  *layout.Cursor
	v  *view
	co Company
}

// sections run in this order, top to bottom.
var sections = []func(*page){
	(*page).masthead,
	(*page).title,
	(*page).details,
	(*page).customer,
	(*page).event,
	(*page).items,
	(*page).cost,
	(*page).payment,
	(*page).banking,
	(*page).notes,
	(*page).footer,
}

func compose(s layout.Surface, v *view, co Company) *layout.Cursor {
	p := &page{s: s, c: layout.NewCursor(layout.Margin), v: v, co: co}
	for _, section := range sections {
		section(p)
	}
	return p.c
}

func (p *page) masthead() {
	p.centered(upper(p.co.Name), layout.Bold(28), layout.Black)
	p.c.Advance(40)
	p.centered(p.co.Tagline, layout.Regular(14), layout.Grey)
	p.c.Advance(30)
	p.centered(p.co.Address, layout.Regular(10), layout.Grey)
	p.c.Advance(15)
	p.centered(p.co.Phones, layout.Regular(10), layout.Grey)
	p.c.Advance(15)
	p.centered(p.co.Email, layout.Regular(10), layout.Grey)
	p.c.Advance(30)
}

func (p *page) title() {
	p.centered("QUOTATION", layout.Bold(20), layout.Black)
	p.c.Advance(25)
}

func (p *page) details() {
	p.header("Quote Details:")
	p.line(indent, "Reference: "+p.v.Reference)
	p.c.Advance(15)
	p.line(indent, "Event Date: "+p.v.EventDate)
	p.c.Advance(30)
}

func (p *page) customer() {
	p.header("Customer Information:")
	p.pair(indent, "Name:", p.v.CustomerName, leftValueWidth)
	p.pair(rightCol, "Phone:", p.v.Phone, valueWidth)
	p.c.Advance(12)
	p.pair(indent, "Company:", p.v.Company, leftValueWidth)
	p.pair(rightCol, "Location:", p.v.Location, valueWidth)
	p.c.Advance(12)
	p.pair(indent, "Email:", p.v.Email, leftValueWidth)
	p.pair(rightCol, "Event Type:", p.v.EventType, valueWidth)
	p.c.Advance(20)
}

func (p *page) event() {
	p.header("Event Details:")
	p.pair(indent, "Services:", p.v.Services, valueWidth)
	p.c.Advance(12)
	p.pair(indent, "Guest Count:", p.v.GuestCount, valueWidth)
	p.c.Advance(20)
}

func (p *page) items() {
	p.header("Selected Items & Services:")
	if !p.v.HasItems {
		p.line(indent, "No items selected")
		p.c.Advance(20)
		return
	}

	y := p.c.Y()
	p.s.FillRect(layout.Margin, y, layout.ContentWidth, headerHeight, layout.HeaderBg)
	head := layout.TextStyle{Font: layout.Bold(9), Color: layout.Black, Overflow: layout.Truncate}
	p.cell(indent, y+6, "Item/Service", nameWidth, head)
	p.cell(qtyCol, y+6, "Qty", priceCol-qtyCol, head)
	p.cell(priceCol, y+6, "Unit Price", totalCol-priceCol, head)
	p.cell(totalCol, y+6, "Total", 0, head)
	p.c.Advance(25)

	body := layout.TextStyle{Font: layout.Regular(9), Color: layout.Black, Overflow: layout.Truncate}
	for _, r := range p.v.Rows {
		y := p.c.Y()
		p.s.StrokeRect(layout.Margin, y, layout.ContentWidth, rowHeight, layout.RowBorder, 0.5)
		p.cell(indent, y+5, r.Name, nameWidth, body)
		p.cell(qtyCol, y+5, r.Quantity, priceCol-qtyCol, body)
		p.cell(priceCol, y+5, r.UnitPrice, totalCol-priceCol, body)
		p.cell(totalCol, y+5, r.Total, 0, body)
		p.c.Advance(rowHeight)
	}
	p.c.Advance(20)
}

func (p *page) cost() {
	p.header("Cost Summary:")
	p.s.Text(indent, p.c.Y(), "Total Amount: "+p.v.Total, layout.TextStyle{Font: layout.Bold(14), Color: layout.Black})
	p.c.Advance(25)
}

func (p *page) payment() {
	p.header("Payment Information:")
	p.pair(indent, "Payment Method:", p.v.PaymentMethod, valueWidth)
	p.c.Advance(12)
	p.pair(indent, "Payment Status:", p.v.PaymentStatus, valueWidth)
	p.c.Advance(20)
}

func (p *page) banking() {
	p.header("Banking Details:")
	b := p.co.Banking
	rows := [][2]string{
		{"Bank:", b.Bank},
		{"Account Name:", b.AccountName},
		{"Account Number:", b.AccountNumber},
		{"Branch Code:", b.BranchCode},
		{"Reference:", p.v.Reference},
		{"Swift Code:", b.SwiftCode},
	}
	label := layout.TextStyle{Font: layout.Regular(10), Color: layout.Grey, Overflow: layout.Truncate}
	value := layout.TextStyle{Font: layout.Bold(10), Color: layout.Black, Overflow: layout.Truncate}
	y := p.c.Y()
	for i, r := range rows {
		p.s.Text(indent, y+float64(i)*12, r[0], label)
		p.s.Text(indent+labelWidth, y+float64(i)*12, r[1], value)
	}
	p.c.Advance(75)
	if b.ReferenceNote != "" {
		p.s.Text(indent, p.c.Y(), b.ReferenceNote, layout.TextStyle{Font: layout.Regular(9), Color: layout.Grey})
		p.c.Advance(12)
	}
}

// notes is skipped entirely when the quote has none. The block advances the
// cursor by its wrapped height so the footer stays below it.
func (p *page) notes() {
	if p.v.Notes == "" {
		return
	}
	p.c.Advance(15)
	p.header("Special Notes & Requirements:")
	h := p.s.Text(indent, p.c.Y(), p.v.Notes, layout.TextStyle{
		Font:  layout.Regular(10),
		Color: layout.Black,
		Width: layout.ContentWidth - 40,
	})
	p.c.Advance(h)
}

func (p *page) footer() {
	p.c.Advance(30)
	for _, line := range []string{
		"Thank you for choosing " + p.co.Name,
		"This quotation is valid for 14 days unless otherwise stated",
		"For any questions or modifications, please contact us immediately",
	} {
		p.centered(line, layout.Regular(10), layout.Grey)
		p.c.Advance(12)
	}
}

func (p *page) header(text string) {
	p.s.Text(layout.Margin, p.c.Y(), text, layout.TextStyle{Font: layout.Bold(12), Color: layout.Black})
	p.c.Advance(20)
}

func (p *page) centered(text string, f layout.Font, c layout.Color) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.s.Text(layout.Margin, p.c.Y(), text, layout.TextStyle{
		Font:  f,
		Color: c,
		Width: layout.ContentWidth,
		Align: layout.AlignCenter,
	})
}

func (p *page) line(x float64, text string) {
	p.s.Text(x, p.c.Y(), text, layout.TextStyle{Font: layout.Regular(10), Color: layout.Black})
}

// pair draws a grey label and its bold value on the current line.
func (p *page) pair(x float64, label, value string, width float64) {
	y := p.c.Y()
	p.s.Text(x, y, label, layout.TextStyle{
		Font:     layout.Regular(10),
		Color:    layout.Grey,
		Width:    labelWidth,
		Overflow: layout.Truncate,
	})
	p.s.Text(x+labelWidth+labelGap, y, orNA(value), layout.TextStyle{
		Font:     layout.Bold(10),
		Color:    layout.Black,
		Width:    width,
		Overflow: layout.Truncate,
	})
}

func (p *page) cell(x, y float64, text string, width float64, style layout.TextStyle) {
	style.Width = width
	p.s.Text(x, y, text, style)
}
