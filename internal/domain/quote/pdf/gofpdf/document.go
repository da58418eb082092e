package gofpdf

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"eagles-events/go_backend/internal/domain/quote/pdf/layout"
)

// document draws onto one gofpdf page using the core Helvetica fonts.
// Text goes through the cp1252 translator those fonts need.
type document struct {
	f        *gofpdf.Fpdf
	tr       func(string) string
	ellipsis string
}

func (d *document) Text(x, y float64, text string, st layout.TextStyle) float64 {
	style := ""
	if st.Font.Bold {
		style = "B"
	}
	d.f.SetFont(st.Font.Family, style, st.Font.Size)
	d.f.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	w := st.BoxWidth(x)
	lh := layout.LineHeight(st.Font.Size)
	align := "L"
	if st.Align == layout.AlignCenter {
		align = "C"
	}
	s := d.tr(text)
	d.f.SetXY(x, y)

	if st.Overflow == layout.Truncate {
		s = strings.ReplaceAll(s, "\n", " ")
		d.f.CellFormat(w, lh, d.fit(s, w), "", 0, align, false, 0, "")
		return lh
	}
	lines := len(d.f.SplitLines([]byte(s), w))
	if lines == 0 {
		lines = 1
	}
	d.f.MultiCell(w, lh, s, "", align, false)
	return float64(lines) * lh
}

// fit cuts s so it fits in w with the current font, marking the cut with
// an ellipsis. s is already single-byte encoded.
func (d *document) fit(s string, w float64) string {
	if d.f.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 {
		s = s[:len(s)-1]
		if d.f.GetStringWidth(s+d.ellipsis) <= w {
			return s + d.ellipsis
		}
	}
	return ""
}

func (d *document) FillRect(x, y, w, h float64, c layout.Color) {
	d.f.SetFillColor(c.R, c.G, c.B)
	d.f.Rect(x, y, w, h, "F")
}

func (d *document) StrokeRect(x, y, w, h float64, c layout.Color, lineWidth float64) {
	d.f.SetDrawColor(c.R, c.G, c.B)
	d.f.SetLineWidth(lineWidth)
	d.f.Rect(x, y, w, h, "D")
}

func (d *document) Output(w io.Writer) error {
	return d.f.Output(w)
}
