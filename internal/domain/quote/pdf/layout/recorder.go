package layout

import "strings"

type OpKind string

const (
	OpText       OpKind = "text"
	OpFillRect   OpKind = "fill"
	OpStrokeRect OpKind = "stroke"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Style TextStyle
	Color Color
}

// Recorder is a Surface that keeps the calls instead of drawing them.
// Wrapped text takes one line per "\n"; nothing is measured.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) Text(x, y float64, text string, style TextStyle) float64 {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, W: style.BoxWidth(x), Text: text, Style: style, Color: style.Color})
	lines := 1
	if style.Overflow == Wrap {
		lines = strings.Count(text, "\n") + 1
	}
	return float64(lines) * LineHeight(style.Font.Size)
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, c Color, lineWidth float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: c})
}

// Texts returns the drawn strings in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the first text op whose text equals s.
func (r *Recorder) Find(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
