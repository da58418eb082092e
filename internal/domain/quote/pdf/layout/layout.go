// Package layout holds the drawing contract the quote renderer composes
// against and the running cursor threaded through its sections.
package layout

// A4 portrait in points.
const (
	PageWidth    = 595.28
	PageHeight   = 841.89
	Margin       = 50.0
	ContentWidth = PageWidth - 2*Margin
)

type Color struct {
	R, G, B int
}

var (
	Black     = Color{0x00, 0x00, 0x00}
	Grey      = Color{0x66, 0x66, 0x66}
	HeaderBg  = Color{0xf5, 0xf5, 0xf5}
	RowBorder = Color{0xe0, 0xe0, 0xe0}
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Overflow decides what happens to text wider than its box.
type Overflow int

const (
	Wrap Overflow = iota
	Truncate
)

type Font struct {
	Family string
	Bold   bool
	Size   float64
}

func Regular(size float64) Font { return Font{Family: "Helvetica", Size: size} }
func Bold(size float64) Font    { return Font{Family: "Helvetica", Bold: true, Size: size} }

type TextStyle struct {
	Font     Font
	Color    Color
	Width    float64 // 0 means up to the right margin
	Align    Align
	Overflow Overflow
}

// BoxWidth resolves the width of a text box starting at x.
func (s TextStyle) BoxWidth(x float64) float64 {
	if s.Width > 0 {
		return s.Width
	}
	return PageWidth - Margin - x
}

// LineHeight is the advance of one line of text at the given font size.
func LineHeight(size float64) float64 { return size * 1.2 }

// Surface is the drawing capability. Coordinates are points from the top
// left corner of the page; y is the top of the text box.
type Surface interface {
	// Text draws text and returns the vertical space it took.
	Text(x, y float64, text string, style TextStyle) float64
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h float64, c Color, lineWidth float64)
}

// Cursor is the next writing position of a single top-to-bottom column.
type Cursor struct {
	y float64
}

func NewCursor(top float64) *Cursor { return &Cursor{y: top} }

func (c *Cursor) Y() float64 { return c.y }

func (c *Cursor) Advance(dy float64) { c.y += dy }

// Overflows reports whether the cursor has passed the bottom margin.
func (c *Cursor) Overflows() bool { return c.y > PageHeight-Margin }
