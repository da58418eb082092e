package layout

import (
	"math"
	"testing"
)

func TestCursor(t *testing.T) {
	c := NewCursor(Margin)
	c.Advance(40)
	c.Advance(12.5)
	if got := c.Y(); got != 102.5 {
		t.Errorf("Y = %v, want 102.5", got)
	}
	if c.Overflows() {
		t.Error("cursor near the top overflows")
	}
	c.Advance(PageHeight)
	if !c.Overflows() {
		t.Error("cursor past the page does not overflow")
	}
}

func TestBoxWidth(t *testing.T) {
	if got := (TextStyle{}).BoxWidth(Margin); math.Abs(got-ContentWidth) > 1e-9 {
		t.Errorf("default width at margin = %v, want %v", got, ContentWidth)
	}
	if got := (TextStyle{Width: 200}).BoxWidth(70); got != 200 {
		t.Errorf("explicit width = %v, want 200", got)
	}
}

func TestRecorderHeights(t *testing.T) {
	var r Recorder
	h := r.Text(70, 100, "one\ntwo\nthree", TextStyle{Font: Regular(10)})
	if want := 3 * LineHeight(10); h != want {
		t.Errorf("wrapped height = %v, want %v", h, want)
	}
	h = r.Text(70, 100, "one\ntwo", TextStyle{Font: Regular(10), Overflow: Truncate})
	if want := LineHeight(10); h != want {
		t.Errorf("truncated height = %v, want %v", h, want)
	}
	r.FillRect(50, 10, 100, 20, HeaderBg)
	if r.Count(OpText) != 2 || r.Count(OpFillRect) != 1 || r.Count(OpStrokeRect) != 0 {
		t.Errorf("unexpected op counts: %+v", r.Ops)
	}
	if _, ok := r.Find("one\ntwo"); !ok {
		t.Error("Find missed a recorded text")
	}
}
