package model

import "github.com/pyatavikram/ExamGenAi/internal/geom"

// TextWidthFactor approximates glyph advance as a fraction of the font
// size; the text footprint is width ≈ factor·size·runes, height ≈ size.
const TextWidthFactor = 0.6

// TextBox returns the approximate footprint of a text element. The
// anchor is the baseline start, so the box extends one font size up.
func TextBox(t *Text) (x, y, w, h float64) {
	w = TextWidthFactor * t.FontSize * float64(len([]rune(t.Content)))
	return t.X, t.Y - t.FontSize, w, t.FontSize
}

// BoundsOf walks every element's geometry-defining fields and returns
// the enclosing box. An empty set yields the default 0,0,100,100 box so
// callers never divide by a zero-size extent.
func BoundsOf(els []Element) geom.Bounds {
	var b geom.Bounds
	for _, e := range els {
		switch el := e.(type) {
		case *Line:
			b.AddPoint(el.P1.X, el.P1.Y)
			b.AddPoint(el.P2.X, el.P2.Y)
		case *Rect:
			b.AddRect(el.X, el.Y, el.W, el.H)
		case *Circle:
			b.AddRect(el.CX-el.R, el.CY-el.R, 2*el.R, 2*el.R)
		case *Polygon:
			for _, p := range el.Points {
				b.AddPoint(p.X, p.Y)
			}
		case *Stroke:
			for _, p := range el.Points {
				b.AddPoint(p.X, p.Y)
			}
		case *Text:
			x, y, w, h := TextBox(el)
			b.AddRect(x, y, w, h)
		case *Angle:
			b.AddPoint(el.X, el.Y)
		}
	}
	if b.Empty() {
		return geom.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	}
	return b
}
