package editor

import (
	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

// hitTest finds the topmost element under p, walking in reverse z-order
// with a shape-appropriate test per kind.
func (e *Editor) hitTest(p geom.Point) model.Element {
	for i := len(e.elements) - 1; i >= 0; i-- {
		el := e.elements[i]
		switch t := el.(type) {
		case *model.Rect:
			if p.X >= t.X && p.X <= t.X+t.W && p.Y >= t.Y && p.Y <= t.Y+t.H {
				return el
			}
		case *model.Text:
			x, y, w, h := model.TextBox(t)
			if p.X >= x-hitTolerance && p.X <= x+w+hitTolerance &&
				p.Y >= y-hitTolerance && p.Y <= y+h+hitTolerance {
				return el
			}
		case *model.Circle:
			if geom.Distance(p, geom.Point{X: t.CX, Y: t.CY}) <= t.R+hitTolerance {
				return el
			}
		case *model.Angle:
			if geom.Distance(p, geom.Point{X: t.X, Y: t.Y}) <= 2*hitTolerance {
				return el
			}
		default:
			// Everything with a point list hits on proximity to any
			// of its points.
			for _, v := range el.Vertices() {
				if geom.Distance(p, v) <= hitTolerance {
					return el
				}
			}
		}
	}
	return nil
}

// selectedRect returns the selected element if it is a rectangle or
// whiteout box, the only kinds with a resize handle.
func (e *Editor) selectedRect() *model.Rect {
	if e.selected == 0 {
		return nil
	}
	r, _ := e.find(e.selected).(*model.Rect)
	return r
}

// nearHandle reports whether p falls in the resize hot-zone near the
// rectangle's bottom-right corner.
func (e *Editor) nearHandle(p geom.Point, r *model.Rect) bool {
	corner := geom.Point{X: r.X + r.W, Y: r.Y + r.H}
	return geom.Distance(p, corner) <= handleSize
}
