package editor

import "github.com/pyatavikram/ExamGenAi/internal/geom"

// gesture is the per-tool sub-state of an in-progress interaction. One
// variant per pending multi-step gesture keeps illegal combinations
// unrepresentable; idle is the rest state.
type gesture interface{ isGesture() }

type idle struct{}

// dragShape is a single-drag shape gesture (line, rect, circle,
// triangle, whiteout) between pointer-down and pointer-up.
type dragShape struct {
	anchor, current geom.Point
}

// freehand accumulates a pencil or eraser path while the button is held.
type freehand struct {
	points []geom.Point
}

// collectingVertices holds the polygon vertices placed so far.
type collectingVertices struct {
	points []geom.Point
}

// awaitingAngleRay: the angle vertex is placed, waiting for the first
// ray endpoint.
type awaitingAngleRay struct {
	vertex geom.Point
}

// awaitingAngleFinish: vertex and first ray are placed, waiting for the
// second ray endpoint.
type awaitingAngleFinish struct {
	vertex, ray geom.Point
}

// awaitingAngleLabel: both rays are placed and the angle is computed;
// the element commits only once the label is confirmed.
type awaitingAngleLabel struct {
	vertex       geom.Point
	start, end   float64
	defaultLabel string
}

// movingSelection drags the selected element by the pointer delta.
type movingSelection struct {
	id    int64
	last  geom.Point
	moved bool
}

// resizingSelection drags the bottom-right corner of the selected
// rectangle.
type resizingSelection struct {
	id    int64
	moved bool
}

// textEntry is an open inline text surface, either creating a new text
// element or editing an existing one (editID != 0).
type textEntry struct {
	at     geom.Point
	editID int64
	buffer string
}

func (idle) isGesture()                 {}
func (*dragShape) isGesture()           {}
func (*freehand) isGesture()            {}
func (*collectingVertices) isGesture()  {}
func (*awaitingAngleRay) isGesture()    {}
func (*awaitingAngleFinish) isGesture() {}
func (*awaitingAngleLabel) isGesture()  {}
func (*movingSelection) isGesture()     {}
func (*resizingSelection) isGesture()   {}
func (*textEntry) isGesture()           {}
