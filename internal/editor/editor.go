package editor

import (
	"fmt"
	"math"
	"strings"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
	"github.com/pyatavikram/ExamGenAi/internal/svgio"
)

// Editor is the single-owner interaction loop of one editing session.
// All mutation happens synchronously on the calling goroutine in
// response to pointer events; nothing here is safe for concurrent use.
type Editor struct {
	elements  []model.Element
	history   *model.History
	tool      Tool
	style     Style
	selected  int64
	g         gesture
	hover     geom.Point
	snapPoint geom.Point
	snapOK    bool
	recovered bool
}

// New opens an editing session seeded from the incoming vector
// document. An empty or unparsable document starts a blank canvas with
// Recovered reporting false.
func New(doc string) *Editor {
	e := &Editor{
		history: model.NewHistory(),
		tool:    ToolSelect,
		style:   DefaultStyle(),
		g:       idle{},
	}
	els, ok := svgio.Decode(doc)
	if ok {
		e.elements = els
		e.history.Seed(els)
	}
	e.recovered = ok
	return e
}

// Recovered reports whether the opening document yielded any content.
func (e *Editor) Recovered() bool { return e.recovered }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool, discarding any in-progress gesture
// buffer of the previous tool.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.g = idle{}
	if t != ToolSelect {
		e.selected = 0
	}
}

// Style returns the current style settings for new elements.
func (e *Editor) Style() Style { return e.style }

func (e *Editor) SetColor(c string)        { e.style.Color = c }
func (e *Editor) SetStrokeWidth(w float64) { e.style.Width = w }
func (e *Editor) SetDash(d []float64)      { e.style.Dash = d }
func (e *Editor) SetFontSize(s float64)    { e.style.FontSize = s }

// Selected returns the id of the selected element, or 0.
func (e *Editor) Selected() int64 { return e.selected }

// Elements returns a copy of the committed element set.
func (e *Editor) Elements() []model.Element { return model.CloneAll(e.elements) }

// PointerDown handles a press at p in canvas coordinates.
func (e *Editor) PointerDown(p geom.Point) {
	if _, ok := e.g.(*awaitingAngleLabel); ok {
		// Label confirmation is pending; the session ignores pointer
		// input until ConfirmAngleLabel or CancelAngle.
		return
	}
	// An open text surface is confirmed, never silently discarded,
	// before the new click is processed.
	if t, ok := e.g.(*textEntry); ok {
		e.commitText(t)
	}

	eff := e.effective(p)
	switch e.tool {
	case ToolSelect:
		if r := e.selectedRect(); r != nil && e.nearHandle(p, r) {
			e.g = &resizingSelection{id: model.IDOf(r)}
			return
		}
		hit := e.hitTest(p)
		if hit == nil {
			e.selected = 0
			e.g = idle{}
			return
		}
		e.selected = model.IDOf(hit)
		e.g = &movingSelection{id: e.selected, last: p}

	case ToolLine, ToolRect, ToolCircle, ToolTriangle, ToolWhiteout:
		e.g = &dragShape{anchor: eff, current: eff}

	case ToolPencil, ToolEraser:
		e.g = &freehand{points: []geom.Point{eff}}

	case ToolPolygon:
		if cv, ok := e.g.(*collectingVertices); ok {
			cv.points = append(cv.points, eff)
		} else {
			e.g = &collectingVertices{points: []geom.Point{eff}}
		}

	case ToolAngle:
		switch g := e.g.(type) {
		case *awaitingAngleRay:
			e.g = &awaitingAngleFinish{vertex: g.vertex, ray: eff}
		case *awaitingAngleFinish:
			start := math.Atan2(g.ray.Y-g.vertex.Y, g.ray.X-g.vertex.X)
			end := math.Atan2(eff.Y-g.vertex.Y, eff.X-g.vertex.X)
			deg := int(math.Round(math.Abs(geom.NormalizeAngle(end-start)) * 180 / math.Pi))
			e.g = &awaitingAngleLabel{
				vertex:       g.vertex,
				start:        start,
				end:          end,
				defaultLabel: fmt.Sprintf("%d°", deg),
			}
		default:
			e.g = &awaitingAngleRay{vertex: eff}
		}

	case ToolText:
		e.g = &textEntry{at: eff}
	}
}

// PointerMove handles movement while the button is held. Moves are
// advisory: they update previews and live drag state but never commit.
func (e *Editor) PointerMove(p geom.Point) {
	eff := e.effective(p)
	e.hover = eff
	switch g := e.g.(type) {
	case *dragShape:
		g.current = eff
	case *freehand:
		g.points = append(g.points, eff)
	case *movingSelection:
		if el := e.find(g.id); el != nil {
			el.Translate(eff.X-g.last.X, eff.Y-g.last.Y)
			g.last = eff
			g.moved = true
		}
	case *resizingSelection:
		if r, ok := e.find(g.id).(*model.Rect); ok {
			r.W = math.Max(eff.X-r.X, MinShapeSize)
			r.H = math.Max(eff.Y-r.Y, MinShapeSize)
			g.moved = true
		}
	}
}

// Hover handles movement with no button held: it refreshes the snap
// indicator and the rubber-band previews of click-driven gestures.
func (e *Editor) Hover(p geom.Point) {
	e.hover = e.effective(p)
}

// PointerUp completes the gesture. The release position is the
// authoritative source of the committed geometry.
func (e *Editor) PointerUp(p geom.Point) {
	eff := e.effective(p)
	switch g := e.g.(type) {
	case *dragShape:
		if el := e.buildDrag(g.anchor, eff); el != nil {
			e.commitNew(el)
		}
		e.g = idle{}
	case *freehand:
		pts := append(g.points, eff)
		if len(dedupe(pts)) >= 2 {
			e.commitNew(e.buildStroke(pts))
		}
		e.g = idle{}
	case *movingSelection:
		if g.moved {
			e.history.Commit(e.elements)
		}
		e.g = idle{}
	case *resizingSelection:
		if g.moved {
			e.history.Commit(e.elements)
		}
		e.g = idle{}
	}
}

// DoubleClick closes a pending polygon, or opens an existing text
// element for editing under the select tool.
func (e *Editor) DoubleClick(p geom.Point) {
	switch e.tool {
	case ToolPolygon:
		cv, ok := e.g.(*collectingVertices)
		if !ok {
			return
		}
		pts := dedupe(cv.points)
		if len(pts) < 3 {
			return
		}
		e.commitNew(&model.Polygon{Points: pts, Color: e.style.Color, Width: e.style.Width})
		e.g = idle{}
	case ToolSelect:
		if t, ok := e.hitTest(p).(*model.Text); ok {
			e.selected = model.IDOf(t)
			e.g = &textEntry{
				at:     geom.Point{X: t.X, Y: t.Y},
				editID: model.IDOf(t),
				buffer: t.Content,
			}
		}
	}
}

// PendingText reports an open text surface: its anchor, current buffer
// and whether one is open at all.
func (e *Editor) PendingText() (at geom.Point, content string, open bool) {
	t, ok := e.g.(*textEntry)
	if !ok {
		return geom.Point{}, "", false
	}
	return t.at, t.buffer, true
}

// SetPendingText mirrors the text surface content into the session so
// an auto-confirm triggered by a later click uses the latest input.
func (e *Editor) SetPendingText(s string) {
	if t, ok := e.g.(*textEntry); ok {
		t.buffer = s
	}
}

// ConfirmText commits the open text surface.
func (e *Editor) ConfirmText() {
	if t, ok := e.g.(*textEntry); ok {
		e.commitText(t)
	}
}

func (e *Editor) commitText(t *textEntry) {
	defer func() { e.g = idle{} }()
	content := strings.TrimSpace(t.buffer)
	if t.editID != 0 {
		el, ok := e.find(t.editID).(*model.Text)
		if !ok {
			return
		}
		if content == "" {
			e.remove(t.editID)
			e.selected = 0
		} else {
			el.Content = content
		}
		e.history.Commit(e.elements)
		return
	}
	if content == "" {
		// A new entry confirmed empty commits nothing.
		return
	}
	e.commitNew(&model.Text{
		X: t.at.X, Y: t.at.Y,
		Content:  content,
		FontSize: e.style.FontSize,
		Color:    e.style.Color,
	})
}

// PendingAngleLabel reports the computed default label while the angle
// gesture awaits confirmation.
func (e *Editor) PendingAngleLabel() (string, bool) {
	g, ok := e.g.(*awaitingAngleLabel)
	if !ok {
		return "", false
	}
	return g.defaultLabel, true
}

// ConfirmAngleLabel commits the pending angle annotation. A blank label
// is allowed; only CancelAngle aborts the element.
func (e *Editor) ConfirmAngleLabel(label string) {
	g, ok := e.g.(*awaitingAngleLabel)
	if !ok {
		return
	}
	e.commitNew(&model.Angle{
		X: g.vertex.X, Y: g.vertex.Y,
		Start: g.start, End: g.end,
		Label: label,
		Color: e.style.Color,
		Width: e.style.Width,
	})
	e.g = idle{}
}

// CancelAngle aborts the pending angle gesture back to its first step.
func (e *Editor) CancelAngle() {
	if _, ok := e.g.(*awaitingAngleLabel); ok {
		e.g = idle{}
	}
}

// Undo steps the session back one snapshot.
func (e *Editor) Undo() {
	els, ok := e.history.Undo()
	if !ok {
		return
	}
	e.elements = els
	e.selected = 0
	e.g = idle{}
}

// Redo re-applies the next snapshot if one exists.
func (e *Editor) Redo() {
	els, ok := e.history.Redo()
	if !ok {
		return
	}
	e.elements = els
	e.selected = 0
	e.g = idle{}
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Confirm serializes the current element set as the portable document
// handed back to the caller.
func (e *Editor) Confirm() string {
	return svgio.Encode(e.elements)
}

// Render returns the elements to draw this frame: the committed set
// plus any live preview of the in-progress gesture. Preview elements
// carry a zero id.
func (e *Editor) Render() []model.Element {
	out := append([]model.Element(nil), e.elements...)
	switch g := e.g.(type) {
	case *dragShape:
		if el := e.buildDrag(g.anchor, g.current); el != nil {
			out = append(out, el)
		}
	case *freehand:
		if len(g.points) >= 2 {
			out = append(out, e.buildStroke(g.points))
		}
	case *collectingVertices:
		pts := append(append([]geom.Point(nil), g.points...), e.hover)
		out = append(out, &model.Stroke{Points: pts, Color: e.style.Color, Width: e.style.Width})
	case *awaitingAngleRay:
		out = append(out, &model.Line{P1: g.vertex, P2: e.hover, Color: e.style.Color, Width: 1})
	case *awaitingAngleFinish:
		out = append(out,
			&model.Line{P1: g.vertex, P2: g.ray, Color: e.style.Color, Width: 1},
			&model.Line{P1: g.vertex, P2: e.hover, Color: e.style.Color, Width: 1})
	}
	return out
}

// SnapIndicator returns the vertex the pointer is currently clamped to.
func (e *Editor) SnapIndicator() (geom.Point, bool) {
	return e.snapPoint, e.snapOK
}

// effective clamps p to the nearest existing vertex within SnapRadius.
// The element being moved or resized does not snap to itself.
func (e *Editor) effective(p geom.Point) geom.Point {
	exclude := int64(0)
	switch g := e.g.(type) {
	case *movingSelection:
		exclude = g.id
	case *resizingSelection:
		exclude = g.id
	}
	best := SnapRadius
	var out geom.Point
	found := false
	for _, el := range e.elements {
		if exclude != 0 && model.IDOf(el) == exclude {
			continue
		}
		for _, v := range el.Vertices() {
			if d := geom.Distance(p, v); d <= best {
				best, out, found = d, v, true
			}
		}
	}
	e.snapOK = found
	if found {
		e.snapPoint = out
		return out
	}
	return p
}

// buildDrag turns a completed (or in-progress) single-drag gesture into
// an element, or nil for a degenerate click.
func (e *Editor) buildDrag(a, c geom.Point) model.Element {
	if geom.Distance(a, c) < minDrag {
		return nil
	}
	switch e.tool {
	case ToolLine:
		return &model.Line{P1: a, P2: c, Color: e.style.Color, Width: e.style.Width,
			Dash: append([]float64(nil), e.style.Dash...)}
	case ToolRect:
		x, y, w, h := cornerBox(a, c)
		return &model.Rect{X: x, Y: y, W: w, H: h,
			Color: e.style.Color, Fill: "none", Width: e.style.Width}
	case ToolWhiteout:
		x, y, w, h := cornerBox(a, c)
		return &model.Rect{X: x, Y: y, W: w, H: h,
			Color: "none", Fill: model.Background, Whiteout: true}
	case ToolCircle:
		return &model.Circle{CX: a.X, CY: a.Y, R: geom.Distance(a, c),
			Color: e.style.Color, Fill: "none", Width: e.style.Width}
	case ToolTriangle:
		// Isoceles triangle inscribed in the drag box, apex centered
		// on the top edge.
		x, y, w, h := cornerBox(a, c)
		return &model.Polygon{
			Points: []geom.Point{
				{X: x + w/2, Y: y},
				{X: x + w, Y: y + h},
				{X: x, Y: y + h},
			},
			Color: e.style.Color, Width: e.style.Width,
		}
	}
	return nil
}

func (e *Editor) buildStroke(pts []geom.Point) *model.Stroke {
	s := &model.Stroke{Points: dedupe(pts), Color: e.style.Color, Width: e.style.Width}
	if e.tool == ToolEraser {
		s.Color = model.Background
		s.Width = EraserWidth
		s.Eraser = true
	}
	return s
}

// commitNew assigns the element its id, appends it and records exactly
// one history entry.
func (e *Editor) commitNew(el model.Element) {
	model.AssignID(el)
	e.elements = append(e.elements, el)
	e.history.Commit(e.elements)
}

func (e *Editor) find(id int64) model.Element {
	for _, el := range e.elements {
		if model.IDOf(el) == id {
			return el
		}
	}
	return nil
}

func (e *Editor) remove(id int64) {
	for i, el := range e.elements {
		if model.IDOf(el) == id {
			e.elements = append(e.elements[:i], e.elements[i+1:]...)
			return
		}
	}
}

// cornerBox normalizes two drag corners into a top-left origin and
// non-negative, minimum-clamped extent.
func cornerBox(a, c geom.Point) (x, y, w, h float64) {
	x = math.Min(a.X, c.X)
	y = math.Min(a.Y, c.Y)
	w = math.Max(math.Abs(c.X-a.X), MinShapeSize)
	h = math.Max(math.Abs(c.Y-a.Y), MinShapeSize)
	return
}

// dedupe drops consecutive (near-)duplicate points, so the extra downs
// of a closing double-click do not distort a polygon or stroke.
func dedupe(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if n := len(out); n > 0 && geom.Distance(out[n-1], p) < 1 {
			continue
		}
		out = append(out, p)
	}
	return out
}
