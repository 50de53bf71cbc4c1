// Package model defines the drawable element union and the snapshot
// history the diagram editor works on.
package model

import (
	"sync/atomic"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
)

// Background is the canvas background color. Whiteout boxes and eraser
// strokes paint with it so they occlude prior ink.
const Background = "#ffffff"

// CanvasSize is the side of the fixed square editing canvas.
const CanvasSize = 600.0

// Kind discriminates the element union.
type Kind string

const (
	KindLine     Kind = "line"
	KindRect     Kind = "rect"
	KindWhiteout Kind = "whiteout"
	KindCircle   Kind = "circle"
	KindPolygon  Kind = "polygon"
	KindPencil   Kind = "pencil"
	KindEraser   Kind = "eraser"
	KindText     Kind = "text"
	KindAngle    Kind = "angle"
)

// idCounter hands out session-unique element ids.
var idCounter int64

// NextID returns a fresh element id, unique within the process.
func NextID() int64 { return atomic.AddInt64(&idCounter, 1) }

// ReserveIDs raises the id counter to at least n. Ids restored from a
// document must never collide with freshly assigned ones.
func ReserveIDs(n int64) {
	for {
		cur := atomic.LoadInt64(&idCounter)
		if cur >= n || atomic.CompareAndSwapInt64(&idCounter, cur, n) {
			return
		}
	}
}

// Attrs carries the identity shared by every element kind.
type Attrs struct {
	ID int64 `json:"id"`
}

func (a *Attrs) attrs() *Attrs { return a }

// Element is one drawable unit in a diagram. The set of implementations
// is closed; rendering, hit-testing and transforms switch exhaustively
// over the concrete types.
type Element interface {
	attrs() *Attrs
	Kind() Kind
	// Clone returns a deep copy, safe to mutate independently.
	Clone() Element
	// Translate shifts every coordinate-bearing field.
	Translate(dx, dy float64)
	// Vertices returns the snap targets this element contributes:
	// point lists and rectangle corners. Kinds without a point list
	// contribute none.
	Vertices() []geom.Point
}

// IDOf returns the id of any element.
func IDOf(e Element) int64 { return e.attrs().ID }

// AssignID gives the element a fresh session-unique id. Previews are
// built with a zero id and only get a real one when committed.
func AssignID(e Element) {
	e.attrs().ID = NextID()
}

// Line is a two-point segment.
type Line struct {
	Attrs
	P1, P2 geom.Point
	Color  string
	Width  float64
	Dash   []float64
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Clone() Element {
	c := *l
	c.Dash = append([]float64(nil), l.Dash...)
	return &c
}

func (l *Line) Translate(dx, dy float64) {
	l.P1.X += dx
	l.P1.Y += dy
	l.P2.X += dx
	l.P2.Y += dy
}

func (l *Line) Vertices() []geom.Point { return []geom.Point{l.P1, l.P2} }

// Rect is an axis-aligned rectangle. A whiteout box is a rectangle that
// paints the background color with no visible stroke.
type Rect struct {
	Attrs
	X, Y, W, H float64
	Color      string
	Fill       string
	Width      float64
	Whiteout   bool
}

func (r *Rect) Kind() Kind {
	if r.Whiteout {
		return KindWhiteout
	}
	return KindRect
}

func (r *Rect) Clone() Element {
	c := *r
	return &c
}

func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

func (r *Rect) Vertices() []geom.Point {
	return []geom.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X, Y: r.Y + r.H},
		{X: r.X + r.W, Y: r.Y + r.H},
	}
}

// Circle is a center-radius circle.
type Circle struct {
	Attrs
	CX, CY, R float64
	Color     string
	Fill      string
	Width     float64
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Clone() Element {
	cp := *c
	return &cp
}

func (c *Circle) Translate(dx, dy float64) {
	c.CX += dx
	c.CY += dy
}

func (c *Circle) Vertices() []geom.Point { return nil }

// Polygon is a closed, stroke-only point list (a triangle is the
// three-point case).
type Polygon struct {
	Attrs
	Points []geom.Point
	Color  string
	Width  float64
}

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) Clone() Element {
	c := *p
	c.Points = append([]geom.Point(nil), p.Points...)
	return &c
}

func (p *Polygon) Translate(dx, dy float64) {
	for i := range p.Points {
		p.Points[i].X += dx
		p.Points[i].Y += dy
	}
}

func (p *Polygon) Vertices() []geom.Point { return p.Points }

// Stroke is an open free-hand polyline. An eraser stroke is a wide
// background-colored stroke.
type Stroke struct {
	Attrs
	Points []geom.Point
	Color  string
	Width  float64
	Eraser bool
}

func (s *Stroke) Kind() Kind {
	if s.Eraser {
		return KindEraser
	}
	return KindPencil
}

func (s *Stroke) Clone() Element {
	c := *s
	c.Points = append([]geom.Point(nil), s.Points...)
	return &c
}

func (s *Stroke) Translate(dx, dy float64) {
	for i := range s.Points {
		s.Points[i].X += dx
		s.Points[i].Y += dy
	}
}

func (s *Stroke) Vertices() []geom.Point { return s.Points }

// Text is a string anchored at a baseline point.
type Text struct {
	Attrs
	X, Y     float64
	Content  string
	FontSize float64
	Color    string
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Clone() Element {
	c := *t
	return &c
}

func (t *Text) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

func (t *Text) Vertices() []geom.Point { return nil }

// Angle is an angle annotation: a vertex, two ray directions and an
// integer-degree label.
type Angle struct {
	Attrs
	X, Y       float64
	Start, End float64 // ray angles in radians
	Label      string
	Color      string
	Width      float64
}

func (a *Angle) Kind() Kind { return KindAngle }

func (a *Angle) Clone() Element {
	c := *a
	return &c
}

func (a *Angle) Translate(dx, dy float64) {
	a.X += dx
	a.Y += dy
}

func (a *Angle) Vertices() []geom.Point { return nil }

// CloneAll deep-copies an element slice.
func CloneAll(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i, e := range els {
		out[i] = e.Clone()
	}
	return out
}
