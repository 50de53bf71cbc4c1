package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

// elementObjects projects one element onto fyne canvas primitives.
func elementObjects(e model.Element) []fyne.CanvasObject {
	switch el := e.(type) {
	case *model.Line:
		if len(el.Dash) > 0 {
			return dashedSegments(el.P1, el.P2, el.Dash, model.ParseColor(el.Color), el.Width)
		}
		return []fyne.CanvasObject{segment(el.P1, el.P2, model.ParseColor(el.Color), el.Width)}

	case *model.Rect:
		r := canvas.NewRectangle(color.Transparent)
		if el.Whiteout {
			r.FillColor = model.ParseColor(model.Background)
		} else {
			if el.Fill != "" && el.Fill != "none" {
				r.FillColor = model.ParseColor(el.Fill)
			}
			r.StrokeColor = model.ParseColor(el.Color)
			r.StrokeWidth = float32(el.Width)
		}
		r.Move(fyne.NewPos(float32(el.X), float32(el.Y)))
		r.Resize(fyne.NewSize(float32(el.W), float32(el.H)))
		return []fyne.CanvasObject{r}

	case *model.Circle:
		c := canvas.NewCircle(color.Transparent)
		if el.Fill != "" && el.Fill != "none" {
			c.FillColor = model.ParseColor(el.Fill)
		}
		c.StrokeColor = model.ParseColor(el.Color)
		c.StrokeWidth = float32(el.Width)
		c.Move(fyne.NewPos(float32(el.CX-el.R), float32(el.CY-el.R)))
		c.Resize(fyne.NewSize(float32(2*el.R), float32(2*el.R)))
		return []fyne.CanvasObject{c}

	case *model.Polygon:
		col := model.ParseColor(el.Color)
		objects := make([]fyne.CanvasObject, 0, len(el.Points))
		for i := range el.Points {
			next := el.Points[(i+1)%len(el.Points)]
			objects = append(objects, segment(el.Points[i], next, col, el.Width))
		}
		return objects

	case *model.Stroke:
		col := model.ParseColor(el.Color)
		objects := make([]fyne.CanvasObject, 0, len(el.Points))
		for i := 1; i < len(el.Points); i++ {
			objects = append(objects, segment(el.Points[i-1], el.Points[i], col, el.Width))
		}
		return objects

	case *model.Text:
		t := canvas.NewText(el.Content, model.ParseColor(el.Color))
		t.TextSize = float32(el.FontSize)
		// The model anchors text at the baseline start; canvas.Text
		// positions at the top-left corner.
		t.Move(fyne.NewPos(float32(el.X), float32(el.Y-el.FontSize)))
		return []fyne.CanvasObject{t}

	case *model.Angle:
		return angleObjects(el)
	}
	return nil
}

// angleObjects approximates the annotation arc with short segments and
// places the degree label on the bisector.
func angleObjects(a *model.Angle) []fyne.CanvasObject {
	const arcRadius = 22.0
	const steps = 16
	col := model.ParseColor(a.Color)
	delta := geom.NormalizeAngle(a.End - a.Start)

	objects := make([]fyne.CanvasObject, 0, steps+1)
	prev := arcPoint(a, arcRadius, a.Start)
	for i := 1; i <= steps; i++ {
		next := arcPoint(a, arcRadius, a.Start+delta*float64(i)/steps)
		objects = append(objects, segment(prev, next, col, a.Width))
		prev = next
	}
	if a.Label != "" {
		mid := a.Start + delta/2
		t := canvas.NewText(a.Label, col)
		t.TextSize = 12
		at := arcPoint(a, 34, mid)
		t.Move(fyne.NewPos(float32(at.X), float32(at.Y-12)))
		objects = append(objects, t)
	}
	return objects
}

func arcPoint(a *model.Angle, r, ang float64) geom.Point {
	return geom.Point{X: a.X + r*math.Cos(ang), Y: a.Y + r*math.Sin(ang)}
}

// selectionObjects outlines the selected element and, for rectangle
// kinds, marks the bottom-right resize handle.
func selectionObjects(e model.Element) []fyne.CanvasObject {
	b := model.BoundsOf([]model.Element{e})
	hi := color.NRGBA{R: 30, G: 110, B: 230, A: 255}

	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeColor = hi
	outline.StrokeWidth = 1
	outline.Move(fyne.NewPos(float32(b.MinX-3), float32(b.MinY-3)))
	outline.Resize(fyne.NewSize(float32(b.Width()+6), float32(b.Height()+6)))
	objects := []fyne.CanvasObject{outline}

	if r, ok := e.(*model.Rect); ok {
		handle := canvas.NewRectangle(hi)
		handle.Move(fyne.NewPos(float32(r.X+r.W-4), float32(r.Y+r.H-4)))
		handle.Resize(fyne.NewSize(8, 8))
		objects = append(objects, handle)
	}
	return objects
}

func segment(p1, p2 geom.Point, col color.Color, width float64) *canvas.Line {
	l := canvas.NewLine(col)
	l.StrokeWidth = float32(width)
	l.Position1 = fyne.NewPos(float32(p1.X), float32(p1.Y))
	l.Position2 = fyne.NewPos(float32(p2.X), float32(p2.Y))
	return l
}

// dashedSegments renders a dashed line as alternating drawn gaps; fyne
// lines have no native dash support.
func dashedSegments(p1, p2 geom.Point, dash []float64, col color.Color, width float64) []fyne.CanvasObject {
	total := geom.Distance(p1, p2)
	if total == 0 {
		return nil
	}
	ux := (p2.X - p1.X) / total
	uy := (p2.Y - p1.Y) / total

	var objects []fyne.CanvasObject
	pos, di, draw := 0.0, 0, true
	for pos < total {
		step := dash[di%len(dash)]
		end := math.Min(pos+step, total)
		if draw {
			a := geom.Point{X: p1.X + ux*pos, Y: p1.Y + uy*pos}
			b := geom.Point{X: p1.X + ux*end, Y: p1.Y + uy*end}
			objects = append(objects, segment(a, b, col, width))
		}
		pos = end
		di++
		draw = !draw
	}
	return objects
}
