package model

import "math"

const (
	// MaxNormalizeScale caps the fit-to-canvas scale so a degenerate or
	// single-point import is not exploded.
	MaxNormalizeScale = 10.0
	// MinStrokeWidth keeps thin imports visible after scaling.
	MinStrokeWidth = 1.0
	// MinFontSize keeps scaled-down labels legible.
	MinFontSize = 12.0
)

// NormalizeToFit rescales els in place so their bounding box fills the
// square canvas of the given size, minus padding on each side, and
// centers the result. Stroke widths and font sizes scale along, floored
// so content stays visible.
func NormalizeToFit(els []Element, canvasSize, padding float64) {
	if len(els) == 0 {
		return
	}
	b := BoundsOf(els)
	target := canvasSize - 2*padding
	if target <= 0 {
		return
	}
	scale := MaxNormalizeScale
	if b.Width() > 0 {
		scale = math.Min(scale, target/b.Width())
	}
	if b.Height() > 0 {
		scale = math.Min(scale, target/b.Height())
	}
	offX := (canvasSize-b.Width()*scale)/2 - b.MinX*scale
	offY := (canvasSize-b.Height()*scale)/2 - b.MinY*scale

	sx := func(v float64) float64 { return v*scale + offX }
	sy := func(v float64) float64 { return v*scale + offY }

	for _, e := range els {
		switch el := e.(type) {
		case *Line:
			el.P1.X, el.P1.Y = sx(el.P1.X), sy(el.P1.Y)
			el.P2.X, el.P2.Y = sx(el.P2.X), sy(el.P2.Y)
			el.Width = math.Max(el.Width*scale, MinStrokeWidth)
		case *Rect:
			el.X, el.Y = sx(el.X), sy(el.Y)
			el.W *= scale
			el.H *= scale
			el.Width = math.Max(el.Width*scale, MinStrokeWidth)
		case *Circle:
			el.CX, el.CY = sx(el.CX), sy(el.CY)
			el.R *= scale
			el.Width = math.Max(el.Width*scale, MinStrokeWidth)
		case *Polygon:
			for i := range el.Points {
				el.Points[i].X = sx(el.Points[i].X)
				el.Points[i].Y = sy(el.Points[i].Y)
			}
			el.Width = math.Max(el.Width*scale, MinStrokeWidth)
		case *Stroke:
			for i := range el.Points {
				el.Points[i].X = sx(el.Points[i].X)
				el.Points[i].Y = sy(el.Points[i].Y)
			}
			el.Width = math.Max(el.Width*scale, MinStrokeWidth)
		case *Text:
			el.X, el.Y = sx(el.X), sy(el.Y)
			el.FontSize = math.Max(el.FontSize*scale, MinFontSize)
		case *Angle:
			el.X, el.Y = sx(el.X), sy(el.Y)
			el.Width = math.Max(el.Width*scale, MinStrokeWidth)
		}
	}
}
