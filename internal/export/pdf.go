// Package export renders a finished diagram to print-oriented formats.
// The portable SVG form stays the editor's boundary contract; PDF and
// PNG are one-way conveniences for paper layouts.
package export

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

const pdfMargin = 36.0 // half inch in points

// PDF writes the element set to an A4 page, scaled to fit inside the
// page margins.
func PDF(els []model.Element, path string) error {
	if len(els) == 0 {
		return fmt.Errorf("export: nothing to export")
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	b := model.BoundsOf(els)
	pageW, pageH := pdf.GetPageSize()
	scale := math.Min((pageW-2*pdfMargin)/b.Width(), (pageH-2*pdfMargin)/b.Height())
	if scale > 1 {
		scale = 1
	}
	tx := func(v float64) float64 { return (v-b.MinX)*scale + pdfMargin }
	ty := func(v float64) float64 { return (v-b.MinY)*scale + pdfMargin }

	for _, e := range els {
		switch el := e.(type) {
		case *model.Line:
			strokePDF(pdf, el.Color, el.Width*scale, el.Dash)
			pdf.Line(tx(el.P1.X), ty(el.P1.Y), tx(el.P2.X), ty(el.P2.Y))
		case *model.Rect:
			if el.Whiteout {
				pdf.SetFillColor(255, 255, 255)
				pdf.Rect(tx(el.X), ty(el.Y), el.W*scale, el.H*scale, "F")
				continue
			}
			strokePDF(pdf, el.Color, el.Width*scale, nil)
			pdf.Rect(tx(el.X), ty(el.Y), el.W*scale, el.H*scale, "D")
		case *model.Circle:
			strokePDF(pdf, el.Color, el.Width*scale, nil)
			pdf.Circle(tx(el.CX), ty(el.CY), el.R*scale, "D")
		case *model.Polygon:
			strokePDF(pdf, el.Color, el.Width*scale, nil)
			pts := make([]gofpdf.PointType, len(el.Points))
			for i, p := range el.Points {
				pts[i] = gofpdf.PointType{X: tx(p.X), Y: ty(p.Y)}
			}
			pdf.Polygon(pts, "D")
		case *model.Stroke:
			color, width := el.Color, el.Width
			if el.Eraser {
				color, width = "white", model.MinStrokeWidth
			}
			strokePDF(pdf, color, width*scale, nil)
			for i := 1; i < len(el.Points); i++ {
				pdf.Line(tx(el.Points[i-1].X), ty(el.Points[i-1].Y),
					tx(el.Points[i].X), ty(el.Points[i].Y))
			}
		case *model.Text:
			textPDF(pdf, el.Color, el.FontSize*scale, tx(el.X), ty(el.Y), el.Content)
		case *model.Angle:
			strokePDF(pdf, el.Color, el.Width*scale, nil)
			arcPDF(pdf, el, tx, ty)
			if el.Label != "" {
				mid := el.Start + geom.NormalizeAngle(el.End-el.Start)/2
				textPDF(pdf, el.Color, 12*scale,
					tx(el.X+34*math.Cos(mid)), ty(el.Y+34*math.Sin(mid)), el.Label)
			}
		}
	}
	return pdf.OutputFileAndClose(path)
}

func strokePDF(pdf *gofpdf.Fpdf, color string, width float64, dash []float64) {
	c := model.ParseColor(color)
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetLineWidth(math.Max(width, 0.5))
	pdf.SetDashPattern(dash, 0)
}

func textPDF(pdf *gofpdf.Fpdf, color string, size, x, y float64, s string) {
	c := model.ParseColor(color)
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	pdf.SetFont("Helvetica", "", math.Max(size, 6))
	pdf.Text(x, y, s)
}

// arcPDF flattens the annotation arc into short segments; gofpdf's own
// arc primitive uses a y-up angle convention that does not match the
// canvas space.
func arcPDF(pdf *gofpdf.Fpdf, a *model.Angle, tx, ty func(float64) float64) {
	const r = 22.0
	const steps = 16
	delta := geom.NormalizeAngle(a.End - a.Start)
	prevX := a.X + r*math.Cos(a.Start)
	prevY := a.Y + r*math.Sin(a.Start)
	for i := 1; i <= steps; i++ {
		ang := a.Start + delta*float64(i)/steps
		x := a.X + r*math.Cos(ang)
		y := a.Y + r*math.Sin(ang)
		pdf.Line(tx(prevX), ty(prevY), tx(x), ty(y))
		prevX, prevY = x, y
	}
}
