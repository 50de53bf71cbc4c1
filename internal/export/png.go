package export

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

const pngPadding = 16.0

// PNG rasterizes the element set, cropped to its padded bounding box.
func PNG(els []model.Element, path string) error {
	if len(els) == 0 {
		return fmt.Errorf("export: nothing to export")
	}
	b := model.BoundsOf(els)
	w := int(math.Ceil(b.Width() + 2*pngPadding))
	h := int(math.Ceil(b.Height() + 2*pngPadding))

	dc := gg.NewContext(w, h)
	dc.SetHexColor(model.Background)
	dc.Clear()

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("export: parse font: %v", err)
	}

	tx := func(v float64) float64 { return v - b.MinX + pngPadding }
	ty := func(v float64) float64 { return v - b.MinY + pngPadding }

	for _, e := range els {
		switch el := e.(type) {
		case *model.Line:
			strokePNG(dc, el.Color, el.Width, el.Dash)
			dc.DrawLine(tx(el.P1.X), ty(el.P1.Y), tx(el.P2.X), ty(el.P2.Y))
			dc.Stroke()
		case *model.Rect:
			if el.Whiteout {
				dc.SetHexColor(model.Background)
				dc.DrawRectangle(tx(el.X), ty(el.Y), el.W, el.H)
				dc.Fill()
				continue
			}
			strokePNG(dc, el.Color, el.Width, nil)
			dc.DrawRectangle(tx(el.X), ty(el.Y), el.W, el.H)
			dc.Stroke()
		case *model.Circle:
			strokePNG(dc, el.Color, el.Width, nil)
			dc.DrawCircle(tx(el.CX), ty(el.CY), el.R)
			dc.Stroke()
		case *model.Polygon:
			strokePNG(dc, el.Color, el.Width, nil)
			for i, p := range el.Points {
				if i == 0 {
					dc.MoveTo(tx(p.X), ty(p.Y))
				} else {
					dc.LineTo(tx(p.X), ty(p.Y))
				}
			}
			dc.ClosePath()
			dc.Stroke()
		case *model.Stroke:
			color, width := el.Color, el.Width
			if el.Eraser {
				color = model.Background
			}
			strokePNG(dc, color, width, nil)
			for i, p := range el.Points {
				if i == 0 {
					dc.MoveTo(tx(p.X), ty(p.Y))
				} else {
					dc.LineTo(tx(p.X), ty(p.Y))
				}
			}
			dc.Stroke()
		case *model.Text:
			setFace(dc, ttf, el.FontSize)
			dc.SetColor(model.ParseColor(el.Color))
			dc.DrawString(el.Content, tx(el.X), ty(el.Y))
		case *model.Angle:
			strokePNG(dc, el.Color, el.Width, nil)
			delta := geom.NormalizeAngle(el.End - el.Start)
			dc.DrawArc(tx(el.X), ty(el.Y), 22, el.Start, el.Start+delta)
			dc.Stroke()
			if el.Label != "" {
				setFace(dc, ttf, 12)
				dc.SetColor(model.ParseColor(el.Color))
				mid := el.Start + delta/2
				dc.DrawString(el.Label, tx(el.X+34*math.Cos(mid)), ty(el.Y+34*math.Sin(mid)))
			}
		}
	}
	return dc.SavePNG(path)
}

func strokePNG(dc *gg.Context, color string, width float64, dash []float64) {
	dc.SetColor(model.ParseColor(color))
	dc.SetLineWidth(math.Max(width, model.MinStrokeWidth))
	if len(dash) > 0 {
		dc.SetDash(dash...)
	} else {
		dc.SetDash()
	}
}

func setFace(dc *gg.Context, ttf *truetype.Font, size float64) {
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    math.Max(size, 6),
		DPI:     72,
		Hinting: font.HintingFull,
	}))
}
