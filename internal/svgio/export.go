package svgio

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

const (
	// ExportPadding is the margin added around the tight content box.
	ExportPadding = 10.0
	// arcRadius and labelRadius place the flattened angle annotation
	// arc and its degree label relative to the vertex.
	arcRadius   = 22.0
	labelRadius = 34.0
)

// Encode serializes the element set as a portable SVG document. The
// viewport is the padded tight bounding box of the content, not the
// editing canvas, so the export is cropped regardless of where the
// diagram was drawn. The document carries the structured model in a
// metadata block followed by flattened static shapes any SVG renderer
// can display.
func Encode(els []model.Element) string {
	b := model.BoundsOf(els)
	minX := b.MinX - ExportPadding
	minY := b.MinY - ExportPadding
	w := b.Width() + 2*ExportPadding
	h := b.Height() + 2*ExportPadding

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%s %s %s %s">`+"\n",
		w, h, num(minX), num(minY), num(w), num(h))

	raw, err := model.MarshalElements(els)
	if err == nil {
		body, _ := json.Marshal(payload{DocID: uuid.NewString(), Elements: raw})
		fmt.Fprintf(&sb, `<metadata id="%s">`, MetadataID)
		xml.EscapeText(&sb, body)
		sb.WriteString("</metadata>\n")
	}

	for _, e := range els {
		writeShape(&sb, e)
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeShape(sb *strings.Builder, e model.Element) {
	switch el := e.(type) {
	case *model.Line:
		fmt.Fprintf(sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(el.P1.X), num(el.P1.Y), num(el.P2.X), num(el.P2.Y),
			el.Color, num(el.Width), dashAttr(el.Dash))
	case *model.Rect:
		stroke, fill := el.Color, el.Fill
		if el.Whiteout {
			stroke, fill = "none", model.Background
		}
		if fill == "" {
			fill = "none"
		}
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" stroke="%s" fill="%s" stroke-width="%s"/>`+"\n",
			num(el.X), num(el.Y), num(el.W), num(el.H), stroke, fill, num(el.Width))
	case *model.Circle:
		fill := el.Fill
		if fill == "" {
			fill = "none"
		}
		fmt.Fprintf(sb, `<circle cx="%s" cy="%s" r="%s" stroke="%s" fill="%s" stroke-width="%s"/>`+"\n",
			num(el.CX), num(el.CY), num(el.R), el.Color, fill, num(el.Width))
	case *model.Polygon:
		fmt.Fprintf(sb, `<polygon points="%s" stroke="%s" fill="none" stroke-width="%s"/>`+"\n",
			pointsAttr(el.Points), el.Color, num(el.Width))
	case *model.Stroke:
		color, width := el.Color, el.Width
		if el.Eraser {
			color = model.Background
		}
		fmt.Fprintf(sb, `<polyline points="%s" stroke="%s" fill="none" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			pointsAttr(el.Points), color, num(width))
	case *model.Text:
		fmt.Fprintf(sb, `<text x="%s" y="%s" font-size="%s" fill="%s">`,
			num(el.X), num(el.Y), num(el.FontSize), textColor(el.Color))
		xml.EscapeText(sb, []byte(el.Content))
		sb.WriteString("</text>\n")
	case *model.Angle:
		writeAngle(sb, el)
	}
}

// writeAngle flattens an angle annotation into an arc path between the
// two rays plus the degree label on the bisector.
func writeAngle(sb *strings.Builder, a *model.Angle) {
	delta := geom.NormalizeAngle(a.End - a.Start)
	sweep := 1
	if delta < 0 {
		sweep = 0
	}
	x1 := a.X + arcRadius*math.Cos(a.Start)
	y1 := a.Y + arcRadius*math.Sin(a.Start)
	x2 := a.X + arcRadius*math.Cos(a.End)
	y2 := a.Y + arcRadius*math.Sin(a.End)
	fmt.Fprintf(sb, `<path d="M %s %s A %s %s 0 0 %d %s %s" stroke="%s" fill="none" stroke-width="%s"/>`+"\n",
		num(x1), num(y1), num(arcRadius), num(arcRadius), sweep, num(x2), num(y2),
		a.Color, num(a.Width))
	if a.Label != "" {
		mid := a.Start + delta/2
		lx := a.X + labelRadius*math.Cos(mid)
		ly := a.Y + labelRadius*math.Sin(mid)
		fmt.Fprintf(sb, `<text x="%s" y="%s" font-size="12" fill="%s">`,
			num(lx), num(ly), textColor(a.Color))
		xml.EscapeText(sb, []byte(a.Label))
		sb.WriteString("</text>\n")
	}
}

func pointsAttr(pts []geom.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func dashAttr(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = num(d)
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
}

func textColor(c string) string {
	if c == "" {
		return "black"
	}
	return c
}

// num formats a coordinate without trailing zero noise.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
