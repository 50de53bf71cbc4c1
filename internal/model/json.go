package model

import (
	"encoding/json"
	"fmt"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
)

// wireElement is the flat kind-tagged record used to serialize the
// element union. Every variant maps onto a subset of its fields.
type wireElement struct {
	Kind     Kind         `json:"kind"`
	ID       int64        `json:"id"`
	Points   []geom.Point `json:"points,omitempty"`
	X        float64      `json:"x,omitempty"`
	Y        float64      `json:"y,omitempty"`
	W        float64      `json:"w,omitempty"`
	H        float64      `json:"h,omitempty"`
	R        float64      `json:"r,omitempty"`
	Start    float64      `json:"start,omitempty"`
	End      float64      `json:"end,omitempty"`
	Color    string       `json:"color,omitempty"`
	Fill     string       `json:"fill,omitempty"`
	Width    float64      `json:"width,omitempty"`
	Dash     []float64    `json:"dash,omitempty"`
	Content  string       `json:"content,omitempty"`
	FontSize float64      `json:"fontSize,omitempty"`
	Label    string       `json:"label,omitempty"`
}

// MarshalElements serializes the element set to its JSON wire form.
func MarshalElements(els []Element) ([]byte, error) {
	wire := make([]wireElement, 0, len(els))
	for _, e := range els {
		w := wireElement{Kind: e.Kind(), ID: IDOf(e)}
		switch el := e.(type) {
		case *Line:
			w.Points = []geom.Point{el.P1, el.P2}
			w.Color, w.Width, w.Dash = el.Color, el.Width, el.Dash
		case *Rect:
			w.X, w.Y, w.W, w.H = el.X, el.Y, el.W, el.H
			w.Color, w.Fill, w.Width = el.Color, el.Fill, el.Width
		case *Circle:
			w.X, w.Y, w.R = el.CX, el.CY, el.R
			w.Color, w.Fill, w.Width = el.Color, el.Fill, el.Width
		case *Polygon:
			w.Points = el.Points
			w.Color, w.Width = el.Color, el.Width
		case *Stroke:
			w.Points = el.Points
			w.Color, w.Width = el.Color, el.Width
		case *Text:
			w.X, w.Y = el.X, el.Y
			w.Content, w.FontSize, w.Color = el.Content, el.FontSize, el.Color
		case *Angle:
			w.X, w.Y = el.X, el.Y
			w.Start, w.End = el.Start, el.End
			w.Label, w.Color, w.Width = el.Label, el.Color, el.Width
		default:
			return nil, fmt.Errorf("model: unknown element kind %q", e.Kind())
		}
		wire = append(wire, w)
	}
	return json.Marshal(wire)
}

// UnmarshalElements restores an element set from its JSON wire form.
func UnmarshalElements(data []byte) ([]Element, error) {
	var wire []wireElement
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	els := make([]Element, 0, len(wire))
	var maxID int64
	for _, w := range wire {
		if w.ID > maxID {
			maxID = w.ID
		}
		var e Element
		switch w.Kind {
		case KindLine:
			if len(w.Points) < 2 {
				return nil, fmt.Errorf("model: line %d has %d points", w.ID, len(w.Points))
			}
			e = &Line{Attrs: Attrs{ID: w.ID}, P1: w.Points[0], P2: w.Points[1],
				Color: w.Color, Width: w.Width, Dash: w.Dash}
		case KindRect, KindWhiteout:
			e = &Rect{Attrs: Attrs{ID: w.ID}, X: w.X, Y: w.Y, W: w.W, H: w.H,
				Color: w.Color, Fill: w.Fill, Width: w.Width, Whiteout: w.Kind == KindWhiteout}
		case KindCircle:
			e = &Circle{Attrs: Attrs{ID: w.ID}, CX: w.X, CY: w.Y, R: w.R,
				Color: w.Color, Fill: w.Fill, Width: w.Width}
		case KindPolygon:
			if len(w.Points) < 3 {
				return nil, fmt.Errorf("model: polygon %d has %d points", w.ID, len(w.Points))
			}
			e = &Polygon{Attrs: Attrs{ID: w.ID}, Points: w.Points, Color: w.Color, Width: w.Width}
		case KindPencil, KindEraser:
			if len(w.Points) == 0 {
				return nil, fmt.Errorf("model: stroke %d has no points", w.ID)
			}
			e = &Stroke{Attrs: Attrs{ID: w.ID}, Points: w.Points,
				Color: w.Color, Width: w.Width, Eraser: w.Kind == KindEraser}
		case KindText:
			e = &Text{Attrs: Attrs{ID: w.ID}, X: w.X, Y: w.Y,
				Content: w.Content, FontSize: w.FontSize, Color: w.Color}
		case KindAngle:
			e = &Angle{Attrs: Attrs{ID: w.ID}, X: w.X, Y: w.Y,
				Start: w.Start, End: w.End, Label: w.Label, Color: w.Color, Width: w.Width}
		default:
			return nil, fmt.Errorf("model: unknown element kind %q", w.Kind)
		}
		els = append(els, e)
	}
	ReserveIDs(maxID)
	return els, nil
}
