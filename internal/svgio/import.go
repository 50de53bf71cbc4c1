// Package svgio reads and writes the portable SVG form of a diagram.
// Exported documents embed the structured element model in a metadata
// block so they re-import losslessly; foreign SVG is recovered
// best-effort from its raw shape markup.
package svgio

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

// MetadataID marks the metadata element carrying the serialized model.
const MetadataID = "examgen-diagram"

// importPadding is the margin left around normalized fallback imports.
const importPadding = 20.0

// payload is the JSON body of the metadata block.
type payload struct {
	DocID    string          `json:"docId"`
	Elements json.RawMessage `json:"elements"`
}

// Decode parses an incoming vector document into an element set. The
// recovered flag is false when nothing could be salvaged: the caller
// shows an empty canvas instead of failing. A document previously
// exported by Encode round-trips verbatim through its metadata block;
// anything else goes through the raw-markup fallback and is normalized
// into canvas coordinates.
func Decode(doc string) (els []model.Element, recovered bool) {
	if strings.TrimSpace(doc) == "" {
		return nil, false
	}

	var (
		fallback []model.Element
		metaJSON strings.Builder
		inMeta   bool
		textBuf  strings.Builder
		textEl   *model.Text
		offsets  = []geom.Point{{}}
	)

	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			// Partial recovery is preferred over all-or-nothing
			// failure; use whatever parsed before the error.
			if err != io.EOF && len(fallback) == 0 && metaJSON.Len() == 0 {
				return nil, false
			}
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			off := offsets[len(offsets)-1]
			if t.Name.Local == "svg" || t.Name.Local == "g" {
				tr := geom.ParseTranslation(attr(t, "transform"))
				off.X += tr.X
				off.Y += tr.Y
			}
			offsets = append(offsets, off)

			switch t.Name.Local {
			case "metadata":
				if attr(t, "id") == MetadataID {
					inMeta = true
				}
			case "line":
				fallback = append(fallback, importLine(t, off))
			case "polyline":
				if e := importPointList(t, off, false); e != nil {
					fallback = append(fallback, e)
				}
			case "polygon":
				if e := importPointList(t, off, true); e != nil {
					fallback = append(fallback, e)
				}
			case "rect":
				fallback = append(fallback, importRect(t, off))
			case "circle", "ellipse":
				fallback = append(fallback, importCircle(t, off))
			case "text":
				textEl = &model.Text{
					Attrs:    model.Attrs{ID: model.NextID()},
					X:        attrF(t, "x") + off.X,
					Y:        attrF(t, "y") + off.Y,
					FontSize: attrFDefault(t, "font-size", 16),
					Color:    "black",
				}
				textBuf.Reset()
			}
			// Every other leaf kind is skipped: the fallback is
			// best-effort recovery, not a full format decoder.

		case xml.EndElement:
			if len(offsets) > 1 {
				offsets = offsets[:len(offsets)-1]
			}
			switch t.Name.Local {
			case "metadata":
				inMeta = false
			case "text":
				if textEl != nil {
					textEl.Content = strings.TrimSpace(textBuf.String())
					if textEl.Content != "" {
						fallback = append(fallback, textEl)
					}
					textEl = nil
				}
			}

		case xml.CharData:
			if inMeta {
				metaJSON.Write(t)
			}
			if textEl != nil {
				textBuf.Write(t)
			}
		}
	}

	// Structured fast path: already in canvas coordinates.
	if metaJSON.Len() > 0 {
		var p payload
		if err := json.Unmarshal([]byte(metaJSON.String()), &p); err == nil {
			if restored, err := model.UnmarshalElements(p.Elements); err == nil {
				return restored, true
			}
		}
	}

	if len(fallback) == 0 {
		return nil, false
	}
	model.NormalizeToFit(fallback, model.CanvasSize, importPadding)
	return fallback, true
}

func importLine(t xml.StartElement, off geom.Point) *model.Line {
	return &model.Line{
		Attrs: model.Attrs{ID: model.NextID()},
		P1:    geom.Point{X: attrF(t, "x1") + off.X, Y: attrF(t, "y1") + off.Y},
		P2:    geom.Point{X: attrF(t, "x2") + off.X, Y: attrF(t, "y2") + off.Y},
		Color: "black",
		Width: attrFDefault(t, "stroke-width", 2),
	}
}

// importPointList maps an SVG point-list shape onto the model: open
// lists become pencil strokes, closed ones polygons.
func importPointList(t xml.StartElement, off geom.Point, closed bool) model.Element {
	nums := geom.SplitNumbers(attr(t, "points"))
	if len(nums) < 4 || len(nums)%2 != 0 {
		return nil
	}
	pts := make([]geom.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, geom.Point{X: nums[i] + off.X, Y: nums[i+1] + off.Y})
	}
	width := attrFDefault(t, "stroke-width", 2)
	if closed {
		if len(pts) < 3 {
			return nil
		}
		return &model.Polygon{Attrs: model.Attrs{ID: model.NextID()}, Points: pts, Color: "black", Width: width}
	}
	return &model.Stroke{Attrs: model.Attrs{ID: model.NextID()}, Points: pts, Color: "black", Width: width}
}

func importRect(t xml.StartElement, off geom.Point) *model.Rect {
	return &model.Rect{
		Attrs: model.Attrs{ID: model.NextID()},
		X:     attrF(t, "x") + off.X,
		Y:     attrF(t, "y") + off.Y,
		W:     attrF(t, "width"),
		H:     attrF(t, "height"),
		Color: "black",
		Fill:  "none",
		Width: attrFDefault(t, "stroke-width", 2),
	}
}

func importCircle(t xml.StartElement, off geom.Point) *model.Circle {
	r := attrF(t, "r")
	if r == 0 {
		r = attrF(t, "rx")
	}
	return &model.Circle{
		Attrs: model.Attrs{ID: model.NextID()},
		CX:    attrF(t, "cx") + off.X,
		CY:    attrF(t, "cy") + off.Y,
		R:     r,
		Color: "black",
		Fill:  "none",
		Width: attrFDefault(t, "stroke-width", 2),
	}
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attrF(t xml.StartElement, name string) float64 {
	nums := geom.SplitNumbers(attr(t, name))
	if len(nums) == 0 {
		return 0
	}
	return nums[0]
}

func attrFDefault(t xml.StartElement, name string, def float64) float64 {
	if attr(t, name) == "" {
		return def
	}
	return attrF(t, name)
}
