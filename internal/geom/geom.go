// Package geom holds the pure geometry helpers shared by the diagram
// editor: points, distances, bounding boxes and SVG translate parsing.
package geom

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in editor-canvas coordinates (origin top-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
	set                    bool
}

// AddPoint grows the box to include (x, y).
func (b *Bounds) AddPoint(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.set = true
		return
	}
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// AddRect grows the box to include the rectangle at (x, y) sized w by h.
func (b *Bounds) AddRect(x, y, w, h float64) {
	b.AddPoint(x, y)
	b.AddPoint(x+w, y+h)
}

// Empty reports whether no point has been added yet.
func (b Bounds) Empty() bool { return !b.set }

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// NormalizeAngle folds an angular difference into (-π, π].
func NormalizeAngle(d float64) float64 {
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// ParseTranslation extracts the offset of the translate entries in an SVG
// transform attribute. Missing, unsupported or malformed input is a
// legitimate zero offset, never an error. Multiple translate entries
// accumulate.
func ParseTranslation(transform string) Point {
	var off Point
	for _, t := range strings.Split(transform, ")") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		d := strings.SplitN(t, "(", 2)
		if len(d) != 2 {
			continue
		}
		if strings.ToLower(strings.TrimSpace(d[0])) != "translate" {
			continue
		}
		nums := SplitNumbers(d[1])
		switch len(nums) {
		case 1:
			off.X += nums[0]
		case 2:
			off.X += nums[0]
			off.Y += nums[1]
		}
	}
	return off
}

// SplitNumbers parses a whitespace- or comma-separated coordinate list,
// dropping anything that is not a number.
func SplitNumbers(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	return nums
}
