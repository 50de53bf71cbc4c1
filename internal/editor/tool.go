// Package editor owns the interactive session of the diagram editor:
// the active element set, the snapshot history, the tool selection and
// the pointer-driven gesture state machine.
package editor

// Tool is the active drawing tool. Exactly one tool is active at a
// time; transitions happen only through SetTool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRect
	ToolCircle
	ToolTriangle
	ToolPolygon
	ToolAngle
	ToolPencil
	ToolText
	ToolEraser
	ToolWhiteout
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolTriangle:
		return "triangle"
	case ToolPolygon:
		return "polygon"
	case ToolAngle:
		return "angle"
	case ToolPencil:
		return "pencil"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	case ToolWhiteout:
		return "whiteout"
	}
	return "unknown"
}

// Style holds the settings applied to newly created elements. Changing
// style never touches existing elements.
type Style struct {
	Color    string
	Width    float64
	Dash     []float64
	FontSize float64
}

// DefaultStyle is the style a fresh session starts with.
func DefaultStyle() Style {
	return Style{Color: "black", Width: 2, FontSize: 16}
}

const (
	// SnapRadius is the pixel radius within which pointer input clamps
	// to the nearest existing vertex.
	SnapRadius = 8.0
	// MinShapeSize clamps degenerate rectangle-like drags.
	MinShapeSize = 10.0
	// EraserWidth is the fixed wide width of eraser strokes,
	// independent of the current style settings.
	EraserWidth = 24.0
	// hitTolerance is the proximity used by point-list hit tests.
	hitTolerance = 8.0
	// handleSize is the resize hot-zone around a selected rectangle's
	// bottom-right corner.
	handleSize = 12.0
	// minDrag separates a click from a drag; a release closer than
	// this to its anchor creates nothing.
	minDrag = 2.0
)
