package editor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyatavikram/ExamGenAi/internal/editor"
	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
	"github.com/pyatavikram/ExamGenAi/internal/svgio"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func blank() *editor.Editor { return editor.New("") }

// drag performs a full press-move-release with the current tool.
func drag(e *editor.Editor, from, to geom.Point) {
	e.PointerDown(from)
	e.PointerMove(to)
	e.PointerUp(to)
}

func TestNewBlankSession(t *testing.T) {
	e := blank()
	assert.False(t, e.Recovered())
	assert.Empty(t, e.Elements())
	assert.False(t, e.CanUndo())
	assert.Equal(t, editor.ToolSelect, e.Tool())
}

func TestNewFromExportedDocument(t *testing.T) {
	doc := svgio.Encode([]model.Element{
		&model.Rect{Attrs: model.Attrs{ID: 1}, X: 50, Y: 60, W: 100, H: 40, Color: "black", Fill: "none", Width: 2},
	})
	e := editor.New(doc)
	assert.True(t, e.Recovered())
	require.Len(t, e.Elements(), 1)

	// The imported set is the first undoable step.
	e.Undo()
	assert.Empty(t, e.Elements())
	e.Redo()
	assert.Len(t, e.Elements(), 1)
}

func TestReopenedDocumentKeepsIDsUnique(t *testing.T) {
	// An angle whose id is far ahead of the session counter, as happens
	// when a document is reopened in a fresh process.
	angleID := model.NextID() + 1000
	doc := svgio.Encode([]model.Element{
		&model.Angle{Attrs: model.Attrs{ID: angleID}, X: 420, Y: 420, Start: 0, End: 1.2,
			Label: "69°", Color: "black", Width: 2},
	})

	e := editor.New(doc)
	require.True(t, e.Recovered())

	e.SetTool(editor.ToolLine)
	drag(e, pt(10, 10), pt(110, 110))

	els := e.Elements()
	require.Len(t, els, 2)
	line := els[1].(*model.Line)
	assert.NotEqual(t, angleID, model.IDOf(line))

	// Selecting and dragging the new line must move the line, not the
	// restored angle.
	e.SetTool(editor.ToolSelect)
	e.PointerDown(pt(10, 10))
	e.PointerMove(pt(40, 40))
	e.PointerUp(pt(40, 40))

	els = e.Elements()
	a := els[0].(*model.Angle)
	assert.Equal(t, 420.0, a.X)
	assert.Equal(t, 420.0, a.Y)
	assert.Equal(t, pt(40, 40), els[1].(*model.Line).P1)
}

func TestDragToolsBuildShapes(t *testing.T) {
	e := blank()

	e.SetTool(editor.ToolLine)
	drag(e, pt(10, 20), pt(110, 80))

	e.SetTool(editor.ToolRect)
	drag(e, pt(300, 300), pt(230, 240)) // dragged up-left: corners normalize

	e.SetTool(editor.ToolCircle)
	drag(e, pt(450, 100), pt(480, 140))

	e.SetTool(editor.ToolTriangle)
	drag(e, pt(400, 400), pt(440, 430))

	e.SetTool(editor.ToolWhiteout)
	drag(e, pt(500, 500), pt(540, 530))

	els := e.Elements()
	require.Len(t, els, 5)

	line := els[0].(*model.Line)
	assert.Equal(t, pt(10, 20), line.P1)
	assert.Equal(t, pt(110, 80), line.P2)

	rect := els[1].(*model.Rect)
	assert.Equal(t, 230.0, rect.X)
	assert.Equal(t, 240.0, rect.Y)
	assert.Equal(t, 70.0, rect.W)
	assert.Equal(t, 60.0, rect.H)
	assert.False(t, rect.Whiteout)

	circle := els[2].(*model.Circle)
	assert.Equal(t, 450.0, circle.CX)
	assert.Equal(t, 100.0, circle.CY)
	assert.Equal(t, 50.0, circle.R)

	tri := els[3].(*model.Polygon)
	require.Len(t, tri.Points, 3)
	assert.Equal(t, pt(420, 400), tri.Points[0]) // apex on top edge
	assert.Equal(t, pt(440, 430), tri.Points[1])
	assert.Equal(t, pt(400, 430), tri.Points[2])

	wo := els[4].(*model.Rect)
	assert.True(t, wo.Whiteout)
	assert.Equal(t, model.KindWhiteout, wo.Kind())
	assert.Equal(t, model.Background, wo.Fill)

	// Every element got its own id and one history entry.
	seen := map[int64]bool{}
	for _, el := range els {
		id := model.IDOf(el)
		assert.NotZero(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestClickWithoutDragCreatesNothing(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolRect)
	e.PointerDown(pt(100, 100))
	e.PointerUp(pt(101, 100)) // below the drag threshold
	assert.Empty(t, e.Elements())
	assert.False(t, e.CanUndo())
}

func TestSnapToExistingVertex(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolLine)
	drag(e, pt(0, 0), pt(100, 0))

	e.Hover(pt(101, 2))
	snap, ok := e.SnapIndicator()
	require.True(t, ok)
	assert.Equal(t, pt(100, 0), snap)

	e.Hover(pt(120, 2))
	_, ok = e.SnapIndicator()
	assert.False(t, ok)

	// A new line started near the endpoint is clamped onto it.
	e.PointerDown(pt(101, 2))
	e.PointerUp(pt(50, 80))
	els := e.Elements()
	require.Len(t, els, 2)
	assert.Equal(t, pt(100, 0), els[1].(*model.Line).P1)
}

func TestPencilStroke(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolPencil)
	e.PointerDown(pt(10, 10))
	e.PointerMove(pt(20, 12))
	e.PointerMove(pt(30, 18))
	e.PointerUp(pt(40, 20))

	els := e.Elements()
	require.Len(t, els, 1)
	s := els[0].(*model.Stroke)
	assert.False(t, s.Eraser)
	assert.Equal(t, model.KindPencil, s.Kind())
	assert.Equal(t, []geom.Point{pt(10, 10), pt(20, 12), pt(30, 18), pt(40, 20)}, s.Points)
	assert.Equal(t, "black", s.Color)
	assert.Equal(t, 2.0, s.Width)
}

func TestEraserIgnoresStyle(t *testing.T) {
	e := blank()
	e.SetColor("red")
	e.SetStrokeWidth(5)
	e.SetTool(editor.ToolEraser)
	e.PointerDown(pt(10, 10))
	e.PointerMove(pt(40, 40))
	e.PointerUp(pt(80, 80))

	els := e.Elements()
	require.Len(t, els, 1)
	s := els[0].(*model.Stroke)
	assert.True(t, s.Eraser)
	assert.Equal(t, model.Background, s.Color)
	assert.Equal(t, editor.EraserWidth, s.Width)
}

func TestPolygonClickCloseCycle(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolPolygon)
	e.PointerDown(pt(0, 0))
	e.PointerDown(pt(40, 0))
	e.PointerDown(pt(20, 30))
	// The closing double-click arrives on top of a final down at the
	// same spot; the duplicate must not become a fourth vertex.
	e.PointerDown(pt(20, 30))
	e.DoubleClick(pt(20, 30))

	els := e.Elements()
	require.Len(t, els, 1)
	poly := els[0].(*model.Polygon)
	assert.Equal(t, []geom.Point{pt(0, 0), pt(40, 0), pt(20, 30)}, poly.Points)
}

func TestPolygonNeedsThreeVertices(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolPolygon)
	e.PointerDown(pt(0, 0))
	e.PointerDown(pt(40, 0))
	e.DoubleClick(pt(40, 0))
	assert.Empty(t, e.Elements())
	assert.False(t, e.CanUndo())
}

func TestToolSwitchDiscardsPendingGesture(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolPolygon)
	e.PointerDown(pt(0, 0))
	e.PointerDown(pt(40, 0))
	e.PointerDown(pt(20, 30))

	e.SetTool(editor.ToolPencil)
	e.SetTool(editor.ToolPolygon)
	e.DoubleClick(pt(20, 30))
	assert.Empty(t, e.Elements())
}

func TestAngleThreeClickFlow(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolAngle)
	e.PointerDown(pt(100, 100)) // vertex
	e.PointerDown(pt(150, 100)) // first ray, along +x
	e.PointerDown(pt(100, 150)) // second ray, along +y

	label, pending := e.PendingAngleLabel()
	require.True(t, pending)
	assert.Equal(t, "90°", label)

	// Pointer input is ignored until the label is resolved.
	e.PointerDown(pt(300, 300))
	_, pending = e.PendingAngleLabel()
	assert.True(t, pending)
	assert.Empty(t, e.Elements())

	e.ConfirmAngleLabel(label)
	els := e.Elements()
	require.Len(t, els, 1)
	a := els[0].(*model.Angle)
	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 100.0, a.Y)
	assert.InDelta(t, 0, a.Start, 1e-9)
	assert.InDelta(t, math.Pi/2, a.End, 1e-9)
	assert.Equal(t, "90°", a.Label)
}

func TestAngleCancelDropsGesture(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolAngle)
	e.PointerDown(pt(100, 100))
	e.PointerDown(pt(150, 100))
	e.PointerDown(pt(100, 150))
	e.CancelAngle()

	_, pending := e.PendingAngleLabel()
	assert.False(t, pending)
	assert.Empty(t, e.Elements())
	assert.False(t, e.CanUndo())
}

func TestMoveSelectionIsOneHistoryEntry(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolRect)
	drag(e, pt(10, 10), pt(60, 60))

	e.SetTool(editor.ToolSelect)
	e.PointerDown(pt(30, 30))
	assert.NotZero(t, e.Selected())
	e.PointerMove(pt(40, 40))
	e.PointerMove(pt(50, 50))
	e.PointerUp(pt(50, 50))

	els := e.Elements()
	require.Len(t, els, 1)
	assert.Equal(t, 30.0, els[0].(*model.Rect).X)

	// One undo reverts the whole drag, not one step per move event.
	e.Undo()
	els = e.Elements()
	require.Len(t, els, 1)
	assert.Equal(t, 10.0, els[0].(*model.Rect).X)
}

func TestClickWithoutMoveCommitsNothing(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolRect)
	drag(e, pt(10, 10), pt(60, 60))

	e.SetTool(editor.ToolSelect)
	e.PointerDown(pt(30, 30))
	e.PointerUp(pt(30, 30))
	assert.NotZero(t, e.Selected())
	assert.False(t, e.CanRedo())

	e.Undo()
	assert.Empty(t, e.Elements()) // only the creation was recorded
}

func TestResizeClampsToMinimum(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolRect)
	drag(e, pt(10, 10), pt(60, 60))

	e.SetTool(editor.ToolSelect)
	e.PointerDown(pt(30, 30))
	e.PointerUp(pt(30, 30))

	// Grab the bottom-right handle and drag past the opposite corner.
	e.PointerDown(pt(60, 60))
	e.PointerMove(pt(0, 0))
	e.PointerUp(pt(0, 0))

	els := e.Elements()
	require.Len(t, els, 1)
	r := els[0].(*model.Rect)
	assert.Equal(t, editor.MinShapeSize, r.W)
	assert.Equal(t, editor.MinShapeSize, r.H)

	e.Undo()
	assert.Equal(t, 50.0, e.Elements()[0].(*model.Rect).W)
}

func TestMissClearsSelection(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolRect)
	drag(e, pt(10, 10), pt(60, 60))

	e.SetTool(editor.ToolSelect)
	e.PointerDown(pt(30, 30))
	e.PointerUp(pt(30, 30))
	require.NotZero(t, e.Selected())

	e.PointerDown(pt(400, 400))
	e.PointerUp(pt(400, 400))
	assert.Zero(t, e.Selected())

	// Switching to a drawing tool also drops the selection.
	e.PointerDown(pt(30, 30))
	e.PointerUp(pt(30, 30))
	require.NotZero(t, e.Selected())
	e.SetTool(editor.ToolLine)
	assert.Zero(t, e.Selected())
}

func TestTextEntryLifecycle(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolText)
	e.PointerDown(pt(50, 50))

	at, content, open := e.PendingText()
	require.True(t, open)
	assert.Equal(t, pt(50, 50), at)
	assert.Empty(t, content)

	e.SetPendingText("  x = 5  ")
	e.ConfirmText()

	els := e.Elements()
	require.Len(t, els, 1)
	txt := els[0].(*model.Text)
	assert.Equal(t, "x = 5", txt.Content)
	assert.Equal(t, 50.0, txt.X)
	assert.Equal(t, 50.0, txt.Y)
	assert.Equal(t, 16.0, txt.FontSize)

	_, _, open = e.PendingText()
	assert.False(t, open)
}

func TestTextAutoConfirmOnNextClick(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolText)
	e.PointerDown(pt(50, 50))
	e.SetPendingText("first")

	// Clicking elsewhere confirms the open surface, then starts a new one.
	e.PointerDown(pt(300, 300))

	els := e.Elements()
	require.Len(t, els, 1)
	assert.Equal(t, "first", els[0].(*model.Text).Content)

	at, content, open := e.PendingText()
	require.True(t, open)
	assert.Equal(t, pt(300, 300), at)
	assert.Empty(t, content)

	// Confirming the second surface empty creates nothing.
	e.ConfirmText()
	assert.Len(t, e.Elements(), 1)
}

func TestTextEditAndDelete(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolText)
	e.PointerDown(pt(50, 50))
	e.SetPendingText("hello")
	e.ConfirmText()

	e.SetTool(editor.ToolSelect)
	e.DoubleClick(pt(60, 45))
	_, content, open := e.PendingText()
	require.True(t, open)
	assert.Equal(t, "hello", content)

	e.SetPendingText("world")
	e.ConfirmText()
	require.Len(t, e.Elements(), 1)
	assert.Equal(t, "world", e.Elements()[0].(*model.Text).Content)

	// Confirming an existing text empty deletes it, undoably.
	e.DoubleClick(pt(60, 45))
	e.SetPendingText("")
	e.ConfirmText()
	assert.Empty(t, e.Elements())

	e.Undo()
	require.Len(t, e.Elements(), 1)
	assert.Equal(t, "world", e.Elements()[0].(*model.Text).Content)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolLine)
	drag(e, pt(0, 0), pt(100, 100))
	drag(e, pt(0, 100), pt(100, 0))
	require.Len(t, e.Elements(), 2)

	e.Undo()
	assert.Len(t, e.Elements(), 1)
	e.Undo()
	assert.Empty(t, e.Elements())
	assert.False(t, e.CanUndo())

	e.Redo()
	e.Redo()
	assert.Len(t, e.Elements(), 2)
	assert.False(t, e.CanRedo())

	// A new commit after undo truncates the redo branch.
	e.Undo()
	drag(e, pt(200, 200), pt(300, 300))
	assert.False(t, e.CanRedo())
	assert.Len(t, e.Elements(), 2)
}

func TestRenderIncludesPreview(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolRect)
	e.PointerDown(pt(10, 10))
	e.PointerMove(pt(80, 90))

	frame := e.Render()
	require.Len(t, frame, 1)
	preview := frame[0].(*model.Rect)
	assert.Zero(t, model.IDOf(preview))
	assert.Equal(t, 70.0, preview.W)
	assert.Equal(t, 80.0, preview.H)
	assert.Empty(t, e.Elements()) // previews never commit

	e.PointerUp(pt(80, 90))
	assert.Len(t, e.Elements(), 1)
}

func TestConfirmRoundTripsThroughDocument(t *testing.T) {
	e := blank()
	e.SetTool(editor.ToolCircle)
	drag(e, pt(200, 200), pt(250, 200))

	doc := e.Confirm()
	els, recovered := svgio.Decode(doc)
	require.True(t, recovered)
	require.Len(t, els, 1)
	c := els[0].(*model.Circle)
	assert.Equal(t, 200.0, c.CX)
	assert.Equal(t, 50.0, c.R)
}
