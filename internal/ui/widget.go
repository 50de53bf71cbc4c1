package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/pyatavikram/ExamGenAi/internal/editor"
	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

// SketchWidget is the interactive drawing surface. It owns no state of
// its own: every pointer event is forwarded to the editing session and
// the renderer projects whatever the session says to draw.
type SketchWidget struct {
	widget.BaseWidget
	session *editor.Editor
	entry   *widget.Entry
	win     fyne.Window
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ fyne.DoubleTappable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)

func NewSketchWidget(session *editor.Editor, win fyne.Window) *SketchWidget {
	s := &SketchWidget{session: session, win: win}
	s.entry = widget.NewEntry()
	s.entry.Hide()
	s.entry.OnChanged = func(text string) {
		s.session.SetPendingText(text)
	}
	s.entry.OnSubmitted = func(string) {
		s.session.ConfirmText()
		s.syncTextEntry()
		s.Refresh()
	}
	s.ExtendBaseWidget(s)
	return s
}

func pt(p fyne.Position) geom.Point {
	return geom.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (s *SketchWidget) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.session.PointerDown(pt(ev.Position))
	s.syncTextEntry()
	s.maybeAngleDialog()
	s.Refresh()
}

func (s *SketchWidget) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.session.PointerUp(pt(ev.Position))
	s.Refresh()
}

func (s *SketchWidget) Dragged(ev *fyne.DragEvent) {
	s.session.PointerMove(pt(ev.Position))
	s.Refresh()
}

func (s *SketchWidget) DragEnd() {}

func (s *SketchWidget) MouseMoved(ev *desktop.MouseEvent) {
	s.session.Hover(pt(ev.Position))
	s.Refresh()
}

func (s *SketchWidget) MouseIn(*desktop.MouseEvent) {}
func (s *SketchWidget) MouseOut()                   {}

func (s *SketchWidget) DoubleTapped(ev *fyne.PointEvent) {
	s.session.DoubleClick(pt(ev.Position))
	s.syncTextEntry()
	s.Refresh()
}

// syncTextEntry shows the inline entry while the session has an open
// text surface and hides it otherwise.
func (s *SketchWidget) syncTextEntry() {
	at, content, open := s.session.PendingText()
	if !open {
		s.entry.Hide()
		return
	}
	s.entry.SetText(content)
	s.entry.Move(fyne.NewPos(float32(at.X), float32(at.Y)))
	s.entry.Resize(fyne.NewSize(180, 38))
	s.entry.Show()
	s.win.Canvas().Focus(s.entry)
}

// maybeAngleDialog pops the label confirmation for a completed angle
// gesture, prefilled with the computed degrees.
func (s *SketchWidget) maybeAngleDialog() {
	def, pending := s.session.PendingAngleLabel()
	if !pending {
		return
	}
	labelEntry := widget.NewEntry()
	labelEntry.SetText(def)
	d := dialog.NewForm("Angle label", "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Label", labelEntry)},
		func(ok bool) {
			if ok {
				s.session.ConfirmAngleLabel(labelEntry.Text)
			} else {
				s.session.CancelAngle()
			}
			s.Refresh()
		}, s.win)
	d.Show()
}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{sketch: s}
	r.background = canvas.NewRectangle(model.ParseColor(model.Background))
	return r
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	session := r.sketch.session
	for _, e := range session.Render() {
		objects = append(objects, elementObjects(e)...)
		if model.IDOf(e) != 0 && model.IDOf(e) == session.Selected() {
			objects = append(objects, selectionObjects(e)...)
		}
	}
	if p, ok := session.SnapIndicator(); ok {
		dot := canvas.NewCircle(color.NRGBA{R: 230, G: 80, B: 30, A: 255})
		dot.Move(fyne.NewPos(float32(p.X-4), float32(p.Y-4)))
		dot.Resize(fyne.NewSize(8, 8))
		objects = append(objects, dot)
	}
	if r.sketch.entry.Visible() {
		objects = append(objects, r.sketch.entry)
	}
	return objects
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(model.CanvasSize, model.CanvasSize)
}

func (r *sketchRenderer) Destroy() {}
