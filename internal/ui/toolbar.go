package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pyatavikram/ExamGenAi/internal/editor"
)

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	Name     string
	OnTapped func(string)
}

func newColorSwatch(c color.Color, name string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Color: c, Name: name, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// --- The Main Toolbar ---

var tools = []struct {
	label string
	tool  editor.Tool
}{
	{"Select", editor.ToolSelect},
	{"Line", editor.ToolLine},
	{"Rect", editor.ToolRect},
	{"Circle", editor.ToolCircle},
	{"Triangle", editor.ToolTriangle},
	{"Polygon", editor.ToolPolygon},
	{"Angle", editor.ToolAngle},
	{"Pencil", editor.ToolPencil},
	{"Text", editor.ToolText},
	{"Eraser", editor.ToolEraser},
	{"Whiteout", editor.ToolWhiteout},
}

// NewToolbar builds the tool, color and style controls driving the
// editing session behind the sketch widget.
func NewToolbar(session *editor.Editor, sketch *SketchWidget) fyne.CanvasObject {
	toolButtons := make([]fyne.CanvasObject, 0, len(tools))
	for _, t := range tools {
		tool := t.tool
		toolButtons = append(toolButtons, widget.NewButton(t.label, func() {
			session.SetTool(tool)
			sketch.Refresh()
		}))
	}

	onColorTapped := func(name string) {
		session.SetColor(name)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, "black", onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, "red", onColorTapped),
		newColorSwatch(color.NRGBA{G: 128, A: 255}, "green", onColorTapped),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, "blue", onColorTapped),
		newColorSwatch(color.NRGBA{R: 128, G: 128, B: 128, A: 255}, "gray", onColorTapped),
	)

	widthSlider := widget.NewSlider(1, 12)
	widthSlider.SetValue(session.Style().Width)
	widthSlider.OnChanged = func(v float64) {
		session.SetStrokeWidth(v)
	}
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), widthSlider)

	dashCheck := widget.NewCheck("Dashed", func(on bool) {
		if on {
			session.SetDash([]float64{6, 4})
		} else {
			session.SetDash(nil)
		}
	})

	fontSelect := widget.NewSelect([]string{"12", "16", "20", "24", "32"}, func(v string) {
		if size, err := strconv.ParseFloat(v, 64); err == nil {
			session.SetFontSize(size)
		}
	})
	fontSelect.SetSelected("16")

	undoRedo := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			session.Undo()
			sketch.Refresh()
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			session.Redo()
			sketch.Refresh()
		}),
	)

	return container.NewVBox(
		container.NewHBox(toolButtons...),
		container.NewHBox(
			widget.NewLabel("Color:"),
			colorBox,
			widget.NewSeparator(),
			widget.NewLabel("Width:"),
			widthBox,
			dashCheck,
			widget.NewSeparator(),
			widget.NewLabel("Font:"),
			fontSelect,
			widget.NewSeparator(),
			undoRedo,
			layout.NewSpacer(),
		),
	)
}
