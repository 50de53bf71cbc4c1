package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyatavikram/ExamGenAi/internal/geom"
	"github.com/pyatavikram/ExamGenAi/internal/model"
)

func diagram() []model.Element {
	return []model.Element{
		&model.Line{Attrs: model.Attrs{ID: 1}, P1: geom.Point{X: 20, Y: 20}, P2: geom.Point{X: 200, Y: 120},
			Color: "black", Width: 2, Dash: []float64{6, 4}},
		&model.Rect{Attrs: model.Attrs{ID: 2}, X: 50, Y: 50, W: 100, H: 60, Color: "red", Fill: "none", Width: 2},
		&model.Circle{Attrs: model.Attrs{ID: 3}, CX: 150, CY: 150, R: 40, Color: "blue", Fill: "none", Width: 2},
		&model.Polygon{Attrs: model.Attrs{ID: 4}, Points: []geom.Point{{X: 10, Y: 200}, {X: 60, Y: 200}, {X: 35, Y: 160}},
			Color: "green", Width: 2},
		&model.Stroke{Attrs: model.Attrs{ID: 5}, Points: []geom.Point{{X: 100, Y: 10}, {X: 120, Y: 30}, {X: 140, Y: 25}},
			Color: "gray", Width: 2},
		&model.Text{Attrs: model.Attrs{ID: 6}, X: 30, Y: 240, Content: "x = 5", FontSize: 16, Color: "black"},
		&model.Angle{Attrs: model.Attrs{ID: 7}, X: 180, Y: 60, Start: 0, End: 1.2, Label: "69°", Color: "black", Width: 2},
	}
}

func TestPDFWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, PDF(diagram(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, PNG(diagram(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestExportRejectsEmptySet(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, PDF(nil, filepath.Join(dir, "empty.pdf")))
	assert.Error(t, PNG(nil, filepath.Join(dir, "empty.png")))
}
