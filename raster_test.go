package ink

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literalBrush returns a brush with smoothing and pressure dynamics
// disabled so samples land exactly where the test puts them.
func literalBrush(size float64) BrushSettings {
	b := NewBrush(BrushPen)
	b.Size = size
	b.Spacing = 0
	b.Opacity = 1
	b.PressureSize = false
	b.PressureOpacity = false
	return b
}

func exportPNG(t *testing.T, e *Engine, opts ExportOptions) image.Image {
	t.Helper()
	opts.Format = FormatPNG
	data, err := e.ExportSnapshot(opts)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func pixelRGB(img image.Image, x, y int) (uint32, uint32, uint32) {
	r, g, b, _ := img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestRasterize_StrokeHitsCanvas(t *testing.T) {
	e := NewEngine(WithCanvasSize(100, 100), WithBackground(White))
	require.True(t, e.SetBrush(literalBrush(8)))
	e.SetColor(RGB(1, 0, 0))

	drawStroke(t, e,
		NewPoint(10, 50, 1, 0),
		NewPoint(50, 50, 1, 16),
		NewPoint(90, 50, 1, 33),
	)

	img := exportPNG(t, e, ExportOptions{})
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// On the stroke centerline: fully red.
	r, g, b := pixelRGB(img, 40, 50)
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 0, g)
	assert.EqualValues(t, 0, b)

	// Far from the stroke: untouched background.
	r, g, b = pixelRGB(img, 40, 10)
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 255, g)
	assert.EqualValues(t, 255, b)
}

func TestRasterize_SingleTapIsDot(t *testing.T) {
	e := NewEngine(WithCanvasSize(100, 100), WithBackground(White))
	require.True(t, e.SetBrush(literalBrush(10)))
	e.SetColor(RGB(0, 0, 1))

	require.True(t, e.StartStroke(NewPoint(50, 50, 1, 0)))
	require.True(t, e.EndStroke())

	img := exportPNG(t, e, ExportOptions{})

	// Center of the dot is solid blue.
	r, g, b := pixelRGB(img, 50, 50)
	assert.EqualValues(t, 0, r)
	assert.EqualValues(t, 0, g)
	assert.EqualValues(t, 255, b)

	// Beyond the radius (size/2 = 5) the background shows through.
	r, g, b = pixelRGB(img, 58, 50)
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 255, g)
	assert.EqualValues(t, 255, b)
}

func TestRasterize_EraserRevealsBackground(t *testing.T) {
	e := NewEngine(WithCanvasSize(100, 100), WithBackground(White))
	require.True(t, e.SetBrush(literalBrush(8)))
	e.SetColor(RGB(1, 0, 0))
	drawStroke(t, e,
		NewPoint(10, 50, 1, 0),
		NewPoint(50, 50, 1, 16),
		NewPoint(90, 50, 1, 33),
	)

	eraser := NewBrush(BrushEraser)
	eraser.Size = 20
	eraser.Spacing = 0
	eraser.Opacity = 1
	eraser.PressureSize = false
	eraser.PressureOpacity = false
	require.True(t, e.SetBrush(eraser))
	drawStroke(t, e,
		NewPoint(30, 50, 1, 50),
		NewPoint(50, 50, 1, 66),
		NewPoint(70, 50, 1, 83),
	)

	img := exportPNG(t, e, ExportOptions{})

	// Erased region shows the white background again.
	r, g, b := pixelRGB(img, 50, 50)
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 255, g)
	assert.EqualValues(t, 255, b)

	// Outside the eraser's reach the red stroke survives.
	r, g, _ = pixelRGB(img, 12, 50)
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 0, g)
}

func TestRasterize_HiddenLayerExcluded(t *testing.T) {
	e := NewEngine(WithCanvasSize(100, 100), WithBackground(White))
	require.True(t, e.SetBrush(literalBrush(8)))
	e.SetColor(RGB(1, 0, 0))
	drawStroke(t, e,
		NewPoint(10, 50, 1, 0),
		NewPoint(90, 50, 1, 16),
	)
	require.True(t, e.SetLayerVisibility(e.ActiveLayer().ID, false))

	img := exportPNG(t, e, ExportOptions{})
	r, g, b := pixelRGB(img, 50, 50)
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 255, g)
	assert.EqualValues(t, 255, b)
}

func TestRasterize_Scale(t *testing.T) {
	e := NewEngine(WithCanvasSize(100, 80))
	img := exportPNG(t, e, ExportOptions{Scale: 2})
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestRasterize_JPEG(t *testing.T) {
	e := NewEngine(WithCanvasSize(50, 50))
	data, err := e.ExportSnapshot(ExportOptions{Format: FormatJPEG, Quality: 80})
	require.NoError(t, err)
	require.True(t, len(data) > 2)
	assert.Equal(t, []byte{0xff, 0xd8}, data[:2], "JPEG SOI marker")
}

func TestRasterize_BadOptions(t *testing.T) {
	e := NewEngine(WithCanvasSize(50, 50))

	_, err := e.ExportSnapshot(ExportOptions{Format: ExportFormat(42)})
	assert.Error(t, err)

	_, err = e.ExportSnapshot(ExportOptions{Format: FormatPNG, Scale: -1})
	assert.Error(t, err)

	_, err = e.ExportSnapshot(ExportOptions{Format: FormatJPEG, Quality: 150})
	assert.Error(t, err)
}
