package ebiten

import (
	"errors"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"chosenoffset.com/quickdraw/internal/render"
)

const fontDPI = 72

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	font  *sfnt.Font
	faces map[float64]text.Face
	white *ebiten.Image
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("failed to parse embedded font: %v", err)
	}
	return &EbitenRenderer{
		font:  tt,
		faces: make(map[float64]text.Face),
	}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// StrokeLine draws a line segment on the destination image.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeLine(ebitenImg, x0, y0, x1, y1, strokeWidth, clr, true)
}

// FillRect draws a filled axis-aligned rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledRect(ebitenImg, x, y, width, height, clr, true)
}

// FillRoundedRect draws a filled rectangle with rounded corners.
func (r *EbitenRenderer) FillRoundedRect(dst render.Image, x, y, width, height, radius float32, clr color.Color) {
	radius = clampCornerRadius(radius, width, height)
	if radius <= 0 {
		r.FillRect(dst, x, y, width, height, clr)
		return
	}

	path := roundedRectPath(x, y, width, height, radius)
	vertexes, indexes := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r.drawPathTriangles(dst, vertexes, indexes, clr)
}

// StrokeRoundedRect draws the outline of a rectangle with rounded corners.
func (r *EbitenRenderer) StrokeRoundedRect(dst render.Image, x, y, width, height, radius, strokeWidth float32, clr color.Color) {
	radius = clampCornerRadius(radius, width, height)

	path := roundedRectPath(x, y, width, height, radius)
	op := &vector.StrokeOptions{}
	op.Width = strokeWidth
	op.LineJoin = vector.LineJoinRound
	vertexes, indexes := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	r.drawPathTriangles(dst, vertexes, indexes, clr)
}

// drawPathTriangles rasterizes path vertices with a uniform color using a
// 1x1 white source image.
func (r *EbitenRenderer) drawPathTriangles(dst render.Image, vertexes []ebiten.Vertex, indexes []uint16, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img

	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.White)
	}

	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vertexes {
		vertexes[i].SrcX = 0
		vertexes[i].SrcY = 0
		vertexes[i].ColorR = float32(c.R) / 255
		vertexes[i].ColorG = float32(c.G) / 255
		vertexes[i].ColorB = float32(c.B) / 255
		vertexes[i].ColorA = float32(c.A) / 255
	}

	opts := &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
	}
	ebitenImg.DrawTriangles(vertexes, indexes, r.white, opts)
}

// roundedRectPath builds a clockwise path tracing a rounded rectangle.
func roundedRectPath(x, y, width, height, radius float32) vector.Path {
	const quarter = float32(math.Pi / 2)

	path := vector.Path{}
	path.MoveTo(x+radius, y)
	path.LineTo(x+width-radius, y)
	path.Arc(x+width-radius, y+radius, radius, -quarter, 0, vector.Clockwise)
	path.LineTo(x+width, y+height-radius)
	path.Arc(x+width-radius, y+height-radius, radius, 0, quarter, vector.Clockwise)
	path.LineTo(x+radius, y+height)
	path.Arc(x+radius, y+height-radius, radius, quarter, 2*quarter, vector.Clockwise)
	path.LineTo(x, y+radius)
	path.Arc(x+radius, y+radius, radius, 2*quarter, 3*quarter, vector.Clockwise)
	path.Close()
	return path
}

func clampCornerRadius(radius, width, height float32) float32 {
	if radius < 0 {
		return 0
	}
	if m := width / 2; radius > m {
		radius = m
	}
	if m := height / 2; radius > m {
		radius = m
	}
	return radius
}

// DrawText draws text on the destination image at the given pixel size.
// (x, y) is the top-left corner of the rendered text.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, size float64) {
	face := r.face(size)
	if face == nil {
		return
	}
	ebitenImg := dst.(*EbitenImage).img

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(ebitenImg, str, face, op)
}

// MeasureText measures the width and height of text at the given pixel size.
func (r *EbitenRenderer) MeasureText(str string, size float64) (width, height int) {
	face := r.face(size)
	if face == nil {
		return 0, 0
	}
	w, h := text.Measure(str, face, 0)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// face returns a cached text face for the given pixel size, creating it on
// first use.
func (r *EbitenRenderer) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("failed to create font face (size %v): %v", size, err)
		return nil
	}
	face := text.NewGoXFace(f)
	r.faces[size] = face
	return face
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// IsKeyJustPressed returns whether the specified key was pressed this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonPressed returns whether the specified mouse button is currently pressed.
func (m *EbitenInputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(mouseButtonToEbiten(button))
}

// IsMouseButtonJustPressed returns whether the specified mouse button was
// pressed this tick.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeySpace:
		return ebiten.KeySpace
	case render.KeyEscape:
		return ebiten.KeyEscape
	case render.KeyP:
		return ebiten.KeyP
	case render.KeyO:
		return ebiten.KeyO
	case render.KeyR:
		return ebiten.KeyR
	case render.KeyM:
		return ebiten.KeyM
	case render.KeyMinus:
		return ebiten.KeyMinus
	case render.KeyEqual:
		return ebiten.KeyEqual
	case render.Key1:
		return ebiten.KeyDigit1
	case render.Key2:
		return ebiten.KeyDigit2
	case render.Key3:
		return ebiten.KeyDigit3
	case render.Key4:
		return ebiten.KeyDigit4
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.Termination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
