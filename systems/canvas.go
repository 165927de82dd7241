package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Canvas is the 2D surface the HUD draws on.
type Canvas interface {
	Size() (width, height int)
	DrawRect(clr color.RGBA, x, y, w, h float64)
	// DrawTexture draws tex stretched to w x h, rotated clockwise by
	// rotation degrees about (x, y), tinted by tint scaled by alpha.
	DrawTexture(tex *ebiten.Image, x, y, w, h, rotation float64, tint color.RGBA, alpha float32, blend ebiten.Blend)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, clr color.RGBA, x, y float64, face font.Face)
	TextSize(s string, face font.Face) (w, h float64)
}

type ebitenCanvas struct {
	screen *ebiten.Image
	op     ebiten.DrawImageOptions
}

func newEbitenCanvas(screen *ebiten.Image) *ebitenCanvas {
	return &ebitenCanvas{screen: screen}
}

func (c *ebitenCanvas) Size() (int, int) {
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ebitenCanvas) DrawRect(clr color.RGBA, x, y, w, h float64) {
	vector.FillRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *ebitenCanvas) DrawTexture(tex *ebiten.Image, x, y, w, h, rotation float64, tint color.RGBA, alpha float32, blend ebiten.Blend) {
	if tex == nil || alpha <= 0 {
		return
	}
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	c.op.GeoM.Reset()
	c.op.ColorScale.Reset()
	c.op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	c.op.GeoM.Rotate(rotation * math.Pi / 180)
	c.op.GeoM.Translate(x, y)
	c.op.ColorScale.ScaleWithColor(tint)
	c.op.ColorScale.ScaleAlpha(alpha)
	c.op.Blend = blend
	c.screen.DrawImage(tex, &c.op)
}

func (c *ebitenCanvas) DrawText(s string, clr color.RGBA, x, y float64, face font.Face) {
	if face == nil {
		return
	}
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(c.screen, s, face, int(x), int(y)+ascent, clr)
}

func (c *ebitenCanvas) TextSize(s string, face font.Face) (float64, float64) {
	if face == nil {
		return 0, 0
	}
	bounds := text.BoundString(face, s)
	return float64(bounds.Dx()), float64(face.Metrics().Height.Ceil())
}
