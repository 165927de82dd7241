package assets

import (
	"image"
	"image/color"

	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var indicatorTexture *ebiten.Image

// DamageIndicatorTexture returns the white strip drawn along a screen edge by
// the HUD. Alpha is strongest on the top row and fades to nothing at the
// bottom, so the HUD rotates it to face each edge.
func DamageIndicatorTexture() *ebiten.Image {
	if indicatorTexture == nil {
		indicatorTexture = ebiten.NewImageFromImage(IndicatorGradient(cfg.HUD.IndicatorTextureWidth, cfg.HUD.IndicatorTextureHeight))
	}
	return indicatorTexture
}

// IndicatorGradient builds the premultiplied white gradient behind
// DamageIndicatorTexture. Alpha falls off quadratically from the top row.
func IndicatorGradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := 1 - float64(y)/float64(height)
		a := uint8(255 * t * t)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}
