package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
)

// HUDStyle is the presentation of the HUD. It is replaced as a whole when
// prefabs/hud.yaml is (re)loaded.
type HUDStyle struct {
	// DamageTypeColors maps DamageType.Name to the indicator tint. Damage
	// types with no entry show no indicators.
	DamageTypeColors map[string]color.RGBA

	DeathOverlayColor color.RGBA

	// IndicatorSize is the strip thickness as a fraction of the canvas:
	// X for the left/right strips (of width), Y for top/bottom (of height).
	IndicatorSize mgl64.Vec2
	FadeTime      float64 // seconds
	FadeEase      ease.TweenFunc

	LoadingLabel     string
	LoadingFont      font.Face
	LoadingBoxColor  color.RGBA
	LoadingTextColor color.RGBA
}

type HUDData struct {
	Owner *donburi.Entry
	Style HUDStyle

	IsLoading bool

	LastDamageAmount   float64
	LastDamageLocation mgl64.Vec3
	LastDamageTime     float64
	LastDamageType     *DamageType

	LastCanvasWidth  int
	LastCanvasHeight int

	IndicatorTexture *ebiten.Image

	// handler is what AttachHUD subscribed, kept so DetachHUD removes the same one.
	handler func(w donburi.World, event DamageTakenEvent)
}

var HUD = donburi.NewComponentType[HUDData]()

// Handler returns the damage subscriber registered for this HUD, if any.
func (h *HUDData) Handler() func(w donburi.World, event DamageTakenEvent) {
	return h.handler
}

// SetHandler records the damage subscriber registered for this HUD.
func (h *HUDData) SetHandler(fn func(w donburi.World, event DamageTakenEvent)) {
	h.handler = fn
}
