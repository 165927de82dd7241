package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	fireType  = &components.DamageType{Name: "fire"}
	fallType  = &components.DamageType{Name: "fall", CausedByWorld: true}
	laserType = &components.DamageType{Name: "laser"}

	fireColor  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	fallColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	deathColor = color.RGBA{R: 120, G: 0, B: 0, A: 160}
)

type drawCall struct {
	kind     string
	clr      color.RGBA
	x, y     float64
	w, h     float64
	rotation float64
	alpha    float32
	blend    ebiten.Blend
	text     string
}

// recordingCanvas records draw calls instead of rasterising them.
type recordingCanvas struct {
	width, height int
	textW, textH  float64
	calls         []drawCall
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{width: w, height: h, textW: 100, textH: 20}
}

func (c *recordingCanvas) Size() (int, int) { return c.width, c.height }

func (c *recordingCanvas) DrawRect(clr color.RGBA, x, y, w, h float64) {
	c.calls = append(c.calls, drawCall{kind: "rect", clr: clr, x: x, y: y, w: w, h: h})
}

func (c *recordingCanvas) DrawTexture(_ *ebiten.Image, x, y, w, h, rotation float64, tint color.RGBA, alpha float32, blend ebiten.Blend) {
	c.calls = append(c.calls, drawCall{kind: "texture", clr: tint, x: x, y: y, w: w, h: h, rotation: rotation, alpha: alpha, blend: blend})
}

func (c *recordingCanvas) DrawText(s string, clr color.RGBA, x, y float64, _ font.Face) {
	c.calls = append(c.calls, drawCall{kind: "text", clr: clr, x: x, y: y, text: s})
}

func (c *recordingCanvas) TextSize(string, font.Face) (float64, float64) {
	return c.textW, c.textH
}

func (c *recordingCanvas) ofKind(kind string) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.kind == kind {
			out = append(out, call)
		}
	}
	return out
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func testStyle() components.HUDStyle {
	return components.HUDStyle{
		DamageTypeColors: map[string]color.RGBA{
			"fire": fireColor,
			"fall": fallColor,
		},
		DeathOverlayColor: deathColor,
		IndicatorSize:     mgl64.Vec2{0.15, 0.25},
		FadeTime:          2,
		FadeEase:          ease.Linear,
		LoadingLabel:      "Loading...",
		LoadingBoxColor:   color.RGBA{A: 255},
		LoadingTextColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// spawnTestPlayer creates a controlled player at the origin looking down -Z.
func spawnTestPlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	components.Health.SetValue(player, components.HealthData{Current: 100, Max: 100})
	components.Camera.SetValue(player, components.CameraData{
		FOV: 70, Near: 0.1, Far: 500, EyeHeight: 1.7,
	})
	return player
}

func spawnTestHUD(e *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(e)
	components.HUD.SetValue(hud, components.HUDData{
		Style:          testStyle(),
		LastDamageTime: -10,
	})
	return hud
}

// spawnCauser creates an entity with only a position.
func spawnCauser(e *ecs.ECS, p mgl64.Vec3) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Transform))
	components.Transform.SetValue(entry, components.TransformData{Position: p})
	return entry
}

func spawnTestSpace(e *ecs.ECS) *resolv.Space {
	entry := archetypes.Space.Spawn(e)
	components.Space.Set(entry, resolv.NewSpace(64, 64, 1, 1))
	return components.Space.Get(entry)
}

type hudHarness struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	hud    *donburi.Entry
}

// newHarness spawns a player with an attached HUD.
func newHarness(t *testing.T) *hudHarness {
	t.Helper()
	e := newTestECS()
	player := spawnTestPlayer(e)
	hud := spawnTestHUD(e)
	if !AttachHUD(e, hud, player) {
		t.Fatal("AttachHUD failed")
	}
	return &hudHarness{ecs: e, player: player, hud: hud}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
