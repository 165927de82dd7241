package factory

import (
	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHUD spawns the HUD entity. It is not bound to a player until
// systems.AttachHUD is called.
func CreateHUD(ecs *ecs.ECS, style components.HUDStyle, texture *ebiten.Image) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{
		Style:            style,
		IndicatorTexture: texture,
		// Start far enough in the past that nothing is fading in.
		LastDamageTime: -style.FadeTime - 1,
	})
	return hud
}
