package systems

import (
	"github.com/automoto/doomerang-hud/components"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttachHUD binds the HUD to its owning player and starts listening for the
// owner's damage. It returns false if owner is not a live entity.
// Only one HUD per world is supported: donburi unsubscribes by function
// identity, so detaching one HUD may drop another's handler.
func AttachHUD(e *ecs.ECS, hudEntry, owner *donburi.Entry) bool {
	if hudEntry == nil || !hudEntry.Valid() || owner == nil || !owner.Valid() {
		return false
	}
	hud := components.HUD.Get(hudEntry)
	if hud.Handler() != nil {
		components.DamageTaken.Unsubscribe(e.World, hud.Handler())
	}

	hud.Owner = owner
	handler := func(w donburi.World, event components.DamageTakenEvent) {
		if !hudEntry.Valid() {
			return
		}
		handleDamage(e, components.HUD.Get(hudEntry), event)
	}
	hud.SetHandler(handler)
	components.DamageTaken.Subscribe(e.World, handler)
	return true
}

// DetachHUD stops listening for damage. The owner is kept so a detached HUD
// can still draw its last state.
func DetachHUD(e *ecs.ECS, hudEntry *donburi.Entry) {
	if hudEntry == nil || !hudEntry.Valid() {
		return
	}
	hud := components.HUD.Get(hudEntry)
	if hud.Handler() == nil {
		return
	}
	components.DamageTaken.Unsubscribe(e.World, hud.Handler())
	hud.SetHandler(nil)
}

func handleDamage(e *ecs.ECS, hud *components.HUDData, event components.DamageTakenEvent) {
	damaged := event.Damaged
	if damaged == nil || !damaged.Valid() || hud.Owner == nil || !hud.Owner.Valid() {
		return
	}
	if damaged.Entity() != hud.Owner.Entity() {
		return
	}
	if damaged.HasComponent(tags.Dead) {
		return
	}

	hud.LastDamageAmount = event.Amount
	hud.LastDamageLocation = damageLocation(damaged, event.Causer)
	hud.LastDamageTime = WorldTime(e)
	hud.LastDamageType = event.Type
}

func damageLocation(damaged, causer *donburi.Entry) mgl64.Vec3 {
	if causer != nil && causer.Valid() && causer.HasComponent(components.Transform) {
		return components.Transform.Get(causer).Position
	}
	if damaged.HasComponent(components.Transform) {
		return components.Transform.Get(damaged).Position
	}
	return mgl64.Vec3{}
}

// SetLoading shows or hides the loading overlay.
func SetLoading(e *ecs.ECS, loading bool) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	components.HUD.Get(hudEntry).IsLoading = loading
}

// IsLoading reports whether the loading overlay is shown.
func IsLoading(e *ecs.ECS) bool {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return false
	}
	return components.HUD.Get(hudEntry).IsLoading
}

// ApplyHUDStyle replaces the HUD's style.
func ApplyHUDStyle(e *ecs.ECS, style components.HUDStyle) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	components.HUD.Get(hudEntry).Style = style
}

// DrawHUD renders damage indicators, the death overlay and the loading
// overlay for the HUD's owner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	RenderHUD(e, newEbitenCanvas(screen))
}

// RenderHUD is DrawHUD against any Canvas.
func RenderHUD(e *ecs.ECS, canvas Canvas) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	owner := hud.Owner
	if owner == nil || !owner.Valid() {
		return
	}
	if !owner.HasComponent(components.Controller) {
		return
	}

	drawDamageIndicators(e, hud, owner, canvas)
	drawLoadingIndicator(hud, canvas)

	hud.LastCanvasWidth, hud.LastCanvasHeight = canvas.Size()
}

func drawDamageIndicators(e *ecs.ECS, hud *components.HUDData, owner *donburi.Entry, canvas Canvas) {
	if !owner.HasComponent(components.Health) {
		return
	}
	health := components.Health.Get(owner)
	if health.Frozen {
		return
	}

	width, height := canvas.Size()

	if health.IsDepleted() {
		canvas.DrawRect(hud.Style.DeathOverlayColor, 0, 0, float64(width), float64(height))
		return
	}

	fade, ok := FadeAlpha(TimeSince(e, hud.LastDamageTime), hud.Style.FadeTime, hud.Style.FadeEase)
	if !ok {
		return
	}

	if hud.LastDamageType == nil {
		return
	}
	tint, ok := hud.Style.DamageTypeColors[hud.LastDamageType.Name]
	if !ok {
		return
	}

	if !owner.HasComponent(components.Camera) || !owner.HasComponent(components.Transform) {
		return
	}
	camera := components.Camera.Get(owner)
	position := components.Transform.Get(owner).Position

	projected := camera.Project(position, hud.LastDamageLocation, width, height)
	strips := LayoutIndicators(projected, width, height, hud.Style.IndicatorSize, hud.LastDamageType.CausedByWorld)

	for _, s := range strips {
		canvas.DrawTexture(hud.IndicatorTexture, s.X, s.Y, s.W, s.H, s.Rotation,
			tint, float32(s.Weight*fade), ebiten.BlendLighter)
	}
}

func drawLoadingIndicator(hud *components.HUDData, canvas Canvas) {
	if !hud.IsLoading {
		return
	}

	label := hud.Style.LoadingLabel
	face := hud.Style.LoadingFont
	labelWidth, labelHeight := canvas.TextSize(label, face)

	width, height := canvas.Size()
	boxHeight := labelHeight * 2
	verticalCenter := float64(height) * .5
	horizontalCenter := float64(width) * .5

	canvas.DrawRect(hud.Style.LoadingBoxColor, 0, verticalCenter-boxHeight*.5, float64(width), boxHeight)
	canvas.DrawText(label, hud.Style.LoadingTextColor, horizontalCenter-labelWidth*.5, verticalCenter-labelHeight*.5, face)
}
