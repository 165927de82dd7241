package systems

import (
	"math"

	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerInput is one tick of movement intent.
type PlayerInput struct {
	Forward float64 // -1..1
	Strafe  float64 // -1..1, positive is right
	Turn    float64 // -1..1, positive is right
	Pitch   float64 // -1..1, positive is up
}

// UpdatePlayer moves and turns the controlled player from keyboard input.
// Dead players don't move.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || playerEntry.HasComponent(tags.Dead) {
		return
	}
	if !playerEntry.HasComponent(components.Controller) {
		return
	}
	MovePlayer(playerEntry, readPlayerInput())
}

func readPlayerInput() PlayerInput {
	var in PlayerInput
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Turn--
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Pitch++
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		in.Pitch--
	}
	return in
}

// MovePlayer applies one tick of input to the player's camera, transform
// and collision footprint. Movement is clamped to the arena.
func MovePlayer(entry *donburi.Entry, in PlayerInput) {
	camera := components.Camera.Get(entry)
	camera.Yaw = math.Mod(camera.Yaw+in.Turn*cfg.Player.TurnSpeed, 360)
	camera.Pitch = mgl64.Clamp(camera.Pitch+in.Pitch*cfg.Player.PitchSpeed, cfg.Camera.MinPitch, cfg.Camera.MaxPitch)

	if in.Forward == 0 && in.Strafe == 0 {
		return
	}

	yaw := mgl64.DegToRad(camera.Yaw)
	forward := mgl64.Vec3{math.Sin(yaw), 0, -math.Cos(yaw)}
	right := mgl64.Vec3{math.Cos(yaw), 0, math.Sin(yaw)}
	move := forward.Mul(in.Forward).Add(right.Mul(in.Strafe))
	if move.Len() > 1 {
		move = move.Normalize()
	}

	transform := components.Transform.Get(entry)
	half := cfg.Arena.Size * .5
	p := transform.Position.Add(move.Mul(cfg.Player.MoveSpeed))
	p[0] = mgl64.Clamp(p.X(), -half, half)
	p[2] = mgl64.Clamp(p.Z(), -half, half)
	transform.Position = p

	SyncFootprint(entry, cfg.Player.CollisionSz)
}

// UpdateDebugDamage handles the debug damage keys:
// H hurts the player from the nearest hazard, K applies world damage,
// R revives and F toggles frozen health.
func UpdateDebugDamage(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	if !playerEntry.HasComponent(components.Controller) || !components.Controller.Get(playerEntry).DebugKeys {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if hazard := nearestHazard(e, playerEntry); hazard != nil {
			h := components.Hazard.Get(hazard)
			ApplyDamage(playerEntry, h.Damage, h.Type, hazard)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		ApplyDamage(playerEntry, 10, WorldDamageType, nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		Revive(playerEntry)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		hp := components.Health.Get(playerEntry)
		hp.Frozen = !hp.Frozen
	}
}

// WorldDamageType is used by the debug world-damage key. Scenes replace it
// with the catalogue entry.
var WorldDamageType = &components.DamageType{Name: "fall", CausedByWorld: true}

func nearestHazard(e *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	from := components.Transform.Get(player).Position
	var nearest *donburi.Entry
	best := math.MaxFloat64
	tags.Hazard.Each(e.World, func(h *donburi.Entry) {
		d := components.Transform.Get(h).Position.Sub(from).Len()
		if d < best {
			best = d
			nearest = h
		}
	})
	return nearest
}
