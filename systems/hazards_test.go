package systems

import (
	"testing"

	"github.com/automoto/doomerang-hud/archetypes"
	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// addFootprint gives entry a square footprint of size centred on p.
func addFootprint(space *resolv.Space, entry *donburi.Entry, p mgl64.Vec3, size float64, tag string) {
	components.Transform.SetValue(entry, components.TransformData{Position: p})
	x, y := ToSpace(p)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	space.Add(obj)
}

func spawnTestHazard(e *ecs.ECS, space *resolv.Space, p mgl64.Vec3, size, damage, cooldown float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(e)
	components.Hazard.SetValue(hazard, components.HazardData{
		Name:     "test",
		Damage:   damage,
		Type:     fireType,
		Cooldown: cooldown,
		LastHit:  -1,
	})
	addFootprint(space, hazard, p, size, tags.ResolvHazard)
	return hazard
}

func spawnHazardTestPlayer(e *ecs.ECS, space *resolv.Space, p mgl64.Vec3) *donburi.Entry {
	player := spawnTestPlayer(e)
	addFootprint(space, player, p, cfg.Player.CollisionSz, tags.ResolvPlayer)
	return player
}

func TestToSpace(t *testing.T) {
	half := cfg.Arena.Size / 2
	x, y := ToSpace(mgl64.Vec3{1, 5, -2})
	if x != half+1 || y != half-2 {
		t.Errorf("ToSpace = (%v, %v), want (%v, %v)", x, y, half+1, half-2)
	}
}

func TestUpdateHazardsHurtsPlayerWithCooldown(t *testing.T) {
	e := newTestECS()
	space := spawnTestSpace(e)
	player := spawnHazardTestPlayer(e, space, mgl64.Vec3{})
	hazard := spawnTestHazard(e, space, mgl64.Vec3{}, 2, 10, 1)

	UpdateHazards(e)
	pending := components.DamageEvent.Get(player)
	if pending.Amount != 10 || pending.Type != fireType || pending.Causer != hazard {
		t.Fatalf("pending damage = %+v, want 10 fire from the hazard", pending)
	}
	UpdateCombat(e)
	if hp := components.Health.Get(player).Current; hp != 90 {
		t.Errorf("health = %v, want 90", hp)
	}

	GetOrCreateClock(e).Seconds = 0.5
	UpdateHazards(e)
	if player.HasComponent(components.DamageEvent) {
		t.Error("hazard should not hit again within its cooldown")
	}

	GetOrCreateClock(e).Seconds = 1
	UpdateHazards(e)
	if !player.HasComponent(components.DamageEvent) {
		t.Error("hazard should hit again once the cooldown has passed")
	}
	if last := components.Hazard.Get(hazard).LastHit; last != 1 {
		t.Errorf("LastHit = %v, want 1", last)
	}
}

func TestUpdateHazardsIgnoresDistantHazards(t *testing.T) {
	e := newTestECS()
	space := spawnTestSpace(e)
	player := spawnHazardTestPlayer(e, space, mgl64.Vec3{})
	spawnTestHazard(e, space, mgl64.Vec3{10, 0, 10}, 2, 10, 1)

	UpdateHazards(e)
	if player.HasComponent(components.DamageEvent) {
		t.Error("a distant hazard should not hurt the player")
	}
}

func TestUpdateHazardsRequiresExactOverlap(t *testing.T) {
	e := newTestECS()
	space := spawnTestSpace(e)
	player := spawnHazardTestPlayer(e, space, mgl64.Vec3{})
	// Shares a space cell with the player without touching its footprint.
	spawnTestHazard(e, space, mgl64.Vec3{cfg.Player.CollisionSz/2 + 0.6, 0, 0}, 1, 10, 1)

	UpdateHazards(e)
	if player.HasComponent(components.DamageEvent) {
		t.Error("a hazard next to the player should not hurt it")
	}
}

func TestUpdateHazardsSkipsDeadPlayer(t *testing.T) {
	e := newTestECS()
	space := spawnTestSpace(e)
	player := spawnHazardTestPlayer(e, space, mgl64.Vec3{})
	spawnTestHazard(e, space, mgl64.Vec3{}, 2, 10, 1)
	player.AddComponent(tags.Dead)

	UpdateHazards(e)
	if player.HasComponent(components.DamageEvent) {
		t.Error("a dead player should not be hurt")
	}
}

func TestUpdateHazardsFollowsMovement(t *testing.T) {
	e := newTestECS()
	space := spawnTestSpace(e)
	player := spawnHazardTestPlayer(e, space, mgl64.Vec3{})
	spawnTestHazard(e, space, mgl64.Vec3{0, 0, -3}, 2, 10, 1)

	UpdateHazards(e)
	if player.HasComponent(components.DamageEvent) {
		t.Fatal("hazard is out of reach at the start")
	}

	components.Transform.Get(player).Position = mgl64.Vec3{0, 0, -3}
	SyncFootprint(player, cfg.Player.CollisionSz)
	UpdateHazards(e)
	if !player.HasComponent(components.DamageEvent) {
		t.Error("player standing on the hazard should be hurt")
	}
}

func TestMovePlayer(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e)

	MovePlayer(player, PlayerInput{Forward: 1})
	p := components.Transform.Get(player).Position
	if !approx(p.X(), 0) || !approx(p.Z(), -cfg.Player.MoveSpeed) {
		t.Errorf("position after moving forward = %v", p)
	}

	MovePlayer(player, PlayerInput{Turn: 1})
	if yaw := components.Camera.Get(player).Yaw; !approx(yaw, cfg.Player.TurnSpeed) {
		t.Errorf("yaw = %v, want %v", yaw, cfg.Player.TurnSpeed)
	}
}

func TestMovePlayerNormalisesDiagonal(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e)

	MovePlayer(player, PlayerInput{Forward: 1, Strafe: 1})
	p := components.Transform.Get(player).Position
	if !approx(p.Len(), cfg.Player.MoveSpeed) {
		t.Errorf("diagonal step = %v, want %v", p.Len(), cfg.Player.MoveSpeed)
	}
	if p.X() <= 0 || p.Z() >= 0 {
		t.Errorf("diagonal step %v should go forward and right", p)
	}
}

func TestMovePlayerClamps(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e)
	half := cfg.Arena.Size / 2
	components.Transform.Get(player).Position = mgl64.Vec3{half - 0.01, 0, 0}
	components.Camera.Get(player).Pitch = cfg.Camera.MaxPitch - 0.1

	MovePlayer(player, PlayerInput{Strafe: 1, Pitch: 1})

	if x := components.Transform.Get(player).Position.X(); x != half {
		t.Errorf("x = %v, want clamped to %v", x, half)
	}
	if pitch := components.Camera.Get(player).Pitch; pitch != cfg.Camera.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", pitch, cfg.Camera.MaxPitch)
	}
}
