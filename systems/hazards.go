package systems

import (
	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards damages the player while it stands on a hazard, at most once
// per hazard cooldown.
func UpdateHazards(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || playerEntry.HasComponent(tags.Dead) {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Object == nil {
		return
	}

	// Broad phase by space cell, then an exact footprint test.
	check := playerObj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return
	}

	now := WorldTime(e)
	for _, hazardObj := range check.ObjectsByTags(tags.ResolvHazard) {
		hazardEntry, ok := hazardObj.Data.(*donburi.Entry)
		if !ok || hazardEntry == nil || !hazardEntry.Valid() {
			continue
		}
		if !overlaps(playerObj.Object, hazardObj) {
			continue
		}

		hazard := components.Hazard.Get(hazardEntry)
		if hazard.LastHit >= 0 && now-hazard.LastHit < hazard.Cooldown {
			continue
		}
		hazard.LastHit = now
		ApplyDamage(playerEntry, hazard.Damage, hazard.Type, hazardEntry)
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// ToSpace maps a ground-plane position to hazard space coordinates.
func ToSpace(p mgl64.Vec3) (float64, float64) {
	half := cfg.Arena.Size * .5
	return p.X() + half, p.Z() + half
}

// syncObject centres a square footprint of the given size on p.
func syncObject(obj *components.ObjectData, p mgl64.Vec3, size float64) {
	x, y := ToSpace(p)
	obj.X = x - size*.5
	obj.Y = y - size*.5
	obj.Update()
}

// SyncFootprint moves entry's collision footprint to its transform.
func SyncFootprint(entry *donburi.Entry, size float64) {
	if !entry.HasComponent(components.Object) || !entry.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	syncObject(obj, components.Transform.Get(entry).Position, size)
}
