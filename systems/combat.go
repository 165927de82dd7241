package systems

import (
	"github.com/automoto/doomerang-hud/components"
	"github.com/automoto/doomerang-hud/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyDamage queues damage on an entity. Damage queued twice in one tick
// keeps the larger amount.
func ApplyDamage(entry *donburi.Entry, amount float64, damageType *components.DamageType, causer *donburi.Entry) {
	if entry == nil || !entry.Valid() || amount <= 0 {
		return
	}
	event := &components.DamageEventData{
		Amount: amount,
		Type:   damageType,
		Causer: causer,
	}
	if entry.HasComponent(components.DamageEvent) {
		if components.DamageEvent.Get(entry).Amount >= amount {
			return
		}
		components.DamageEvent.Set(entry, event)
		return
	}
	donburi.Add(entry, components.DamageEvent, event)
}

// UpdateCombat applies queued damage events, keeps health values within their
// valid range and tags entities whose health runs out as dead.
func UpdateCombat(ecs *ecs.ECS) {
	// --------------------------------------------------------------------
	// 1. Process queued damage events (generic for any entity with Health)
	// --------------------------------------------------------------------
	var processed []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		processed = append(processed, e)
		if e.HasComponent(tags.Dead) || !e.HasComponent(components.Health) {
			continue
		}

		dmg := components.DamageEvent.Get(e)
		hp := components.Health.Get(e)
		if !hp.Frozen {
			hp.Current -= dmg.Amount
		}

		components.DamageTaken.Publish(ecs.World, components.DamageTakenEvent{
			Damaged: e,
			Causer:  dmg.Causer,
			Amount:  dmg.Amount,
			Type:    dmg.Type,
		})
	}

	// Remove the damage event component so it is processed only once.
	for _, e := range processed {
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	// --------------------------------------------------------------------
	// 2. Clamp health ranges (0..Max)
	// --------------------------------------------------------------------
	var dying []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}

		if hp.IsDepleted() && !e.HasComponent(tags.Dead) {
			dying = append(dying, e)
		}
	}

	for _, e := range dying {
		e.AddComponent(tags.Dead)
	}
}

// Revive restores an entity to full health and clears its dead tag.
func Revive(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(entry)
	hp.Current = hp.Max
	if entry.HasComponent(tags.Dead) {
		entry.RemoveComponent(tags.Dead)
	}
}
