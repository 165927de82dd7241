package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Hazard = donburi.NewTag().SetName("Hazard")
	HUD    = donburi.NewTag().SetName("HUD")
	// Dead marks an entity whose health ran out. Damage on dead entities is
	// ignored by combat and by the HUD.
	Dead = donburi.NewTag().SetName("Dead")
)

// Resolv tags for ground-plane overlap
const (
	ResolvPlayer = "Player"
	ResolvHazard = "hazard"
)
