package components

import "github.com/yohamta/donburi"

type HazardData struct {
	Name     string
	Damage   float64
	Type     *DamageType
	Cooldown float64 // seconds between hits on the same target
	LastHit  float64 // world time of the last hit, negative when never hit
}

var Hazard = donburi.NewComponentType[HazardData]()
