package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
	// Frozen health ignores damage and hides the HUD damage response.
	Frozen bool
}

// IsDepleted reports whether the entity has no health left.
func (h *HealthData) IsDepleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
