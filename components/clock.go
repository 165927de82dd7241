package components

import "github.com/yohamta/donburi"

// ClockData is the world time in seconds since the scene started.
type ClockData struct {
	Seconds float64
}

var Clock = donburi.NewComponentType[ClockData]()
