package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds the per-entity velocity the collision system applies
// each tick. The character controller reads and writes it through SpeedBody.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
