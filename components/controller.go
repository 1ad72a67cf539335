package components

import (
	"github.com/pinerift/clamber/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ControllerData wraps the character controller core for the player entity.
type ControllerData struct {
	*controller.Controller
}

var Controller = donburi.NewComponentType[ControllerData]()

// SpeedBody adapts PhysicsData to the controller's Body interface. Velocity
// lives in PhysicsData; the collision system turns it into movement.
type SpeedBody struct {
	Physics *PhysicsData
}

func (b SpeedBody) Velocity() controller.Vec2 {
	return controller.Vec2{X: b.Physics.SpeedX, Y: b.Physics.SpeedY}
}

func (b SpeedBody) SetVelocity(v controller.Vec2) {
	b.Physics.SpeedX = v.X
	b.Physics.SpeedY = v.Y
}

func (b SpeedBody) ApplyImpulse(dv controller.Vec2) {
	b.Physics.SpeedX += dv.X
	b.Physics.SpeedY += dv.Y
}

// ResolvProbe adapts a resolv object to the controller's WallProbe
// interface: a sideways check of the given distance against the layer tag.
type ResolvProbe struct {
	Object *resolv.Object
}

func (p ResolvProbe) Cast(dirX, distance float64, layer string) bool {
	return p.Object.Check(dirX*distance, 0, layer) != nil
}
