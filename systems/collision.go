package systems

import (
	"github.com/pinerift/clamber/components"
	"github.com/pinerift/clamber/controller"
	"github.com/pinerift/clamber/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformTopThreshold is how far below a platform's top edge the player's
// feet may be and still land on it; deeper means the player is passing
// through from below.
const platformTopThreshold = 4.0

// UpdateCollisions moves each player by its speed, resolving against solids
// and one-way platforms, and feeds the resulting contact events to the
// controller. Must run AFTER UpdatePhysics.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(physics, obj.Object)
		contacts, supported := resolveVertical(physics, obj.Object)

		// Contact events are delivered between physics ticks: support is
		// re-asserted every tick it persists, and its loss ends the contact.
		wasGrounded := ctrl.Grounded()
		if len(contacts) > 0 {
			ctrl.OnContactBegin(contacts)
		}
		if !supported && wasGrounded {
			ctrl.OnContactEnd()
		}
	})
}

// resolveHorizontal moves the object by SpeedX, stopping against any solid
// that overlaps vertically.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if shouldStopHorizontal(object, check) {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

func shouldStopHorizontal(object *resolv.Object, check *resolv.Collision) bool {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return false
	}

	objectBottom := object.Y + object.H
	for _, solid := range solids {
		if objectBottom > solid.Y && object.Y < solid.Y+solid.H {
			return true
		}
	}
	return false
}

// resolveVertical moves the object by SpeedY and returns the contact events
// produced by the move plus whether the object ended it supported.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object) ([]controller.Contact, bool) {
	dy := physics.SpeedY

	// The extra pixel when falling keeps probing the ground under our feet
	// so standing still stays supported.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	var contacts []controller.Contact
	supported := false

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return nil, false
	}

	if dy < 0 {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
			contacts = append(contacts, controller.Contact{Normal: controller.Vec2{Y: 1}})
		}
	} else {
		// Platforms carry only from above; solids carry whenever falling.
		if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
			platform := platforms[0]
			if object.Bottom() < platform.Y+platformTopThreshold {
				dy = check.ContactWithObject(platform).Y()
				physics.SpeedY = 0
				supported = true
			}
		}
		if !supported {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
				physics.SpeedY = 0
				supported = true
			}
		}
	}

	object.Y += dy

	if supported {
		contacts = append(contacts, controller.Contact{Normal: controller.Vec2{Y: -1}})
	}
	return contacts, supported
}
