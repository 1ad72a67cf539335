package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pinerift/clamber/components"
	cfg "github.com/pinerift/clamber/config"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all bound actions
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge the analog stick into the horizontal axis. The stick wins over
	// the digital bindings when it is outside the deadzone so that partial
	// deflection gives partial run speed.
	analog := analogAxisX(gamepadIDs)
	if analog != 0 {
		input.AxisX = analog
		if analog < 0 {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
		return
	}

	axis := 0.0
	if input.Current[cfg.ActionMoveLeft] {
		axis--
	}
	if input.Current[cfg.ActionMoveRight] {
		axis++
	}
	input.AxisX = axis
}

// analogAxisX reads the left stick from all gamepads and returns the
// strongest horizontal deflection outside the deadzone, zero otherwise.
func analogAxisX(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone

	axis := 0.0
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone || h > deadzone {
			if abs(h) > abs(axis) {
				axis = h
			}
		}
	}

	if axis > 1 {
		axis = 1
	}
	if axis < -1 {
		axis = -1
	}
	return axis
}

// PauseRequested reports whether the pause action was pressed this frame.
// Scenes poll it after the system update to drive transitions.
func PauseRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).Action(cfg.ActionPause).JustPressed
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
