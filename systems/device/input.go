// Package device polls ebiten input devices and plays queued sounds. It is
// the only gameplay-facing code that talks to hardware.
package device

import (
	"github.com/automoto/megagolem/components"
	cfg "github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input component.
// Must run BEFORE the gameplay systems.
func UpdateInput(ecs *ecs.ECS) {
	input := systems.GetOrCreateInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if mergeAnalogStick(input) {
		gamepadUsed = true
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// mergeAnalogStick maps the left stick of every gamepad onto the
// directional actions and reports whether any stick was outside the deadzone.
func mergeAnalogStick(input *components.InputData) bool {
	deadzone := cfg.Input.AnalogDeadzone
	used := false

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		for action, on := range map[cfg.ActionID]bool{
			cfg.ActionMoveLeft:  horizontal < -deadzone,
			cfg.ActionMoveRight: horizontal > deadzone,
			cfg.ActionMoveUp:    vertical < -deadzone,
			cfg.ActionMoveDown:  vertical > deadzone,
		} {
			if on {
				input.Current[action] = true
				used = true
			}
		}
	}
	return used
}
