package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fishtown/ecs/component"
)

const stickDeadzone = 0.2

// SampleInput reads keyboard and the first gamepad into one tick's intents.
func SampleInput() component.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	in := component.Input{
		ActPressed:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ActReleased:       inpututil.IsKeyJustReleased(ebiten.KeySpace),
		SecondaryPressed:  inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		SecondaryReleased: inpututil.IsKeyJustReleased(ebiten.KeyE) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		MenuPressed:       inpututil.IsKeyJustPressed(ebiten.KeyTab),
		QuitPressed:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if left {
		in.MoveX -= 1
	}
	if right {
		in.MoveX += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.MoveX = leftX
		}
		in.ActPressed = in.ActPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.ActReleased = in.ActReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
		in.SecondaryPressed = in.SecondaryPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.SecondaryReleased = in.SecondaryReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightLeft)
		in.MenuPressed = in.MenuPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return in
}
