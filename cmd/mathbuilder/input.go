package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the keyboard and gamepad state for one frame.
type Input struct {
	// Digits typed this frame, in order.
	Digits []rune
	// Backspace is true on the frame the last digit should be erased.
	Backspace bool
	// Submit is true on the frame Enter (or the gamepad primary button) was pressed.
	Submit     bool
	Restart    bool
	NextLevel  bool
	PrevLevel  bool
	ToggleGrid bool
}

// Update polls the keyboard and the first connected gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.Digits = i.Digits[:0]
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= '0' && r <= '9' {
			i.Digits = append(i.Digits, r)
		}
	}

	var gpSubmit, gpBack, gpNext, gpPrev bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		gpSubmit = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpBack = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
		gpNext = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontTopRight)
		gpPrev = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontTopLeft)
	}

	i.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || gpBack
	i.Submit = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) || gpSubmit
	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.NextLevel = inpututil.IsKeyJustPressed(ebiten.KeyN) || gpNext
	i.PrevLevel = inpututil.IsKeyJustPressed(ebiten.KeyP) || gpPrev
	i.ToggleGrid = inpututil.IsKeyJustPressed(ebiten.KeyG)
}
