package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type InputState struct {
	Quit             bool
	ToggleFullscreen bool
	ToggleInfo       bool
	ToggleSlideshow  bool
	NextImage        bool
	PrevImage        bool
}

// PollInput gathers all raw input events for the current frame. Keys
// outside this set are ignored.
func PollInput() InputState {
	return InputState{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		ToggleInfo:       inpututil.IsKeyJustPressed(ebiten.KeyI),
		ToggleSlideshow:  inpututil.IsKeyJustPressed(ebiten.KeyS),
		NextImage:        inpututil.IsKeyJustPressed(ebiten.KeyRight),
		PrevImage:        inpututil.IsKeyJustPressed(ebiten.KeyLeft),
	}
}
