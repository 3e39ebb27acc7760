package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	. "github.com/quasilyte/gmath"
)

var touchIds []ebiten.TouchID

func Clicked() (Vec, bool) {
	// re-use touchId buffer
	touchIds = inpututil.AppendJustPressedTouchIDs(touchIds[:0])
	for _, touchId := range touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		return Vec{X: float64(touchX), Y: float64(touchY)}, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mouseX, mouseY := ebiten.CursorPosition()
		return Vec{X: float64(mouseX), Y: float64(mouseY)}, true
	}

	return Vec{}, false
}

func CursorPosition() Vec {
	touchIds = ebiten.AppendTouchIDs(touchIds[:0])
	for _, touchId := range touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		return Vec{X: float64(touchX), Y: float64(touchY)}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	return Vec{X: float64(mouseX), Y: float64(mouseY)}
}
