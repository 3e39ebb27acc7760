package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	. "github.com/quasilyte/gmath"
)

type ButtonColors struct {
	Normal   color.Color
	Hover    color.Color
	Selected color.Color
}

type Button struct {
	Selected bool
	Colors   ButtonColors
	Text     string
	Position Vec
	Size     Vec
	hover    bool
}

func NewButton(text string, colors ButtonColors) *Button {
	button := &Button{
		Colors: colors,
		Size:   Vec{X: 192, Y: 48},
		Text:   text,
	}

	return button
}

func (b *Button) Hover(loc Vec) bool {
	if b == nil {
		return false
	}

	rect := Rect{Min: b.Position, Max: b.Position.Add(b.Size)}
	b.hover = rect.Contains(loc)
	return b.hover
}

func (b *Button) IsClicked(loc Vec, clicked bool) bool {
	return clicked && b.Hover(loc)
}

func (b *Button) Draw(target *ebiten.Image) {
	if b == nil {
		return
	}

	fillColor := b.Colors.Normal
	switch {
	case b.Selected:
		fillColor = b.Colors.Selected
	case b.hover:
		fillColor = b.Colors.Hover
	}

	// draw a shadow for the rectangle
	DrawRoundRect(target, b.Position.Add(splatVec(4)), b.Size, ShadowColor)

	// draw the rectangle
	hoverOffset := splatVec(iff(b.hover, 2.0, 0))
	DrawRoundRect(target, b.Position.Add(hoverOffset), b.Size, fillColor)

	// draw the text
	pos := b.Position.Add(b.Size.Mulf(0.5).Add(hoverOffset))
	DrawTextCenter(target, b.Text, Font24, pos, BackgroundColor)
}

func LayoutButtonsRow(origin Vec, gap float64, buttons ...*Button) {
	pos := origin

	for _, button := range buttons {
		button.Position = pos
		pos.X += button.Size.X + gap
	}
}
