package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	for _, button := range g.distButtons {
		button.Draw(screen)
	}

	// hud position we start to draw at
	pos := Vec{X: 32, Y: float64(g.screenHeight) - 88}

	if run := g.run; run != nil {
		msg := fmt.Sprintf("QuickHull %s / %d vertices",
			formatDuration(run.Result.Quick.Elapsed), run.Result.Quick.Count)
		g.hudChip(screen, &pos, msg, QuickHullColor)

		msg = fmt.Sprintf("Graham Scan %s / %d vertices",
			formatDuration(run.Result.Graham.Elapsed), run.Result.Graham.Count)
		g.hudChip(screen, &pos, msg, GrahamHullColor)

		msg = fmt.Sprintf("%d points", run.Result.N)
		g.hudChip(screen, &pos, msg, HudChipColor)
	}

	help := "1-4 distribution, up/down points, enter reseed, q/g toggle hulls"
	helpPos := Vec{X: float64(g.screenWidth) - 32, Y: float64(g.screenHeight) - 128}
	DrawTextRight(screen, help, Font16, helpPos, HudTextColor)

	if g.computeAsync.Waiting() {
		msg := "Computing"
		if status := g.computeAsync.Status(); status != nil {
			msg = *status
		}

		center := Vec{X: float64(g.screenWidth) / 2, Y: 128}
		DrawTextCenter(screen, msg+"...", Font24, center, HudTextColor)
	}
}

func (g *Game) hudChip(target *ebiten.Image, pos *Vec, msg string, chipColor color.Color) {
	textSize := MeasureText(Font16, msg)
	size := Vec{X: textSize.X + 32, Y: 40}

	// draw a small shadow
	DrawRoundRect(target, pos.Add(splatVec(2)), size, ShadowColor)

	// draw the rectangle
	DrawRoundRect(target, *pos, size, chipColor)

	textPos := pos.Add(Vec{X: 16, Y: (size.Y - textSize.Y) / 2})
	DrawTextLeft(target, msg, Font16, textPos, BackgroundColor)

	pos.X += size.X + 16
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(10 * time.Microsecond).String()
	}
}

func DrawRoundRect(target *ebiten.Image, rectanglePos Vec, rectangleSize Vec, color color.Color) {
	rrVertices, rrIndices := RoundedRectangle(rectanglePos, rectangleSize, 8)

	ApplyColorToVertices(rrVertices, color)

	target.DrawTriangles(rrVertices, rrIndices, whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

var rrVertices []ebiten.Vertex
var rrIndices []uint16

func RoundedRectangle(pos Vec, size Vec, radius float64) ([]ebiten.Vertex, []uint16) {
	r := float32(radius)
	p := pos.AsVec32()
	s := size.AsVec32()

	var path vector.Path

	c0 := p
	c1 := p.Add(Vec32{X: s.X})
	c2 := p.Add(Vec32{Y: s.Y})
	c3 := p.Add(s)

	path.MoveTo(c0.X+r, c0.Y)
	path.ArcTo(c1.X, c1.Y, c3.X, c3.Y, r)
	path.ArcTo(c3.X, c3.Y, c2.X, c2.Y, r)
	path.ArcTo(c2.X, c2.Y, c0.X, c0.Y, r)
	path.ArcTo(c0.X, c0.Y, c1.X, c1.Y, r)

	rrVertices, rrIndices = path.AppendVerticesAndIndicesForFilling(rrVertices[:0], rrIndices[:0])
	return rrVertices, rrIndices
}
