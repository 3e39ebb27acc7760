package main

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
	"golang.org/x/image/font/gofont/goregular"
)

var Font = mustFontSource()

var Font16 = &text.GoTextFace{
	Source: Font,
	Size:   16.0,
}

var Font24 = &text.GoTextFace{
	Source: Font,
	Size:   24.0,
}

func mustFontSource() *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal(err)
	}

	return source
}

// a single white pixel to use as the source for triangle draws
var whiteImage *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// pathOf builds a path along the given points, optionally closing it.
func pathOf(points []Vec, close bool) vector.Path {
	var path vector.Path

	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	if close {
		path.Close()
	}

	return path
}

func StrokePath(target *ebiten.Image, path vector.Path, toScreen ebiten.GeoM, color color.Color, vop *vector.StrokeOptions) {
	toWorld := toScreen
	toWorld.Invert()

	// the stroke width is given in screen pixels, the path in world units
	vop.Width = float32(TransformScalar(toWorld, float64(vop.Width)))

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, vop)

	for idx := range vertices {
		x, y := toScreen.Apply(float64(vertices[idx].DstX), float64(vertices[idx].DstY))
		vertices[idx].DstX = float32(x)
		vertices[idx].DstY = float32(y)
	}

	top := &colorm.DrawTrianglesOptions{}
	top.AntiAlias = true

	var c colorm.ColorM
	c.ScaleWithColor(color)

	colorm.DrawTriangles(target, vertices, indices, whiteImage, c, top)
}

func FillPath(target *ebiten.Image, path vector.Path, tr ebiten.GeoM, color color.Color) {
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	for idx := range vertices {
		x, y := tr.Apply(float64(vertices[idx].DstX), float64(vertices[idx].DstY))
		vertices[idx].DstX = float32(x)
		vertices[idx].DstY = float32(y)
	}

	top := &colorm.DrawTrianglesOptions{}
	top.AntiAlias = true

	var c colorm.ColorM
	c.ScaleWithColor(color)

	colorm.DrawTriangles(target, vertices, indices, whiteImage, c, top)
}

type Promise[T any, P any] struct {
	result   *atomic.Pointer[T]
	progress *atomic.Pointer[P]
	seen     *atomic.Bool
	started  bool
}

func AsyncTask[T any, P any](task func(yield func(P)) T) Promise[T, P] {
	result := &atomic.Pointer[T]{}
	progress := &atomic.Pointer[P]{}

	// spawn go-routine with task
	go func() {
		value := task(func(p P) {
			progress.Store(&p)
		})

		result.Store(&value)
	}()

	return Promise[T, P]{
		started:  true,
		result:   result,
		progress: progress,
		seen:     &atomic.Bool{},
	}
}

func (p Promise[T, P]) Get() *T {
	if p.result == nil {
		return nil
	}

	return p.result.Load()
}

func (p Promise[T, P]) GetOnce() *T {
	if p.result == nil || p.seen.Load() {
		return nil
	}

	value := p.result.Load()
	if value != nil && !p.seen.CompareAndSwap(false, true) {
		return nil
	}

	return value
}

func (p Promise[T, P]) Status() *P {
	if p.progress == nil || p.Get() != nil {
		return nil
	}

	return p.progress.Load()
}

func (p Promise[T, P]) Waiting() bool {
	return p.started && p.Get() == nil
}

// TransformScalar transforms a distance, ignoring the translation part
// of the transform.
func TransformScalar(tr ebiten.GeoM, value float64) float64 {
	x0, y0 := tr.Apply(0, 0)
	x1, y1 := tr.Apply(value, 0)
	return Vec{X: x1 - x0, Y: y1 - y0}.Len()
}

func TransformVec(tr ebiten.GeoM, value Vec) Vec {
	x, y := tr.Apply(value.X, value.Y)
	return Vec{X: x, Y: y}
}

func TransformVertices(tr ebiten.GeoM, vertices []ebiten.Vertex, reuse *[]ebiten.Vertex) []ebiten.Vertex {
	var trVertices []ebiten.Vertex

	if reuse != nil {
		// transform vertices to screen
		trVertices = (*reuse)[:0]
	}

	for _, vertex := range vertices {
		x, y := tr.Apply(float64(vertex.DstX), float64(vertex.DstY))
		vertex.DstX, vertex.DstY = float32(x), float32(y)
		trVertices = append(trVertices, vertex)
	}

	if reuse != nil {
		*reuse = trVertices[:0]
	}

	return trVertices
}

func ApplyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()

	for idx := range vertices {
		vertices[idx].ColorR = float32(r) / 0xffff
		vertices[idx].ColorG = float32(g) / 0xffff
		vertices[idx].ColorB = float32(b) / 0xffff
		vertices[idx].ColorA = float32(a) / 0xffff
	}
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func MeasureText(face text.Face, t string) Vec {
	width, height := text.Measure(t, face, 0)
	return Vec{X: width, Y: height}
}

func iff[T any](cond bool, a, b T) T {
	if cond {
		return a
	}

	return b
}

func splatVec(val float64) Vec {
	return Vec{X: val, Y: val}
}

func DrawText(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color, primaryAlign, secondaryAlign text.Align) {
	if color == nil {
		color = DebugColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = primaryAlign
	op.SecondaryAlign = secondaryAlign
	op.ColorScale.ScaleWithColor(color)
	op.LineSpacing = face.Metrics().XHeight * 2.0
	text.Draw(target, msg, face, op)
}

func DrawTextCenter(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignCenter, text.AlignCenter)
}

func DrawTextLeft(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignStart, text.AlignStart)
}

func DrawTextRight(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignEnd, text.AlignStart)
}
