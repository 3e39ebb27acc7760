package main

import "image/color"

var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
var BackgroundColor color.Color = rgbaOf(0xdbcfb1ff)
var HudTextColor color.Color = rgbaOf(0x937b6aff)
var ShadowColor color.Color = rgbaOf(0xada38780)

var PointColor color.Color = rgbaOf(0x50463aff)
var HullVertexColor color.Color = rgbaOf(0xa05e5eff)

var QuickHullColor color.Color = rgbaOf(0x6f8b6eff)
var QuickHullFillColor color.Color = rgbaOf(0x87a98530)
var QuickHullFillHoverColor color.Color = rgbaOf(0x87a98560)
var GrahamHullColor color.Color = rgbaOf(0xcc9970a0)

var HudChipColor color.Color = rgbaOf(0x839ca9ff)

var DistButtonColors = ButtonColors{
	Normal:   rgbaOf(0x6d838eff),
	Hover:    rgbaOf(0x839ca9ff),
	Selected: rgbaOf(0x8e6d89ff),
}
