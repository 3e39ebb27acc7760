package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"slices"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/hull-duel/hull"
	"github.com/oliverbestmann/hull-duel/tween"
	. "github.com/quasilyte/gmath"
)

// MaxPoints is the capacity both session buffers are allocated with.
const MaxPoints = 100_000

// PointCounts holds the selectable point set sizes, stepped with up/down.
var PointCounts = []int{1_000, 5_000, 25_000, 100_000}

var distributionLabels = []string{"Disc", "Ring", "Circle", "Clusters"}

var distributionKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
}

// HullRun keeps a snapshot of one finished comparison. The snapshot is
// taken on the main thread once the async computation has resolved, so
// drawing never touches the session buffers.
type HullRun struct {
	Result hull.Result

	Points     []Vec
	GrahamHull []Vec
}

type ComputeOutcome struct {
	Result hull.Result
	Err    error
}

// Game implements ebiten.Game interface.
type Game struct {
	initialized bool

	screenWidth  int
	screenHeight int

	toScreen ebiten.GeoM
	toWorld  ebiten.GeoM

	debug bool

	now time.Time

	session      *hull.Session
	seed         uint64
	distribution hull.Distribution
	countIndex   int

	computeAsync Promise[ComputeOutcome, string]
	run          *HullRun

	pointsImage *ebiten.Image
	pointsDirty bool

	showQuick  bool
	showGraham bool

	// fraction of the hull outlines revealed after a new result
	reveal float64
	tweens tween.Tweens

	clicked      bool
	cursorScreen Vec
	cursorWorld  Vec

	distButtons []*Button
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return g.screenWidth, g.screenHeight
}

func (g *Game) initialize() {
	g.initialized = true
	g.debug = Debug
	g.now = time.Now()
	g.showQuick = true
	g.showGraham = true
	g.countIndex = 1

	g.updateTransform()

	for _, label := range distributionLabels {
		g.distButtons = append(g.distButtons, NewButton(label, DistButtonColors))
	}

	LayoutButtonsRow(Vec{X: 32, Y: 32}, 16, g.distButtons...)

	g.startCompute()
}

func (g *Game) Update() error {
	if !g.initialized {
		g.initialize()
	}

	// calculate delta time for animations
	now := time.Now()
	dt := now.Sub(g.now)
	g.now = now

	g.tweens.Update(dt)

	if outcome := g.computeAsync.GetOnce(); outcome != nil {
		g.finishCompute(outcome)
	}

	// get click information
	g.cursorScreen, g.clicked = Clicked()
	if !g.clicked {
		g.cursorScreen = CursorPosition()
	}

	// derive world cursor position
	g.cursorWorld = TransformVec(g.toWorld, g.cursorScreen)

	g.Input()

	g.updatePointsImage()

	return nil
}

func (g *Game) Input() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.showQuick = !g.showQuick
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGraham = !g.showGraham
	}

	// step to the next seed
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.seed += 1
		g.restart()
	}

	for idx, key := range distributionKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectDistribution(hull.Distribution(idx))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && g.countIndex+1 < len(PointCounts) {
		g.countIndex++
		g.restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.countIndex > 0 {
		g.countIndex--
		g.restart()
	}

	for idx, button := range g.distButtons {
		button.Selected = hull.Distribution(idx) == g.distribution
		button.Hover(g.cursorScreen)

		if button.IsClicked(g.cursorScreen, g.clicked) {
			g.selectDistribution(hull.Distribution(idx))
		}
	}
}

func (g *Game) selectDistribution(dist hull.Distribution) {
	if g.distribution == dist {
		return
	}

	g.distribution = dist
	g.restart()
}

// restart swaps the generator below the session and kicks off a fresh
// computation. Ignored while one is still in flight, the session buffers
// are exclusive to the running computation.
func (g *Game) restart() {
	if g.computeAsync.Waiting() {
		return
	}

	g.session.Reset(hull.Config{Distribution: g.distribution, Seed: g.seed})
	g.startCompute()
}

func (g *Game) startCompute() {
	if g.computeAsync.Waiting() {
		return
	}

	n := PointCounts[g.countIndex]
	session := g.session

	g.computeAsync = AsyncTask(func(yield func(string)) ComputeOutcome {
		yield(fmt.Sprintf("Computing hulls of %d points", n))

		result, err := session.Compute(n)
		return ComputeOutcome{Result: result, Err: err}
	})
}

func (g *Game) finishCompute(outcome *ComputeOutcome) {
	if outcome.Err != nil {
		log.Printf("hull computation failed: %v", outcome.Err)
		return
	}

	g.run = &HullRun{
		Result:     outcome.Result,
		Points:     slices.Clone(g.session.Points()),
		GrahamHull: slices.Clone(g.session.GrahamHull()),
	}

	g.pointsDirty = true

	// let the hull outlines sweep in
	g.reveal = 0
	g.tweens.Add(&tween.Simple{
		Duration: 800 * time.Millisecond,
		Ease:     ease.OutCubic,
		Target:   tween.LerpValue(&g.reveal, 0, 1),
	})

	result := outcome.Result
	log.Printf("n=%d quickhull: k=%d in %s, graham scan: k=%d in %s",
		result.N,
		result.Quick.Count, result.Quick.Elapsed,
		result.Graham.Count, result.Graham.Elapsed)
}

func (g *Game) updatePointsImage() {
	if g.pointsImage == nil {
		g.pointsImage = ebiten.NewImage(g.screenWidth, g.screenHeight)
		g.pointsDirty = true
	}

	if !g.pointsDirty || g.run == nil {
		return
	}

	g.pointsDirty = false
	g.pointsImage.Fill(color.Transparent)

	// the hull prefix gets bigger, highlighted markers
	k := g.run.Result.HullCount()
	for idx, p := range g.run.Points {
		clr, radius := PointColor, 1.5
		if idx < k {
			clr, radius = HullVertexColor, 3.0
		}

		DrawFillCircle(g.pointsImage, TransformVec(g.toScreen, p), radius, clr)
	}
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	if g.pointsImage != nil {
		screen.DrawImage(g.pointsImage, nil)
	}

	if run := g.run; run != nil {
		if g.showGraham {
			g.drawHullOutline(screen, run.GrahamHull, GrahamHullColor, 6, nil)
		}

		if g.showQuick {
			quickHull := run.Points[:run.Result.HullCount()]

			var fill color.Color
			if g.reveal >= 1 {
				fill = QuickHullFillColor
				if hull.PointInHull(quickHull, g.cursorWorld) {
					fill = QuickHullFillHoverColor
				}
			}

			g.drawHullOutline(screen, quickHull, QuickHullColor, 2.5, fill)
		}
	}

	g.drawHUD(screen)

	if g.debug {
		g.DrawDebugText(screen)
	}
}

func (g *Game) drawHullOutline(screen *ebiten.Image, hullVecs []Vec, strokeColor color.Color, width float64, fillColor color.Color) {
	if len(hullVecs) < 2 {
		// a lone hull vertex is already visible as a point marker
		return
	}

	// reveal the outline vertex by vertex
	visible := int(math.Ceil(g.reveal * float64(len(hullVecs))))
	visible = max(2, min(visible, len(hullVecs)))
	closed := visible == len(hullVecs) && g.reveal >= 1

	path := pathOf(hullVecs[:visible], closed)

	if fillColor != nil && closed {
		FillPath(screen, path, g.toScreen, fillColor)
	}

	StrokePath(screen, path, g.toScreen, strokeColor, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
}

func (g *Game) DrawDebugText(screen *ebiten.Image) {
	pos := splatVec(32)
	pos.Y += 96

	t := fmt.Sprintf("%1.1f fps, seed %d, %s distribution", ebiten.ActualFPS(), g.seed, g.distribution)
	DrawTextLeft(screen, t, Font16, pos, DebugColor)

	if run := g.run; run != nil {
		pos.Y += 24
		t = fmt.Sprintf("quickhull %s, graham scan %s",
			run.Result.Quick.Elapsed, run.Result.Graham.Elapsed)
		DrawTextLeft(screen, t, Font16, pos, DebugColor)
	}

	if progress := g.computeAsync.Status(); progress != nil {
		pos.Y += 24
		DrawTextLeft(screen, *progress+"...", Font16, pos, DebugColor)
	}
}

func (g *Game) updateTransform() {
	// the generators fill the unit disc resp. the unit square, keep a margin
	worldSize := 2.3

	scale := float64(min(g.screenWidth, g.screenHeight)) / worldSize

	g.toScreen = ebiten.GeoM{}
	g.toScreen.Scale(scale, -scale)
	g.toScreen.Translate(float64(g.screenWidth)/2, float64(g.screenHeight)/2)

	// create an inverse of the transform to transform from screen
	// coordinates back to world coordinates
	g.toWorld = g.toScreen
	g.toWorld.Invert()
}
