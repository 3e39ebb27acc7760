package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/hull-duel/hull"
)

func main() {
	const windowScale = 1
	const renderScale = 2

	screenWidth, screenHeight := 720, 720

	if os.Getenv("HULL_PROFILE") != "" {
		defer ProfileStart()()
	}

	session, err := hull.NewSession(hull.Config{Distribution: hull.Disc, Seed: 1}, MaxPoints)
	if err != nil {
		log.Fatal(err)
	}

	defer session.Close()

	game := &Game{
		session: session,
		seed:    1,

		screenWidth:  screenWidth * renderScale,
		screenHeight: screenHeight * renderScale,
	}

	// Specify the window size as you like. Here, a doubled size is specified.
	ebiten.SetWindowSize(screenWidth*windowScale, screenHeight*windowScale)
	ebiten.SetWindowTitle("Hull Duel")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
