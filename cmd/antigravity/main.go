package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/antigravity/app"
	"github.com/lixenwraith/antigravity/scene"
	"github.com/lixenwraith/antigravity/window"
)

const (
	name          = "antigravity"
	initialWidth  = 1280
	initialHeight = 800
)

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	rt, err := app.Setup(flags, name, os.Getenv)
	if err != nil {
		app.Fatal(name, err)
	}
	defer rt.Close()

	sc, err := scene.New(initialWidth, initialHeight, rt.SceneOptions())
	if err != nil {
		app.Fatal(name, err)
	}
	rt.Bind(sc)

	if err := rt.Start(); err != nil {
		app.Fatal(name, err)
	}
	defer rt.Stop()

	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowTitle("antigravity")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := window.New(sc, window.Options{Logger: rt.Logger, Player: rt.Audio})
	if err := ebiten.RunGame(game); err != nil {
		rt.Logger.Error("game loop failed", zap.Error(err))
		rt.Stop()
		rt.Close()
		app.Fatal(name, err)
	}
}
