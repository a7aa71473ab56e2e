package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/antigravity/app"
	"github.com/lixenwraith/antigravity/scene"
	"github.com/lixenwraith/antigravity/terminal"
)

const name = "antigravity-term"

var colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")

func main() {
	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	colorMode, err := terminal.ParseColorMode(*colorModeFlag)
	if err != nil {
		app.Fatal(name, err)
	}

	rt, err := app.Setup(flags, name, os.Getenv)
	if err != nil {
		app.Fatal(name, err)
	}
	defer rt.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		app.Fatal(name, err)
	}
	if err := screen.Init(); err != nil {
		app.Fatal(name, err)
	}
	terminal.RegisterCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	host := terminal.New(screen, terminal.Options{
		CellWidth:  rt.Config.Terminal.CellWidth,
		CellHeight: rt.Config.Terminal.CellHeight,
		ColorMode:  colorMode,
		Logger:     rt.Logger,
		Player:     rt.Audio,
	})

	w, h := host.Viewport()
	sc, err := scene.New(w, h, rt.SceneOptions())
	if err != nil {
		screen.Fini()
		app.Fatal(name, err)
	}
	rt.Bind(sc)

	if err := rt.Start(); err != nil {
		screen.Fini()
		app.Fatal(name, err)
	}
	defer rt.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx, sc); err != nil {
		rt.Logger.Error("host loop failed", zap.Error(err))
	}
}
