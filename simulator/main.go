package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rook-computer/badger/internal/app"
	"github.com/rook-computer/badger/internal/buttons"
	"github.com/rook-computer/badger/internal/render"
	"github.com/rook-computer/badger/internal/state"
	"github.com/rook-computer/badger/internal/system"
)

func main() {
	defaults, err := app.DefaultConfigFromEnv(render.OutputPNG)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	badgePath := flag.String("badge", "./badge.txt", "badge text file; created with default content if missing")
	background := flag.String("background", "", "background JPEG (optional)")
	out := flag.String("out", defaults.Presenter.PNGPath, "PNG file the rendered badge is written to")
	showQR := flag.Bool("qr", defaults.ShowQR, "draw a QR code of the handle at the right edge")
	verbose := flag.Bool("v", false, "log to stdout")
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stdout)
	}

	cfg := defaults
	cfg.BadgePath = *badgePath
	cfg.BackgroundPath = *background
	cfg.ShowQR = *showQR
	cfg.Presenter = render.PresenterConfig{Output: render.OutputPNG, PNGPath: *out}
	cfg.RenderOnly = true

	presenter, err := render.NewPresenter(cfg.Presenter, logger)
	if err != nil {
		fmt.Println("presenter error:", err)
		os.Exit(1)
	}
	defer presenter.Close()

	store := state.NewStore()
	a := app.New(cfg, store, render.NewCanvas(presenter, logger), system.NoopPower{}, buttons.NewNoopButtons())
	a.Logger = logger

	if err := a.Start(context.Background()); err != nil {
		fmt.Println("render error:", err)
		os.Exit(1)
	}

	snap := store.Snapshot()
	fmt.Printf("Rendered %q (%s) to %s\n", snap.Badge.FirstName, snap.Phase, *out)
}
