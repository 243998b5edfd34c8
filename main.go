package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/badger/internal/app"
	"github.com/rook-computer/badger/internal/buttons"
	"github.com/rook-computer/badger/internal/render"
	"github.com/rook-computer/badger/internal/state"
	"github.com/rook-computer/badger/internal/system"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults, err := app.DefaultConfigFromEnv(render.OutputFramebuffer)
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Flags
	badgePath := flag.String("badge", defaults.BadgePath, "badge text file; created with default content if missing; also configurable via "+app.EnvBadgePath)
	background := flag.String("background", defaults.BackgroundPath, "background JPEG drawn under the text; also configurable via "+app.EnvBackground)
	output := flag.String("output", defaults.Presenter.Output, "where frames go: fb | epd | png; also configurable via "+app.EnvOutput)
	fbPath := flag.String("fb", defaults.Presenter.FramebufferPath, "framebuffer device for -output fb")
	spiPort := flag.String("spi", defaults.Presenter.SPIPort, "SPI port for -output epd (empty selects the first port)")
	pngPath := flag.String("png", defaults.Presenter.PNGPath, "output file for -output png")
	showQR := flag.Bool("qr", defaults.ShowQR, "draw a QR code of the handle at the right edge")
	debug := flag.Bool("debug", false, "enable debug logging to ./badger-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+app.EnvStdioLog)
	flag.Parse()

	// Best-effort: keep panics diagnosable once the console is in graphics mode.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./badger-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg := defaults
	cfg.BadgePath = *badgePath
	cfg.BackgroundPath = *background
	cfg.ShowQR = *showQR
	cfg.Presenter = render.PresenterConfig{Output: *output, FramebufferPath: *fbPath, SPIPort: *spiPort, PNGPath: *pngPath}
	// A PNG is a one-shot render; there is no device to keep powered.
	cfg.RenderOnly = cfg.Presenter.Output == render.OutputPNG

	presenter, err := render.NewPresenter(cfg.Presenter, logger)
	if err != nil {
		fmt.Println("display error:", err)
		return 1
	}
	defer presenter.Close()

	if cfg.Presenter.Output == render.OutputFramebuffer {
		restore := system.EnterGraphicsConsole(logger)
		defer restore()
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := system.ShellRunner{Logger: logger}
	canvas := render.NewCanvas(presenter, logger)
	canvas.LEDs = system.ScriptLED{Runner: runner}

	a := app.New(cfg, state.NewStore(), canvas, system.ScriptPower{Runner: runner}, buttons.NewEvdevButtons(logger))
	a.Logger = logger

	if err := a.Start(processCtx); err != nil {
		fmt.Println("badger error:", err)
		return 1
	}
	return 0
}
