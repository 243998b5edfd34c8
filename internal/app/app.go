package app

import (
	"context"
	"errors"

	"github.com/rook-computer/badger/internal/badge"
	"github.com/rook-computer/badger/internal/buttons"
	"github.com/rook-computer/badger/internal/render"
	"github.com/rook-computer/badger/internal/state"
	"github.com/rook-computer/badger/internal/system"
)

type App struct {
	Config  Config
	Store   *state.Store
	Display render.Display
	Power   system.Power
	Buttons buttons.Buttons
	Logger  Logger
}

func New(cfg Config, store *state.Store, display render.Display, power system.Power, buttonDriver buttons.Buttons) *App {
	return &App{Config: cfg, Store: store, Display: display, Power: power, Buttons: buttonDriver, Logger: NoopLogger{}}
}

// Start shows the badge once, then idles until ctx is done. Errors loading or
// presenting the badge are returned; power management errors are only logged.
func (app *App) Start(ctx context.Context) error {
	if app.Display == nil {
		return errors.New("no display configured")
	}
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.Store.SetPhase(state.BOOTING)

	app.Display.LED(LEDLevel)
	app.Display.SetUpdateSpeed(render.UpdateNormal)
	app.Display.SetThickness(2)

	b, err := badge.Load(app.Config.BadgePath, app.Display)
	if err != nil {
		app.Logger.Errorf("app", "load badge: %v", err)
		app.Store.SetError(err)
		return err
	}
	app.Store.SetBadge(b)
	app.Logger.Infof("app", "badge loaded from %s", app.Config.BadgePath)

	renderer := &badge.Renderer{
		Display:        app.Display,
		BackgroundPath: app.Config.BackgroundPath,
		ShowQR:         app.Config.ShowQR,
		Logger:         app.Logger,
	}
	if err := renderer.Draw(b); err != nil {
		app.Logger.Errorf("app", "draw badge: %v", err)
		app.Store.SetError(err)
		return err
	}
	app.Store.SetPhase(state.RENDERED)

	if app.Config.RenderOnly {
		return nil
	}
	app.idle(ctx)
	return nil
}

// idle alternates between latching power and halting. Halt only returns on
// external power, in which case a button press starts the next round.
func (app *App) idle(ctx context.Context) {
	if app.Power == nil {
		app.Power = system.NoopPower{}
	}
	if app.Buttons == nil {
		app.Buttons = buttons.NewNoopButtons()
	}
	if err := app.Buttons.Start(ctx); err != nil {
		app.Logger.Errorf("app", "buttons start error: %v", err)
	}
	defer app.Buttons.Stop()

	app.Store.SetPhase(state.IDLE)
	events := app.Buttons.Events()
	for {
		// A button press or hold can keep the badge powered through halt,
		// so latch power back on before each halt.
		if err := app.Power.KeepAlive(ctx); err != nil {
			app.Logger.Errorf("power", "%v", err)
		}
		if err := app.Power.Halt(ctx); err != nil {
			app.Logger.Errorf("power", "%v", err)
		}

		select {
		case <-ctx.Done():
			app.Logger.Infof("app", "idle loop stopped: %v", ctx.Err())
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			app.Store.RecordWake()
			app.Logger.Infof("app", "woken by button %s", ev)
		}
	}
}
