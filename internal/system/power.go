package system

import (
	"context"
	"fmt"
	"strconv"
)

const (
	keepAliveScript = "lifeline.sh"
	haltScript      = "badge_halt.sh"
	ledScript       = "badge_led.sh"
)

// Power latches the badge supply on and powers it down between button presses.
type Power interface {
	// KeepAlive latches the supply so a button press or hold keeps the
	// badge running through Halt.
	KeepAlive(ctx context.Context) error
	// Halt cuts power when running on battery; a front button wakes the
	// badge again. On external power it returns immediately.
	Halt(ctx context.Context) error
}

// ScriptPower drives the power latch through helper scripts run by a Runner.
type ScriptPower struct {
	Runner Runner
}

func (p ScriptPower) KeepAlive(ctx context.Context) error {
	_, stderr, err := p.Runner.Run(ctx, keepAliveScript, "on")
	if err != nil {
		return fmt.Errorf("keepalive failed: %v: %s", err, stderr)
	}
	return nil
}

func (p ScriptPower) Halt(ctx context.Context) error {
	_, stderr, err := p.Runner.Run(ctx, haltScript)
	if err != nil {
		return fmt.Errorf("halt failed: %v: %s", err, stderr)
	}
	return nil
}

// ScriptLED sets the activity LED brightness (0..255) through a helper script.
type ScriptLED struct {
	Runner Runner
}

func (l ScriptLED) SetLED(level int) error {
	_, stderr, err := l.Runner.Run(context.Background(), ledScript, strconv.Itoa(level))
	if err != nil {
		return fmt.Errorf("led %d failed: %v: %s", level, err, stderr)
	}
	return nil
}

type NoopPower struct{}

func (NoopPower) KeepAlive(ctx context.Context) error { return nil }
func (NoopPower) Halt(ctx context.Context) error      { return nil }
