package render

import (
	"image"
)

// Display is the drawing surface the badge is composed on. Drawing calls only
// touch an off-screen buffer; nothing becomes visible until Update.
type Display interface {
	// Size returns the logical canvas size in pixels.
	Size() (width int, height int)

	SetPen(pen int)
	Clear()
	SetFont(name string)
	SetThickness(thickness int)

	// MeasureText returns the rendered width of text in pixels at scale.
	MeasureText(text string, scale float64) int
	// Text draws text with its top-left corner at (x, y), wrapping at
	// word boundaries once a line would exceed wrap pixels.
	Text(text string, x, y, wrap int, scale float64)
	Image(img image.Image, x, y int)

	// Update presents the composed frame.
	Update() error

	LED(level int)
	SetUpdateSpeed(speed UpdateSpeed)
}

// Presenter makes a composed frame visible on some output device.
type Presenter interface {
	Present(frame image.Image, speed UpdateSpeed) error
	Close() error
}

// LEDSetter drives the activity LED; level ranges over 0..255.
type LEDSetter interface {
	SetLED(level int) error
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Stub implementations
type NoopPresenter struct{}

func (NoopPresenter) Present(frame image.Image, speed UpdateSpeed) error { return nil }
func (NoopPresenter) Close() error                                       { return nil }
