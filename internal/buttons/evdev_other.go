//go:build !linux

package buttons

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// NewEvdevButtons has no input devices to read outside Linux.
func NewEvdevButtons(l logger) *NoopButtons {
	if l != nil {
		l.Infof("input", "evdev unavailable on this platform")
	}
	return NewNoopButtons()
}
