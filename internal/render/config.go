package render

// Badge panel geometry. The canvas is landscape; presenters scale or rotate it
// onto the physical device.
var (
	CanvasWidth  = 296
	CanvasHeight = 128
)

// Pens are gray levels; 0 is black and 15 is white.
const (
	PenBlack = 0
	PenWhite = 15
	maxPen   = 15
)

type UpdateSpeed int

const (
	UpdateNormal UpdateSpeed = iota
	UpdateMedium
	UpdateFast
	UpdateTurbo
)

func (s UpdateSpeed) String() string {
	switch s {
	case UpdateNormal:
		return "normal"
	case UpdateMedium:
		return "medium"
	case UpdateFast:
		return "fast"
	case UpdateTurbo:
		return "turbo"
	default:
		return "unknown"
	}
}
