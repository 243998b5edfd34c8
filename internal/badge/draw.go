package badge

import (
	"errors"
	"image"
	"strings"

	"github.com/rook-computer/badger/internal/render"
	"github.com/rook-computer/badger/internal/render/layout"
)

// Badge layout, in pixels unless noted.
const (
	LeftPadding     = 7
	NameTop         = 5
	NameHeight      = 45
	DetailsHeight   = 18
	LineSpacing     = 2
	DetailsTextSize = 2

	FirstNameScale = 4
	LastNameScale  = 3

	BadgeFont     = "bitmap8"
	nameThickness = 4
	qrPadding     = 4
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Renderer composes a badge frame on Display and presents it.
type Renderer struct {
	Display        render.Display
	BackgroundPath string
	// ShowQR places a QR code of the handle against the right edge and
	// narrows the text column to make room for it.
	ShowQR bool
	Logger Logger
}

// Draw clears the display, draws the background, names and detail lines of b
// and presents the frame. Only the presenter error is returned; a missing or
// unreadable background is logged.
func (r *Renderer) Draw(b Badge) error {
	d := r.Display
	width, height := d.Size()
	textWidth := width - LeftPadding

	d.SetPen(render.PenWhite)
	d.Clear()
	r.drawBackground()

	if r.ShowQR {
		if restWidth, ok := r.drawQR(b.Handle, width, height); ok {
			textWidth = restWidth - LeftPadding
		}
	}

	d.SetPen(render.PenBlack)
	d.SetFont(BadgeFont)
	d.SetThickness(nameThickness)
	firstScale := AutoScale(d, b.FirstName, FirstNameScale, textWidth)
	d.Text(b.FirstName, LeftPadding, NameTop, textWidth, firstScale)

	lastScale := AutoScale(d, b.LastName, LastNameScale, textWidth)
	d.Text(b.LastName, LeftPadding, NameHeight+LineSpacing, textWidth, lastScale)

	// Details are bottom aligned and were truncated when loaded.
	d.SetPen(render.PenBlack)
	d.SetFont(BadgeFont)
	d.Text(b.Title, LeftPadding, height-(DetailsHeight*2)-LineSpacing-2, textWidth, DetailsTextSize)
	d.Text(b.Detail(), LeftPadding, height-DetailsHeight, textWidth, DetailsTextSize)

	r.infof("drew badge for %q, name scales %.2f/%.2f", b.FirstName, firstScale, lastScale)
	return d.Update()
}

func (r *Renderer) drawBackground() {
	if r.BackgroundPath == "" {
		return
	}
	img, err := render.LoadJPEG(r.BackgroundPath)
	if err != nil {
		if errors.Is(err, render.ErrImageDecode) {
			r.errorf("badge background error: corrupt image: %v", err)
		} else {
			r.errorf("badge background error: %v", err)
		}
		return
	}
	r.Display.Image(img, 0, 0)
}

// drawQR returns the width left for text when a code was drawn.
func (r *Renderer) drawQR(handle string, width, height int) (int, bool) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return 0, false
	}
	rest, square := layout.RightSquare(image.Rect(0, 0, width, height), qrPadding)
	img, err := render.GenerateQRCodeImage(handle, square.Dx())
	if err != nil {
		r.errorf("qr code for %q failed: %v", handle, err)
		return 0, false
	}
	if img == nil {
		return 0, false
	}
	r.Display.Image(img, square.Min.X, square.Min.Y)
	return rest.Dx(), true
}

func (r *Renderer) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("badge", format, args...)
	}
}

func (r *Renderer) errorf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Errorf("badge", format, args...)
	}
}
