package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// Canvas is an off-screen grayscale frame implementing Display. Update hands
// the frame to a Presenter.
type Canvas struct {
	Presenter Presenter
	LEDs      LEDSetter
	Logger    Logger

	frame     *image.Gray
	pen       color.Gray
	fonts     map[string]textFace
	face      textFace
	fontName  string
	thickness int
	speed     UpdateSpeed
}

func NewCanvas(presenter Presenter, logger Logger) *Canvas {
	c := &Canvas{
		Presenter: presenter,
		Logger:    logger,
		frame:     image.NewGray(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		thickness: 1,
		speed:     UpdateNormal,
	}
	c.fonts = loadFonts(logger)
	c.SetPen(PenBlack)
	c.SetFont(DefaultFont)
	return c
}

func (c *Canvas) Size() (int, int) {
	bounds := c.frame.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Frame exposes the composed frame. It is overwritten by later drawing calls.
func (c *Canvas) Frame() *image.Gray { return c.frame }

func (c *Canvas) SetPen(pen int) {
	if pen < 0 {
		pen = 0
	}
	if pen > maxPen {
		pen = maxPen
	}
	c.pen = color.Gray{Y: uint8(pen * 255 / maxPen)}
}

func (c *Canvas) Clear() {
	draw.Draw(c.frame, c.frame.Bounds(), &image.Uniform{C: c.pen}, image.Point{}, draw.Src)
}

// SetFont switches the active font. Unknown names keep the current font.
func (c *Canvas) SetFont(name string) {
	face, ok := c.fonts[name]
	if !ok {
		if c.Logger != nil {
			c.Logger.Errorf("canvas", "unknown font %q, keeping %q", name, c.fontName)
		}
		return
	}
	c.face = face
	c.fontName = name
}

func (c *Canvas) SetThickness(thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	c.thickness = thickness
}

func (c *Canvas) MeasureText(text string, scale float64) int {
	if c.face == nil {
		return 0
	}
	return c.face.measure(text, scale)
}

func (c *Canvas) Text(text string, x, y, wrap int, scale float64) {
	if c.face == nil || text == "" {
		return
	}
	lineHeight := c.face.lineHeight(scale)
	for i, line := range c.wrapLines(text, wrap, scale) {
		c.face.draw(c.frame, line, x, y+i*lineHeight, scale, c.pen, c.thickness)
	}
}

// wrapLines breaks text at spaces so no line exceeds wrap pixels. A single
// word wider than wrap is kept whole on its own line.
func (c *Canvas) wrapLines(text string, wrap int, scale float64) []string {
	if wrap <= 0 || c.face.measure(text, scale) <= wrap {
		return []string{text}
	}
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && c.face.measure(candidate, scale) > wrap {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (c *Canvas) Image(img image.Image, x, y int) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	destinationRect := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	draw.Draw(c.frame, destinationRect, img, bounds.Min, draw.Over)
}

func (c *Canvas) Update() error {
	if c.Presenter == nil {
		return nil
	}
	if err := c.Presenter.Present(c.frame, c.speed); err != nil {
		if c.Logger != nil {
			c.Logger.Errorf("canvas", "present failed: %v", err)
		}
		return err
	}
	if c.Logger != nil {
		c.Logger.Infof("canvas", "frame presented, speed=%s", c.speed)
	}
	return nil
}

func (c *Canvas) LED(level int) {
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	if c.LEDs == nil {
		return
	}
	if err := c.LEDs.SetLED(level); err != nil && c.Logger != nil {
		c.Logger.Errorf("canvas", "led %d failed: %v", level, err)
	}
}

func (c *Canvas) SetUpdateSpeed(speed UpdateSpeed) { c.speed = speed }
