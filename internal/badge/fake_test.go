package badge

import (
	"fmt"
	"image"
	"math"

	"github.com/rook-computer/badger/internal/render"
)

// runeMeasurer treats every rune as perRune pixels wide at scale 1.
type runeMeasurer struct{ perRune float64 }

func (m runeMeasurer) MeasureText(text string, scale float64) int {
	return int(math.Ceil(float64(len([]rune(text))) * m.perRune * scale))
}

type textCall struct {
	Text  string
	X, Y  int
	Wrap  int
	Scale float64
}

type imageCall struct {
	Bounds image.Rectangle
	X, Y   int
}

// fakeDisplay records drawing calls.
type fakeDisplay struct {
	runeMeasurer
	width, height int

	ops       []string
	texts     []textCall
	images    []imageCall
	updates   int
	updateErr error
}

var _ render.Display = (*fakeDisplay)(nil)

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{runeMeasurer: runeMeasurer{perRune: 6}, width: 296, height: 128}
}

func (d *fakeDisplay) Size() (int, int)      { return d.width, d.height }
func (d *fakeDisplay) SetPen(pen int)        { d.ops = append(d.ops, fmt.Sprintf("pen %d", pen)) }
func (d *fakeDisplay) Clear()                { d.ops = append(d.ops, "clear") }
func (d *fakeDisplay) SetFont(name string)   { d.ops = append(d.ops, "font "+name) }
func (d *fakeDisplay) SetThickness(t int)    { d.ops = append(d.ops, fmt.Sprintf("thickness %d", t)) }
func (d *fakeDisplay) LED(level int)         { d.ops = append(d.ops, fmt.Sprintf("led %d", level)) }
func (d *fakeDisplay) SetUpdateSpeed(s render.UpdateSpeed) {
	d.ops = append(d.ops, "speed "+s.String())
}

func (d *fakeDisplay) Text(text string, x, y, wrap int, scale float64) {
	d.ops = append(d.ops, "text")
	d.texts = append(d.texts, textCall{Text: text, X: x, Y: y, Wrap: wrap, Scale: scale})
}

func (d *fakeDisplay) Image(img image.Image, x, y int) {
	d.ops = append(d.ops, "image")
	d.images = append(d.images, imageCall{Bounds: img.Bounds(), X: x, Y: y})
}

func (d *fakeDisplay) Update() error {
	d.ops = append(d.ops, "update")
	d.updates++
	return d.updateErr
}

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}
