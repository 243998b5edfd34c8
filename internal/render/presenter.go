package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	fb "github.com/gonutz/framebuffer"
)

// ErrUnknownOutput is returned by NewPresenter for an unsupported output name.
var ErrUnknownOutput = errors.New("unknown output")

// Output names accepted by NewPresenter.
const (
	OutputFramebuffer = "fb"
	OutputEPD         = "epd"
	OutputPNG         = "png"
)

// PresenterConfig carries the device path for each output kind.
type PresenterConfig struct {
	Output          string
	FramebufferPath string
	SPIPort         string
	PNGPath         string
}

// NewPresenter opens the presenter selected by cfg.Output.
func NewPresenter(cfg PresenterConfig, logger Logger) (Presenter, error) {
	switch cfg.Output {
	case OutputFramebuffer:
		return NewFramebufferPresenter(cfg.FramebufferPath, logger)
	case OutputEPD:
		return NewEPDPresenter(cfg.SPIPort, logger)
	case OutputPNG:
		return &PNGPresenter{Path: cfg.PNGPath, Logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, cfg.Output)
	}
}

// PNGPresenter writes each presented frame to a PNG file.
type PNGPresenter struct {
	Path   string
	Logger Logger
}

func (p *PNGPresenter) Present(frame image.Image, speed UpdateSpeed) error {
	if p.Path == "" {
		return errors.New("png presenter: no output path")
	}
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", p.Path, err)
	}
	if err := png.Encode(f, frame); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", p.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", p.Path, err)
	}
	if p.Logger != nil {
		p.Logger.Infof("png", "frame written to %s", p.Path)
	}
	return nil
}

func (p *PNGPresenter) Close() error { return nil }

// FramebufferPresenter scales frames onto a Linux framebuffer device.
type FramebufferPresenter struct {
	dev    *fb.Device
	Logger Logger
}

func NewFramebufferPresenter(path string, logger Logger) (*FramebufferPresenter, error) {
	if path == "" {
		path = "/dev/fb0"
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	if logger != nil {
		bounds := dev.Bounds()
		logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	return &FramebufferPresenter{dev: dev, Logger: logger}, nil
}

func (p *FramebufferPresenter) Present(frame image.Image, speed UpdateSpeed) error {
	if p.dev == nil {
		return errors.New("framebuffer closed")
	}
	blitScaled(p.dev, frame)
	return nil
}

func (p *FramebufferPresenter) Close() error {
	if p.dev == nil {
		return nil
	}
	p.dev.Close()
	p.dev = nil
	return nil
}

type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blitScaled writes src onto dst by nearest-neighbour sampling, stretching
// it to dst's bounds.
func blitScaled(dst pixelSetter, src image.Image) {
	bounds := dst.Bounds()
	srcBounds := src.Bounds()
	dstWidth := bounds.Dx()
	dstHeight := bounds.Dy()
	if dstWidth == 0 || dstHeight == 0 || srcBounds.Empty() {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := srcBounds.Min.Y + (y*srcBounds.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := srcBounds.Min.X + (x*srcBounds.Dx())/dstWidth
			r, g, b, _ := src.At(sx, sy).RGBA()
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
