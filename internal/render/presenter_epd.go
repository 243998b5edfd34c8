package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v2"
	"periph.io/x/host/v3"
)

// EPDPresenter drives a Waveshare 2.13" e-paper HAT over SPI.
type EPDPresenter struct {
	port   spi.PortCloser
	dev    *waveshare2in13v2.Dev
	Logger Logger

	presented bool
}

// NewEPDPresenter opens portName ("" selects the first SPI port) and
// initializes the panel.
func NewEPDPresenter(portName string, logger Logger) (*EPDPresenter, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", portName, err)
	}
	dev, err := waveshare2in13v2.NewHat(port, &waveshare2in13v2.EPD2in13v2)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("epd hat: %w", err)
	}
	if err := dev.Init(); err != nil {
		port.Close()
		return nil, fmt.Errorf("epd init: %w", err)
	}
	if logger != nil {
		bounds := dev.Bounds()
		logger.Infof("epd", "panel ready, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	return &EPDPresenter{port: port, dev: dev, Logger: logger}, nil
}

func (p *EPDPresenter) Present(frame image.Image, speed UpdateSpeed) error {
	if p.dev == nil {
		return errors.New("epd closed")
	}
	// A normal-speed update re-runs the full init sequence, clearing ghosting
	// left by earlier frames.
	if speed == UpdateNormal && p.presented {
		if err := p.dev.Init(); err != nil {
			return fmt.Errorf("epd reinit: %w", err)
		}
	}
	bounds := p.dev.Bounds()
	img := image1bit.NewVerticalLSB(bounds)
	src := orientFor(bounds, frame)
	xdraw.NearestNeighbor.Scale(img, bounds, src, src.Bounds(), xdraw.Src, nil)
	if err := p.dev.Draw(bounds, img, image.Point{}); err != nil {
		return fmt.Errorf("epd draw: %w", err)
	}
	p.presented = true
	return nil
}

func (p *EPDPresenter) Close() error {
	if p.dev == nil {
		return nil
	}
	err := p.dev.Halt()
	p.port.Close()
	p.dev = nil
	return err
}

// orientFor rotates a landscape frame for a portrait panel and vice versa.
func orientFor(panel image.Rectangle, frame image.Image) image.Image {
	frameBounds := frame.Bounds()
	panelPortrait := panel.Dx() < panel.Dy()
	framePortrait := frameBounds.Dx() < frameBounds.Dy()
	if panelPortrait == framePortrait {
		return frame
	}
	return imaging.Rotate90(frame)
}
