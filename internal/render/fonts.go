package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultFont is selected until SetFont picks another one.
const DefaultFont = "bitmap8"

// vectorPointsPerScale sizes the vector fonts so that scale 1 is roughly a
// 24px tall line, close to the bitmap8 font at scale 3.
const vectorPointsPerScale = 24

type textFace interface {
	measure(text string, scale float64) int
	draw(dst draw.Image, text string, x, y int, scale float64, pen color.Color, thickness int)
	lineHeight(scale float64) int
}

// bitmapFace draws a fixed pixel font scaled by nearest-neighbour sampling so
// glyph edges stay crisp on a 1-bit panel. Thickness does not apply.
type bitmapFace struct {
	face font.Face
	// unit is the scale factor that maps the base face onto the nominal
	// glyph height of the font at scale 1.
	unit float64
}

func newBitmapFace(nominalHeight int) *bitmapFace {
	face := basicfont.Face7x13
	return &bitmapFace{face: face, unit: float64(nominalHeight) / float64(face.Metrics().Height.Ceil())}
}

func (f *bitmapFace) factor(scale float64) float64 { return scale * f.unit }

func (f *bitmapFace) measure(text string, scale float64) int {
	if text == "" || scale <= 0 {
		return 0
	}
	advance := font.MeasureString(f.face, text)
	return int(math.Ceil(fixedToFloat(advance) * f.factor(scale)))
}

func (f *bitmapFace) lineHeight(scale float64) int {
	return int(math.Ceil(float64(f.face.Metrics().Height.Ceil()) * f.factor(scale)))
}

func (f *bitmapFace) draw(dst draw.Image, text string, x, y int, scale float64, pen color.Color, thickness int) {
	if text == "" || scale <= 0 {
		return
	}
	metrics := f.face.Metrics()
	width := font.MeasureString(f.face, text).Ceil()
	height := metrics.Height.Ceil()
	if width <= 0 || height <= 0 {
		return
	}

	// Render at native size into a mask, then scale the mask.
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)

	factor := f.factor(scale)
	scaledWidth := int(math.Ceil(float64(width) * factor))
	scaledHeight := int(math.Ceil(float64(height) * factor))
	if scaledWidth <= 0 || scaledHeight <= 0 {
		return
	}
	scaled := image.NewAlpha(image.Rect(0, 0, scaledWidth, scaledHeight))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)

	destinationRect := image.Rect(x, y, x+scaledWidth, y+scaledHeight)
	draw.DrawMask(dst, destinationRect, &image.Uniform{C: pen}, image.Point{}, scaled, image.Point{}, draw.Over)
}

// vectorFace draws an outline font through freetype. Thickness is emulated by
// repeating the glyph run with a horizontal offset.
type vectorFace struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

func newVectorFace(ttf *truetype.Font) *vectorFace {
	return &vectorFace{font: ttf, faces: make(map[float64]font.Face)}
}

func (f *vectorFace) size(scale float64) float64 { return scale * vectorPointsPerScale }

func (f *vectorFace) faceFor(scale float64) font.Face {
	size := f.size(scale)
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	f.faces[size] = face
	return face
}

func (f *vectorFace) measure(text string, scale float64) int {
	if text == "" || scale <= 0 {
		return 0
	}
	return font.MeasureString(f.faceFor(scale), text).Ceil()
}

func (f *vectorFace) lineHeight(scale float64) int {
	if scale <= 0 {
		return 0
	}
	return f.faceFor(scale).Metrics().Height.Ceil()
}

func (f *vectorFace) draw(dst draw.Image, text string, x, y int, scale float64, pen color.Color, thickness int) {
	if text == "" || scale <= 0 {
		return
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f.font)
	ctx.SetFontSize(f.size(scale))
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(&image.Uniform{C: pen})

	baseline := y + f.faceFor(scale).Metrics().Ascent.Ceil()
	if thickness < 1 {
		thickness = 1
	}
	for offset := 0; offset < thickness; offset++ {
		if _, err := ctx.DrawString(text, freetype.Pt(x+offset, baseline)); err != nil {
			return
		}
	}
}

// vectorFontFiles lists system fonts tried, in order, for each vector font.
var vectorFontFiles = map[string][]string{
	"sans":  {"DejaVuSans.ttf", "LiberationSans-Regular.ttf", "FreeSans.ttf"},
	"serif": {"DejaVuSerif.ttf", "LiberationSerif-Regular.ttf", "FreeSerif.ttf"},
}

// loadFonts builds the font table. Vector fonts fall back to the embedded Go
// Regular face when no system font can be found.
func loadFonts(logger Logger) map[string]textFace {
	fonts := map[string]textFace{
		"bitmap6":          newBitmapFace(6),
		"bitmap8":          newBitmapFace(8),
		"bitmap14_outline": newBitmapFace(14),
	}

	fallback, err := truetype.Parse(goregular.TTF)
	if err != nil && logger != nil {
		logger.Errorf("font", "embedded font parse failed: %v", err)
	}

	for name, files := range vectorFontFiles {
		ttf := findVectorFont(files)
		if ttf == nil {
			ttf = fallback
			if logger != nil {
				logger.Infof("font", "%s: no system font, using embedded Go Regular", name)
			}
		}
		if ttf != nil {
			fonts[name] = newVectorFace(ttf)
		}
	}
	return fonts
}

func findVectorFont(files []string) *truetype.Font {
	for _, file := range files {
		path, err := findfont.Find(file)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ttf, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return ttf
	}
	return nil
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
