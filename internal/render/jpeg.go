package render

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"os"
)

// ErrImageDecode reports a background image that exists but cannot be decoded.
var ErrImageDecode = errors.New("image decode failed")

// LoadJPEG opens and decodes the JPEG at path.
func LoadJPEG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	return img, nil
}
