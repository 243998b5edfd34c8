package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSwapsInvertedCorners(t *testing.T) {
	rect := image.Rectangle{Min: image.Pt(10, 20), Max: image.Pt(0, 5)}
	assert.Equal(t, image.Rect(0, 5, 10, 20), Normalize(rect))
}

func TestInset(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)
	assert.Equal(t, image.Rect(5, 5, 95, 45), Inset(rect, 5))
	assert.Equal(t, rect, Inset(rect, 0))
}

func TestSplitVerticalClamps(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)

	left, right := SplitVertical(rect, 30)
	assert.Equal(t, image.Rect(0, 0, 30, 50), left)
	assert.Equal(t, image.Rect(30, 0, 100, 50), right)

	left, right = SplitVertical(rect, 500)
	assert.Equal(t, rect, left)
	assert.True(t, right.Empty())

	left, _ = SplitVertical(rect, -1)
	assert.True(t, left.Empty())
}

func TestFitSquareCentersVertically(t *testing.T) {
	assert.Equal(t, image.Rect(0, 10, 30, 40), FitSquare(image.Rect(0, 0, 30, 50)))
	assert.Equal(t, image.Rect(0, 0, 20, 20), FitSquare(image.Rect(0, 0, 50, 20)))
}

func TestRightSquare(t *testing.T) {
	rest, square := RightSquare(image.Rect(0, 0, 296, 128), 4)

	assert.Equal(t, image.Rect(0, 0, 168, 128), rest)
	assert.Equal(t, image.Rect(172, 4, 292, 124), square)
	assert.Equal(t, square.Dx(), square.Dy())
}
