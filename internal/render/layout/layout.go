package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	leftWidthPx = clamp(leftWidthPx, 0, rect.Dx())
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// FitSquare returns the largest square that fits into rect, vertically
// centered and anchored to the left edge.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	top := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(rect.Min.X, top, rect.Min.X+size, top+size)
}

// RightSquare reserves a square column against the right edge of rect, as
// tall as rect minus paddingPx on each side. It returns the remaining left
// area and the padded square.
func RightSquare(rect image.Rectangle, paddingPx int) (rest image.Rectangle, square image.Rectangle) {
	rect = Normalize(rect)
	if paddingPx < 0 {
		paddingPx = 0
	}
	side := clamp(rect.Dy()-2*paddingPx, 0, rect.Dx())
	column := side + 2*paddingPx
	rest, right := SplitVertical(rect, rect.Dx()-column)
	return rest, FitSquare(Inset(right, paddingPx))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
