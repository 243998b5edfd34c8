package badge

// Auto-scale search bounds for the name lines, in hundredths of a scale unit
// so every candidate is an exact multiple of 0.01.
const (
	scaleStepCenti  = 1
	scaleFloorCenti = 10
)

// fitSeedRunes is the first prefix length tried when looking for a short
// overflowing prefix of a long line.
const fitSeedRunes = 64

// FitToWidth returns the longest prefix of text whose measured width at scale
// is at most width. Characters are dropped from the end one rune at a time,
// starting from the shortest doubling prefix that already overflows.
func FitToWidth(m Measurer, text string, scale float64, width int) string {
	runes := []rune(text)
	if len(runes) == 0 || m.MeasureText(text, scale) <= width {
		return text
	}
	for n := fitSeedRunes; n < len(runes); n *= 2 {
		if m.MeasureText(string(runes[:n]), scale) > width {
			runes = runes[:n]
			break
		}
	}
	for len(runes) > 0 && m.MeasureText(string(runes), scale) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// AutoScale shrinks start in 0.01 steps until text measures narrower than
// avail, stopping at the 0.1 floor.
func AutoScale(m Measurer, text string, start float64, avail int) float64 {
	centi := int(start*100 + 0.5)
	for centi > scaleFloorCenti && m.MeasureText(text, float64(centi)/100) >= avail {
		centi -= scaleStepCenti
	}
	if centi < scaleFloorCenti {
		centi = scaleFloorCenti
	}
	return float64(centi) / 100
}
