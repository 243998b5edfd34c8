package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitToWidthReturnsLongestFittingPrefix(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	inputs := []string{"Company Mascot", "Principal Developer Advocate, Octoverse", "she/her/hers", "@octocat-the-great", "x"}
	widths := []int{0, 5, 11, 12, 60, 110, 220, 310}

	for _, text := range inputs {
		for _, width := range widths {
			got := FitToWidth(m, text, 2, width)

			assert.True(t, strings.HasPrefix(text, got), "%q is not a prefix of %q", got, text)
			assert.LessOrEqual(t, m.MeasureText(got, 2), width)
			if got != text {
				next := []rune(text)[:len([]rune(got))+1]
				assert.Greater(t, m.MeasureText(string(next), 2), width, "a longer prefix of %q also fits %d", text, width)
			}
		}
	}
}

func TestFitToWidthEmpty(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	for _, width := range []int{0, 1, 310} {
		assert.Equal(t, "", FitToWidth(m, "", 2, width))
	}
}

func TestFitToWidthAlreadyFitting(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	assert.Equal(t, "Company Mascot", FitToWidth(m, "Company Mascot", 2, TitleWidth))
	assert.Equal(t, "she/her", FitToWidth(m, "she/her", 2, PronounsWidth))
}

func TestFitToWidthDropsWholeRunes(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	got := FitToWidth(m, "Zoë ☕ café", 2, 48)
	assert.Equal(t, "Zoë ", got)
}

func TestFitToWidthZeroWidthEmptiesText(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	assert.Equal(t, "", FitToWidth(m, "Mona", 2, 0))
}

type countingMeasurer struct {
	runeMeasurer
	calls int
}

func (m *countingMeasurer) MeasureText(text string, scale float64) int {
	m.calls++
	return m.runeMeasurer.MeasureText(text, scale)
}

func TestFitToWidthLongTextMeasuresFewPrefixes(t *testing.T) {
	m := &countingMeasurer{runeMeasurer: runeMeasurer{perRune: 6}}
	got := FitToWidth(m, strings.Repeat("é", 50000), 2, TitleWidth)

	assert.Equal(t, strings.Repeat("é", 25), got)
	assert.Less(t, m.calls, 100)
}

func TestAutoScaleKeepsStartWhenFitting(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	// "Mona" at scale 4 is 96px.
	assert.Equal(t, 4.0, AutoScale(m, "Mona", 4, 289))
	assert.Equal(t, 3.0, AutoScale(m, "", 3, 289))
}

func TestAutoScaleFindsLargestStepBelowAvailable(t *testing.T) {
	m := runeMeasurer{perRune: 6}
	name := "Mona Lisa Octocatter" // 20 runes, 120px per scale unit

	assert.GreaterOrEqual(t, m.MeasureText(name, 4), 289)
	assert.Less(t, m.MeasureText(name, 1), 289)

	got := AutoScale(m, name, 4, 289)
	assert.InDelta(t, 2.40, got, 1e-9)
	assert.Less(t, m.MeasureText(name, got), 289)
	assert.GreaterOrEqual(t, m.MeasureText(name, got+0.01), 289)
}

func TestAutoScaleRequiresStrictlyNarrower(t *testing.T) {
	// 10 runes at 10px: scale 2.89 measures exactly 289, which is not enough.
	m := runeMeasurer{perRune: 10}
	got := AutoScale(m, "abcdefghij", 3, 289)
	assert.InDelta(t, 2.88, got, 1e-9)
}

func TestAutoScaleStopsAtFloor(t *testing.T) {
	m := runeMeasurer{perRune: 1000}
	assert.InDelta(t, 0.1, AutoScale(m, "Wolfeschlegelsteinhausenbergerdorff", 4, 289), 1e-9)
}

func TestAutoScaleStartBelowFloor(t *testing.T) {
	m := runeMeasurer{perRune: 1000}
	assert.InDelta(t, 0.1, AutoScale(m, "x", 0.05, 10), 1e-9)
}
