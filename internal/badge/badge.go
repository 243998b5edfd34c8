// Package badge loads the badge text fields and lays them out on a display.
package badge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultText is written to the badge file when it does not exist yet.
// Lines: event, first name, last name, company, title, pronouns, handle.
const DefaultText = `Universe 2024
Mona Lisa
Octocat
GitHub
Company Mascot
she/her
@mona
`

const fieldCount = 7

// Detail line truncation limits at DetailsTextSize.
const (
	TitleWidth    = 310
	PronounsWidth = 110
	HandleWidth   = 220
)

// Measurer reports the rendered width of text in pixels.
type Measurer interface {
	MeasureText(text string, scale float64) int
}

// Badge holds the text fields of one badge file. Event and Company are
// loaded but not drawn.
type Badge struct {
	Event     string
	FirstName string
	LastName  string
	Company   string
	Title     string
	Pronouns  string
	Handle    string
}

// Detail is the text of the bottom line: pronouns when given, otherwise the
// handle.
func (b Badge) Detail() string {
	if strings.TrimSpace(b.Pronouns) != "" {
		return b.Pronouns
	}
	return b.Handle
}

// Load reads the badge file at path, creating it with DefaultText first if it
// does not exist. Title, pronouns and handle are truncated with m so they fit
// their detail line.
func Load(path string, m Measurer) (Badge, error) {
	lines, err := readBadgeFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := writeDefault(path); werr != nil {
			return Badge{}, werr
		}
		lines, err = readBadgeFile(path)
	}
	if err != nil {
		return Badge{}, err
	}

	b := parse(lines)
	b.Title = FitToWidth(m, b.Title, DetailsTextSize, TitleWidth)
	b.Pronouns = FitToWidth(m, b.Pronouns, DetailsTextSize, PronounsWidth)
	b.Handle = FitToWidth(m, b.Handle, DetailsTextSize, HandleWidth)
	return b, nil
}

// parse maps lines positionally onto the badge fields. Missing lines leave
// their field empty. A blank first name is replaced by the last name.
func parse(lines []string) Badge {
	field := func(i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}
	b := Badge{
		Event:     field(0),
		FirstName: field(1),
		LastName:  field(2),
		Company:   field(3),
		Title:     field(4),
		Pronouns:  field(5),
		Handle:    field(6),
	}
	if strings.TrimSpace(b.FirstName) == "" {
		b.FirstName = b.LastName
		b.LastName = ""
	}
	return b
}

func readBadgeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open badge %s: %w", path, err)
	}
	defer f.Close()

	lines := make([]string, 0, fieldCount)
	r := bufio.NewReader(f)
	for len(lines) < fieldCount {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read badge %s: %w", path, err)
		}
		if line != "" {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err != nil {
			break
		}
	}
	return lines, nil
}

func writeDefault(path string) error {
	if err := os.WriteFile(path, []byte(DefaultText), 0o644); err != nil {
		return fmt.Errorf("write default badge %s: %w", path, err)
	}
	return nil
}
