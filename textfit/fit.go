// Package textfit wraps cell text into a limited number of lines at a fixed
// font size.
package textfit

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Ellipsis is appended to truncated lines.
const Ellipsis = "…"

// Measurer reports rendered advance of a string. font.Face based measuring is
// provided by FaceMeasurer.
type Measurer interface {
	Measure(s string) fixed.Int26_6
}

// FaceMeasurer measures with font.MeasureString.
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) Measure(s string) fixed.Int26_6 {
	return font.MeasureString(m.Face, s)
}

// Fit wraps text using face metrics. See Wrap.
func Fit(face font.Face, text string, maxWidth, maxLines int) []string {
	return Wrap(FaceMeasurer{Face: face}, text, maxWidth, maxLines)
}

// Wrap greedily packs whitespace separated words into lines not wider than
// maxWidth pixels. Words are never broken, so a single overlong word gets a
// line of its own. At most maxLines lines are returned: when there are more,
// the last kept line is shortened from the end and terminated with Ellipsis.
// A kept line that still overflows (overlong word) is shortened the same way.
// Empty or blank text produces a single empty line.
func Wrap(m Measurer, text string, maxWidth, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	maxLines = max(maxLines, 1)
	limit := fixed.I(maxWidth)

	var (
		lines []string
		line  string
	)
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if m.Measure(candidate) <= limit {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(m, lines[maxLines-1], limit)
	}
	for i, l := range lines {
		if m.Measure(l) > limit {
			lines[i] = truncate(m, l, limit)
		}
	}
	return lines
}

// truncate removes trailing runes from line until line+Ellipsis fits.
func truncate(m Measurer, line string, limit fixed.Int26_6) string {
	runes := []rune(line)
	for len(runes) > 0 && m.Measure(string(runes)+Ellipsis) > limit {
		runes = []rune(strings.TrimRight(string(runes[:len(runes)-1]), " \t"))
	}
	if len(runes) == 0 {
		return Ellipsis
	}
	return string(runes) + Ellipsis
}
