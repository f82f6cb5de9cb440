// Package typeset holds the single word-wrap routine shared by body text, the
// back-cover synopsis, and plain text pages.
package typeset

import "strings"

// MeasureFunc returns the rendered width of a string in the caller's units.
type MeasureFunc func(s string) float64

// WrapText greedily appends whitespace-delimited words to the current line
// while the measured width stays within maxWidth; on overflow it flushes the
// line and starts a new one with the overflowing word. A single word wider
// than maxWidth still gets its own line rather than being split.
func WrapText(text string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{}
	current := ""

	for _, word := range words {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if measure(test) <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// WrapParagraphs wraps each newline-separated paragraph independently,
// keeping a blank line between paragraphs. Used for multi-paragraph pages
// like the copyright text.
func WrapParagraphs(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	for i, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			if i > 0 {
				lines = append(lines, "")
			}
			continue
		}
		lines = append(lines, WrapText(para, maxWidth, measure)...)
	}
	return lines
}
