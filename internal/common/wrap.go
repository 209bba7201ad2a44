package common

import "strings"

// WrapOptions controls how Wrap fills lines.
type WrapOptions struct {
	// Width is the maximum line length in columns; 0 means DefaultWidth.
	Width int
	// InitialIndent is prepended to the first output line.
	InitialIndent string
	// SubsequentIndent is prepended to every line after the first.
	SubsequentIndent string
}

// DefaultWidth is the column width used by the emitters.
const DefaultWidth = 80

// Wrap greedily fills words into lines of at most Width columns. Words are
// never broken, including at hyphens; a word longer than the remaining width
// gets a line of its own. Empty or all-whitespace text yields no lines.
func Wrap(text string, opts WrapOptions) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var lines []string

	line := opts.InitialIndent + words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= width {
			line += " " + word
			continue
		}

		lines = append(lines, line)
		line = opts.SubsequentIndent + word
	}

	return append(lines, line)
}
