package mdtty

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
)

// visualWidth returns the printed width of text, ignoring escape sequences.
// All column math in the table renderer goes through here so that styled
// cells never throw off alignment.
func visualWidth(text string) int {
	return ansi.PrintableRuneWidth(text)
}

// padVisual pads text with trailing spaces to the given visual width.
func padVisual(text string, width int) string {
	if width <= 0 || visualWidth(text) >= width {
		return text
	}
	if text == "" {
		// padding.String pads nothing for a zero-length line.
		return strings.Repeat(" ", width)
	}
	return padding.String(text, uint(width))
}
