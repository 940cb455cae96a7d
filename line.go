package mdtty

import (
	"regexp"
	"strings"
)

const (
	ruleWidth  = 40
	ruleGlyph  = "─"
	quoteGlyph = "│"
	itemGlyph  = "•"
)

// Block-level line patterns, checked in order; first match wins.
var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	rulePattern    = regexp.MustCompile(`^\s*(-{3,}|\*{3,}|_{3,})\s*$`)
	quotePattern   = regexp.MustCompile(`^(\s*)> ?(.*)$`)
	orderedPattern = regexp.MustCompile(`^(\s*)(\d+\.)\s+(.*)$`)
	bulletPattern  = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
)

// renderLine converts one complete Markdown line outside code and table
// contexts to styled text, without a trailing newline.
func (r *Renderer) renderLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return r.styles.Heading[len(m[1])-1].wrap(r.inline.apply(m[2]))
	}
	if rulePattern.MatchString(line) {
		return r.styles.Rule.wrap(strings.Repeat(ruleGlyph, ruleWidth))
	}
	if m := quotePattern.FindStringSubmatch(line); m != nil {
		return m[1] + r.styles.Quote.wrap(quoteGlyph) + " " + r.inline.apply(m[2])
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		return m[1] + r.styles.ListMarker.wrap(m[2]) + " " + r.inline.apply(m[3])
	}
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return m[1] + r.styles.ListMarker.wrap(itemGlyph) + " " + r.inline.apply(m[2])
	}
	return r.inline.apply(line)
}
