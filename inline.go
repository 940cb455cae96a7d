package mdtty

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline substitution patterns, applied in a fixed order. Code spans run
// first and are placeholder-protected so their contents stay inert to the
// later markers. The single-marker emphasis patterns deliberately match
// intraword underscores and asterisks; that heuristic is part of the
// renderer's observable behavior and is pinned by tests.
var (
	codeSpanPattern    = regexp.MustCompile("`([^`]+)`")
	strikePattern      = regexp.MustCompile(`~~(.+?)~~`)
	boldStarPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderPattern = regexp.MustCompile(`_([^_]+)_`)
	linkPattern        = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
)

// inlineStyler maps raw inline Markdown within one line to styled text.
// It is stateless; one styler is shared by all lines of a renderer.
type inlineStyler struct {
	styles Styles
	osc8   bool
}

func (st *inlineStyler) apply(text string) string {
	var spans []string
	if strings.IndexByte(text, '`') >= 0 {
		text = codeSpanPattern.ReplaceAllStringFunc(text, func(m string) string {
			content := m[1 : len(m)-1]
			spans = append(spans, st.styles.CodeInline.wrap(content))
			return spanPlaceholder(len(spans) - 1)
		})
	}
	text = strikePattern.ReplaceAllString(text, st.wrap(st.styles.Strikethrough))
	text = boldStarPattern.ReplaceAllString(text, st.wrap(st.styles.Strong))
	text = boldUnderPattern.ReplaceAllString(text, st.wrap(st.styles.Strong))
	text = italicStarPattern.ReplaceAllString(text, st.wrap(st.styles.Emphasis))
	text = italicUnderPattern.ReplaceAllString(text, st.wrap(st.styles.Emphasis))
	if strings.IndexByte(text, '[') >= 0 {
		text = linkPattern.ReplaceAllStringFunc(text, st.replaceLink)
	}
	for i, span := range spans {
		text = strings.Replace(text, spanPlaceholder(i), span, 1)
	}
	return text
}

func (st *inlineStyler) wrap(s Style) string {
	return s.wrap("${1}")
}

func (st *inlineStyler) replaceLink(match string) string {
	sub := linkPattern.FindStringSubmatch(match)
	if sub == nil {
		return match
	}
	label := st.styles.LinkText.wrap(sub[1])
	if st.osc8 {
		label = osc8Start + sub[2] + "\x1b\\" + label + osc8End
	}
	return label + " " + st.styles.LinkURL.wrap("("+sub[2]+")")
}

func spanPlaceholder(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}
