package mdtty

import (
	"strings"
	"testing"
)

func TestRenderLineHeadings(t *testing.T) {
	r, _ := newTestRenderer()
	styles := DefaultTheme().Styles()
	for level := 1; level <= 6; level++ {
		line := strings.Repeat("#", level) + " Title"
		out := r.renderLine(line)
		if plain := stripANSI(out); plain != "Title" {
			t.Errorf("level %d: marker not stripped, got %q", level, plain)
		}
		if !strings.HasPrefix(out, styles.Heading[level-1].Prefix) {
			t.Errorf("level %d: wrong heading style: %q", level, out)
		}
	}
}

func TestRenderLineSevenHashesIsNotAHeading(t *testing.T) {
	r, _ := newTestRenderer()
	out := stripANSI(r.renderLine("####### nope"))
	if out != "####### nope" {
		t.Fatalf("7 hashes must render as plain text, got %q", out)
	}
}

func TestRenderLineRuleNormalization(t *testing.T) {
	r, _ := newTestRenderer()
	want := r.renderLine("---")
	if plain := stripANSI(want); plain != strings.Repeat(ruleGlyph, ruleWidth) {
		t.Fatalf("rule is not a fixed-width glyph run: %q", plain)
	}
	for _, line := range []string{"----------", "***", "____", "  ---  "} {
		if got := r.renderLine(line); got != want {
			t.Errorf("rule %q rendered %q, want %q", line, got, want)
		}
	}
}

func TestRenderLineBlockquote(t *testing.T) {
	r, _ := newTestRenderer()
	out := r.renderLine("  > quoted **text**")
	plain := stripANSI(out)
	if plain != "  "+quoteGlyph+" quoted text" {
		t.Fatalf("unexpected quote rendering: %q", plain)
	}
	if !strings.Contains(out, DefaultTheme().Styles().Quote.Prefix+quoteGlyph) {
		t.Errorf("quote bar not styled: %q", out)
	}
}

func TestRenderLineBareQuoteMarker(t *testing.T) {
	r, _ := newTestRenderer()
	if plain := stripANSI(r.renderLine(">")); plain != quoteGlyph+" " {
		t.Fatalf("bare quote marker: got %q", plain)
	}
}

func TestRenderLineOrderedList(t *testing.T) {
	r, _ := newTestRenderer()
	cases := map[string]string{
		"1. first":    "1. first",
		"10. tenth":   "10. tenth",
		"  2. nested": "  2. nested",
	}
	for line, want := range cases {
		if plain := stripANSI(r.renderLine(line)); plain != want {
			t.Errorf("renderLine(%q) = %q, want %q", line, plain, want)
		}
	}
}

func TestRenderLineBullets(t *testing.T) {
	r, _ := newTestRenderer()
	for _, marker := range []string{"-", "*", "+"} {
		out := stripANSI(r.renderLine(marker + " item"))
		if out != itemGlyph+" item" {
			t.Errorf("marker %q: got %q", marker, out)
		}
	}
	if out := stripANSI(r.renderLine("   - deep")); out != "   "+itemGlyph+" deep" {
		t.Errorf("indentation not preserved: %q", out)
	}
}

func TestRenderLinePlainFallback(t *testing.T) {
	r, _ := newTestRenderer()
	if got := stripANSI(r.renderLine("just a paragraph line.")); got != "just a paragraph line." {
		t.Fatalf("fallback altered text: %q", got)
	}
}

func TestRenderLineBlank(t *testing.T) {
	r, _ := newTestRenderer()
	if got := r.renderLine("   "); got != "" {
		t.Fatalf("whitespace-only line must render empty, got %q", got)
	}
}
