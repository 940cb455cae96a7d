package mdtty

import (
	"bytes"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func renderStream(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader([]byte(src)),
		Writer:  &out,
		Theme:   DefaultTheme(),
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

// captureSink records every rendered string the renderer emits.
type captureSink struct {
	emitted []string
}

func (c *captureSink) WriteRendered(s string) error {
	c.emitted = append(c.emitted, s)
	return nil
}

func (c *captureSink) String() string {
	var b bytes.Buffer
	for _, s := range c.emitted {
		b.WriteString(s)
	}
	return b.String()
}

func newTestRenderer(opts ...RenderOption) (*Renderer, *captureSink) {
	sink := &captureSink{}
	return NewRenderer(sink, DefaultTheme(), opts...), sink
}

func writeAll(t *testing.T, r *Renderer, chunks ...string) {
	t.Helper()
	for _, chunk := range chunks {
		if err := r.Write(chunk); err != nil {
			t.Fatalf("write %q: %v", chunk, err)
		}
	}
}

func flush(t *testing.T, r *Renderer) {
	t.Helper()
	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
}
