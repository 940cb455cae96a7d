package mdtty

import (
	"bytes"
	"strings"
	"testing"
)

const simDoc = "# Streamed\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\n```\nraw\n```\n**done**\n"

func TestStreamSimulateMatchesRender(t *testing.T) {
	want := renderStream(t, simDoc)
	for _, chunkSize := range []int{1, 2, 3, 7, 512} {
		var out bytes.Buffer
		err := StreamSimulate(StreamSimulateRequest{
			Reader:    strings.NewReader(simDoc),
			Writer:    &out,
			ChunkSize: chunkSize,
			Theme:     DefaultTheme(),
		})
		if err != nil {
			t.Fatalf("chunk size %d: %v", chunkSize, err)
		}
		if out.String() != want {
			t.Errorf("chunk size %d diverges from Render\nwant %q\ngot  %q",
				chunkSize, want, out.String())
		}
	}
}

func TestStreamSimulateValidation(t *testing.T) {
	var out bytes.Buffer
	if err := StreamSimulate(StreamSimulateRequest{Writer: &out, ChunkSize: 1}); err == nil {
		t.Error("nil Reader accepted")
	}
	if err := StreamSimulate(StreamSimulateRequest{Reader: strings.NewReader("x"), ChunkSize: 1}); err == nil {
		t.Error("nil Writer accepted")
	}
	if err := StreamSimulate(StreamSimulateRequest{Reader: strings.NewReader("x"), Writer: &out}); err == nil {
		t.Error("zero ChunkSize accepted")
	}
}

func TestStreamSimulateSkipsControlRunes(t *testing.T) {
	var out bytes.Buffer
	err := StreamSimulate(StreamSimulateRequest{
		Reader:    strings.NewReader("ab\x01c\n"),
		Writer:    &out,
		ChunkSize: 2,
		Theme:     DefaultTheme(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := stripANSI(out.String()); got != "abc\n" {
		t.Fatalf("control rune survived: %q", got)
	}
}
