package mdtty

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"
)

var rendererPool = sync.Pool{
	New: func() any {
		return &Renderer{}
	},
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

var configPool = sync.Pool{
	New: func() any {
		return &renderConfig{}
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Theme   Theme
	Options []RenderOption
}

// Render renders Markdown from a stream, writing ANSI output as blocks
// become resolvable rather than buffering the document.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := configPool.Get().(*renderConfig)
	*cfg = renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(cfg)
		}
	}
	cfgVal := *cfg
	configPool.Put(cfg)

	renderer := rendererPool.Get().(*Renderer)
	renderer.resetWithConfig(WriterSink(req.Writer), req.Theme, cfgVal)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	err := feed(renderer, reader, cfgVal)
	renderer.resetWithConfig(WriterSink(io.Discard), nil, renderConfig{})
	rendererPool.Put(renderer)
	reader.Reset(nil)
	readerPool.Put(reader)
	return err
}

// feed pumps reader through sanitizing, front matter filtering and the
// renderer. Bytes that do not yet form a complete UTF-8 rune are carried
// into the next read.
func feed(renderer *Renderer, reader *bufio.Reader, cfg renderConfig) error {
	var fm frontMatterFilter
	fm.reset(cfg.keepFrontMatter)
	// work keeps the carried tail of an incomplete trailing rune in front of
	// the newest read, so a rune split across reads is always decoded whole.
	var work [utf8.UTFMax + 4096]byte
	var cleanBuf [utf8.UTFMax + 4096]byte
	tailLen := 0
	for {
		n, err := reader.Read(work[tailLen : tailLen+4096])
		if n > 0 {
			clean, rest := sanitizeBytes(cleanBuf[:], work[:tailLen+n])
			if writeErr := renderer.Write(string(fm.process(clean))); writeErr != nil {
				return fmt.Errorf("render: %w", writeErr)
			}
			tailLen = copy(work[:], rest)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("render: read: %w", err)
		}
	}
	if trailing := fm.finish(); len(trailing) > 0 {
		if err := renderer.Write(string(trailing)); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := renderer.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
