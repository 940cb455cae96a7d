package mdtty

import (
	"bufio"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// StreamSimulateRequest configures StreamSimulate.
type StreamSimulateRequest struct {
	Reader    io.Reader
	Writer    io.Writer
	ChunkSize int
	Delay     time.Duration
	Theme     Theme
	Options   []RenderOption
}

// StreamSimulate feeds Markdown through the renderer in fixed-size rune
// chunks with a delay per chunk, approximating how inference tokens arrive.
// Output is identical to Render on the same input; only timing differs.
func StreamSimulate(req StreamSimulateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("stream simulate: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("stream simulate: Writer is nil")
	}
	if req.ChunkSize <= 0 {
		return fmt.Errorf("stream simulate: ChunkSize must be > 0")
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
	err := simulate(renderer, reader, req.ChunkSize, req.Delay)
	renderer.resetWithConfig(WriterSink(io.Discard), nil, renderConfig{})
	rendererPool.Put(renderer)
	reader.Reset(nil)
	readerPool.Put(reader)
	return err
}

func simulate(renderer *Renderer, reader *bufio.Reader, chunkSize int, delay time.Duration) error {
	chunk := make([]byte, 0, chunkSize*utf8.UTFMax)
	runes := 0
	flushChunk := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		err := renderer.Write(string(chunk))
		chunk = chunk[:0]
		runes = 0
		return err
	}
	for {
		r, size, err := reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("stream simulate: read: %w", err)
		}
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if isControlRune(r) {
			continue
		}
		chunk = utf8.AppendRune(chunk, r)
		runes++
		if runes >= chunkSize {
			if err := flushChunk(); err != nil {
				return fmt.Errorf("stream simulate: write: %w", err)
			}
		}
	}
	if err := flushChunk(); err != nil {
		return fmt.Errorf("stream simulate: write: %w", err)
	}
	if err := renderer.Flush(); err != nil {
		return fmt.Errorf("stream simulate: flush: %w", err)
	}
	return nil
}
