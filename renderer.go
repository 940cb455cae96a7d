package mdtty

import (
	"io"
	"strings"
)

// Sink receives fully rendered output strings. Each call carries one
// complete rendered line or one complete table, already terminated with a
// trailing line break. Calls happen synchronously from Write and Flush.
type Sink interface {
	WriteRendered(s string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(string) error

// WriteRendered calls f(s).
func (f SinkFunc) WriteRendered(s string) error { return f(s) }

type writerSink struct {
	w io.Writer
}

func (ws writerSink) WriteRendered(s string) error {
	_, err := io.WriteString(ws.w, s)
	return err
}

// WriterSink returns a Sink that writes rendered output to w.
func WriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

// Renderer converts a stream of Markdown chunks to terminal-styled output.
// Chunks need not align with line or construct boundaries: a table header
// is held until its separator line is visible, an open code fence spans any
// number of Write calls. The zero look-ahead exception is tables, which
// need exactly one line beyond the candidate header.
//
// A Renderer is not safe for concurrent use; the caller owns call ordering.
type Renderer struct {
	sink   Sink
	styles Styles
	inline inlineStyler

	// buffer is the unterminated tail of the newest chunk. It never
	// contains a newline.
	buffer string

	// lines is an append-only queue of complete lines; next is the cursor
	// of the first unprocessed entry. drain compacts the consumed prefix.
	lines []string
	next  int

	inCodeBlock bool
	table       *tableState
}

// NewRenderer returns a Renderer emitting to sink with the given theme.
func NewRenderer(sink Sink, theme Theme, opts ...RenderOption) *Renderer {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	r := &Renderer{}
	r.resetWithConfig(sink, theme, cfg)
	return r
}

func (r *Renderer) resetWithConfig(sink Sink, theme Theme, cfg renderConfig) {
	if theme == nil {
		theme = DefaultTheme()
	}
	r.sink = sink
	r.styles = theme.Styles()
	r.inline = inlineStyler{styles: r.styles, osc8: cfg.osc8}
	r.buffer = ""
	r.lines = r.lines[:0]
	r.next = 0
	r.inCodeBlock = false
	r.table = nil
}

// Write feeds a chunk of raw Markdown text. Complete lines are resolved and
// emitted as far as the current look-ahead allows; the rest stays buffered.
func (r *Renderer) Write(chunk string) error {
	if chunk != "" {
		r.buffer += chunk
		for {
			idx := strings.IndexByte(r.buffer, '\n')
			if idx < 0 {
				break
			}
			r.lines = append(r.lines, strings.TrimSuffix(r.buffer[:idx], "\r"))
			r.buffer = r.buffer[idx+1:]
		}
	}
	return r.drain(false)
}

// Flush signals end of stream. Any buffered tail becomes a final line,
// look-ahead requirements are relaxed, an open table is rendered as-is and
// an open code block is closed with a style reset (no fence is fabricated).
// After Flush the renderer holds no buffered state, but reuse for a second
// document is unsupported: one stream, one flush.
func (r *Renderer) Flush() error {
	if r.buffer != "" {
		r.lines = append(r.lines, strings.TrimSuffix(r.buffer, "\r"))
		r.buffer = ""
	}
	if err := r.drain(true); err != nil {
		return err
	}
	if r.table != nil {
		table := r.table
		r.table = nil
		if err := r.sink.WriteRendered(r.renderTable(table)); err != nil {
			return err
		}
	}
	if r.inCodeBlock {
		r.inCodeBlock = false
		if err := r.sink.WriteRendered(r.codeBlockClose()); err != nil {
			return err
		}
	}
	return nil
}

// codeBlockClose terminates a styled code block with a reset line; a
// style-free theme has nothing to reset.
func (r *Renderer) codeBlockClose() string {
	if r.styles.CodeBlock.Prefix == "" {
		return "\n"
	}
	return ansiReset + "\n"
}

// drain resolves pending lines in arrival order. Exactly one condition
// pauses it mid-queue: a table candidate with fewer than two visible lines
// outside final mode.
func (r *Renderer) drain(final bool) error {
	for r.next < len(r.lines) {
		line := r.lines[r.next]

		if r.table != nil {
			if isTableCandidate(line) && !isSeparatorLine(line) {
				r.table.rows = append(r.table.rows, parseTableCells(line))
				r.next++
				continue
			}
			// Table over; the line is reprocessed below on the next pass.
			table := r.table
			r.table = nil
			if err := r.sink.WriteRendered(r.renderTable(table)); err != nil {
				return err
			}
			continue
		}

		if r.inCodeBlock {
			r.next++
			if isFenceLine(line) {
				r.inCodeBlock = false
				if err := r.sink.WriteRendered(r.codeBlockClose()); err != nil {
					return err
				}
				continue
			}
			if err := r.sink.WriteRendered(line + "\n"); err != nil {
				return err
			}
			continue
		}

		if isFenceLine(line) {
			r.next++
			r.inCodeBlock = true
			if err := r.sink.WriteRendered(r.styles.CodeBlock.Prefix + "\n"); err != nil {
				return err
			}
			continue
		}

		if isTableCandidate(line) {
			remaining := len(r.lines) - r.next
			if remaining < 2 && !final {
				break
			}
			if remaining >= 2 && isSeparatorLine(r.lines[r.next+1]) {
				r.table = &tableState{header: parseTableCells(line)}
				r.next += 2
				continue
			}
			// No separator follows; a lone pipe line is a plain line.
		}

		r.next++
		if err := r.sink.WriteRendered(r.renderLine(line) + "\n"); err != nil {
			return err
		}
	}
	r.compact()
	return nil
}

// compact discards the consumed prefix of the line queue.
func (r *Renderer) compact() {
	if r.next == 0 {
		return
	}
	n := copy(r.lines, r.lines[r.next:])
	r.lines = r.lines[:n]
	r.next = 0
}

// isFenceLine reports whether the trimmed line opens or closes a code
// fence. A second fence always closes; nesting is not supported.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
