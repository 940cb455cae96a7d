package mdtty

import "bytes"

// frontMatterFilter suppresses a front matter block at the very start of a
// stream: an opening delimiter line (--- for YAML, +++ for TOML, ;;; for
// JSON), metadata-looking content, and a matching closing delimiter. Until
// it can decide, input is held in a bounded probe buffer; once decided the
// filter passes everything through untouched.
type frontMatterFilter struct {
	passthrough bool
	probe       []byte
}

const maxFrontMatterProbeBytes = 64 * 1024

var frontMatterDelims = [][]byte{
	[]byte("---"),
	[]byte("+++"),
	[]byte(";;;"),
}

func (f *frontMatterFilter) reset(passthrough bool) {
	f.passthrough = passthrough
	f.probe = f.probe[:0]
}

// process returns the renderable portion of chunk, holding bytes back while
// a front matter decision is still open.
func (f *frontMatterFilter) process(chunk []byte) []byte {
	if f.passthrough || len(chunk) == 0 {
		return chunk
	}
	f.probe = append(f.probe, chunk...)
	out, decided := f.decide(false)
	if !decided && len(f.probe) > maxFrontMatterProbeBytes {
		out = f.probe
		decided = true
	}
	if decided {
		f.passthrough = true
		remaining := out
		f.probe = nil
		return remaining
	}
	return nil
}

// finish releases anything still held once the stream ends.
func (f *frontMatterFilter) finish() []byte {
	if f.passthrough || len(f.probe) == 0 {
		return nil
	}
	out, _ := f.decide(true)
	if out == nil {
		out = f.probe
	}
	f.passthrough = true
	f.probe = nil
	return out
}

func (f *frontMatterFilter) decide(eof bool) ([]byte, bool) {
	openLine, next, ok := probeLine(f.probe, 0, eof)
	if !ok {
		return nil, false
	}
	delim := matchFrontMatterDelim(openLine)
	if delim == nil {
		return f.probe, true
	}
	metaLine, next, ok := probeLine(f.probe, next, eof)
	if !ok {
		return nil, false
	}
	if !looksLikeMetadata(metaLine) {
		return f.probe, true
	}
	for next < len(f.probe) || eof {
		line, lineEnd, ok := probeLine(f.probe, next, eof)
		if !ok {
			return nil, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return f.probe[lineEnd:], true
		}
		if lineEnd == next {
			break
		}
		next = lineEnd
	}
	if eof {
		return f.probe, true
	}
	return nil, false
}

// probeLine extracts the line starting at start; a final unterminated line
// only counts at eof.
func probeLine(src []byte, start int, eof bool) ([]byte, int, bool) {
	if start >= len(src) {
		if eof && start == len(src) {
			return nil, start, true
		}
		return nil, 0, false
	}
	idx := bytes.IndexByte(src[start:], '\n')
	if idx < 0 {
		if !eof {
			return nil, 0, false
		}
		return trimLineCR(src[start:]), len(src), true
	}
	end := start + idx
	return trimLineCR(src[start:end]), end + 1, true
}

func matchFrontMatterDelim(line []byte) []byte {
	trimmed := bytes.TrimSpace(trimBOM(line))
	for _, delim := range frontMatterDelims {
		if bytes.Equal(trimmed, delim) {
			return delim
		}
	}
	return nil
}

// looksLikeMetadata accepts key/value-ish or JSON-ish content on the line
// after the opening delimiter; anything else means the opener was a rule.
func looksLikeMetadata(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.IndexByte(trimmed, ':') >= 0 || bytes.IndexByte(trimmed, '=') >= 0
}

func trimLineCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
