// Package mdtty renders Markdown to ANSI for terminal display.
//
// This package is built for streaming: chunks are fed to a Renderer as they
// arrive (for example from an inference token stream) and each block is
// emitted as soon as it can be resolved, without the full document up front.
// Incomplete constructs are buffered across chunk boundaries: an open code
// fence passes lines through verbatim until its closing fence, and a table
// header is held for exactly one line of look-ahead until its separator
// line is visible.
//
// Core properties:
//   - Chunk-boundary independence: output never depends on how the input
//     was split across Write calls
//   - Bounded buffering: one partial line, one line of look-ahead, plus the
//     currently open table
//   - Theme-driven styling via ANSI prefixes
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, ANSI out.\n")
//	err := mdtty.Render(mdtty.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Theme:  mdtty.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// For chunk-level control, construct a Renderer with NewRenderer and call
// Write and Flush directly.
package mdtty
