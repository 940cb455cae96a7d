package mdtty

import "strings"

const minColumnWidth = 3

// tableState accumulates a table between its header line and the first
// non-row line. Cells are raw trimmed text; membership is positional.
type tableState struct {
	header []string
	rows   [][]string
}

// isSeparatorLine reports whether line is a table separator: dashes,
// optional colons, pipes and whitespace only, with at least one dash.
func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "-") {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '-', ':', '|', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// isTableCandidate reports whether line could be a table header or row.
func isTableCandidate(line string) bool {
	return strings.IndexByte(line, '|') >= 0 && strings.TrimSpace(line) != ""
}

// parseTableCells splits a row on pipes, stripping one optional leading and
// trailing pipe and trimming each cell.
func parseTableCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// renderTable renders a completed table: styled header, dash separator and
// one line per row, all sharing identical column widths. The whole table is
// returned as one string so the sink receives it in a single call.
func (r *Renderer) renderTable(t *tableState) string {
	cols := len(t.header)
	widths := make([]int, cols)
	header := make([]string, cols)
	for i, cell := range t.header {
		header[i] = r.styles.TableHeader.wrap(r.inline.apply(cell))
		widths[i] = max(minColumnWidth, visualWidth(header[i]))
	}
	styledRows := make([][]string, len(t.rows))
	for ri, row := range t.rows {
		styled := make([]string, cols)
		for i := 0; i < cols; i++ {
			if i < len(row) {
				styled[i] = r.inline.apply(row[i])
			}
			if w := visualWidth(styled[i]); w > widths[i] {
				widths[i] = w
			}
		}
		styledRows[ri] = styled
	}

	var b strings.Builder
	r.writeTableRow(&b, header, widths)
	separator := make([]string, cols)
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	r.writeTableRow(&b, separator, widths)
	for _, row := range styledRows {
		r.writeTableRow(&b, row, widths)
	}
	return b.String()
}

func (r *Renderer) writeTableRow(b *strings.Builder, cells []string, widths []int) {
	border := r.styles.TableBorder.wrap("|")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(border)
		b.WriteString(" ")
		b.WriteString(padVisual(cell, w))
		b.WriteString(" ")
	}
	b.WriteString(border)
	b.WriteString("\n")
}
