package escpos

import (
	"fmt"
	"strings"
)

// TableCell is one column of a table row. Align is LEFT (the default),
// CENTER or RIGHT. Style is one of the mnemonics B, I, U or U2, or
// empty for plain text. Width, when positive, overrides the cell width
// as a fraction of the row's base width; Cols instead fixes it to an
// explicit device column count and stops leftover space redistribution
// for the rest of the row. At most one of the two should be set.
type TableCell struct {
	Text  string
	Align string
	Style string
	Width float64
	Cols  int
}

// TableOptions adjusts how a table row is rendered. Width and Height
// are character size multipliers in [1,8]; Encoding overrides the
// session codec for this row only.
type TableOptions struct {
	Width    int
	Height   int
	Encoding string
}

// Table prints one row of equal-width, left-aligned text cells.
func (e *Escpos) Table(columns []string) (int, error) {
	cells := make([]TableCell, len(columns))
	for i, text := range columns {
		cells[i] = TableCell{Text: text}
	}
	return e.TableCustom(cells, nil)
}

// TableCustom lays out one table row. Cells whose text exceeds their
// width are truncated at rune boundaries and the remainder carries
// over to a continuation row below, keeping the cell's alignment,
// style and width. The row is validated in full before any bytes are
// written.
func (e *Escpos) TableCustom(cells []TableCell, opts *TableOptions) (int, error) {
	if len(cells) == 0 {
		return 0, fmt.Errorf("a table row needs at least one cell")
	}
	var o TableOptions
	if opts != nil {
		o = *opts
	}
	if o.Width < 1 {
		o.Width = 1
	}
	if o.Height < 1 {
		o.Height = 1
	}
	if o.Width > 8 || o.Height > 8 {
		return 0, fmt.Errorf("table size multipliers must be in [1,8]")
	}
	codec := o.Encoding
	if codec == "" {
		codec = e.encoding
	}

	baseWidth := e.width / o.Width
	row := make([]TableCell, len(cells))
	for i, cell := range cells {
		cell.Align = strings.ToUpper(cell.Align)
		if cell.Align == "" {
			cell.Align = "LEFT"
		}
		switch cell.Align {
		case "LEFT", "CENTER", "RIGHT":
		default:
			return 0, fmt.Errorf("invalid cell alignment %q (want LEFT, CENTER or RIGHT)", cells[i].Align)
		}
		cell.Style = strings.ToUpper(cell.Style)
		if cell.Style != "" {
			if _, ok := styleEscapes[cell.Style]; !ok {
				return 0, fmt.Errorf("invalid cell style %q (want B, I, U or U2)", cells[i].Style)
			}
		}
		// A cell below one column can never drain its text.
		if resolveCellWidth(cell, baseWidth, baseWidth/len(cells), o.Width) < 1 {
			return 0, fmt.Errorf("cell %d resolves to zero width", i)
		}
		row[i] = cell
	}

	// Render and encode the whole row before writing, so a failure on
	// any continuation line leaves the stream untouched.
	var lines [][]byte
	for {
		line, next, overflow := renderTableRow(row, baseWidth, o.Width)
		if o.Width > 1 || o.Height > 1 {
			line = string(txtCustomSize(uint8(o.Width), uint8(o.Height))) + line + string(txtNormal)
		}
		encoded, err := encodeText(line+eol, codec)
		if err != nil {
			return 0, err
		}
		lines = append(lines, encoded)
		if !overflow {
			break
		}
		// A wide rune in a one-column cell can never be consumed.
		progress := false
		for i := range next {
			if next[i].Text != row[i].Text {
				progress = true
				break
			}
		}
		if !progress {
			return 0, fmt.Errorf("cell content is wider than its column")
		}
		row = next
	}

	total := 0
	for _, line := range lines {
		n, err := e.WriteRaw(line)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// resolveCellWidth applies the cell's override, if any, to the row's
// default cell width.
func resolveCellWidth(cell TableCell, baseWidth, defaultCellWidth, sizeMultiplier int) int {
	if cell.Width > 0 {
		return int(float64(baseWidth) * cell.Width)
	}
	if cell.Cols > 0 {
		return cell.Cols / sizeMultiplier
	}
	return defaultCellWidth
}

// renderTableRow renders one physical line of the row and returns the
// continuation cells together with whether any cell overflowed. Cells
// that fit come back with empty text so the continuation row keeps its
// column positions.
func renderTableRow(row []TableCell, baseWidth, sizeMultiplier int) (string, []TableCell, bool) {
	defaultCellWidth := baseWidth / len(row)
	leftover := baseWidth - defaultCellWidth*len(row)

	var line strings.Builder
	next := make([]TableCell, len(row))
	overflow := false

	for i, cell := range row {
		cellWidth := resolveCellWidth(cell, baseWidth, defaultCellWidth, sizeMultiplier)
		if cell.Width <= 0 && cell.Cols > 0 {
			leftover = 0
		}

		text, rest := splitWidth(cell.Text, cellWidth)
		if rest != "" {
			overflow = true
		}
		next[i] = cell
		next[i].Text = rest

		diff := cellWidth - displayWidth(text)
		if cell.Style != "" {
			pair := styleEscapes[cell.Style]
			text = string(pair[0]) + text + string(pair[1])
		}

		switch cell.Align {
		case "CENTER":
			before := (diff + 1) / 2
			after := before - 1
			if after < 0 {
				after = 0
			}
			line.WriteString(strings.Repeat(" ", before))
			line.WriteString(text)
			line.WriteString(strings.Repeat(" ", after))
		case "RIGHT":
			before := diff
			if leftover > 0 {
				before += leftover
				leftover = 0
			}
			if before > 0 {
				line.WriteString(strings.Repeat(" ", before))
			}
			line.WriteString(text)
		default:
			line.WriteString(text)
			after := diff
			if leftover > 0 {
				after += leftover
				leftover = 0
			}
			if after > 0 {
				line.WriteString(strings.Repeat(" ", after))
			}
		}
	}
	return line.String(), next, overflow
}
