package sidebar

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/framescope/internal/buffer"
)

// Line is one rendered sidebar row with a back-reference to the buffer
// it represents.
type Line struct {
	// Text is the rendered row, truncated to the sidebar width.
	Text string

	// BufferID identifies the buffer this row represents.
	BufferID string
}

// Emphasis markers. Column one flags unsaved changes, column two flags
// visibility in the frame.
const (
	markModified = '*'
	markVisible  = '>'
)

// renderLines produces one row per buffer. The input must already be
// sorted; rendering itself adds no ordering of its own, which keeps
// the output byte-identical for identical input.
func renderLines(set buffer.Set, width int) []Line {
	lines := make([]Line, 0, len(set))
	for _, b := range set {
		lines = append(lines, Line{
			Text:     renderLine(b, width),
			BufferID: b.ID,
		})
	}
	return lines
}

// renderLine renders a single row: two marker cells, the buffer name,
// and the major mode in parentheses, truncated to width display cells.
func renderLine(b buffer.Buffer, width int) string {
	var sb strings.Builder

	if b.Modified {
		sb.WriteRune(markModified)
	} else {
		sb.WriteRune(' ')
	}
	if b.Visible {
		sb.WriteRune(markVisible)
	} else {
		sb.WriteRune(' ')
	}
	sb.WriteRune(' ')
	sb.WriteString(b.Name)

	if b.MajorMode != "" {
		sb.WriteString("  (")
		sb.WriteString(b.MajorMode)
		sb.WriteRune(')')
	}

	if width <= 0 {
		return sb.String()
	}
	return runewidth.Truncate(sb.String(), width, "…")
}
