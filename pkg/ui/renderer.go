package ui

import (
	"bytes"
	"fmt"
	"io"

	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/types"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"

	clearScreen = "\033[H\033[2J"
)

// DefaultNameWidth is the width of the process name column.
const DefaultNameWidth = 40

// Mode selects how a frame replaces the previous one.
type Mode int

const (
	// ModeCursorRewind moves the cursor back over the last frame after drawing.
	ModeCursorRewind Mode = iota
	// ModeClearRedraw wipes the viewport before drawing.
	ModeClearRedraw
)

func (m Mode) String() string {
	switch m {
	case ModeCursorRewind:
		return "cursor-rewind"
	case ModeClearRedraw:
		return "clear-redraw"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Options tunes a Renderer.
type Options struct {
	Mode      Mode
	NameWidth int
	Color     bool // bold header
}

// Renderer draws ranked tables to a terminal, overwriting the previous frame.
type Renderer struct {
	out  io.Writer
	opts Options

	lastLines int
}

// NewRenderer returns a Renderer writing to out.
func NewRenderer(out io.Writer, opts Options) *Renderer {
	if opts.NameWidth <= 0 {
		opts.NameWidth = DefaultNameWidth
	}
	return &Renderer{out: out, opts: opts}
}

// LastLines reports how many lines the previous frame wrote.
func (r *Renderer) LastLines() int {
	return r.lastLines
}

// Render writes the header, as many group rows as fit in budget table rows
// and always the Total row, which takes the last slot of the budget. The
// frame ends on the Total line so a full-height frame never scrolls.
func (r *Renderer) Render(table report.RankedTable, budget int) error {
	if budget < 1 {
		budget = 1
	}
	shown := min(len(table.Rows), budget-1)

	var buf bytes.Buffer
	if r.opts.Mode == ModeClearRedraw {
		buf.WriteString(clearScreen)
	}

	header := fmt.Sprintf("%-*s %8s %7s", r.opts.NameWidth, "Process", "CPU", "# proc")
	if r.opts.Color {
		header = bold + header + reset
	}
	buf.WriteString(header)
	lines := 1

	for _, row := range table.Rows[:shown] {
		r.writeRow(&buf, row)
		lines++
	}
	r.writeRow(&buf, table.Total)
	lines++

	if r.opts.Mode == ModeCursorRewind {
		// back to column 0 of the header line
		fmt.Fprintf(&buf, "\r\033[%dA", lines-1)
	}

	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	r.lastLines = lines
	return nil
}

// Finish leaves the cursor on a fresh line below the last frame so later
// output does not overwrite it.
func (r *Renderer) Finish() error {
	if r.lastLines == 0 {
		return nil
	}
	tail := "\n"
	if r.opts.Mode == ModeCursorRewind {
		tail = fmt.Sprintf("\033[%dB\n", r.lastLines-1)
	}
	if _, err := io.WriteString(r.out, tail); err != nil {
		return fmt.Errorf("moving cursor past frame: %w", err)
	}
	r.lastLines = 0
	return nil
}

func (r *Renderer) writeRow(buf *bytes.Buffer, row types.GroupSummary) {
	fmt.Fprintf(buf, "\n%-*s %8.2f %7d", r.opts.NameWidth, row.Name, row.CPUPercent, row.Count)
}
