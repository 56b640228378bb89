package terminal

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mikepea/abhyas/pkg/abhyas/links"
)

// Renderer prints tables and colored status lines
type Renderer struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Links prints items as a numbered table
func (r *Renderer) Links(items []links.Link) {
	t := r.newTable()
	t.AppendHeader(table.Row{"id", "link", "solved_count", "status"})
	for i, link := range items {
		t.AppendRow(table.Row{i + 1, link.URL, link.SolvedCount, link.Status})
	}
	t.Render()
}

// Counts prints the status snapshot
func (r *Renderer) Counts(counts links.Counts) {
	t := r.newTable()
	t.AppendHeader(table.Row{"total", "completed", "skipped", "incomplete"})
	t.AppendRow(table.Row{counts.Total, counts.Completed, counts.Skipped, counts.Incomplete()})
	t.Render()
}

// Success prints msg in green
func (r *Renderer) Success(msg string) {
	r.success.Fprintln(r.out, msg)
}

// Failure prints msg in red
func (r *Renderer) Failure(msg string) {
	r.failure.Fprintln(r.out, msg)
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}
