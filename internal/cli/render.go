package cli

import (
	"fmt"
	"io"
	"strings"

	"bizdesk/internal/ui"
	"bizdesk/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// printer writes styled output. Colours are dropped automatically when w is
// not a terminal.
type printer struct {
	w io.Writer

	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	levels map[ui.Level]lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:      w,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		label:  r.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		value:  r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		levels: map[ui.Level]lipgloss.Style{
			ui.Success: r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
			ui.Info:    r.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
			ui.Warning: r.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
			ui.Danger:  r.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		},
	}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render(s))
}

func (p *printer) note(s string) {
	fmt.Fprintln(p.w, p.muted.Render(s))
}

func (p *printer) notice(n ui.Notice) {
	if n.IsZero() {
		return
	}
	style, ok := p.levels[n.Level]
	if !ok {
		style = p.levels[ui.Info]
	}
	fmt.Fprintln(p.w, style.Render(n.Message))
}

func (p *printer) stats(stats []view.Stat) {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, p.label.Render(s.Label+":")+" "+p.value.Render(s.Value))
	}
	fmt.Fprintln(p.w, strings.Join(parts, "   "))
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})
	fmt.Fprintln(p.w, t.Render())
}

// detail prints aligned label/value pairs.
func (p *printer) detail(pairs [][2]string) {
	width := 0
	for _, kv := range pairs {
		width = max(width, len(kv[0]))
	}
	for _, kv := range pairs {
		label := p.label.Render(fmt.Sprintf("%-*s", width+1, kv[0]+":"))
		fmt.Fprintln(p.w, label+" "+kv[1])
	}
}

func (p *printer) chrome(c view.Chrome, noun string) {
	p.stats(c.Stats)
	p.notice(c.Notice)
	if c.Empty {
		p.note(c.EmptyMessage)
		return
	}
	p.note(fmt.Sprintf("Page %d of %d (%d %s)", c.Page.Page, c.Page.TotalPages, c.Page.TotalItems, noun))
}
