package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printer writes command output. Colors are dropped automatically when out
// is not a terminal.
type printer struct {
	out io.Writer

	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	label   lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:     out,
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		label:   r.NewStyle().Bold(true),
	}
}

func (p *printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *printer) Success(format string, a ...any) {
	fmt.Fprintln(p.out, p.success.Render(fmt.Sprintf(format, a...)))
}

func (p *printer) Warn(format string, a ...any) {
	fmt.Fprintln(p.out, p.warn.Render(fmt.Sprintf(format, a...)))
}

func (p *printer) Error(format string, a ...any) {
	fmt.Fprintln(p.out, p.fail.Render(fmt.Sprintf(format, a...)))
}

func (p *printer) Field(name, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.label.Render(name+":"), value)
}
