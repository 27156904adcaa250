package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("#2AFFAA")
	red    = lipgloss.Color("#FF5555")
	cyan   = lipgloss.Color("#00E5FF")
	yellow = lipgloss.Color("#FFB500")
)

// styles are bound to the output writer so plain writers get plain text.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(cyan),
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(green),
		failure: r.NewStyle().Foreground(red),
		prompt:  r.NewStyle().Foreground(yellow),
	}
}
