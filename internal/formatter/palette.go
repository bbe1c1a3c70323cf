package formatter

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette styles the console report. A nil *Palette renders plain text.
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

// DefaultPalette returns the standard report colors.
func DefaultPalette() *Palette {
	return NewPalette("#7D56F4", "#04B575", "#FFA500", "#626262")
}

func NewPalette(t, s, w, h string) *Palette {
	return &Palette{
		title: NewBold(t),
		ok:    NewBold(s),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Title renders report headings.
func (p *Palette) Title(s string) string {
	if p == nil {
		return s
	}
	return p.title.Render(s)
}

func (p *Palette) OK(s string) string {
	if p == nil {
		return s
	}
	return p.ok.Render(s)
}

func (p *Palette) Warn(s string) string {
	if p == nil {
		return s
	}
	return p.warn.Render(s)
}

func (p *Palette) Help(s string) string {
	if p == nil {
		return s
	}
	return p.help.Render(s)
}
