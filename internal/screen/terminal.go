package screen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal lines (1-based) of each layout element.
const (
	lineTitle        = 2
	lineDigitalLabel = 5
	lineDigitalValue = 6
	lineAnalogLabel  = 8
	lineAnalogValue  = 9
	lineBottom       = 11
)

// Terminal renders the layout with ANSI cursor addressing, for running on a
// workstation or over SSH without a panel attached.
type Terminal struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
}

// NewTerminal renders to w. Color support is detected from w.
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		w:     w,
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Faint(true),
		value: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// line moves to the start of a line and erases it.
func (t *Terminal) line(n int, text string) error {
	_, err := fmt.Fprintf(t.w, "\x1b[%d;1H\x1b[2K%s", n, text)
	return err
}

// RenderStaticLayout clears the screen and draws the header and labels.
func (t *Terminal) RenderStaticLayout() error {
	if _, err := io.WriteString(t.w, "\x1b[2J"); err != nil {
		return err
	}
	if err := t.line(lineTitle-1, Rule); err != nil {
		return err
	}
	if err := t.line(lineTitle, t.title.Render(Title)); err != nil {
		return err
	}
	if err := t.line(lineTitle+1, Rule); err != nil {
		return err
	}
	if err := t.line(lineDigitalLabel, t.label.Render(DigitalLabel)); err != nil {
		return err
	}
	return t.line(lineAnalogLabel, t.label.Render(AnalogLabel))
}

// RenderDigitalRegion erases the digital value line and writes text.
func (t *Terminal) RenderDigitalRegion(text string) error {
	return t.line(lineDigitalValue, t.value.Render(text))
}

// RenderAnalogRegion erases the analog value line and writes text.
func (t *Terminal) RenderAnalogRegion(text string) error {
	return t.line(lineAnalogValue, t.value.Render(text))
}

// Close leaves the cursor below the layout.
func (t *Terminal) Close() error {
	_, err := fmt.Fprintf(t.w, "\x1b[%d;1H", lineBottom)
	return err
}
