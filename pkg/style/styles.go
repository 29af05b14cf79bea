// Package style renders dotlink's stderr diagnostics.
//
// Link lines on stdout are never styled; only the fatal error line and
// warnings go through a Palette.
package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds styles bound to one output stream.
type Palette struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewPalette builds styles for w. With color off every style renders plain
// text.
func NewPalette(w io.Writer, color bool) *Palette {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Palette{
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
	}
}

// RenderError formats a fatal error line.
func (p *Palette) RenderError(err error) string {
	return p.Error.Render(fmt.Sprintf("Error: %v", err))
}

// RenderWarning formats a non-fatal problem.
func (p *Palette) RenderWarning(msg string) string {
	return p.Warning.Render("Warning: " + msg)
}

// RenderHint formats a secondary line printed under an error.
func (p *Palette) RenderHint(hint string) string {
	return p.Muted.Render(hint)
}
