package badge

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

type styledDisplay struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewStyledDisplay creates a Display drawing badges in the badge colors when
// out is a terminal, and as plain text otherwise.
func NewStyledDisplay(out io.Writer) Display {
	return &styledDisplay{out: out, renderer: lipgloss.NewRenderer(out)}
}

// Apply draws the badge.
func (d *styledDisplay) Apply(tabID int, b Badge) error {
	faint := d.renderer.NewStyle().Faint(true)
	if b.State == Inactive {
		_, err := fmt.Fprintf(d.out, "tab %d: %s\n", tabID, faint.Render("no badge"))
		return err
	}

	badgeStyle := d.renderer.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(b.Color.Hex()))

	_, err := fmt.Fprintf(d.out, "tab %d: %s %s\n", tabID, badgeStyle.Render(b.Text), b.Title)
	return err
}
