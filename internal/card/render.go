package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed  = lipgloss.AdaptiveColor{Light: "#C4161C", Dark: "#EC1D24"}
	colorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	colorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	styleCard = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorRed).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleChars = lipgloss.NewStyle().Foreground(colorCyan)
)

// minWidth keeps the card readable in narrow terminals.
const minWidth = 24

// Render draws l as a bordered terminal card width columns wide.
func Render(l Layout, width int) string {
	if width < minWidth {
		width = minWidth
	}
	inner := width - styleCard.GetHorizontalFrameSize()

	wrap := lipgloss.NewStyle().Width(inner)

	var b strings.Builder
	b.WriteString(wrap.Inherit(styleTitle).Render(l.Title))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render(l.Date))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(l.Description))
	b.WriteString("\n\n")
	b.WriteString(styleLabel.Render("Characters"))
	b.WriteString("\n")
	b.WriteString(wrap.Inherit(styleChars).Render(l.Characters))

	return styleCard.Width(width - styleCard.GetHorizontalBorderSize()).Render(b.String())
}
