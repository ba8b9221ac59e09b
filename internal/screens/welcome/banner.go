package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗     ██████╗ ██████╗
 ██╔════╝██║     ██╔══██╗██╔══██╗
 ██║     ██║     ██████╔╝██████╔╝
 ██║     ██║     ██╔══██╗██╔═══╝
 ╚██████╗███████╗██████╔╝██║
  ╚═════╝╚══════╝╚═════╝ ╚═╝`

const bannerCompact = "C L B P"

// RenderBanner returns the banner in the primary color, or a one-line
// fallback below 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
