package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗██╗   ██╗███╗   ███╗███████╗██████╗  █████╗ ██████╗  ██████╗
 ████╗  ██║██║   ██║████╗ ████║██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔═══██╗
 ██╔██╗ ██║██║   ██║██╔████╔██║█████╗  ██████╔╝███████║██║  ██║██║   ██║
 ██║╚██╗██║██║   ██║██║╚██╔╝██║██╔══╝  ██╔══██╗██╔══██║██║  ██║██║   ██║
 ██║ ╚████║╚██████╔╝██║ ╚═╝ ██║███████╗██║  ██║██║  ██║██████╔╝╚██████╔╝
 ╚═╝  ╚═══╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝`

const bannerCompact = "N U M E R A D O"

// bannerMinWidth is the narrowest terminal that fits the full banner.
const bannerMinWidth = 76

// RenderBanner returns the banner in the primary color, falling back to a
// single spaced line on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
