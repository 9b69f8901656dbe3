package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗███████╗███╗   ██╗██╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
 ████╗ ████║██╔════╝████╗  ██║██║   ██║██╔═══██╗██║   ██║██║╚══███╔╝
 ██╔████╔██║█████╗  ██╔██╗ ██║██║   ██║██║   ██║██║   ██║██║  ███╔╝
 ██║╚██╔╝██║██╔══╝  ██║╚██╗██║██║   ██║██║▄▄ ██║██║   ██║██║ ███╔╝
 ██║ ╚═╝ ██║███████╗██║ ╚████║╚██████╔╝╚██████╔╝╚██████╔╝██║███████╗
 ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝ ╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "M E N U Q U I Z"

// RenderBanner returns the banner styled in the primary color, with a
// compact fallback for terminals narrower than 70 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
