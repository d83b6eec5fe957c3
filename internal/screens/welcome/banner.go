package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/ui/theme"
)

const bannerArt = `
 ██╗     ██╗██████╗ ██████╗ ███████╗██████╗ ██╗ ██████╗████████╗
 ██║     ██║██╔══██╗██╔══██╗██╔════╝██╔══██╗██║██╔════╝╚══██╔══╝
 ██║     ██║██████╔╝██████╔╝█████╗  ██║  ██║██║██║        ██║
 ██║     ██║██╔═══╝ ██╔══██╗██╔══╝  ██║  ██║██║██║        ██║
 ███████╗██║██║     ██║  ██║███████╗██████╔╝██║╚██████╗   ██║
 ╚══════╝╚═╝╚═╝     ╚═╝  ╚═╝╚══════╝╚═════╝ ╚═╝ ╚═════╝   ╚═╝`

const bannerCompact = "L I P R E D I C T"

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than the art get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
