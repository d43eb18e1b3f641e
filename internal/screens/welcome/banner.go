package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/hamid/juzjourney/internal/ui/theme"
)

const bannerArt = `
     ██╗██╗   ██╗███████╗     ██╗ ██████╗ ██╗   ██╗██████╗ ███╗   ██╗███████╗██╗   ██╗
     ██║██║   ██║╚══███╔╝     ██║██╔═══██╗██║   ██║██╔══██╗████╗  ██║██╔════╝╚██╗ ██╔╝
     ██║██║   ██║  ███╔╝      ██║██║   ██║██║   ██║██████╔╝██╔██╗ ██║█████╗   ╚████╔╝
██   ██║██║   ██║ ███╔╝  ██   ██║██║   ██║██║   ██║██╔══██╗██║╚██╗██║██╔══╝    ╚██╔╝
╚█████╔╝╚██████╔╝███████╗╚█████╔╝╚██████╔╝╚██████╔╝██║  ██║██║ ╚████║███████╗   ██║
 ╚════╝  ╚═════╝ ╚══════╝ ╚════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚══════╝   ╚═╝`

const bannerCompact = "J U Z J O U R N E Y"

// RenderBanner returns the JUZJOURNEY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the full art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 90 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
