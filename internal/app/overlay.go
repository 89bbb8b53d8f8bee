package app

import "github.com/charmbracelet/lipgloss"

var overlayRenderers = map[overlayMode]func(*Model, int, int) string{
	overlayHelp: (*Model).renderHelpOverlay,
}

func (m *Model) renderActiveOverlay(width, height int) string {
	if render, ok := overlayRenderers[m.overlay]; ok {
		return render(m, width, height)
	}
	return ""
}

// renderHelpOverlay centres the help viewport in the page area.
func (m *Model) renderHelpOverlay(width, height int) string {
	box := popupStyle.BorderForeground(lipgloss.Color("62")).Render(m.help.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, box)
}
