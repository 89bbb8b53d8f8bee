package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cipher-nexus/internal/wheel"
)

// renderLabPage draws the read-only wheel next to the lab panel.
func (m *Model) renderLabPage(layout LayoutDimensions) string {
	width := layout.panelContentWidth()
	height := max(0, layout.PanelHeight-labPane.GetVerticalFrameSize())
	panel := renderPanel(labPane, m.renderLab(width, height), layout)
	return placePage(m.preview.View(m.props()), panel, layout)
}

// renderLab lays the panel out on the labRow* rows.
func (m *Model) renderLab(width, height int) string {
	rows := make([]string, labRowResult)
	rows[labRowTitle] = titleStyle.Render("AI VISUALIZER")
	if m.lab.Ready() {
		rows[labRowTitle+1] = mutedStyle.Render(truncate("Remix the wheel with "+m.cfg.RemixModel, width))
	} else {
		rows[labRowTitle+1] = errorStyle.Render(truncate("No Gemini API key configured", width))
	}
	rows[labRowPrompt-1] = m.fieldLabel("INSTRUCTION", focusPrompt)
	rows[labRowPrompt] = m.promptInput.View()
	rows[labRowSuggestions-1] = labelStyle.Render("SUGGESTIONS")
	for i := 0; i < labRowStatus-labRowSuggestions-1 && i < len(m.suggestions); i++ {
		line := truncate(m.suggestions[i], max(0, width-2))
		if i == m.suggestCursor {
			rows[labRowSuggestions+i] = suggestionPick.Render("› " + line)
		} else {
			rows[labRowSuggestions+i] = mutedStyle.Render("  " + line)
		}
	}
	rows[labRowStatus] = m.labStatusLine(width)

	out := strings.Join(rows, "\n")
	if result := m.renderArtwork(width, height-labRowResult); result != "" {
		out += "\n" + result
	}
	return out
}

func (m *Model) labStatusLine(width int) string {
	switch {
	case m.remixing:
		return m.spinner.View() + " " + truncate("Gemini is thinking...", max(0, width-2))
	case m.labErr != "":
		return errorStyle.Render(truncate(m.labErr, width))
	case len(m.artwork) > 0:
		return labelStyle.Render(truncate("RESULT: "+m.remixPrompt, width))
	}
	return mutedStyle.Render(truncate(fmt.Sprintf("Press %s to send the wheel to Gemini", m.primaryActionKey(actionCommit, "Enter")), width))
}

// renderArtwork draws the remix result as a thumbnail, re-decoding only when
// the space available changes.
func (m *Model) renderArtwork(width, height int) string {
	if len(m.artwork) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	rows := height
	footer := ""
	if m.savedPath != "" {
		rows--
		footer = mutedStyle.Render(truncate("Saved to "+m.savedPath, width))
	} else {
		rows--
		footer = mutedStyle.Render(truncate(fmt.Sprintf("%s to save", m.primaryActionKey(actionSaveArtwork, "Ctrl+S")), width))
	}
	if rows <= 0 {
		return footer
	}

	size := [2]int{width, rows}
	if m.artworkThumb == "" || m.thumbSize != size {
		thumb, err := wheel.Thumbnail(m.artwork, width, rows)
		if err != nil {
			m.labErr = "Could not display the returned image"
			appLog.Warn("decode remix result", "error", err)
			m.artwork = nil
			return ""
		}
		m.artworkThumb = thumb
		m.thumbSize = size
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.artworkThumb) + "\n" + footer
}
