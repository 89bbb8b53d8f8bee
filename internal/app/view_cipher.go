package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderCipherPage draws the interactive wheel and the controls panel.
func (m *Model) renderCipherPage(layout LayoutDimensions) string {
	panel := renderPanel(controlsPane, m.renderControls(layout.panelContentWidth()), layout)
	return placePage(m.wheel.View(m.props()), panel, layout)
}

// renderControls lays the panel out on the controlRow* rows so mouse hit
// tests can address them.
func (m *Model) renderControls(width int) string {
	rows := make([]string, controlRowHowTo)
	rows[controlRowTitle] = spread(width,
		titleStyle.Render("SHIFT"), "",
		shiftStyle.Render(fmt.Sprintf("%d", m.state.shift)))
	rows[controlRowSlider] = m.slider.ViewAs(float64(m.state.shift) / ShiftMax)
	rows[controlRowScale] = mutedStyle.Render(spread(width, "Shift 0", fmt.Sprintf("Shift %d", (ShiftMax+1)/2), fmt.Sprintf("Shift %d", ShiftMax)))
	rows[controlRowPlain-1] = m.fieldLabel("DECODED TEXT", focusPlain)
	rows[controlRowPlain] = m.plainInput.View()
	rows[controlRowCipher-1] = m.fieldLabel("ENCODED TEXT", focusCipher)
	rows[controlRowCipher] = m.cipherInput.View()
	rows[controlRowButtons] = buttonStyle.Render(resetButtonLabel) +
		strings.Repeat(" ", buttonGap) +
		buttonAccent.Render(swapButtonLabel)

	howTo := lipgloss.NewStyle().Width(width).Render(mutedStyle.Render(
		"Drag the red ring to turn the cipher. Read a blue letter, then the red letter under it. " +
			fmt.Sprintf("Press %s for how it works.", m.primaryActionKey(actionHelp, "?"))))
	return strings.Join(rows, "\n") + "\n" + howTo
}

func (m *Model) fieldLabel(label string, target focusTarget) string {
	if m.focus == target {
		return selectedStyle.Render(label)
	}
	return labelStyle.Render(label)
}

// buttonAt returns which button sits at column col of controlRowButtons.
func buttonAt(col int) string {
	resetEnd := lipgloss.Width(resetButtonLabel)
	swapStart := resetEnd + buttonGap
	swapEnd := swapStart + lipgloss.Width(swapButtonLabel)
	switch {
	case col >= 0 && col < resetEnd:
		return actionReset
	case col >= swapStart && col < swapEnd:
		return actionSwap
	}
	return ""
}
