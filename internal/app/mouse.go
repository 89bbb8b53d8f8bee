package app

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/wheel"
)

// handleMouse routes mouse events. The wheel sees every motion and release so
// a drag that leaves the rings keeps tracking until the button comes up.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay == overlayHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionRelease:
		if m.tab == tabCipher {
			return m, m.wheel.Update(msg, m.props())
		}
		return m, nil
	case tea.MouseActionPress:
	default:
		return m, nil
	}

	if msg.Y == 0 {
		for _, t := range m.headerTabs() {
			if msg.X >= t.start && msg.X < t.end {
				return m, m.switchTab(t.tab)
			}
		}
		return m, nil
	}

	if m.tab == tabLab {
		return m, m.handleLabPress(msg)
	}
	return m, m.handleCipherPress(msg)
}

// handleCipherPress handles a press on the cipher page: hub fields, panel
// rows, then the wheel itself.
func (m *Model) handleCipherPress(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		cmd := m.setFocus(focusNone)
		m.applyShift(m.state.shift + 1)
		return cmd
	case tea.MouseButtonWheelDown:
		cmd := m.setFocus(focusNone)
		m.applyShift(m.state.shift - 1)
		return cmd
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch m.wheel.FieldAt(msg.X, msg.Y) {
	case wheel.FieldLetter:
		return m.setFocus(focusLetter)
	case wheel.FieldNumber:
		return m.setFocus(focusNumber)
	}

	layout := m.calculateLayout()
	if row, col, ok := panelCell(layout, msg.X, msg.Y); ok {
		width := layout.panelContentWidth()
		switch row {
		case controlRowSlider:
			if width <= 1 {
				return nil
			}
			// The focused field is never overwritten by a sync, so release it
			// before changing the state under it.
			cmd := m.setFocus(focusNone)
			m.applyShift(sliderShift(col, width))
			return cmd
		case controlRowPlain:
			return m.setFocus(focusPlain)
		case controlRowCipher:
			return m.setFocus(focusCipher)
		case controlRowButtons:
			action := buttonAt(col)
			if action == "" {
				return nil
			}
			cmd := m.setFocus(focusNone)
			switch action {
			case actionReset:
				m.resetBuffers()
			case actionSwap:
				m.swapBuffers()
			}
			return cmd
		}
		return nil
	}

	cmd := m.setFocus(focusNone)
	return tea.Batch(cmd, m.wheel.Update(msg, m.props()))
}

// handleLabPress focuses the prompt or picks a suggestion.
func (m *Model) handleLabPress(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	row, _, ok := panelCell(m.calculateLayout(), msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch {
	case row == labRowPrompt:
		return m.setFocus(focusPrompt)
	case row >= labRowSuggestions && row < labRowSuggestions+len(m.suggestions) && row < labRowStatus-1:
		m.suggestCursor = row - labRowSuggestions
		m.applySuggestion()
		return m.setFocus(focusPrompt)
	}
	return nil
}

// panelCell converts a screen cell to a row and column inside the panel
// content area.
func panelCell(layout LayoutDimensions, x, y int) (row, col int, ok bool) {
	ox, oy := layout.panelContentOrigin()
	row, col = y-oy, x-ox
	if col < 0 || col >= layout.panelContentWidth() || row < 0 {
		return 0, 0, false
	}
	if y >= layout.PanelY+layout.PanelHeight {
		return 0, 0, false
	}
	return row, col, true
}

// sliderShift maps a column on the slider bar to a shift.
func sliderShift(col, width int) int {
	ratio := float64(col) / float64(width-1)
	return clamp(int(math.Floor(ratio*ShiftMax+0.5)), 0, ShiftMax)
}
