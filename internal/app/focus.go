package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/wheel"
)

// setFocus moves keyboard focus. Leaving a hub field reloads it from the
// canonical state, so invalid input there has no lasting effect.
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.plainInput.Blur()
	m.cipherInput.Blur()
	m.promptInput.Blur()
	m.wheel.Blur()
	m.focus = target
	m.syncWidgets()

	switch target {
	case focusPlain:
		m.plainInput.CursorEnd()
		return m.plainInput.Focus()
	case focusCipher:
		m.cipherInput.CursorEnd()
		return m.cipherInput.Focus()
	case focusLetter:
		return m.wheel.Focus(wheel.FieldLetter, m.props())
	case focusNumber:
		return m.wheel.Focus(wheel.FieldNumber, m.props())
	case focusPrompt:
		return m.promptInput.Focus()
	}
	return nil
}

// cycleFocus steps through the cipher page fields in tab order.
func (m *Model) cycleFocus(step int) tea.Cmd {
	if m.tab != tabCipher {
		return nil
	}
	idx := -1
	for i, f := range cipherFocusOrder {
		if f == m.focus {
			idx = i
			break
		}
	}
	n := len(cipherFocusOrder)
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+step)%n + n) % n
	}
	return m.setFocus(cipherFocusOrder[idx])
}

// switchTab shows the other page and focuses its default field.
func (m *Model) switchTab(next tab) tea.Cmd {
	if m.tab == next {
		return nil
	}
	m.tab = next
	if next == tabLab {
		m.status = "AI Visualizer"
		return m.setFocus(focusPrompt)
	}
	m.status = "Cipher Engine"
	return m.setFocus(focusNone)
}
