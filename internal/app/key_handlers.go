package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press to the focused field or to its bound action.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay == overlayHelp {
		return m.handleHelpKey(msg)
	}
	if m.editing() && forwardsToField(msg) {
		return m, m.updateFocusedField(msg)
	}
	return m.runAction(m.actionForKey(msg.String()))
}

// forwardsToField reports whether a key edits text rather than triggering an
// action. Printable runes, cursor movement and deletion always go to the
// focused field.
func forwardsToField(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		return !msg.Alt
	case tea.KeySpace, tea.KeyBackspace, tea.KeyDelete,
		tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd,
		tea.KeyCtrlA, tea.KeyCtrlE, tea.KeyCtrlK, tea.KeyCtrlU, tea.KeyCtrlW:
		return true
	}
	return false
}

// runAction dispatches one bound action.
func (m *Model) runAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		m.cancelRemix()
		return m, tea.Quit
	case actionHelp:
		m.toggleHelp()
		return m, nil
	case actionTabNext:
		if m.tab == tabCipher {
			return m, m.switchTab(tabLab)
		}
		return m, m.switchTab(tabCipher)
	case actionFocusNext:
		if m.tab == tabLab {
			m.applySuggestion()
			return m, nil
		}
		return m, m.cycleFocus(1)
	case actionFocusPrev:
		return m, m.cycleFocus(-1)
	case actionBlur:
		if m.remixing {
			m.cancelRemix()
			m.status = "Remix cancelled"
			return m, nil
		}
		return m, m.setFocus(focusNone)
	case actionCommit:
		return m.commitFocusedField()
	}

	if m.tab == tabLab {
		return m.runLabAction(action)
	}
	return m.runCipherAction(action)
}

func (m *Model) runCipherAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionShiftDown:
		m.applyShift(max(0, m.state.shift-1))
	case actionShiftUp:
		m.applyShift(min(ShiftMax, m.state.shift+1))
	case actionEditPlain:
		return m, m.setFocus(focusPlain)
	case actionEditCipher:
		return m, m.setFocus(focusCipher)
	case actionEditLetter:
		return m, m.setFocus(focusLetter)
	case actionEditNumber:
		return m, m.setFocus(focusNumber)
	case actionSwap:
		m.swapBuffers()
	case actionReset:
		m.resetBuffers()
	case actionCopyCipher:
		m.copyBufferToClipboard("ciphertext", m.state.cipher)
	case actionCopyPlain:
		m.copyBufferToClipboard("plaintext", m.state.plain)
	case actionUndo:
		m.undoChange()
	case actionRedo:
		m.redoChange()
	}
	return m, nil
}

func (m *Model) runLabAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionSuggestNext:
		m.moveSuggestion(1)
	case actionSuggestPrev:
		m.moveSuggestion(-1)
	case actionSaveArtwork:
		m.saveArtwork()
	}
	return m, nil
}

// commitFocusedField handles enter for whichever field has focus.
func (m *Model) commitFocusedField() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusLetter, focusNumber:
		// The widget reloads its buffer from props on enter.
		return m, m.wheel.Update(tea.KeyMsg{Type: tea.KeyEnter}, m.props())
	case focusPlain, focusCipher:
		return m, m.setFocus(focusNone)
	case focusPrompt:
		return m, m.startRemix()
	}
	if m.tab == tabLab {
		return m, m.setFocus(focusPrompt)
	}
	return m, nil
}

// updateFocusedField feeds an editing key to the focused field and applies
// the resulting intent.
func (m *Model) updateFocusedField(msg tea.KeyMsg) tea.Cmd {
	switch m.focus {
	case focusPlain:
		var cmd tea.Cmd
		m.plainInput, cmd = m.plainInput.Update(msg)
		if m.plainInput.Value() != m.state.plain {
			before := m.state
			m.state.editPlaintext(m.plainInput.Value())
			m.recordBurstChange(before)
			mirrorSanitized(&m.plainInput, m.state.plain)
			m.syncWidgets()
		}
		return cmd
	case focusCipher:
		var cmd tea.Cmd
		m.cipherInput, cmd = m.cipherInput.Update(msg)
		if m.cipherInput.Value() != m.state.cipher {
			before := m.state
			m.state.editCiphertext(m.cipherInput.Value())
			m.recordBurstChange(before)
			mirrorSanitized(&m.cipherInput, m.state.cipher)
			m.syncWidgets()
		}
		return cmd
	case focusLetter, focusNumber:
		return m.wheel.Update(msg, m.props())
	case focusPrompt:
		var cmd tea.Cmd
		m.promptInput, cmd = m.promptInput.Update(msg)
		m.refreshSuggestions()
		return cmd
	}
	return nil
}

// mirrorSanitized writes the stored value back into the field being typed in,
// keeping the cursor where it was when possible.
func mirrorSanitized(input *textinput.Model, value string) {
	if input.Value() == value {
		return
	}
	pos := input.Position()
	input.SetValue(value)
	input.SetCursor(min(pos, len([]rune(value))))
}

// applyShift routes a slider change through the coordinator.
func (m *Model) applyShift(shift int) {
	if shift == m.state.shift {
		return
	}
	before := m.state
	m.state.setShift(shift)
	m.recordChange(before)
	m.syncWidgets()
	m.status = fmt.Sprintf("Shift %d", m.state.shift)
}

func (m *Model) swapBuffers() {
	before := m.state
	m.state.swap()
	m.recordChange(before)
	m.syncWidgets()
	m.status = "Swapped plaintext and ciphertext"
}

func (m *Model) resetBuffers() {
	before := m.state
	m.state.reset()
	m.recordChange(before)
	m.syncWidgets()
	m.status = "Cleared both buffers"
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.actionForKey(msg.String()) {
	case actionQuit:
		m.cancelRemix()
		return m, tea.Quit
	case actionHelp, actionBlur:
		m.toggleHelp()
		return m, nil
	case actionHelpScrollUp:
		m.help.PageUp()
		return m, nil
	case actionHelpScrollDown:
		m.help.PageDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}
