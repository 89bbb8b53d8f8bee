package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/wheel"
)

// handleWindowResize updates layout dimensions after terminal resize.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout(m.calculateLayout())
	if m.overlay == overlayHelp {
		m.refreshHelp()
	}
	return m, nil
}

// handleSpinnerTick animates the spinner while a remix is running and lets
// the tick chain stop otherwise.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.remixing {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleShiftChanged applies a shift intent from the wheel, either a drag
// tick or a reference number edit.
func (m *Model) handleShiftChanged(msg wheel.ShiftChangedMsg) (tea.Model, tea.Cmd) {
	before := m.state
	m.state.setShift(msg.Shift)
	m.recordBurstChange(before)
	m.syncWidgets()
	if m.state.shift != before.shift {
		m.status = fmt.Sprintf("Shift %d", m.state.shift)
		appLog.Debug("shift changed", "shift", m.state.shift, "source", sourceName(msg.Source))
	}
	return m, nil
}

// handleReferenceLetterChanged applies a reference letter intent. The shift
// stays put; only the highlighted number moves.
func (m *Model) handleReferenceLetterChanged(msg wheel.ReferenceLetterChangedMsg) (tea.Model, tea.Cmd) {
	before := m.state
	if !m.state.setReferenceLetter(msg.Letter) {
		return m, nil
	}
	m.recordChange(before)
	m.syncWidgets()
	m.status = fmt.Sprintf("%c = %d", m.state.letter, m.state.referenceNumber())
	return m, nil
}

// handleRemixResult applies a finished remix when it is still the current
// request. Results for cancelled or superseded requests are dropped.
func (m *Model) handleRemixResult(msg remixResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.remixSeq || !m.remixing {
		appLog.Debug("discard stale remix result", "seq", msg.seq, "current_seq", m.remixSeq)
		return m, nil
	}
	m.remixing = false
	m.remixCancel = nil

	if msg.err != nil {
		m.labErr = remixErrorText(msg.err)
		m.setStatusError("Remix failed", msg.err, "seq", msg.seq, "prompt", msg.prompt)
		return m, nil
	}

	m.labErr = ""
	m.artwork = msg.image
	m.artworkThumb = ""
	m.thumbSize = [2]int{}
	m.savedPath = ""
	m.status = fmt.Sprintf("Remix ready. Press %s to save", m.primaryActionKey(actionSaveArtwork, "Ctrl+S"))
	return m, nil
}

func sourceName(s wheel.Source) string {
	if s == wheel.SourceReferenceNumber {
		return "reference_number"
	}
	return "drag"
}
