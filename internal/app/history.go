package app

import "time"

// burstIdleWindow separates two bursts of typing or dragging. Changes closer
// together than this undo as one step.
const burstIdleWindow = 750 * time.Millisecond

// maxUndoSteps bounds the undo stack.
const maxUndoSteps = 100

func (m *Model) pushUndo(snapshot cipherState) {
	m.undo = append(m.undo, snapshot)
	if len(m.undo) > maxUndoSteps {
		m.undo = m.undo[len(m.undo)-maxUndoSteps:]
	}
	// Any forward change invalidates the redo chain.
	m.redo = nil
}

func (m *Model) finishBurst() {
	m.burstActive = false
	m.burstLastAt = time.Time{}
}

// recordChange records a one-off change such as swap, reset or a slider step.
func (m *Model) recordChange(before cipherState) {
	if before == m.state {
		return
	}
	m.finishBurst()
	m.pushUndo(before)
}

// recordBurstChange records typing or dragging. Only the state before the
// first change of a burst is kept.
func (m *Model) recordBurstChange(before cipherState) {
	if before == m.state {
		return
	}
	now := m.clock()
	if !m.burstActive || now.Sub(m.burstLastAt) > burstIdleWindow {
		m.pushUndo(before)
	}
	m.burstActive = true
	m.burstLastAt = now
}

func (m *Model) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

func (m *Model) undoChange() {
	m.finishBurst()
	if len(m.undo) == 0 {
		m.status = "Nothing to undo"
		return
	}
	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, m.state)
	m.restoreState(last)
	m.status = "Undid change"
}

func (m *Model) redoChange() {
	m.finishBurst()
	if len(m.redo) == 0 {
		m.status = "Nothing to redo"
		return
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, m.state)
	m.restoreState(next)
	m.status = "Redid change"
}

// restoreState replaces the canonical state and reloads every widget,
// including the one being typed in.
func (m *Model) restoreState(s cipherState) {
	focus := m.focus
	m.focus = focusNone
	m.state = s
	m.syncWidgets()
	m.focus = focus
	m.plainInput.CursorEnd()
	m.cipherInput.CursorEnd()
}
