package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	style := statusStyle
	if m.editing() {
		style = editStatus
	}
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, style.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	key := m.primaryActionKey
	if m.overlay == overlayHelp {
		return []string{
			"How it works",
			key(actionHelpScrollUp, "PgUp") + "/" + key(actionHelpScrollDown, "PgDn") + " scroll",
			key(actionHelp, "?") + "/" + key(actionBlur, "Esc") + " close",
		}
	}

	switch m.focus {
	case focusPlain, focusCipher:
		return []string{"type to edit", key(actionFocusNext, "Tab") + " next field", key(actionCommit, "Enter") + "/" + key(actionBlur, "Esc") + " done"}
	case focusLetter:
		return []string{"type A-Z", key(actionFocusNext, "Tab") + " next field", key(actionBlur, "Esc") + " done"}
	case focusNumber:
		return []string{"type 0-25", key(actionFocusNext, "Tab") + " next field", key(actionBlur, "Esc") + " done"}
	case focusPrompt:
		help := []string{
			key(actionCommit, "Enter") + " remix",
			key(actionSuggestPrev, "↑") + "/" + key(actionSuggestNext, "↓") + " suggestion",
			key(actionFocusNext, "Tab") + " use suggestion",
		}
		if m.remixing {
			help = append(help, key(actionBlur, "Esc")+" cancel")
		}
		if len(m.artwork) > 0 {
			help = append(help, key(actionSaveArtwork, "Ctrl+S")+" save")
		}
		return append(help, key(actionTabNext, "Ctrl+T")+" cipher", key(actionQuit, "Q")+" quit")
	}

	if m.tab == tabLab {
		return []string{
			key(actionCommit, "Enter") + " prompt",
			key(actionTabNext, "Ctrl+T") + " cipher",
			key(actionHelp, "?") + " help",
			key(actionQuit, "Q") + " quit",
		}
	}
	return []string{
		"drag ring turn",
		key(actionShiftDown, "←") + "/" + key(actionShiftUp, "→") + " shift",
		key(actionEditPlain, "P") + " plain",
		key(actionEditCipher, "C") + " cipher",
		key(actionEditLetter, "E") + " letter",
		key(actionEditNumber, "N") + " number",
		key(actionSwap, "S") + " swap",
		key(actionReset, "R") + " reset",
		key(actionCopyCipher, "Y") + " copy",
		key(actionUndo, "Ctrl+Z") + " undo",
		key(actionTabNext, "Ctrl+T") + " AI lab",
		key(actionHelp, "?") + " help",
		key(actionQuit, "Q") + " quit",
	}
}

func (m *Model) statusContextSegments() []string {
	parts := []string{
		fmt.Sprintf("Shift %d", m.state.shift),
		fmt.Sprintf("%c = %d", m.state.letter, m.state.referenceNumber()),
	}
	if metrics := m.bufferMetricsSummary(); metrics != "" {
		parts = append(parts, metrics)
	}
	if m.wheel != nil && m.wheel.Dragging() {
		parts = append(parts, "dragging")
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}
