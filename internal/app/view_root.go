package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	brandName     = "CIPHER "
	brandSuffix   = "NEXUS"
	cipherTabName = "Cipher Engine"
	labTabName    = "AI Visualizer"
)

// View draws the full UI (header + active page + status footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	layout := m.calculateLayout()
	m.applyLayout(layout)

	var page string
	if m.overlay != overlayNone {
		page = m.renderActiveOverlay(m.width, layout.ContentHeight)
	} else if m.tab == tabLab {
		page = m.renderLabPage(layout)
	} else {
		page = m.renderCipherPage(layout)
	}
	page = padBlock(page, m.width, layout.ContentHeight)

	view := m.renderHeader(m.width) + "\n" + page + "\n" + m.renderStatus(m.width, footerHeight)
	return padBlock(view, m.width, m.height)
}

// renderHeader is the brand and the tab bar on row 0 plus a spacer row.
func (m *Model) renderHeader(width int) string {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(brandStyle.Render(brandName))
	b.WriteString(brandAccent.Render(brandSuffix))
	for _, t := range m.headerTabs() {
		b.WriteString(strings.Repeat(" ", t.gap))
		if t.tab == m.tab {
			b.WriteString(tabActive.Render(t.label))
		} else {
			b.WriteString(tabInactive.Render(t.label))
		}
	}
	return padBlock(b.String(), width, HeaderRows)
}

// headerTab is one clickable tab label and its screen columns.
type headerTab struct {
	tab   tab
	label string
	gap   int
	start int
	end   int
}

// headerTabs computes where each tab label sits on row 0. renderHeader and
// the mouse hit test share it.
func (m *Model) headerTabs() []headerTab {
	col := 1 + lipgloss.Width(brandName+brandSuffix)
	tabs := []headerTab{
		{tab: tabCipher, label: cipherTabName, gap: 3},
		{tab: tabLab, label: labTabName, gap: 1},
	}
	for i := range tabs {
		col += tabs[i].gap
		tabs[i].start = col
		col += lipgloss.Width(tabActive.Render(tabs[i].label))
		tabs[i].end = col
	}
	return tabs
}

// renderPanel draws a bordered panel at the outer size recorded in layout.
func renderPanel(style lipgloss.Style, content string, layout LayoutDimensions) string {
	if layout.PanelWidth <= 0 || layout.PanelHeight <= 0 {
		return ""
	}
	innerW := layout.panelContentWidth()
	innerH := max(0, layout.PanelHeight-style.GetVerticalFrameSize())
	body := padBlock(content, innerW, innerH)
	return style.
		Width(layout.PanelWidth - style.GetHorizontalBorderSize()).
		Height(innerH + style.GetVerticalPadding()).
		Render(body)
}

// placePage joins the wheel and the panel the way calculateLayout arranged
// them.
func placePage(wheelView, panel string, layout LayoutDimensions) string {
	margin := strings.Repeat(" ", WheelMarginLeft)
	lines := strings.Split(wheelView, "\n")
	for i := range lines {
		lines[i] = margin + lines[i]
	}
	left := strings.Join(lines, "\n")
	if panel == "" {
		return left
	}
	if layout.Stacked {
		return left + "\n\n" + panel
	}
	gap := strings.Repeat(" ", ControlsGap)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, panel)
}
