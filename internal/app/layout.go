// layout.go centralizes all terminal layout calculations.
//
// Both tabs share a header (title and tab bar) and an adaptive footer. The
// cipher tab places the wheel on the left and the controls panel beside it,
// or underneath when the terminal is too narrow. The lab tab places a
// read-only copy of the wheel beside the lab panel in the same way.
//
// Mouse hit tests use the same LayoutDimensions as View, so a click always
// lands on what was drawn.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	ContentHeight int // rows between the header and the footer

	WheelX int // screen column of the wheel's top-left cell
	WheelY int // screen row of the wheel's top-left cell

	PanelX      int // screen column of the panel's outer border
	PanelY      int // screen row of the panel's outer border
	PanelWidth  int // outer width of the panel, border included
	PanelHeight int // outer height of the panel, border included
	Stacked     bool
}

// calculateLayout computes all UI dimensions based on terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	geo := m.wheel.Geometry()
	footer := m.footerHeightForWidth(m.width)
	contentHeight := max(0, m.height-HeaderRows-footer)

	layout := LayoutDimensions{
		ContentHeight: contentHeight,
		WheelX:        WheelMarginLeft,
		WheelY:        HeaderRows,
	}

	beside := m.width - WheelMarginLeft - geo.Cols() - ControlsGap
	if beside >= ControlsMinWidth {
		layout.PanelX = WheelMarginLeft + geo.Cols() + ControlsGap
		layout.PanelY = HeaderRows
		layout.PanelWidth = min(beside, ControlsMaxWidth)
		layout.PanelHeight = contentHeight
		return layout
	}

	layout.Stacked = true
	layout.PanelX = 0
	layout.PanelY = HeaderRows + geo.Rows() + 1
	layout.PanelWidth = max(0, min(m.width, ControlsMaxWidth))
	layout.PanelHeight = max(0, contentHeight-geo.Rows()-1)
	return layout
}

// panelContentOrigin is the first content cell inside the panel border and
// padding.
func (l LayoutDimensions) panelContentOrigin() (x, y int) {
	x = l.PanelX + paneStyle.GetBorderLeftSize() + paneStyle.GetPaddingLeft()
	y = l.PanelY + paneStyle.GetBorderTopSize() + paneStyle.GetPaddingTop()
	return x, y
}

// panelContentWidth is the usable width inside the panel.
func (l LayoutDimensions) panelContentWidth() int {
	return max(0, l.PanelWidth-paneStyle.GetHorizontalFrameSize())
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout pushes the calculated dimensions into the widgets.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.wheel.SetOrigin(layout.WheelX, layout.WheelY)
	m.preview.SetOrigin(layout.WheelX, layout.WheelY)

	inner := layout.panelContentWidth()
	inputWidth := max(1, inner-3)
	m.plainInput.Width = inputWidth
	m.cipherInput.Width = inputWidth
	m.promptInput.Width = inputWidth
	m.slider.Width = max(1, inner)

	helpWidth := min(HelpPopupMaxWidth, max(20, m.width-4))
	m.help.Width = max(1, helpWidth-popupStyle.GetHorizontalFrameSize())
	m.help.Height = max(1, layout.ContentHeight-popupStyle.GetVerticalFrameSize())
}
