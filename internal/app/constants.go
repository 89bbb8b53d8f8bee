package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// HeaderRows is the title/tab bar plus one spacer row.
	HeaderRows = 2

	// WheelMarginLeft is the gap between the terminal edge and the wheel.
	WheelMarginLeft = 1

	// ControlsGap separates the wheel from the controls panel.
	ControlsGap = 2

	// ControlsMinWidth is the narrowest controls panel placed beside the
	// wheel. Narrower terminals stack the panel underneath.
	ControlsMinWidth = 36

	// ControlsMaxWidth caps the controls panel on wide terminals.
	ControlsMaxWidth = 56

	// HelpPopupMaxWidth caps the "how it works" panel.
	HelpPopupMaxWidth = 84

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Rows inside the controls panel, counted from its first content row.
const (
	controlRowTitle   = 0
	controlRowSlider  = 1
	controlRowScale   = 2
	controlRowPlain   = 5
	controlRowCipher  = 7
	controlRowButtons = 9
	controlRowHowTo   = 11
)

// Buttons on controlRowButtons, as column ranges from the content origin.
const (
	resetButtonLabel = "[ Reset ]"
	swapButtonLabel  = "[ Swap Modes ]"
	buttonGap        = 2
)

// Rows inside the lab panel, counted from its first content row.
const (
	labRowTitle       = 0
	labRowPrompt      = 3
	labRowSuggestions = 5
	labRowStatus      = 9
	labRowResult      = 11
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in the text
	// buffers.
	InputCharLimit = 120

	// PromptCharLimit bounds the remix instruction.
	PromptCharLimit = 280
)

// ShiftMax is the largest value on the shift slider.
const ShiftMax = 25

// SettingsWatchInterval is how often config.yaml and the keymap file are
// polled for edits.
const SettingsWatchInterval = 2 * time.Second
