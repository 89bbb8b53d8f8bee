package app

import "github.com/charmbracelet/lipgloss"

var (
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	popupStyle    = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	controlsPane  = paneStyle.BorderForeground(lipgloss.Color("62"))
	labPane       = paneStyle.BorderForeground(lipgloss.Color("99"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	editStatus    = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)

	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	brandAccent    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366f1"))
	tabActive      = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("#4f46e5")).Foreground(lipgloss.Color("255"))
	tabInactive    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("246"))
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94a3b8"))
	shiftStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366f1"))
	plainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa"))
	cipherStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	buttonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	buttonAccent   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a5b4fc"))
	suggestionPick = lipgloss.NewStyle().Foreground(lipgloss.Color("#a5b4fc")).Bold(true)
)
