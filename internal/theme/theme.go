package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the desktop.
type Styles struct {
	MenuBar        *lipgloss.Style
	MenuBarTitle   *lipgloss.Style
	MenuBarHover   *lipgloss.Style
	Clock          *lipgloss.Style
	Backdrop       *lipgloss.Style
	WindowBorder   *lipgloss.Style
	WindowFocused  *lipgloss.Style
	WindowTitle    *lipgloss.Style
	WindowBody     *lipgloss.Style
	Dock           *lipgloss.Style
	DockIcon       *lipgloss.Style
	DockIconOpen   *lipgloss.Style
	DockIndicator  *lipgloss.Style
	FinderSelected *lipgloss.Style
	FinderEntry    *lipgloss.Style
	TerminalPrompt *lipgloss.Style
	TerminalOutput *lipgloss.Style
	Error          *lipgloss.Style
	Muted          *lipgloss.Style
}

var defaultStyles = Styles{
	MenuBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	MenuBarTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true),
	),
	MenuBarHover: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("236")).Bold(true),
	),
	Clock: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
	),
	Backdrop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	WindowBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	WindowFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	WindowTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	WindowBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Dock: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235")),
	),
	DockIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	DockIconOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("235")).Bold(true),
	),
	DockIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("235")),
	),
	FinderSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	FinderEntry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	TerminalPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	TerminalOutput: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
