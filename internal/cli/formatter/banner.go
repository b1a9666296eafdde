package formatter

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	errorBannerStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorRed).
				Padding(0, 1)

	warnBannerStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorYellow).
			Padding(0, 1)
)

// ErrorBanner renders a dismissible error message.
func ErrorBanner(msg string) string {
	return errorBannerStyle.Render(msg + " " + Dim("(esc to dismiss)"))
}

// WarnBanner renders a warning that needs acknowledgement. Used for the
// partial-failure case, which is not an ordinary error: local state is
// fine, the server is not.
func WarnBanner(msg string) string {
	return warnBannerStyle.Render(msg + " " + Dim("(esc to acknowledge)"))
}

// Loading renders the standard loading line.
func Loading(what string) string {
	return "\n  " + Dim("Loading "+what+"...")
}
