package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vitaminR/autobudget/internal/calendar"
	"github.com/vitaminR/autobudget/internal/domain"
)

// Base palette.
var (
	ColorGreen  = lipgloss.Color("#2ecc71")
	ColorYellow = lipgloss.Color("#f1c40f")
	ColorRed    = lipgloss.Color("#e74c3c")
	ColorBlue   = lipgloss.Color("#3498db")
	ColorOrange = lipgloss.Color("#e67e22")
	ColorDim    = lipgloss.Color("#95a5a6")
	ColorFg     = lipgloss.Color("#ecf0f1")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleStrike = lipgloss.NewStyle().Foreground(ColorDim).Strikethrough(true)
)

// BillClassStyle returns the style for a bill class. Total: unknown
// classes render dim instead of breaking the row.
func BillClassStyle(class domain.BillClass) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(BillClassColor(class)))
}

// BillClassColor returns the color token for a bill class, deferring to
// the calendar projector's total mapping so list views and the timeline
// agree on colors.
func BillClassColor(class domain.BillClass) string {
	return calendar.ColorFor(domain.CalendarEvent{Kind: domain.EventBill, BillClass: class})
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Swatch renders a small colored block for legends.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}
