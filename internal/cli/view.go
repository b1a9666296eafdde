package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewBills
	ViewPaychecks
	ViewDebts
	ViewArena
	ViewCalendar
	ViewForm
)

// View is the interface all TUI views implement. It extends tea.Model
// with navigation and help metadata, plus a Close hook so a view can
// cancel its outstanding fetches when it leaves the stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
	Close()                   // called when the view is removed from the stack
}
