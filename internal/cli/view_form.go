package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps a huh.Form as a View on the navigation stack. When the
// form completes it pops itself and runs the submit command; escape
// cancels without submitting.
type formView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	submit   func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, submit func() tea.Cmd) *formView {
	return &formView{
		state:    state,
		form:     form,
		titleStr: title,
		submit:   submit,
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var submitCmd tea.Cmd
		if v.submit != nil {
			submitCmd = v.submit()
		}
		// Pop and submit travel as one message so the pop always lands
		// before anything the submit command pushes.
		return v, func() tea.Msg { return formDoneMsg{submit: submitCmd} }
	}

	return v, cmd
}

// formDoneMsg closes the form view and then runs the submit command.
type formDoneMsg struct {
	submit tea.Cmd
}

func (v *formView) View() string {
	return v.form.View()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) Close()        {}

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
