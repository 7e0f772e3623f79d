package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput = updateInput(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	// Handlers write into m directly; the closures share this frame.
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			next, task, err := m.State.AddTask(a.Draft)
			if err != nil {
				return commands.Result{}, err
			}
			m.State = next
			m.persist()
			m.selectID(task.ID)
			return commands.Result{Message: "added: " + task.Title}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m = m.setFilter(f.Filter)
			return commands.Result{Message: "filter: " + string(f.Filter)}, nil
		},
		Search: func(s commands.SearchArgs) (commands.Result, error) {
			m.State = m.State.SetSearchQuery(s.Query)
			m.searchInput.SetValue(s.Query)
			m.Cursor = 0
			m.clampCursor()
			if s.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("search: %s", s.Query)}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			th := t.Theme
			if th == "" {
				th = m.State.Theme().Toggle()
			}
			m = m.setTheme(th)
			return commands.Result{Message: "theme: " + string(th)}, nil
		},
		Toggle: func() (commands.Result, error) {
			if _, ok := m.selectedTask(); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			m = m.toggleSelected()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func() (commands.Result, error) {
			t, ok := m.selectedTask()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			m.ConfirmDeleteID = t.ID
			return commands.Result{Message: fmt.Sprintf("delete %q? press y to confirm", t.Title)}, nil
		},
		Logout: func() (commands.Result, error) {
			m = m.logout()
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}
