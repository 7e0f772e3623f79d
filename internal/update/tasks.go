package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/model"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if m.ConfirmDeleteID != "" {
		id := m.ConfirmDeleteID
		m.ConfirmDeleteID = ""
		if keyStr == "y" || keyStr == "Y" {
			return m.deleteTask(id), nil
		}
		m.Status = StatusBar{Text: "delete cancelled"}
		return m, nil
	}

	switch keyStr {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "j", "down":
		m.Cursor++
		m.clampCursor()
	case "k", "up":
		m.Cursor--
		m.clampCursor()
	case "g", "home":
		m.Cursor = 0
	case "G", "end":
		m.Cursor = len(m.orderedTasks()) - 1
		m.clampCursor()
	case "a":
		return m.openAddForm(), nil
	case "e", "enter":
		return m.openEditForm(), nil
	case " ", "space", "x":
		return m.toggleSelected(), nil
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.ConfirmDeleteID = t.ID
			m.Status = StatusBar{Text: fmt.Sprintf("delete %q? press y to confirm", t.Title)}
		}
	case "f":
		m = m.setFilter(m.State.Filter().Next())
	case "/":
		m.Searching = true
		m.searchInput.SetValue(m.State.SearchQuery())
		m.searchInput.Focus()
	case ":":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case "t":
		m = m.setTheme(m.State.Theme().Toggle())
	case "L":
		return m.logout(), nil
	case "?":
		m.HelpVisible = !m.HelpVisible
	case "esc":
		if m.State.SearchQuery() != "" {
			m.State = m.State.SetSearchQuery("")
			m.searchInput.SetValue("")
			m.clampCursor()
		}
		m.HelpVisible = false
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		m.Searching = false
		m.searchInput.Blur()
	case "esc":
		m.Searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.State = m.State.SetSearchQuery("")
	default:
		m.searchInput = updateInput(m.searchInput, msg)
		m.State = m.State.SetSearchQuery(m.searchInput.Value())
		m.Cursor = 0
	}
	m.clampCursor()
	return m
}

func (m Model) toggleSelected() Model {
	t, ok := m.selectedTask()
	if !ok {
		return m
	}
	next, changed := m.State.ToggleComplete(t.ID)
	if !changed {
		return m
	}
	m.State = next
	m.persist()
	m.selectID(t.ID)
	if updated, ok := m.State.Task(t.ID); ok && updated.Completed {
		m.Status = StatusBar{Text: "completed: " + t.Title}
	} else {
		m.Status = StatusBar{Text: "reopened: " + t.Title}
	}
	return m
}

func (m Model) deleteTask(id string) Model {
	t, _ := m.State.Task(id)
	next, removed := m.State.DeleteTask(id)
	if !removed {
		m.Status = StatusBar{Text: "task no longer exists", IsError: true}
		return m
	}
	m.State = next
	m.persist()
	m.Status = StatusBar{Text: "deleted: " + t.Title}
	return m
}

func (m Model) setFilter(f model.Filter) Model {
	m.State = m.State.SetFilter(f)
	m.Cursor = 0
	m.clampCursor()
	m.Status = StatusBar{Text: "filter: " + string(m.State.Filter())}
	return m
}

// setTheme applies and saves the theme straight away; it is not part of the
// task collection.
func (m Model) setTheme(t model.Theme) Model {
	m.State = m.State.SetTheme(t)
	if m.store != nil {
		m.store.SaveTheme(m.ctx, m.State.Theme())
	}
	m.Status = StatusBar{Text: "theme: " + string(m.State.Theme())}
	return m
}
