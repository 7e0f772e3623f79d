package update

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/sandeepkv93/tasktracker/internal/tracker"
)

func (m Model) openAddForm() Model {
	m.State = m.State.CancelEdit()
	m.resetFormInputs()
	m.Form = FormState{Active: true, Focus: fieldTitle}
	m.priorityInput.SetValue(string(model.PriorityMedium))
	m.focusField()
	return m
}

func (m Model) openEditForm() Model {
	t, ok := m.selectedTask()
	if !ok {
		return m
	}
	next, ok := m.State.BeginEdit(t.ID)
	if !ok {
		return m
	}
	m.State = next

	d := model.DraftFromTask(t)
	m.resetFormInputs()
	m.titleInput.SetValue(d.Title)
	m.descArea.SetValue(d.Description)
	m.priorityInput.SetValue(string(d.Priority))
	if d.DueDate != nil {
		m.dueInput.SetValue(d.DueDate.UTC().Format(time.DateOnly))
	}
	m.categoryInput.SetValue(d.Category)
	m.Form = FormState{Active: true, TaskID: t.ID, Completed: d.Completed, Focus: fieldTitle}
	m.focusField()
	return m
}

func (m Model) closeForm() Model {
	if _, editing := tracker.EditingID(m.State.EditMode()); editing {
		m.State = m.State.CancelEdit()
	}
	return m.finishForm()
}

// finishForm clears and blurs the form without touching the edit mode.
func (m Model) finishForm() Model {
	m.Form = FormState{}
	m.resetFormInputs()
	m.titleInput.Blur()
	m.descArea.Blur()
	m.priorityInput.Blur()
	m.dueInput.Blur()
	m.categoryInput.Blur()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		return m.closeForm()
	case "tab", "down":
		m.Form.Focus = (m.Form.Focus + 1) % fieldCount
		m.focusField()
		return m
	case "shift+tab", "up":
		m.Form.Focus = (m.Form.Focus + fieldCount - 1) % fieldCount
		m.focusField()
		return m
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.Form.Focus != fieldDescription {
			return m.submitForm()
		}
		m.descArea.InsertRune('\n')
		return m
	case "ctrl+p":
		p, err := model.ParsePriority(m.priorityInput.Value())
		if err != nil {
			p = model.PriorityMedium
		}
		m.priorityInput.SetValue(string(p.Next()))
		return m
	}

	switch m.Form.Focus {
	case fieldTitle:
		m.titleInput = updateInput(m.titleInput, msg)
	case fieldDescription:
		switch msg.Type {
		case tea.KeyRunes:
			m.descArea.InsertString(string(msg.Runes))
		case tea.KeySpace:
			m.descArea.InsertRune(' ')
		default:
			m.descArea, _ = m.descArea.Update(msg)
		}
	case fieldPriority:
		m.priorityInput = updateInput(m.priorityInput, msg)
	case fieldDue:
		m.dueInput = updateInput(m.dueInput, msg)
	case fieldCategory:
		m.categoryInput = updateInput(m.categoryInput, msg)
	}
	m.Form.Err = ""
	return m
}

func (m Model) submitForm() Model {
	priority, err := model.ParsePriority(m.priorityInput.Value())
	if err != nil {
		m.Form.Err = "priority must be low, medium or high"
		return m
	}
	due, err := model.ParseDueDate(m.dueInput.Value())
	if err != nil {
		m.Form.Err = "due date must be YYYY-MM-DD"
		return m
	}

	title := m.titleInput.Value()
	desc := m.descArea.Value()
	category := m.categoryInput.Value()

	if m.Form.TaskID == "" {
		next, task, err := m.State.AddTask(model.AddDraft{
			Title:       title,
			Description: desc,
			Priority:    priority,
			DueDate:     due,
			Category:    category,
		})
		if err != nil {
			m.Form.Err = formError(err)
			return m
		}
		m.State = next
		m.persist()
		m.selectID(task.ID)
		m.Status = StatusBar{Text: "added: " + task.Title}
		return m.finishForm()
	}

	id := m.Form.TaskID
	next, ok, err := m.State.EditTask(id, model.EditDraft{
		Title:       title,
		Description: desc,
		Completed:   m.Form.Completed,
		Priority:    priority,
		DueDate:     due,
		Category:    category,
	})
	if err != nil {
		m.Form.Err = formError(err)
		return m
	}
	if !ok {
		m.Status = StatusBar{Text: "task no longer exists", IsError: true}
		return m.closeForm()
	}
	m.State = next
	m.persist()
	m.selectID(id)
	if t, found := m.State.Task(id); found {
		m.Status = StatusBar{Text: "updated: " + t.Title}
	}
	return m.finishForm()
}

func formError(err error) string {
	var ve *model.ValidationError
	if errors.As(err, &ve) && ve.Field == "title" {
		return "Task title is required"
	}
	return err.Error()
}

func (m *Model) focusField() {
	m.titleInput.Blur()
	m.descArea.Blur()
	m.priorityInput.Blur()
	m.dueInput.Blur()
	m.categoryInput.Blur()
	switch m.Form.Focus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDescription:
		m.descArea.Focus()
	case fieldPriority:
		m.priorityInput.Focus()
	case fieldDue:
		m.dueInput.Focus()
	case fieldCategory:
		m.categoryInput.Focus()
	}
}

func (m *Model) resetFormInputs() {
	m.titleInput.SetValue("")
	m.descArea.Reset()
	m.priorityInput.SetValue("")
	m.dueInput.SetValue("")
	m.categoryInput.SetValue("")
}
