package update

import (
	"time"

	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/sandeepkv93/tasktracker/internal/views"
)

func (m Model) renderFilterBar() string {
	c := m.State.Counts()
	search := ""
	if m.Searching {
		search = m.searchInput.View()
	} else if q := m.State.SearchQuery(); q != "" {
		search = "search: " + q
	}
	return views.RenderFilterBar(views.FilterBarData{
		Theme:     string(m.State.Theme()),
		Active:    string(m.State.Filter()),
		All:       c.All,
		Pending:   c.Pending,
		Completed: c.Completed,
		Search:    search,
		Searching: m.Searching,
	})
}

func (m Model) renderTaskList() string {
	now := m.now()
	data := views.TaskListData{
		Theme:     string(m.State.Theme()),
		ConfirmID: m.ConfirmDeleteID,
		Query:     m.State.SearchQuery(),
	}
	if t, ok := m.selectedTask(); ok {
		data.SelectedID = t.ID
	}
	for _, t := range m.orderedTasks() {
		row := views.TaskRowData{
			ID:        t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			Category:  t.Category,
			DueState:  string(model.DueStatus(t, now, m.dueWindow)),
			Completed: t.Completed,
		}
		if t.DueDate != nil {
			row.Due = t.DueDate.UTC().Format(time.DateOnly)
		}
		if t.Completed {
			data.Completed = append(data.Completed, row)
		} else {
			data.Pending = append(data.Pending, row)
		}
	}
	return views.RenderTaskList(data)
}

func (m Model) renderDetail() string {
	t, ok := m.selectedTask()
	if !ok {
		return ""
	}
	d := views.DetailData{
		Title:       t.Title,
		Priority:    t.Priority.Label(),
		Category:    t.Category,
		Created:     t.CreatedAt.UTC().Format(time.DateOnly),
		Completed:   t.Completed,
		Description: views.RenderMarkdown(t.Description, string(m.State.Theme()), m.detailView.Width),
	}
	if t.DueDate != nil {
		d.Due = t.DueDate.UTC().Format(time.DateOnly)
	}
	vp := m.detailView
	vp.SetContent(views.RenderDetail(d))
	return vp.View()
}

func (m Model) renderForm() string {
	fields := []struct {
		label string
		view  string
		field formField
	}{
		{"Title *", m.titleInput.View(), fieldTitle},
		{"Description", m.descArea.View(), fieldDescription},
		{"Priority (ctrl+p cycles)", m.priorityInput.View(), fieldPriority},
		{"Due date", m.dueInput.View(), fieldDue},
		{"Category", m.categoryInput.View(), fieldCategory},
	}
	data := views.FormData{
		Theme:     string(m.State.Theme()),
		Editing:   m.Form.TaskID != "",
		Completed: m.Form.Completed,
		Error:     m.Form.Err,
	}
	for _, f := range fields {
		data.Fields = append(data.Fields, views.FormFieldData{Label: f.label, View: f.view, Focused: m.Form.Focus == f.field})
	}
	return views.RenderForm(data)
}
