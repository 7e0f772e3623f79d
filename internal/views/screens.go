package views

import (
	"fmt"
	"strings"
)

type LoginData struct {
	Theme       string
	InputView   string
	LoggingIn   bool
	SpinnerView string
	Username    string
	Error       string
}

func RenderLogin(data LoginData) string {
	p := PaletteFor(data.Theme)
	var b strings.Builder
	b.WriteString(p.Header.Render("Task Tracker") + "\n")
	b.WriteString(p.Muted.Render("Sign in to manage your tasks") + "\n\n")
	b.WriteString(data.InputView + "\n\n")
	switch {
	case data.LoggingIn:
		b.WriteString(fmt.Sprintf("%s Signing in as %s...", data.SpinnerView, data.Username))
	case data.Error != "":
		b.WriteString(p.Error.Render(data.Error))
	default:
		b.WriteString(p.Muted.Render("enter: sign in | ctrl+c: quit"))
	}
	return p.Panel.Width(48).Render(b.String())
}

type FilterBarData struct {
	Theme     string
	Active    string
	All       int
	Pending   int
	Completed int
	Search    string
	Searching bool
}

func RenderFilterBar(data FilterBarData) string {
	p := PaletteFor(data.Theme)
	tabs := []struct {
		name  string
		label string
		n     int
	}{
		{"all", "All", data.All},
		{"pending", "Pending", data.Pending},
		{"completed", "Completed", data.Completed},
	}
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := fmt.Sprintf("%s (%d)", tab.label, tab.n)
		if tab.name == data.Active {
			parts = append(parts, p.Active.Render(label))
		} else {
			parts = append(parts, p.Muted.Render(label))
		}
	}
	line := strings.Join(parts, "  ")
	if data.Searching || data.Search != "" {
		line += "  " + data.Search
	}
	return line
}

type TaskRowData struct {
	ID        string
	Title     string
	Priority  string
	Category  string
	Due       string
	DueState  string
	Completed bool
}

type TaskListData struct {
	Theme      string
	Pending    []TaskRowData
	Completed  []TaskRowData
	SelectedID string
	ConfirmID  string
	Query      string
}

func RenderTaskList(data TaskListData) string {
	p := PaletteFor(data.Theme)
	if len(data.Pending)+len(data.Completed) == 0 {
		if data.Query != "" {
			return p.Header.Render("No tasks found") + "\n" +
				p.Muted.Render(fmt.Sprintf("No tasks match %q. Try adjusting your search.", data.Query))
		}
		return p.Header.Render("No tasks yet") + "\n" +
			p.Muted.Render("Press a to create your first task.")
	}

	var b strings.Builder
	if len(data.Pending) > 0 {
		renderSection(&b, p, fmt.Sprintf("Pending Tasks (%d)", len(data.Pending)), data.Pending, data)
	}
	if len(data.Completed) > 0 {
		if len(data.Pending) > 0 {
			b.WriteString("\n")
		}
		renderSection(&b, p, fmt.Sprintf("Completed Tasks (%d)", len(data.Completed)), data.Completed, data)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderSection(b *strings.Builder, p Palette, title string, rows []TaskRowData, data TaskListData) {
	b.WriteString(p.Header.Render(title) + "\n")
	for _, row := range rows {
		cursor := "  "
		if row.ID == data.SelectedID {
			cursor = "> "
		}
		check := "[ ]"
		title := row.Title
		if row.Completed {
			check = "[x]"
			title = p.Completed.Render(title)
		} else if row.ID == data.SelectedID {
			title = p.Selected.Render(title)
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, check, priorityBadge(p, row.Priority), title)
		if row.Category != "" {
			line += " " + p.Muted.Render("#"+row.Category)
		}
		if row.Due != "" {
			line += " " + dueBadge(p, row)
		}
		b.WriteString(line + "\n")
		if row.ID == data.ConfirmID {
			b.WriteString(p.Error.Render("    delete this task? y to confirm, any other key to cancel") + "\n")
		}
	}
}

func priorityBadge(p Palette, priority string) string {
	switch priority {
	case "high":
		return p.High.Render("[HIGH]")
	case "low":
		return p.Low.Render("[LOW]")
	default:
		return p.Medium.Render("[MED]")
	}
}

func dueBadge(p Palette, row TaskRowData) string {
	switch row.DueState {
	case "overdue":
		return p.Overdue.Render("overdue " + row.Due)
	case "due_soon":
		return p.DueSoon.Render("due " + row.Due)
	default:
		return p.Muted.Render("due " + row.Due)
	}
}

type FormData struct {
	Theme     string
	Editing   bool
	Fields    []FormFieldData
	Completed bool
	Error     string
}

type FormFieldData struct {
	Label   string
	View    string
	Focused bool
}

func RenderForm(data FormData) string {
	p := PaletteFor(data.Theme)
	var b strings.Builder
	if data.Editing {
		b.WriteString(p.Header.Render("Edit Task") + "\n")
	} else {
		b.WriteString(p.Header.Render("Add New Task") + "\n")
	}
	for _, f := range data.Fields {
		label := f.Label
		if f.Focused {
			label = p.Active.Render(label)
		}
		b.WriteString(label + "\n" + f.View + "\n")
	}
	if data.Editing && data.Completed {
		b.WriteString(p.Muted.Render("status: completed") + "\n")
	}
	if data.Error != "" {
		b.WriteString(p.Error.Render(data.Error) + "\n")
	}
	b.WriteString(p.Muted.Render("tab: next field | enter: save | ctrl+s: save | esc: cancel"))
	return b.String()
}

type DetailData struct {
	Title       string
	Priority    string
	Category    string
	Created     string
	Due         string
	Completed   bool
	Description string
}

func RenderDetail(data DetailData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	status := "pending"
	if data.Completed {
		status = "completed"
	}
	b.WriteString(fmt.Sprintf("status: %s\npriority: %s\n", status, data.Priority))
	if data.Category != "" {
		b.WriteString("category: " + data.Category + "\n")
	}
	if data.Due != "" {
		b.WriteString("due: " + data.Due + "\n")
	}
	b.WriteString("created: " + data.Created)
	if data.Description != "" {
		b.WriteString("\n\n" + data.Description)
	}
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return "command: " + input
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}
