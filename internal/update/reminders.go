package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/scheduler"
	"go.uber.org/zap"
)

// DueMsg wraps a due-date event from the watcher.
type DueMsg struct {
	Event scheduler.DueEvent
}

func waitForDueCmd(ch <-chan scheduler.DueEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DueMsg{Event: ev}
	}
}

// onDue surfaces an event only if the task is still pending; the watcher may
// fire for a task that was completed or deleted after it was armed.
func (m Model) onDue(msg DueMsg) Model {
	t, ok := m.State.Task(msg.Event.TaskID)
	if !ok || t.Completed {
		return m
	}
	m.logger.Info("task overdue", zap.String("task_id", t.ID), zap.Time("due_at", msg.Event.DueAt))
	m.Status = StatusBar{Text: "task overdue: " + t.Title}
	return m
}
