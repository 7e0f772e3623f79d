package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/model"
	"go.uber.org/zap"
)

// updateInput edits a single-line input from a key press. Printable keys are
// appended directly so the input does not need focus to accept them.
func updateInput(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	switch msg.Type {
	case tea.KeyRunes:
		in.SetValue(in.Value() + string(msg.Runes))
	case tea.KeySpace:
		in.SetValue(in.Value() + " ")
	case tea.KeyBackspace:
		v := []rune(in.Value())
		if len(v) > 0 {
			in.SetValue(string(v[:len(v)-1]))
		}
	default:
		in, _ = in.Update(msg)
	}
	return in
}

// orderedTasks lists the visible tasks the way the list shows them: the
// pending section first, then the completed one, each in collection order.
func (m Model) orderedTasks() []model.Task {
	visible := m.State.VisibleTasks()
	out := make([]model.Task, 0, len(visible))
	for _, t := range visible {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range visible {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) selectedTask() (model.Task, bool) {
	ordered := m.orderedTasks()
	if m.Cursor < 0 || m.Cursor >= len(ordered) {
		return model.Task{}, false
	}
	return ordered[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.orderedTasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// selectID moves the cursor onto id if it is visible.
func (m *Model) selectID(id string) {
	for i, t := range m.orderedTasks() {
		if t.ID == id {
			m.Cursor = i
			return
		}
	}
	m.clampCursor()
}

// persist runs after every collection mutation: the whole collection is
// saved and the due watcher re-armed.
func (m *Model) persist() {
	if m.store != nil {
		m.store.SaveTasks(m.ctx, m.State.Tasks())
	}
	m.armScheduler()
	m.clampCursor()
}

func (m *Model) armScheduler() {
	if m.engine == nil {
		return
	}
	n, err := m.engine.Arm(m.State.Tasks())
	if err != nil {
		m.logger.Warn("arm due watcher", zap.Error(err))
		return
	}
	m.logger.Debug("due watcher armed", zap.Int("pending", n))
}
