package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/sandeepkv93/tasktracker/internal/views"
)

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// LoginDoneMsg reports the end of the login delay.
type LoginDoneMsg struct {
	User model.UserSession
	Err  error
}

func (m Model) Init() tea.Cmd {
	if m.engine != nil {
		return waitForDueCmd(m.engine.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Screen == ScreenLogin {
			return m.handleLoginKey(typed)
		}
		if m.Form.Active {
			return m.handleFormKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Searching {
			return m.handleSearchKey(typed), nil
		}
		return m.handleTasksKey(typed)
	case spinner.TickMsg:
		if m.LoggingIn {
			var cmd tea.Cmd
			m.loginSpinner, cmd = m.loginSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case LoginDoneMsg:
		return m.onLoginDone(typed), nil
	case DueMsg:
		m = m.onDue(typed)
		if m.engine != nil {
			return m, waitForDueCmd(m.engine.C())
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	theme := string(m.State.Theme())
	if m.Screen == ScreenLogin {
		errText := ""
		if m.Status.IsError {
			errText = m.Status.Text
		}
		return views.RenderLogin(views.LoginData{
			Theme:       theme,
			InputView:   m.usernameInput.View(),
			LoggingIn:   m.LoggingIn,
			SpinnerView: m.loginSpinner.View(),
			Username:    strings.TrimSpace(m.usernameInput.Value()),
			Error:       errText,
		})
	}

	stats := m.State.Stats()
	body := m.renderTaskList()
	detail := m.renderDetail()
	if m.Form.Active {
		body = m.renderForm()
		detail = ""
	}

	overlay := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
	if m.HelpVisible {
		overlay = strings.TrimSpace(overlay + "\n" + m.renderHelpView())
	}

	return views.RenderApp(views.AppData{
		Theme:   theme,
		Header:  "Task Tracker",
		Welcome: fmt.Sprintf("Welcome back, %s!", m.User.Username),
		Stats: fmt.Sprintf("total %d | pending %d | completed %d | %d%% done",
			stats.Total, stats.Pending, stats.Completed, stats.CompletionRate),
		FilterBar:  m.renderFilterBar(),
		Body:       body,
		Detail:     detail,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Overlay:    overlay,
		Footer:     "a add | e edit | space toggle | d delete | f filter | / search | : command | t theme | ? help | q quit",
	})
}
