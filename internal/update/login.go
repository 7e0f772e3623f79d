package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktracker/internal/model"
)

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.LoggingIn {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.Quitting = true
		return m, tea.Quit
	case "enter":
		return m.startLogin()
	default:
		m.usernameInput = updateInput(m.usernameInput, msg)
		if m.Status.IsError {
			m.Status = StatusBar{}
		}
		return m, nil
	}
}

func (m Model) startLogin() (tea.Model, tea.Cmd) {
	username := m.usernameInput.Value()
	if m.sessions == nil {
		m.Status = StatusBar{Text: "login unavailable", IsError: true}
		return m, nil
	}
	if err := m.sessions.Validate(username); err != nil {
		m.Status = StatusBar{Text: "Please enter a username", IsError: true}
		return m, nil
	}
	m.LoggingIn = true
	m.Status = StatusBar{}
	return m, tea.Batch(m.loginSpinner.Tick, m.loginCmd(username))
}

// loginCmd runs the login off the event loop; the manager sleeps for the
// configured delay before persisting the session.
func (m Model) loginCmd(username string) tea.Cmd {
	sessions := m.sessions
	ctx := m.ctx
	return func() tea.Msg {
		u, err := sessions.Login(ctx, username)
		return LoginDoneMsg{User: u, Err: err}
	}
}

func (m Model) onLoginDone(msg LoginDoneMsg) Model {
	m.LoggingIn = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: msg.Err.Error(), IsError: true}
		return m
	}
	m.User = msg.User
	m.Screen = ScreenTasks
	m.usernameInput.SetValue("")
	m.usernameInput.Blur()
	m.Cursor = 0
	m.Status = StatusBar{Text: "signed in as " + m.User.Username}
	return m
}

func (m Model) logout() Model {
	if m.sessions != nil {
		m.sessions.Logout(m.ctx, m.User)
	}
	name := m.User.Username
	m = m.closeForm()
	m.Searching = false
	m.ConfirmDeleteID = ""
	m.HelpVisible = false
	m.User = model.UserSession{}
	m.Screen = ScreenLogin
	m.usernameInput.SetValue("")
	m.usernameInput.Focus()
	m.Status = StatusBar{Text: "signed out " + name}
	return m
}
