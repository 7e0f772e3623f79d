package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasktracker/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

var taskBindings = []KeyBinding{
	{Key: "j/k", Action: "move selection"},
	{Key: "a", Action: "add task"},
	{Key: "e", Action: "edit selected task"},
	{Key: "space", Action: "toggle complete"},
	{Key: "d", Action: "delete (y to confirm)"},
	{Key: "f", Action: "cycle filter"},
	{Key: "/", Action: "search"},
	{Key: ":", Action: "command palette"},
	{Key: "t", Action: "toggle theme"},
	{Key: "L", Action: "log out"},
	{Key: "?", Action: "toggle help"},
	{Key: "q", Action: "quit"},
}

func (m Model) renderHelpView() string {
	bindings := make([]key.Binding, 0, len(taskBindings))
	plain := make([]string, 0, len(taskBindings))
	for _, kb := range taskBindings {
		bindings = append(bindings, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	plain = append(plain, "- commands: add <title> [p:high] [due:YYYY-MM-DD] [cat:x], filter, search, theme, toggle, delete, logout")
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}
