package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/sandeepkv93/tasktracker/internal/scheduler"
	"github.com/sandeepkv93/tasktracker/internal/session"
	"github.com/sandeepkv93/tasktracker/internal/tracker"
	"go.uber.org/zap"
)

type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenTasks Screen = "tasks"
)

// Store is the slice of the persistence gateway the view writes through.
type Store interface {
	SaveTasks(ctx context.Context, tasks []model.Task)
	SaveTheme(ctx context.Context, t model.Theme)
}

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldPriority
	fieldDue
	fieldCategory
	fieldCount
)

type FormState struct {
	Active bool
	// TaskID is set while editing an existing task.
	TaskID    string
	Completed bool
	Focus     formField
	Err       string
}

type Model struct {
	Screen          Screen
	State           tracker.State
	User            model.UserSession
	Cursor          int
	Form            FormState
	ConfirmDeleteID string
	Searching       bool
	Palette         CommandPaletteState
	HelpVisible     bool
	LoggingIn       bool
	Status          StatusBar
	Quitting        bool

	ctx       context.Context
	store     Store
	sessions  *session.Manager
	engine    *scheduler.Engine
	logger    *zap.Logger
	now       func() time.Time
	dueWindow time.Duration

	usernameInput textinput.Model
	titleInput    textinput.Model
	descArea      textarea.Model
	priorityInput textinput.Model
	dueInput      textinput.Model
	categoryInput textinput.Model
	searchInput   textinput.Model
	commandInput  textinput.Model
	loginSpinner  spinner.Model
	helpModel     help.Model
	detailView    viewport.Model
}

// Deps carries everything the model needs from main.
type Deps struct {
	Context       context.Context
	Store         Store
	Sessions      *session.Manager
	Scheduler     *scheduler.Engine
	Logger        *zap.Logger
	Tasks         []model.Task
	Theme         model.Theme
	User          *model.UserSession
	DueSoonWindow time.Duration
	Now           func() time.Time
	NewID         func() string
}

func NewModel(deps Deps) Model {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.DueSoonWindow <= 0 {
		deps.DueSoonWindow = model.DefaultDueSoonWindow
	}

	m := Model{
		Screen: ScreenLogin,
		State: tracker.New(deps.Tasks, tracker.Options{
			NewID: deps.NewID,
			Now:   deps.Now,
			Theme: deps.Theme,
		}),
		ctx:       deps.Context,
		store:     deps.Store,
		sessions:  deps.Sessions,
		engine:    deps.Scheduler,
		logger:    deps.Logger,
		now:       deps.Now,
		dueWindow: deps.DueSoonWindow,
	}
	if deps.User != nil {
		m.User = *deps.User
		m.Screen = ScreenTasks
	}
	m.initBubbleComponents()
	m.armScheduler()
	return m
}

func (m *Model) initBubbleComponents() {
	m.usernameInput = textinput.New()
	m.usernameInput.Prompt = "username> "
	m.usernameInput.Placeholder = "Enter your username"
	m.usernameInput.CharLimit = 64
	m.usernameInput.Width = 32
	if m.Screen == ScreenLogin {
		m.usernameInput.Focus()
	}

	m.titleInput = newFormInput("Task title", 200)
	m.priorityInput = newFormInput("low | medium | high", 8)
	m.dueInput = newFormInput("YYYY-MM-DD", 10)
	m.categoryInput = newFormInput("Work, Personal, ...", 64)

	m.descArea = textarea.New()
	m.descArea.SetWidth(56)
	m.descArea.SetHeight(4)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "Description (markdown)"

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ":"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.loginSpinner = spinner.New()
	m.loginSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.detailView = viewport.New(42, 14)
}

func newFormInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 48
	return in
}
