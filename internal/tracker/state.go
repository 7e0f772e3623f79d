package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasktracker/internal/model"
)

type Options struct {
	// NewID generates task ids. Defaults to random UUIDs.
	NewID func() string
	// Now supplies creation timestamps. Defaults to time.Now.
	Now   func() time.Time
	Theme model.Theme
}

type State struct {
	tasks  []model.Task
	filter model.Filter
	query  string
	edit   EditMode
	theme  model.Theme
	newID  func() string
	now    func() time.Time
}

// New builds a State around tasks in the given order. Tasks that fail
// validation or repeat an earlier id are dropped.
func New(tasks []model.Task, opts Options) State {
	s := State{
		filter: model.FilterAll,
		edit:   Idle{},
		theme:  model.ThemeLight,
		newID:  opts.NewID,
		now:    opts.Now,
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.Theme.IsValid() {
		s.theme = opts.Theme
	}
	s.tasks = make([]model.Task, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Validate() != nil || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		s.tasks = append(s.tasks, t.Clone())
	}
	return s
}

// Tasks returns a copy of the collection, newest first.
func (s State) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s State) Len() int { return len(s.tasks) }

func (s State) Task(id string) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx].Clone(), true
}

func (s State) Filter() model.Filter { return s.filter }
func (s State) SearchQuery() string  { return s.query }
func (s State) Theme() model.Theme   { return s.theme }

func (s State) EditMode() EditMode {
	if s.edit == nil {
		return Idle{}
	}
	return s.edit
}

// AddTask prepends a task built from d. A blank title is rejected with a
// *model.ValidationError and the state is returned unchanged.
func (s State) AddTask(d model.AddDraft) (State, model.Task, error) {
	norm, err := model.NormalizeAdd(d)
	if err != nil {
		return s, model.Task{}, err
	}
	task := model.Task{
		ID:          s.freshID(),
		Title:       norm.Title,
		Description: norm.Description,
		Priority:    norm.Priority,
		Category:    norm.Category,
		DueDate:     norm.DueDate,
		CreatedAt:   s.now().UTC(),
	}
	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, task)
	next = append(next, s.tasks...)
	s.tasks = next
	return s, task.Clone(), nil
}

// EditTask applies d to the task under edit. It does nothing unless the state
// is Editing(id). On success the state returns to Idle; id and createdAt are
// preserved. The bool reports whether the collection changed.
func (s State) EditTask(id string, d model.EditDraft) (State, bool, error) {
	current, ok := EditingID(s.EditMode())
	if !ok || current != id {
		return s, false, nil
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return s, false, nil
	}
	norm, err := model.NormalizeEdit(d)
	if err != nil {
		return s, false, err
	}
	next := s.copyTasks()
	t := next[idx]
	t.Title = norm.Title
	t.Description = norm.Description
	t.Completed = norm.Completed
	t.Priority = norm.Priority
	t.Category = norm.Category
	t.DueDate = norm.DueDate
	next[idx] = t
	s.tasks = next
	s.edit = Idle{}
	return s, true, nil
}

// DeleteTask removes id from the collection. Deleting the task under edit
// also ends the edit.
func (s State) DeleteTask(id string) (State, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return s, false
	}
	next := make([]model.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	s.tasks = next
	if editing, ok := EditingID(s.EditMode()); ok && editing == id {
		s.edit = Idle{}
	}
	return s, true
}

func (s State) ToggleComplete(id string) (State, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return s, false
	}
	next := s.copyTasks()
	next[idx].Completed = !next[idx].Completed
	s.tasks = next
	return s, true
}

// BeginEdit moves to Editing(id), discarding any previous edit target. An
// unknown id leaves the state unchanged.
func (s State) BeginEdit(id string) (State, bool) {
	if s.indexOf(id) < 0 {
		return s, false
	}
	s.edit = Editing{TaskID: id}
	return s, true
}

func (s State) CancelEdit() State {
	s.edit = Idle{}
	return s
}

// SetFilter ignores values outside all/pending/completed.
func (s State) SetFilter(f model.Filter) State {
	if f.IsValid() {
		s.filter = f
	}
	return s
}

func (s State) SetSearchQuery(q string) State {
	s.query = q
	return s
}

func (s State) SetTheme(t model.Theme) State {
	if t.IsValid() {
		s.theme = t
	}
	return s
}

// VisibleTasks returns, in collection order, the tasks passing both the
// status filter and the search query.
func (s State) VisibleTasks() []model.Task {
	needle := ""
	if strings.TrimSpace(s.query) != "" {
		needle = strings.ToLower(s.query)
	}
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !s.filter.Matches(t.Completed) {
			continue
		}
		if needle != "" && !matchesQuery(t, needle) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

func matchesQuery(t model.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if t.Description != "" && strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	return t.Category != "" && strings.Contains(strings.ToLower(t.Category), needle)
}

func (s State) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) copyTasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s State) freshID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}
