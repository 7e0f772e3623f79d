package tracker

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

func newTestState(t *testing.T) State {
	t.Helper()
	n := 0
	return New(nil, Options{
		NewID: func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		},
		Now: func() time.Time { return testNow },
	})
}

func mustAdd(t *testing.T, s State, d model.AddDraft) (State, model.Task) {
	t.Helper()
	next, task, err := s.AddTask(d)
	require.NoError(t, err)
	return next, task
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	s := New(nil, Options{})
	require.Equal(t, model.FilterAll, s.Filter())
	require.Equal(t, "", s.SearchQuery())
	require.Equal(t, Idle{}, s.EditMode())
	require.Equal(t, model.ThemeLight, s.Theme())
	require.Equal(t, 0, s.Len())
}

func TestNewDropsInvalidAndDuplicateTasks(t *testing.T) {
	s := New([]model.Task{
		{ID: "a", Title: "A", Priority: model.PriorityLow, CreatedAt: testNow},
		{ID: "a", Title: "dup", Priority: model.PriorityLow, CreatedAt: testNow},
		{ID: "b", Title: "", Priority: model.PriorityLow, CreatedAt: testNow},
	}, Options{Theme: model.ThemeDark})
	require.Equal(t, []string{"A"}, titles(s.Tasks()))
	require.Equal(t, model.ThemeDark, s.Theme())
}

func TestAddTaskPrependsWithDefaults(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A"})
	s, b := mustAdd(t, s, model.AddDraft{Title: "  B  ", Category: "Work"})

	require.Equal(t, []string{"B", "A"}, titles(s.Tasks()))
	require.Equal(t, model.PriorityMedium, a.Priority)
	require.False(t, a.Completed)
	require.Equal(t, testNow, a.CreatedAt)
	require.Equal(t, "B", b.Title)
	require.NotEqual(t, a.ID, b.ID)
}

func TestAddTaskRejectsBlankTitle(t *testing.T) {
	s := newTestState(t)
	s, _ = mustAdd(t, s, model.AddDraft{Title: "keep"})
	next, _, err := s.AddTask(model.AddDraft{Title: "   "})

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "title", ve.Field)
	require.Equal(t, s.Tasks(), next.Tasks())
}

func TestAddTaskIDsAreUnique(t *testing.T) {
	calls := 0
	s := New(nil, Options{NewID: func() string {
		calls++
		// repeat every id once to force collision handling
		return fmt.Sprintf("id-%d", (calls+1)/2)
	}})
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		var task model.Task
		s, task = mustAdd(t, s, model.AddDraft{Title: fmt.Sprintf("t%d", i)})
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	require.Equal(t, 50, s.Len())
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := New(nil, Options{})
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		var task model.Task
		s, task = mustAdd(t, s, model.AddDraft{Title: "same"})
		require.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A"})
	before := s
	after, ok := s.ToggleComplete(a.ID)
	require.True(t, ok)

	got, _ := before.Task(a.ID)
	require.False(t, got.Completed)
	got, _ = after.Task(a.ID)
	require.True(t, got.Completed)
}

func TestToggleCompleteTwiceRestores(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A"})
	s, ok := s.ToggleComplete(a.ID)
	require.True(t, ok)
	s, ok = s.ToggleComplete(a.ID)
	require.True(t, ok)
	got, _ := s.Task(a.ID)
	require.False(t, got.Completed)

	_, ok = s.ToggleComplete("missing")
	require.False(t, ok)
}

func TestDeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	s := newTestState(t)
	s, _ = mustAdd(t, s, model.AddDraft{Title: "A"})
	s, _ = mustAdd(t, s, model.AddDraft{Title: "B"})
	before := s.Tasks()

	next, ok := s.DeleteTask("nope")
	require.False(t, ok)
	require.Equal(t, before, next.Tasks())
}

func TestDeleteTaskRemovesAndEndsEdit(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A"})
	s, b := mustAdd(t, s, model.AddDraft{Title: "B"})
	s, _ = s.BeginEdit(a.ID)

	s, ok := s.DeleteTask(a.ID)
	require.True(t, ok)
	require.Equal(t, []string{"B"}, titles(s.Tasks()))
	require.Equal(t, Idle{}, s.EditMode())

	s, _ = s.BeginEdit(b.ID)
	s, _ = s.DeleteTask("nope")
	require.Equal(t, Editing{TaskID: b.ID}, s.EditMode())
}

func TestEditTaskRequiresMatchingEditMode(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A"})

	next, changed, err := s.EditTask(a.ID, model.EditDraft{Title: "changed"})
	require.NoError(t, err)
	require.False(t, changed)
	got, _ := next.Task(a.ID)
	require.Equal(t, "A", got.Title)
}

func TestEditTaskReplacesMutableFields(t *testing.T) {
	s := newTestState(t)
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A", Description: "old", Category: "Home"})
	s, ok := s.BeginEdit(a.ID)
	require.True(t, ok)

	s, changed, err := s.EditTask(a.ID, model.EditDraft{
		Title:     " New ",
		Completed: true,
		Priority:  model.PriorityHigh,
		DueDate:   &due,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, Idle{}, s.EditMode())

	got, _ := s.Task(a.ID)
	require.Equal(t, a.ID, got.ID)
	require.Equal(t, a.CreatedAt, got.CreatedAt)
	require.Equal(t, "New", got.Title)
	require.Equal(t, "", got.Description)
	require.Equal(t, "", got.Category)
	require.True(t, got.Completed)
	require.Equal(t, model.PriorityHigh, got.Priority)
	require.Equal(t, due, *got.DueDate)
}

func TestEditTaskBlankTitleKeepsEditing(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "A"})
	s, _ = s.BeginEdit(a.ID)

	next, changed, err := s.EditTask(a.ID, model.EditDraft{Title: " "})
	require.Error(t, err)
	require.False(t, changed)
	require.Equal(t, Editing{TaskID: a.ID}, next.EditMode())
	got, _ := next.Task(a.ID)
	require.Equal(t, "A", got.Title)
}

func TestEditExclusivity(t *testing.T) {
	s := newTestState(t)
	s, x := mustAdd(t, s, model.AddDraft{Title: "X"})
	s, y := mustAdd(t, s, model.AddDraft{Title: "Y"})
	before := s.Tasks()

	s, _ = s.BeginEdit(x.ID)
	require.Equal(t, Editing{TaskID: x.ID}, s.EditMode())
	s, _ = s.BeginEdit(y.ID)
	require.Equal(t, Editing{TaskID: y.ID}, s.EditMode())

	// the discarded target can no longer be saved
	s2, changed, err := s.EditTask(x.ID, model.EditDraft{Title: "lost"})
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, before, s2.Tasks())

	s = s.CancelEdit()
	require.Equal(t, Idle{}, s.EditMode())
	require.Equal(t, before, s.Tasks())
}

func TestBeginEditUnknownIDIsNoop(t *testing.T) {
	s := newTestState(t)
	next, ok := s.BeginEdit("ghost")
	require.False(t, ok)
	_, editing := EditingID(next.EditMode())
	require.False(t, editing)
}

func TestVisibleTasksFilterAndSearch(t *testing.T) {
	s := newTestState(t)
	s, a := mustAdd(t, s, model.AddDraft{Title: "Write report", Category: "Work"})
	s, _ = mustAdd(t, s, model.AddDraft{Title: "Groceries", Description: "after WORK"})
	s, c := mustAdd(t, s, model.AddDraft{Title: "Gym"})
	s, _ = mustAdd(t, s, model.AddDraft{Title: "Homework"})
	s, _ = s.ToggleComplete(a.ID)
	s, _ = s.ToggleComplete(c.ID)

	s = s.SetFilter(model.FilterCompleted)
	require.Equal(t, []string{"Gym", "Write report"}, titles(s.VisibleTasks()))

	s = s.SetSearchQuery("work")
	require.Equal(t, []string{"Write report"}, titles(s.VisibleTasks()))

	s = s.SetFilter(model.FilterPending)
	require.Equal(t, []string{"Homework", "Groceries"}, titles(s.VisibleTasks()))

	s = s.SetFilter(model.FilterAll).SetSearchQuery("   ")
	require.Len(t, s.VisibleTasks(), 4)
}

func TestVisibleTasksIsPure(t *testing.T) {
	s := newTestState(t)
	s, _ = mustAdd(t, s, model.AddDraft{Title: "A"})
	first := s.VisibleTasks()
	first[0].Title = "mutated"
	require.Equal(t, "A", s.VisibleTasks()[0].Title)
}

func TestBuyMilkScenario(t *testing.T) {
	s := newTestState(t)
	s, _ = mustAdd(t, s, model.AddDraft{Title: "Buy milk"})
	s = s.SetFilter(model.FilterPending).SetSearchQuery("milk")
	require.Equal(t, []string{"Buy milk"}, titles(s.VisibleTasks()))
	s = s.SetSearchQuery("bread")
	require.Empty(t, s.VisibleTasks())
}

func TestSetFilterIgnoresUnknown(t *testing.T) {
	s := newTestState(t).SetFilter(model.FilterPending)
	s = s.SetFilter(model.Filter("done"))
	require.Equal(t, model.FilterPending, s.Filter())
}

func TestSetTheme(t *testing.T) {
	s := newTestState(t).SetTheme(model.ThemeDark)
	require.Equal(t, model.ThemeDark, s.Theme())
	s = s.SetTheme(model.Theme("sepia"))
	require.Equal(t, model.ThemeDark, s.Theme())
}
