// Package seed provides the example tasks shown on first launch.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasktracker/internal/model"
)

// Store is the subset of the persistence gateway the seeder needs.
type Store interface {
	LoadTasks(ctx context.Context) []model.Task
	SaveTasks(ctx context.Context, tasks []model.Task)
}

// SampleTasks returns the three bootstrap tasks: a pending high-priority task
// due in two days, a completed medium-priority task, and a pending
// low-priority task without a due date.
func SampleTasks(now time.Time, newID func() string) []model.Task {
	if newID == nil {
		newID = uuid.NewString
	}
	now = now.UTC()
	due := now.Add(48 * time.Hour)
	return []model.Task{
		{
			ID:          newID(),
			Title:       "Complete project proposal",
			Description: "Draft the proposal for the Q3 project and share it with the team for review.",
			Priority:    model.PriorityHigh,
			Category:    "Work",
			CreatedAt:   now,
			DueDate:     &due,
		},
		{
			ID:          newID(),
			Title:       "Review team feedback",
			Description: "Go through the comments from last sprint's retrospective.",
			Completed:   true,
			Priority:    model.PriorityMedium,
			Category:    "Work",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:        newID(),
			Title:     "Buy groceries",
			Priority:  model.PriorityLow,
			Category:  "Personal",
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}

// LoadOrSeed returns the stored tasks, or seeds and persists the sample set
// when storage is empty. The bool reports whether seeding happened.
func LoadOrSeed(ctx context.Context, store Store, now time.Time, newID func() string) ([]model.Task, bool) {
	tasks := store.LoadTasks(ctx)
	if len(tasks) > 0 {
		return tasks, false
	}
	tasks = SampleTasks(now, newID)
	store.SaveTasks(ctx, tasks)
	return tasks, true
}
