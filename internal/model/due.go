package model

import "time"

type DueState string

const (
	DueNone     DueState = "none"
	DueUpcoming DueState = "upcoming"
	DueSoon     DueState = "due_soon"
	DueOverdue  DueState = "overdue"
)

// DefaultDueSoonWindow matches the one-day highlight of the list view.
const DefaultDueSoonWindow = 24 * time.Hour

// DueStatus classifies a task's due date relative to now. Completed tasks and
// tasks without a due date are always DueNone.
func DueStatus(t Task, now time.Time, window time.Duration) DueState {
	if t.DueDate == nil || t.Completed {
		return DueNone
	}
	if window <= 0 {
		window = DefaultDueSoonWindow
	}
	due := *t.DueDate
	if due.Before(now) {
		return DueOverdue
	}
	if due.Sub(now) < window {
		return DueSoon
	}
	return DueUpcoming
}
