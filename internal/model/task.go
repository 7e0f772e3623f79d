package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidFilter   = errors.New("model: invalid filter")
	ErrInvalidTheme    = errors.New("model: invalid theme")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Label is the capitalised form shown in the list.
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Next cycles low -> medium -> high -> low.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return p, nil
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task createdAt is required")
	}
	return nil
}

// AddDraft carries the form fields for a new task. Title is required; every
// other field may be left zero.
type AddDraft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Category    string
}

// EditDraft replaces every mutable field of an existing task.
type EditDraft struct {
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	Category    string
}

// DraftFromTask prefills an edit form with the task's current values.
func DraftFromTask(t Task) EditDraft {
	return EditDraft{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		DueDate:     cloneTime(t.DueDate),
		Category:    t.Category,
	}
}

// ValidationError reports a rejected draft. The rejected operation never
// mutates state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Reason)
}

func NormalizeAdd(d AddDraft) (AddDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return AddDraft{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !d.Priority.IsValid() {
		return AddDraft{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", d.Priority)}
	}
	d.DueDate = cloneTime(d.DueDate)
	return d, nil
}

func NormalizeEdit(d EditDraft) (EditDraft, error) {
	add, err := NormalizeAdd(AddDraft{
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		DueDate:     d.DueDate,
		Category:    d.Category,
	})
	if err != nil {
		return EditDraft{}, err
	}
	return EditDraft{
		Title:       add.Title,
		Description: add.Description,
		Completed:   d.Completed,
		Priority:    add.Priority,
		DueDate:     add.DueDate,
		Category:    add.Category,
	}, nil
}

// ParseDueDate accepts a form date (YYYY-MM-DD) or a full RFC 3339 timestamp.
// A blank value means no due date.
func ParseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if tm, err := time.Parse(time.DateOnly, raw); err == nil {
		return &tm, nil
	}
	tm, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, &ValidationError{Field: "dueDate", Reason: fmt.Sprintf("expected YYYY-MM-DD, got %q", raw)}
	}
	tm = tm.UTC()
	return &tm, nil
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	t.DueDate = cloneTime(t.DueDate)
	return t
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
