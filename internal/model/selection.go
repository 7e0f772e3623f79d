package model

import (
	"fmt"
	"strings"
	"time"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted:
		return true
	default:
		return false
	}
}

// Matches reports whether a task with the given completion flag passes f.
func (f Filter) Matches(completed bool) bool {
	switch f {
	case FilterPending:
		return !completed
	case FilterCompleted:
		return completed
	default:
		return true
	}
}

func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterCompleted
	default:
		return FilterAll
	}
}

func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(raw string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
	return t, nil
}

// UserSession is an identity label, not a credential.
type UserSession struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
}

func NewUserSession(username string, now time.Time) (UserSession, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return UserSession{}, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	return UserSession{Username: name, LoginTime: now.UTC()}, nil
}

func (u UserSession) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	return nil
}
