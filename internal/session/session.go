// Package session implements the login gate. A username is an identity
// label only; nothing is authenticated.
package session

import (
	"context"
	"time"

	"github.com/sandeepkv93/tasktracker/internal/model"
	"go.uber.org/zap"
)

// DefaultLoginDelay is the pause before a login completes, long enough for
// the UI to show progress.
const DefaultLoginDelay = 800 * time.Millisecond

type UserStore interface {
	LoadUser(ctx context.Context) (model.UserSession, bool)
	SaveUser(ctx context.Context, u model.UserSession)
	ClearUser(ctx context.Context)
}

type Manager struct {
	store  UserStore
	delay  time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewManager(store UserStore, delay time.Duration, logger *zap.Logger) *Manager {
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, delay: delay, now: time.Now, logger: logger}
}

func (m *Manager) Delay() time.Duration { return m.delay }

// Restore returns the user persisted by an earlier session.
func (m *Manager) Restore(ctx context.Context) (model.UserSession, bool) {
	return m.store.LoadUser(ctx)
}

// Validate checks a username without waiting or persisting anything.
func (m *Manager) Validate(username string) error {
	_, err := model.NewUserSession(username, m.now())
	return err
}

// Login waits out the login delay, then records and persists the session.
// A blank username fails immediately with a *model.ValidationError. Once
// the wait has begun the login always completes.
func (m *Manager) Login(ctx context.Context, username string) (model.UserSession, error) {
	if err := m.Validate(username); err != nil {
		return model.UserSession{}, err
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	u, err := model.NewUserSession(username, m.now())
	if err != nil {
		return model.UserSession{}, err
	}
	m.store.SaveUser(ctx, u)
	m.logger.Info("user logged in", zap.String("username", u.Username))
	return u, nil
}

func (m *Manager) Logout(ctx context.Context, u model.UserSession) {
	m.store.ClearUser(ctx)
	m.logger.Info("user logged out", zap.String("username", u.Username))
}
