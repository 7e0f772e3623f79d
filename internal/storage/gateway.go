package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sandeepkv93/tasktracker/internal/model"
	"go.uber.org/zap"
)

const defaultOpTimeout = 2 * time.Second

// Gateway persists the task collection, the logged-in user and the theme.
// It never returns errors: failures are logged and reads fall back to empty
// values, so in-memory state stays authoritative.
type Gateway struct {
	kv      KV
	logger  *zap.Logger
	timeout time.Duration
}

func NewGateway(kv KV, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{kv: kv, logger: logger, timeout: defaultOpTimeout}
}

// LoadTasks returns the stored collection in stored order. Records that fail
// validation are skipped.
func (g *Gateway) LoadTasks(ctx context.Context) []model.Task {
	raw, ok := g.get(ctx, KeyTasks)
	if !ok {
		return []model.Task{}
	}
	var stored []model.Task
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		g.logger.Warn("decode stored tasks", zap.String("key", KeyTasks), zap.Error(err))
		return []model.Task{}
	}
	out := make([]model.Task, 0, len(stored))
	seen := make(map[string]bool, len(stored))
	for _, t := range stored {
		if err := t.Validate(); err != nil {
			g.logger.Warn("skip invalid stored task", zap.String("id", t.ID), zap.Error(err))
			continue
		}
		if seen[t.ID] {
			g.logger.Warn("skip duplicate stored task", zap.String("id", t.ID))
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

func (g *Gateway) SaveTasks(ctx context.Context, tasks []model.Task) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	g.putJSON(ctx, KeyTasks, tasks)
}

func (g *Gateway) LoadUser(ctx context.Context) (model.UserSession, bool) {
	raw, ok := g.get(ctx, KeyUser)
	if !ok {
		return model.UserSession{}, false
	}
	var u model.UserSession
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		g.logger.Warn("decode stored user", zap.String("key", KeyUser), zap.Error(err))
		return model.UserSession{}, false
	}
	if err := u.Validate(); err != nil {
		g.logger.Warn("ignore invalid stored user", zap.Error(err))
		return model.UserSession{}, false
	}
	return u, true
}

func (g *Gateway) SaveUser(ctx context.Context, u model.UserSession) {
	g.putJSON(ctx, KeyUser, u)
}

func (g *Gateway) ClearUser(ctx context.Context) {
	g.delete(ctx, KeyUser)
}

func (g *Gateway) LoadTheme(ctx context.Context) (model.Theme, bool) {
	raw, ok := g.get(ctx, KeyTheme)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// tolerate a bare, unquoted literal
		s = raw
	}
	theme, err := model.ParseTheme(s)
	if err != nil {
		g.logger.Warn("ignore invalid stored theme", zap.String("value", raw))
		return "", false
	}
	return theme, true
}

func (g *Gateway) SaveTheme(ctx context.Context, t model.Theme) {
	if !t.IsValid() {
		g.logger.Warn("refuse to save invalid theme", zap.String("value", string(t)))
		return
	}
	g.putJSON(ctx, KeyTheme, string(t))
}

// Reset removes every key the gateway owns.
func (g *Gateway) Reset(ctx context.Context) {
	for _, key := range []string{KeyTasks, KeyUser, KeyTheme} {
		g.delete(ctx, key)
	}
	g.logger.Info("storage reset")
}

func (g *Gateway) get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	raw, err := g.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.logger.Warn("read key", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return raw, true
}

func (g *Gateway) putJSON(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		g.logger.Warn("encode value", zap.String("key", key), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	if err := g.kv.Put(ctx, key, string(payload)); err != nil {
		g.logger.Warn("write key", zap.String("key", key), zap.Error(err))
		return
	}
	g.logger.Debug("wrote key", zap.String("key", key), zap.Int("bytes", len(payload)))
}

func (g *Gateway) delete(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	if err := g.kv.Delete(ctx, key); err != nil {
		g.logger.Warn("delete key", zap.String("key", key), zap.Error(err))
	}
}
