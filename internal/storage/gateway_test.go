package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingKV struct {
	err error
}

func (f failingKV) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingKV) Put(context.Context, string, string) error   { return f.err }
func (f failingKV) Delete(context.Context, string) error        { return f.err }
func (f failingKV) Keys(context.Context) ([]string, error)      { return nil, f.err }

func observedGateway(kv KV) (*Gateway, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGateway(kv, zap.New(core)), logs
}

func sampleTasks() []model.Task {
	created := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	due := created.Add(48 * time.Hour)
	return []model.Task{
		{ID: "b", Title: "Second", Priority: model.PriorityHigh, CreatedAt: created, DueDate: &due, Category: "Work"},
		{ID: "a", Title: "First", Description: "desc", Completed: true, Priority: model.PriorityLow, CreatedAt: created},
	}
}

func TestGatewayTasksRoundTrip(t *testing.T) {
	ctx := context.Background()
	g := NewGateway(setupSQLite(t), nil)

	require.Empty(t, g.LoadTasks(ctx))

	g.SaveTasks(ctx, sampleTasks())
	got := g.LoadTasks(ctx)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].ID)
	require.Equal(t, "a", got[1].ID)
	require.True(t, got[1].Completed)
	require.NotNil(t, got[0].DueDate)
	require.True(t, sampleTasks()[0].DueDate.Equal(*got[0].DueDate))

	g.SaveTasks(ctx, nil)
	require.Empty(t, g.LoadTasks(ctx))
}

func TestGatewayStoredLayout(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	g := NewGateway(kv, nil)

	g.SaveTasks(ctx, sampleTasks()[1:])
	raw, err := kv.Get(ctx, KeyTasks)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	require.Len(t, records, 1)
	rec := records[0]
	for _, field := range []string{"id", "title", "description", "completed", "priority", "createdAt"} {
		require.Contains(t, rec, field)
	}
	require.NotContains(t, rec, "dueDate")
	require.NotContains(t, rec, "category")
	require.Equal(t, "low", rec["priority"])

	g.SaveTheme(ctx, model.ThemeDark)
	raw, err = kv.Get(ctx, KeyTheme)
	require.NoError(t, err)
	require.Equal(t, `"dark"`, raw)
}

func TestGatewayUserLifecycle(t *testing.T) {
	ctx := context.Background()
	g := NewGateway(NewMemoryKV(), nil)

	_, ok := g.LoadUser(ctx)
	require.False(t, ok)

	u := model.UserSession{Username: "sam", LoginTime: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)}
	g.SaveUser(ctx, u)
	got, ok := g.LoadUser(ctx)
	require.True(t, ok)
	require.Equal(t, "sam", got.Username)
	require.True(t, u.LoginTime.Equal(got.LoginTime))

	g.ClearUser(ctx)
	_, ok = g.LoadUser(ctx)
	require.False(t, ok)
}

func TestGatewayTheme(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	g := NewGateway(kv, nil)

	_, ok := g.LoadTheme(ctx)
	require.False(t, ok)

	g.SaveTheme(ctx, model.ThemeDark)
	th, ok := g.LoadTheme(ctx)
	require.True(t, ok)
	require.Equal(t, model.ThemeDark, th)

	require.NoError(t, kv.Put(ctx, KeyTheme, "light"))
	th, ok = g.LoadTheme(ctx)
	require.True(t, ok)
	require.Equal(t, model.ThemeLight, th)

	require.NoError(t, kv.Put(ctx, KeyTheme, `"sepia"`))
	_, ok = g.LoadTheme(ctx)
	require.False(t, ok)
}

func TestGatewayMalformedDataFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	g, logs := observedGateway(kv)

	require.NoError(t, kv.Put(ctx, KeyTasks, "{not json"))
	require.NoError(t, kv.Put(ctx, KeyUser, "[]"))
	require.Empty(t, g.LoadTasks(ctx))
	_, ok := g.LoadUser(ctx)
	require.False(t, ok)
	require.Equal(t, 1, logs.FilterMessage("decode stored tasks").Len())
	require.Equal(t, 1, logs.FilterMessage("decode stored user").Len())
}

func TestGatewaySkipsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	g, logs := observedGateway(kv)

	raw := `[
		{"id":"a","title":"ok","completed":false,"priority":"medium","createdAt":"2026-02-09T12:00:00.000Z"},
		{"id":"b","title":"","completed":false,"priority":"medium","createdAt":"2026-02-09T12:00:00.000Z"},
		{"id":"a","title":"dup","completed":false,"priority":"medium","createdAt":"2026-02-09T12:00:00.000Z"}
	]`
	require.NoError(t, kv.Put(ctx, KeyTasks, raw))

	got := g.LoadTasks(ctx)
	require.Len(t, got, 1)
	require.Equal(t, "ok", got[0].Title)
	require.Equal(t, 1, logs.FilterMessage("skip invalid stored task").Len())
	require.Equal(t, 1, logs.FilterMessage("skip duplicate stored task").Len())
}

func TestGatewaySwallowsBackendFailures(t *testing.T) {
	ctx := context.Background()
	g, logs := observedGateway(failingKV{err: errors.New("disk full")})

	require.NotPanics(t, func() {
		g.SaveTasks(ctx, sampleTasks())
		g.SaveUser(ctx, model.UserSession{Username: "x"})
		g.SaveTheme(ctx, model.ThemeDark)
		g.ClearUser(ctx)
	})
	require.Empty(t, g.LoadTasks(ctx))
	_, ok := g.LoadUser(ctx)
	require.False(t, ok)
	_, ok = g.LoadTheme(ctx)
	require.False(t, ok)

	require.Equal(t, 3, logs.FilterMessage("write key").Len())
	require.Equal(t, 1, logs.FilterMessage("delete key").Len())
	require.Equal(t, 3, logs.FilterMessage("read key").Len())
}

func TestGatewayReset(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	g := NewGateway(kv, nil)
	g.SaveTasks(ctx, sampleTasks())
	g.SaveUser(ctx, model.UserSession{Username: "x"})
	g.SaveTheme(ctx, model.ThemeDark)
	require.NoError(t, kv.Put(ctx, "unrelated", "1"))

	g.Reset(ctx)
	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"unrelated"}, keys)
}
