package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Keys under which the gateway stores its records.
const (
	KeyTasks = "taskTracker_tasks"
	KeyUser  = "taskTracker_user"
	KeyTheme = "taskTracker_theme"
)

// KV is a string key-value store. Put overwrites, Delete of a missing key is
// not an error, Get of a missing key returns ErrNotFound.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
