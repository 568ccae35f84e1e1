package repository

import (
	"context"

	"day-planner/internal/model"
)

// Persistence is the remote task store the canonical repository reconciles with.
// Calls are fire-and-forget from the caller's point of view.
type Persistence interface {
	// CreateMany stores new tasks and returns them with RemoteID populated.
	CreateMany(ctx context.Context, tasks []model.Task) ([]model.Task, error)
	// Update overwrites the remote record of a task with its current fields.
	Update(ctx context.Context, task model.Task) error
	// Delete removes the remote record of a task.
	Delete(ctx context.Context, task model.Task) error
}

// Reader reads tasks back from the remote store.
type Reader interface {
	Get(ctx context.Context, remoteID string) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
}

// RemoteStore is a Persistence that can also be read from.
type RemoteStore interface {
	Persistence
	Reader
}
