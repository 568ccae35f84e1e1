package memos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"day-planner/internal/model"
	"day-planner/internal/task/repository"
	pkgLog "day-planner/pkg/log"
)

const (
	defaultListLimit = 200
	indexSize        = 4096
)

type implRepository struct {
	client *Client
	index  *lru.Cache[string, string] // task id -> memo uid
	l      pkgLog.Logger
}

// New creates a Memos-backed remote store.
func New(client *Client, l pkgLog.Logger) (repository.RemoteStore, error) {
	index, err := lru.New[string, string](indexSize)
	if err != nil {
		return nil, fmt.Errorf("memos repository: failed to create index: %w", err)
	}
	return &implRepository{client: client, index: index, l: l}, nil
}

// CreateMany creates one memo per task. On a partial failure the memos created
// so far are removed again and the error is returned, so the call is all-or-nothing.
func (r *implRepository) CreateMany(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	created := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		content, err := buildContent(t)
		if err != nil {
			r.compensate(ctx, created)
			return nil, err
		}

		memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{Content: content, Visibility: "PRIVATE"})
		if err != nil {
			r.l.Errorf(ctx, "memos repository: create %s failed: %v", t.ID, err)
			r.compensate(ctx, created)
			return nil, err
		}

		rec := t.Clone()
		rec.RemoteID = memoUID(memo)
		r.index.Add(rec.ID, rec.RemoteID)
		created = append(created, rec)
	}
	return created, nil
}

func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	uid, err := r.resolve(ctx, t)
	if err != nil {
		return err
	}
	content, err := buildContent(t)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateMemo(ctx, uid, UpdateMemoRequest{Content: content, UpdateMask: "content"})
	if errors.Is(err, ErrMemoNotFound) {
		r.index.Remove(t.ID)
		return repository.ErrNotFound
	}
	return err
}

func (r *implRepository) Delete(ctx context.Context, t model.Task) error {
	uid, err := r.resolve(ctx, t)
	if err != nil {
		return err
	}
	err = r.client.DeleteMemo(ctx, uid)
	if errors.Is(err, ErrMemoNotFound) {
		err = nil // already gone
	}
	if err == nil {
		r.index.Remove(t.ID)
	}
	return err
}

func (r *implRepository) Get(ctx context.Context, remoteID string) (model.Task, error) {
	memo, err := r.client.GetMemo(ctx, remoteID)
	if errors.Is(err, ErrMemoNotFound) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return r.memoToTask(memo)
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	tag := PlannerTag
	if opt.Date != "" {
		tag = fmt.Sprintf("%s/%s", PlannerTag, opt.Date)
	}

	memos, err := r.client.ListMemos(ctx, tag, limit, opt.Offset)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(memos))
	for i := range memos {
		t, err := r.memoToTask(&memos[i])
		if err != nil {
			r.l.Warnf(ctx, "memos repository: skipping memo %s: %v", memos[i].Name, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// resolve finds the memo uid for a task: its RemoteID, then the index.
func (r *implRepository) resolve(ctx context.Context, t model.Task) (string, error) {
	if t.RemoteID != "" {
		return t.RemoteID, nil
	}
	if uid, ok := r.index.Get(t.ID); ok {
		return uid, nil
	}
	r.l.Debugf(ctx, "memos repository: no memo known for task %s", t.ID)
	return "", repository.ErrUnknownRemote
}

func (r *implRepository) compensate(ctx context.Context, created []model.Task) {
	for _, t := range created {
		if err := r.client.DeleteMemo(ctx, t.RemoteID); err != nil {
			r.l.Warnf(ctx, "memos repository: failed to clean up memo %s: %v", t.RemoteID, err)
		}
		r.index.Remove(t.ID)
	}
}

// memoToTask converts a Memos API Memo object to a task record.
func (r *implRepository) memoToTask(m *Memo) (model.Task, error) {
	t, err := parseContent(m.Content)
	if errors.Is(err, errNoRecord) {
		return model.Task{}, repository.ErrNotTask
	}
	if err != nil {
		return model.Task{}, err
	}
	t.RemoteID = memoUID(m)
	r.index.Add(t.ID, t.RemoteID)
	return t, nil
}

// memoUID returns the short uid; Name has the form "memos/{uid}" in the v1 API.
func memoUID(m *Memo) string {
	if m.UID != "" {
		return m.UID
	}
	if parts := strings.SplitN(m.Name, "/", 2); len(parts) == 2 {
		return parts[1]
	}
	return m.Name
}
