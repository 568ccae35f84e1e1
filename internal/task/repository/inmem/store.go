package inmem

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"day-planner/internal/model"
	"day-planner/internal/task/repository"
)

// Op names a persistence call for failure injection.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Store is a process-local remote store. It is used when no remote backend
// is configured and as a controllable fake in tests.
type Store struct {
	mu      sync.Mutex
	seq     int
	records map[string]model.Task // keyed by RemoteID
	order   []string
	failing map[Op]int // remaining forced failures per op, -1 = always
	calls   map[Op]int
}

var _ repository.RemoteStore = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{
		records: make(map[string]model.Task),
		failing: make(map[Op]int),
		calls:   make(map[Op]int),
	}
}

// FailNext makes the next n calls of op fail. n < 0 fails every call until reset.
func (s *Store) FailNext(op Op, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[op] = n
}

// Calls returns how many times op was invoked.
func (s *Store) Calls(op Op) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Records returns a snapshot of the stored records in insertion order.
func (s *Store) Records() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, 0, len(s.order))
	for _, rid := range s.order {
		out = append(out, s.records[rid].Clone())
	}
	return out
}

func (s *Store) CreateMany(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(OpCreate); err != nil {
		return nil, err
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		s.seq++
		rec := t.Clone()
		rec.RemoteID = fmt.Sprintf("mem/%d", s.seq)
		s.records[rec.RemoteID] = rec
		s.order = append(s.order, rec.RemoteID)
		out = append(out, rec.Clone())
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, task model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(OpUpdate); err != nil {
		return err
	}
	rid, err := s.resolve(task)
	if err != nil {
		return err
	}
	rec := task.Clone()
	rec.RemoteID = rid
	s.records[rid] = rec
	return nil
}

func (s *Store) Delete(ctx context.Context, task model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(OpDelete); err != nil {
		return err
	}
	rid, err := s.resolve(task)
	if err != nil {
		return err
	}
	delete(s.records, rid)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == rid })
	return nil
}

func (s *Store) Get(ctx context.Context, remoteID string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[remoteID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *Store) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, 0, len(s.order))
	for _, rid := range s.order {
		rec := s.records[rid]
		if opt.Date != "" && rec.ScheduledDate != opt.Date {
			continue
		}
		out = append(out, rec.Clone())
	}

	if opt.Offset > 0 {
		out = out[min(opt.Offset, len(out)):]
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

// resolve finds the remote id of a task, falling back to a local-id scan.
func (s *Store) resolve(task model.Task) (string, error) {
	if task.RemoteID != "" {
		if _, ok := s.records[task.RemoteID]; ok {
			return task.RemoteID, nil
		}
		return "", repository.ErrNotFound
	}
	for rid, rec := range s.records {
		if rec.ID == task.ID {
			return rid, nil
		}
	}
	return "", repository.ErrUnknownRemote
}

func (s *Store) fail(op Op) error {
	s.calls[op]++
	n := s.failing[op]
	if n == 0 {
		return nil
	}
	if n > 0 {
		s.failing[op] = n - 1
	}
	return fmt.Errorf("inmem %s: %w", op, repository.ErrUnavailable)
}
