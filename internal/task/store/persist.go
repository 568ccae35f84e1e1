package store

import (
	"context"
	"slices"
	"time"

	"day-planner/internal/model"
	"day-planner/pkg/metrics"
)

func (s *Store) dispatchCreate(ctx context.Context, tasks []model.Task) {
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		callCtx, cancel := context.WithTimeout(bg, s.opt.Timeout)
		created, err := s.persist.CreateMany(callCtx, tasks)
		cancel()
		if err != nil {
			metrics.PersistenceFailuresTotal.WithLabelValues("create").Inc()
			s.l.Errorf(bg, "store.Add: remote create failed, rolling back %d task(s): %v", len(tasks), err)
			s.rollback(tasks)
			return
		}
		s.recordRemoteIDs(bg, created)
	}()
}

func (s *Store) rollback(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		if i := s.indexOf(t.ID); i >= 0 {
			s.tasks = slices.Delete(s.tasks, i, i+1)
		}
	}
}

// recordRemoteIDs copies the assigned remote ids onto local tasks. A task
// deleted locally while its create was in flight is deleted remotely too.
func (s *Store) recordRemoteIDs(ctx context.Context, created []model.Task) {
	var orphans []model.Task

	s.mu.Lock()
	for _, rec := range created {
		i := s.indexOf(rec.ID)
		if i < 0 {
			orphans = append(orphans, rec)
			continue
		}
		s.tasks[i].RemoteID = rec.RemoteID
	}
	s.mu.Unlock()

	for _, rec := range orphans {
		s.l.Infof(ctx, "store.Add: task %s was deleted before its create finished", rec.ID)
		s.dispatchDelete(ctx, rec)
	}
}

// dispatchUpdate sends the current record of a task. Retries re-read the
// record so a late retry never resurrects stale fields.
func (s *Store) dispatchUpdate(ctx context.Context, op string, t model.Task) {
	s.run(ctx, op, t.ID, func(callCtx context.Context, attempt int) (bool, error) {
		rec := t
		if attempt > 0 {
			cur, err := s.Get(t.ID)
			if err != nil {
				return false, nil // gone locally, nothing to reconcile
			}
			rec = cur
		}
		return true, s.persist.Update(callCtx, rec)
	})
}

func (s *Store) dispatchDelete(ctx context.Context, t model.Task) {
	s.run(ctx, "delete", t.ID, func(callCtx context.Context, attempt int) (bool, error) {
		return true, s.persist.Delete(callCtx, t)
	})
}

// run calls fn until it succeeds or the retries are exhausted, with
// exponential backoff between attempts. fn reports whether it made a call.
func (s *Store) run(ctx context.Context, op, id string, fn func(ctx context.Context, attempt int) (bool, error)) {
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		backoff := s.opt.RetryDelay
		for attempt := 0; attempt <= s.opt.RetryAttempts; attempt++ {
			if attempt > 0 {
				metrics.PersistenceRetriesTotal.WithLabelValues(op).Inc()
				time.Sleep(backoff)
				backoff *= 2
			}

			callCtx, cancel := context.WithTimeout(bg, s.opt.Timeout)
			called, err := fn(callCtx, attempt)
			cancel()
			if !called {
				s.l.Debugf(bg, "store.%s: task %s no longer exists, dropping retry", op, id)
				return
			}
			if err == nil {
				return
			}

			metrics.PersistenceFailuresTotal.WithLabelValues(op).Inc()
			s.l.Warnf(bg, "store.%s: remote call for task %s failed (attempt %d/%d): %v",
				op, id, attempt+1, s.opt.RetryAttempts+1, err)
		}
		s.l.Errorf(bg, "store.%s: giving up on task %s, local and remote state diverge", op, id)
	}()
}
