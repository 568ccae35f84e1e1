package store

import (
	"context"
	"fmt"
	"slices"

	"day-planner/internal/model"
	"day-planner/internal/planning"
)

// Add inserts tasks at the end of the collection and creates them remotely.
// If the remote create fails, the inserted tasks are removed again.
func (s *Store) Add(ctx context.Context, tasks ...model.Task) ([]model.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] || s.indexOf(t.ID) >= 0 {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
	}
	added := model.CloneTasks(tasks)
	s.tasks = append(s.tasks, model.CloneTasks(added)...)
	s.mu.Unlock()

	s.dispatchCreate(ctx, added)
	return added, nil
}

// Update applies patch to the task with the given id.
func (s *Store) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	return s.mutate(ctx, "update", id, func(t model.Task) model.Task {
		return patch.Apply(t)
	})
}

// MoveToDate reschedules a task onto another date. Its start time is kept.
func (s *Store) MoveToDate(ctx context.Context, id, date string) (model.Task, error) {
	return s.mutate(ctx, "move", id, func(t model.Task) model.Task {
		t.ScheduledDate = date
		return t
	})
}

// ToggleCompletion flips the completed flag and adjusts progress for types that earn it.
func (s *Store) ToggleCompletion(ctx context.Context, id string) (model.Task, model.Progress, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Task{}, model.Progress{}, ErrNotFound
	}

	t := &s.tasks[i]
	t.Completed = !t.Completed
	if t.Type.EarnsProgress() {
		if t.Completed {
			s.progress.Streak++
			s.progress.XP += XPPerCompletion
		} else {
			s.progress.Streak = max(0, s.progress.Streak-1)
		}
	}
	updated := t.Clone()
	progress := s.progress
	s.mu.Unlock()

	s.dispatchUpdate(ctx, "toggle", updated)
	return updated, progress, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	removed := s.tasks[i].Clone()
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.mu.Unlock()

	s.dispatchDelete(ctx, removed)
	return nil
}

// Reorder rearranges the given tasks of date into the order of ids. The tasks
// keep occupying the same positions in the collection. When any of them has a
// start time, the new order is re-timed from the start time of the first
// scheduled task in the old order.
func (s *Store) Reorder(ctx context.Context, date string, ids []string) ([]model.Task, error) {
	s.mu.Lock()

	positions := make([]int, 0, len(ids))
	byID := make(map[string]int, len(ids))
	for _, id := range ids {
		i := s.indexOf(id)
		if i < 0 || s.tasks[i].ScheduledDate != date {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrOrderMismatch, id)
		}
		if _, dup := byID[id]; dup {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrOrderMismatch, id)
		}
		byID[id] = i
		positions = append(positions, i)
	}
	slices.Sort(positions)

	var anchor *model.ClockTime
	for _, p := range positions {
		if st := s.tasks[p].StartTime; st != nil {
			anchor = st.Ptr()
			break
		}
	}

	reordered := make([]model.Task, len(ids))
	for k, id := range ids {
		reordered[k] = s.tasks[byID[id]].Clone()
	}
	if anchor != nil {
		reordered = planning.AssignTimes(reordered, *anchor)
	}
	for k, p := range positions {
		s.tasks[p] = reordered[k].Clone()
	}
	s.mu.Unlock()

	if anchor != nil {
		for _, t := range reordered {
			s.dispatchUpdate(ctx, "reorder", t)
		}
	}
	return model.CloneTasks(reordered), nil
}

// Replace overwrites existing tasks by id, keeping their collection position
// and remote id. Either every id is known and all are replaced, or nothing changes.
func (s *Store) Replace(ctx context.Context, tasks ...model.Task) ([]model.Task, error) {
	return s.replace(ctx, false, tasks)
}

// ReplaceInOrder is Replace, but the tasks are laid out in argument order over
// the collection positions they held, so a day reads back in the order given.
func (s *Store) ReplaceInOrder(ctx context.Context, tasks ...model.Task) ([]model.Task, error) {
	return s.replace(ctx, true, tasks)
}

func (s *Store) replace(ctx context.Context, inOrder bool, tasks []model.Task) ([]model.Task, error) {
	s.mu.Lock()
	idx := make([]int, len(tasks))
	seen := make(map[string]bool, len(tasks))
	for k, t := range tasks {
		idx[k] = s.indexOf(t.ID)
		if idx[k] < 0 {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrNotFound, t.ID)
		}
		if seen[t.ID] {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
	}

	remoteIDs := make([]string, len(tasks))
	for k := range tasks {
		remoteIDs[k] = s.tasks[idx[k]].RemoteID
	}
	if inOrder {
		slices.Sort(idx)
	}

	replaced := make([]model.Task, len(tasks))
	for k, t := range tasks {
		rec := t.Clone()
		rec.RemoteID = remoteIDs[k]
		s.tasks[idx[k]] = rec
		replaced[k] = rec.Clone()
	}
	s.mu.Unlock()

	for _, t := range replaced {
		s.dispatchUpdate(ctx, "replace", t)
	}
	return replaced, nil
}

// ApplyRemote stores a task changed on the remote side. Nothing is sent back.
func (s *Store) ApplyRemote(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(t.ID)
	if i < 0 {
		s.tasks = append(s.tasks, t.Clone())
		return
	}
	s.tasks[i] = t.Clone()
}

// ForgetRemote drops the task whose remote record was deleted. It reports whether one was found.
func (s *Store) ForgetRemote(remoteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.RemoteID == remoteID })
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

func (s *Store) mutate(ctx context.Context, op, id string, fn func(model.Task) model.Task) (model.Task, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Task{}, ErrNotFound
	}
	updated := fn(s.tasks[i].Clone())
	updated.ID = id
	s.tasks[i] = updated.Clone()
	s.mu.Unlock()

	s.dispatchUpdate(ctx, op, updated)
	return updated, nil
}
