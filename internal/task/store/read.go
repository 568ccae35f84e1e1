package store

import (
	"slices"

	"day-planner/internal/model"
)

// Load replaces the collection wholesale without touching persistence.
// Used at startup with the remote listing.
func (s *Store) Load(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if s.indexOf(t.ID) >= 0 {
			continue
		}
		s.tasks = append(s.tasks, t.Clone())
	}
}

func (s *Store) Get(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	return s.tasks[i].Clone(), nil
}

// List returns every task in collection order.
func (s *Store) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneTasks(s.tasks)
}

// Day returns the tasks scheduled on date, completed ones included, in collection order.
func (s *Store) Day(date string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Task{}
	for _, t := range s.tasks {
		if t.ScheduledDate == date {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (s *Store) Progress() model.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}
