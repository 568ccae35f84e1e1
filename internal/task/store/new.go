// Package store holds the canonical ordered task collection. Mutations apply
// locally first and are then reconciled with the remote Persistence in the
// background.
package store

import (
	"sync"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/task/repository"
	pkgLog "day-planner/pkg/log"
)

const (
	// XPPerCompletion is awarded each time a non-break task is completed.
	XPPerCompletion = 10

	defaultTimeout       = 10 * time.Second
	defaultRetryAttempts = 3
	defaultRetryDelay    = 2 * time.Second
)

// Options tunes background persistence.
type Options struct {
	Timeout       time.Duration // per remote call
	RetryAttempts int           // retries after the first failure; 0 uses the default, < 0 disables
	RetryDelay    time.Duration // first backoff, doubled on each retry
}

// Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	tasks    []model.Task
	progress model.Progress

	persist repository.Persistence
	l       pkgLog.Logger
	opt     Options
	wg      sync.WaitGroup
}

// New creates an empty Store backed by persist.
func New(persist repository.Persistence, l pkgLog.Logger, opt Options) *Store {
	if opt.Timeout <= 0 {
		opt.Timeout = defaultTimeout
	}
	if opt.RetryAttempts == 0 {
		opt.RetryAttempts = defaultRetryAttempts
	}
	if opt.RetryAttempts < 0 {
		opt.RetryAttempts = 0
	}
	if opt.RetryDelay <= 0 {
		opt.RetryDelay = defaultRetryDelay
	}
	return &Store{persist: persist, l: l, opt: opt}
}

// Wait blocks until every in-flight persistence call, including retries, has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}
