package repository

import "errors"

var (
	ErrNotFound      = errors.New("remote task not found")
	ErrUnknownRemote = errors.New("task has no remote record yet")
	ErrUnavailable   = errors.New("remote store unavailable")
	ErrNotTask       = errors.New("remote record is not a planner task")
)
