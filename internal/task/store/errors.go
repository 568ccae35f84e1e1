package store

import "errors"

var (
	ErrNotFound      = errors.New("task not found")
	ErrDuplicateID   = errors.New("task id already exists")
	ErrOrderMismatch = errors.New("order contains unknown, duplicate or foreign-date task ids")
)
