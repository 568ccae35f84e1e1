package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD or a relative reference")
	ErrInvalidClock         = errors.New("time must be HH:MM")
	ErrInvalidStrategy      = errors.New("unknown scheduling strategy")
	ErrReminderTimeRequired = errors.New("reminders need a reminder time")
	ErrInvalidPriority      = errors.New("priority must be must, should or could")
	ErrInvalidType          = errors.New("unknown task type")
	ErrInvalidDuration      = errors.New("duration must not be negative")
	ErrInvalidRecurrence    = errors.New("recurrence must be daily or weekly")
	ErrTitleRequired        = errors.New("title is required")
	ErrReorderMismatch      = errors.New("order contains unknown, duplicate or foreign-date task ids")
)
