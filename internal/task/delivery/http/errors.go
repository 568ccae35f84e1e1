package http

import (
	"errors"
	"net/http"

	"day-planner/internal/task"
	pkgErrors "day-planner/pkg/errors"
)

var validationErrors = []error{
	task.ErrInvalidDate,
	task.ErrInvalidClock,
	task.ErrInvalidStrategy,
	task.ErrReminderTimeRequired,
	task.ErrInvalidPriority,
	task.ErrInvalidType,
	task.ErrInvalidDuration,
	task.ErrInvalidRecurrence,
	task.ErrTitleRequired,
	task.ErrReorderMismatch,
}

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
