package usecase

import (
	"errors"
	"fmt"
	"strings"

	"day-planner/internal/model"
	"day-planner/internal/planning"
	"day-planner/internal/task"
	"day-planner/internal/task/store"
)

// resolveDate turns a date reference into YYYY-MM-DD. Empty means today.
func (uc *implUseCase) resolveDate(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return uc.dateMath.Today(uc.now()), nil
	}
	date, err := uc.dateMath.Resolve(ref, uc.now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", task.ErrInvalidDate, err)
	}
	return date, nil
}

func parseClock(s string) (model.ClockTime, error) {
	c, err := model.ParseClock(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", task.ErrInvalidClock, s)
	}
	return c, nil
}

func (uc *implUseCase) endTime(s string) (model.ClockTime, error) {
	if s == "" {
		return uc.opt.DefaultEnd, nil
	}
	return parseClock(s)
}

func (uc *implUseCase) strategy(s string) (planning.Strategy, error) {
	if s == "" {
		return uc.opt.DefaultStrategy, nil
	}
	st, err := planning.ParseStrategy(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", task.ErrInvalidStrategy, s)
	}
	return st, nil
}

// availableMinutes is the time left on date before end: counted from now for
// today, from the day start for a future date, and zero for a past date.
func (uc *implUseCase) availableMinutes(date string, end model.ClockTime) (int, error) {
	now := uc.now()
	cmp, err := uc.dateMath.Compare(date, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", task.ErrInvalidDate, err)
	}
	switch {
	case cmp == 0:
		return planning.MinutesUntil(now, end), nil
	case cmp > 0:
		return max(0, end.Minutes()-uc.opt.DayStart.Minutes()), nil
	default:
		return 0, nil
	}
}

// anchor is where an applied schedule starts: the caller's time, else the
// next quarter hour for today, else the configured day start.
func (uc *implUseCase) anchor(date, requested string) (model.ClockTime, error) {
	if requested != "" {
		return parseClock(requested)
	}
	if date == uc.dateMath.Today(uc.now()) {
		return planning.NextQuarterHour(uc.now()), nil
	}
	return uc.opt.DayStart, nil
}

func validatePriority(p string) (model.Priority, error) {
	pr := model.Priority(strings.ToLower(p))
	if !pr.IsValid() {
		return "", fmt.Errorf("%w: %q", task.ErrInvalidPriority, p)
	}
	return pr, nil
}

func validateType(s string) (model.TaskType, error) {
	if s == "" {
		return model.TypeTask, nil
	}
	tt := model.TaskType(strings.ToLower(s))
	if !tt.IsValid() {
		return "", fmt.Errorf("%w: %q", task.ErrInvalidType, s)
	}
	return tt, nil
}

// mapStoreError translates store errors into domain errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return task.ErrTaskNotFound
	case errors.Is(err, store.ErrOrderMismatch):
		return fmt.Errorf("%w: %v", task.ErrReorderMismatch, err)
	default:
		return err
	}
}
