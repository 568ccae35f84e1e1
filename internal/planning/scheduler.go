package planning

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"day-planner/internal/model"
)

// Strategy names an ordering rule for the day.
type Strategy string

const (
	StrategyEatTheFrog Strategy = "eat-the-frog"
	StrategySnowball   Strategy = "snowball"
	StrategyBatching   Strategy = "batching"
)

const (
	// LongTaskMinutes is the duration above which a buffer follows the task.
	LongTaskMinutes = 60
	// BufferMinutes is the gap inserted after a long task.
	BufferMinutes = 10
)

var ErrUnknownStrategy = errors.New("unknown scheduling strategy")

// Strategies lists the supported strategies.
var Strategies = []Strategy{StrategyEatTheFrog, StrategySnowball, StrategyBatching}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !slices.Contains(Strategies, st) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return st, nil
}

// Schedule orders tasks by strategy and assigns sequential start times from anchor.
func Schedule(tasks []model.Task, strategy Strategy, anchor model.ClockTime) []model.Task {
	return AssignTimes(Order(tasks, strategy), anchor)
}

// Order returns a stably sorted copy of tasks. Unknown strategies keep input order.
func Order(tasks []model.Task, strategy Strategy) []model.Task {
	out := model.CloneTasks(tasks)

	byPriorityDesc := func(a, b model.Task) int { return cmp.Compare(b.Priority.Rank(), a.Priority.Rank()) }
	byDurationAsc := func(a, b model.Task) int { return cmp.Compare(a.Duration, b.Duration) }
	byDurationDesc := func(a, b model.Task) int { return cmp.Compare(b.Duration, a.Duration) }

	var primary, secondary func(a, b model.Task) int
	switch strategy {
	case StrategyEatTheFrog:
		primary, secondary = byPriorityDesc, byDurationDesc
	case StrategySnowball:
		primary, secondary = byDurationAsc, byPriorityDesc
	case StrategyBatching:
		primary, secondary = byPriorityDesc, byDurationAsc
	default:
		return out
	}

	slices.SortStableFunc(out, func(a, b model.Task) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return secondary(a, b)
	})
	return out
}

// AssignTimes gives each task a start time: the first at anchor, each next one
// after the previous finishes plus a buffer when the previous ran long.
func AssignTimes(tasks []model.Task, anchor model.ClockTime) []model.Task {
	out := model.CloneTasks(tasks)
	next := anchor
	for i := range out {
		out[i].StartTime = next.Ptr()
		next = next.Add(out[i].Duration + bufferAfter(out[i]))
	}
	return out
}

// NextQuarterHour rounds now up to the next quarter-hour boundary.
// A time already on a boundary (to the minute) is kept.
func NextQuarterHour(now time.Time) model.ClockTime {
	m := model.ClockOf(now).Minutes()
	if rem := m % 15; rem != 0 {
		m += 15 - rem
	}
	return model.ClockTime(m)
}

func bufferAfter(t model.Task) int {
	if t.Duration > LongTaskMinutes {
		return BufferMinutes
	}
	return 0
}
