package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"day-planner/internal/model"
	"day-planner/internal/planning"
	"day-planner/internal/task/store"
	"day-planner/pkg/datemath"
	"day-planner/pkg/gcalendar"
	pkgLog "day-planner/pkg/log"
)

// Calendar mirrors scheduled tasks as calendar events.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Options holds the planner settings.
type Options struct {
	DayStart        model.ClockTime
	DefaultEnd      model.ClockTime
	DefaultStrategy planning.Strategy
	CalendarID      string
	Now             func() time.Time // defaults to time.Now
	NewID           func() string    // defaults to uuid v4
}

type implUseCase struct {
	l        pkgLog.Logger
	store    *store.Store
	dateMath *datemath.Parser
	calendar Calendar
	opt      Options
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	st *store.Store,
	dateMath *datemath.Parser,
	calendar Calendar,
	opt Options,
) *implUseCase {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.NewID == nil {
		opt.NewID = uuid.NewString
	}
	if opt.DefaultStrategy == "" {
		opt.DefaultStrategy = planning.StrategyEatTheFrog
	}
	return &implUseCase{
		l:        l,
		store:    st,
		dateMath: dateMath,
		calendar: calendar,
		opt:      opt,
	}
}

// now returns the current time in the planner's timezone.
func (uc *implUseCase) now() time.Time {
	return uc.opt.Now().In(uc.dateMath.Location())
}
