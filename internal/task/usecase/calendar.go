package usecase

import (
	"context"
	"time"

	"day-planner/internal/model"
	"day-planner/pkg/gcalendar"
)

// mirrorToCalendar upserts one event per scheduled task, matched by the task
// id stored on the event. Failures are logged and never fail the schedule.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, tasks []model.Task) {
	if uc.calendar == nil {
		return
	}

	for _, t := range tasks {
		if t.StartTime == nil {
			continue
		}
		start, err := uc.dateMath.At(t.ScheduledDate, t.StartTime.Minutes())
		if err != nil {
			uc.l.Warnf(ctx, "ApplySchedule: cannot place task %s on the calendar: %v", t.ID, err)
			continue
		}
		req := gcalendar.CreateEventRequest{
			CalendarID:  uc.opt.CalendarID,
			TaskID:      t.ID,
			Summary:     t.Title,
			Description: string(t.Priority) + " priority, " + string(t.Type),
			StartTime:   start,
			EndTime:     start.Add(time.Duration(max(t.Duration, 1)) * time.Minute),
			Timezone:    uc.dateMath.Location().String(),
		}

		if err := uc.upsertEvent(ctx, t, req); err != nil {
			uc.l.Warnf(ctx, "ApplySchedule: calendar mirror failed for %q (non-fatal): %v", t.Title, err)
		}
	}
}

func (uc *implUseCase) upsertEvent(ctx context.Context, t model.Task, req gcalendar.CreateEventRequest) error {
	dayStart, err := uc.dateMath.At(t.ScheduledDate, 0)
	if err != nil {
		return err
	}
	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.opt.CalendarID,
		TaskID:     t.ID,
		TimeMin:    dayStart,
		TimeMax:    dayStart.Add(48 * time.Hour), // late starts can spill past midnight
		MaxResults: 1,
	})
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		_, err = uc.calendar.UpdateEvent(ctx, existing[0].ID, req)
		return err
	}
	_, err = uc.calendar.CreateEvent(ctx, req)
	return err
}
