package planning

import (
	"fmt"

	"day-planner/internal/model"
	"day-planner/pkg/datemath"
)

// Sibling offsets in days from the original date.
var (
	dailyOffsets  = []int{1, 2, 3, 4, 5, 6}
	weeklyOffsets = []int{7, 14, 21}
)

// Expand materializes a recurring task. The result starts with the original and
// is followed by independent copies carrying fresh ids and future dates.
// Expansion runs once at creation; the copied recurrence field is never re-read.
func Expand(t model.Task, newID func() string) ([]model.Task, error) {
	var offsets []int
	switch t.Recurrence {
	case model.RecurrenceDaily:
		offsets = dailyOffsets
	case model.RecurrenceWeekly:
		offsets = weeklyOffsets
	default:
		return []model.Task{t.Clone()}, nil
	}

	out := make([]model.Task, 0, len(offsets)+1)
	out = append(out, t.Clone())
	for _, days := range offsets {
		date, err := datemath.AddDays(t.ScheduledDate, days)
		if err != nil {
			return nil, fmt.Errorf("planning.Expand: %w", err)
		}
		sibling := t.Clone()
		sibling.ID = newID()
		sibling.ScheduledDate = date
		sibling.RemoteID = ""
		out = append(out, sibling)
	}
	return out, nil
}
