package planning

import (
	"time"

	"day-planner/internal/model"
)

// TightBufferMinutes is the slack below which a feasible day is reported as tight.
const TightBufferMinutes = 60

// Analyze computes the feasibility of tasks against availableMinutes.
// An empty day is always comfortable, whatever time is left.
func Analyze(tasks []model.Task, availableMinutes int) model.DayAnalysis {
	if len(tasks) == 0 {
		return model.DayAnalysis{
			AvailableMinutes: availableMinutes,
			Status:           model.StatusComfortable,
		}
	}

	total := 0
	for _, t := range tasks {
		total += t.Duration
	}

	overflow := max(0, total-availableMinutes)

	status := model.StatusComfortable
	switch {
	case overflow > 0:
		status = model.StatusImpossible
	case availableMinutes-total < TightBufferMinutes:
		status = model.StatusTight
	}

	return model.DayAnalysis{
		TotalMinutesNeeded: total,
		AvailableMinutes:   availableMinutes,
		OverflowMinutes:    overflow,
		TaskCount:          len(tasks),
		Status:             status,
	}
}

// MinutesUntil returns the minutes from now until target on the same calendar day.
// A target that has already passed yields 0.
func MinutesUntil(now time.Time, target model.ClockTime) int {
	return max(0, target.Minutes()-model.ClockOf(now).Minutes())
}

// ActiveWorkload selects the incomplete, workload-bearing tasks of date, in order.
func ActiveWorkload(tasks []model.Task, date string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ScheduledDate != date || t.Completed || !t.Type.CountsTowardWorkload() {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}
