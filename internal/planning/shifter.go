package planning

import "day-planner/internal/model"

// Shift moves every incomplete, scheduled task by delayMinutes.
// Completed and unscheduled tasks pass through untouched. The offset is applied
// as-is; a start pulled before midnight keeps its negative minute offset.
func Shift(tasks []model.Task, delayMinutes int) []model.Task {
	out := model.CloneTasks(tasks)
	for i := range out {
		if out[i].Completed || out[i].StartTime == nil {
			continue
		}
		shifted := out[i].StartTime.Add(delayMinutes)
		out[i].StartTime = &shifted
	}
	return out
}
