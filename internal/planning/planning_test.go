package planning_test

import (
	"fmt"
	"math/rand/v2"

	"day-planner/internal/model"
)

func task(id string, p model.Priority, duration int) model.Task {
	return model.Task{
		ID:            id,
		Title:         id,
		Duration:      duration,
		Priority:      p,
		ScheduledDate: "2024-05-01",
		Type:          model.TypeTask,
	}
}

func scheduled(id string, p model.Priority, duration int, start string) model.Task {
	t := task(id, p, duration)
	t.StartTime = model.MustClock(start).Ptr()
	return t
}

var priorities = []model.Priority{model.PriorityMust, model.PriorityShould, model.PriorityCould}

// randomTasks builds a reproducible task set for property checks.
func randomTasks(r *rand.Rand, n int) []model.Task {
	tasks := make([]model.Task, n)
	for i := range tasks {
		tasks[i] = task(fmt.Sprintf("t%d", i), priorities[r.IntN(len(priorities))], r.IntN(150))
	}
	return tasks
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}
