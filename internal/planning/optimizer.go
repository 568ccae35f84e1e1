package planning

import (
	"fmt"

	"day-planner/internal/model"
)

// RationaleAllFit explains a plan that defers nothing.
const RationaleAllFit = "Everything fits in the time you have left."

const (
	rationaleMust  = "Even your must-do tasks exceed the remaining time by %d min. Only the most urgent items were kept."
	rationaleDefer = "%d lower-priority task(s) pushed to the next day to keep the plan feasible."
)

// Optimize partitions tasks into accepted and deferred with priority-tiered greedy packing.
// Tiers are walked must, should, could; order inside a tier is the input order.
// Accepted and deferred together contain every input task exactly once.
// A negative budget is compared as-is, so nothing fits into it.
func Optimize(tasks []model.Task, availableMinutes int) model.OptimizedPlan {
	must, should, could := splitTiers(tasks)

	mustDuration := 0
	for _, i := range must {
		mustDuration += tasks[i].Duration
	}

	accepted := make(map[int]bool, len(tasks))

	if mustDuration > availableMinutes {
		used := 0
		for _, i := range must {
			if used+tasks[i].Duration <= availableMinutes {
				accepted[i] = true
				used += tasks[i].Duration
			}
		}
		plan := partition(tasks, accepted)
		plan.Rationale = fmt.Sprintf(rationaleMust, mustDuration-availableMinutes)
		return plan
	}

	used := mustDuration
	for _, i := range must {
		accepted[i] = true
	}
	for _, tier := range [][]int{should, could} {
		for _, i := range tier {
			if used+tasks[i].Duration <= availableMinutes {
				accepted[i] = true
				used += tasks[i].Duration
			}
		}
	}

	plan := partition(tasks, accepted)
	if len(plan.Deferred) == 0 {
		plan.Rationale = RationaleAllFit
	} else {
		plan.Rationale = fmt.Sprintf(rationaleDefer, len(plan.Deferred))
	}
	return plan
}

// splitTiers returns input indexes per tier. Unknown priorities pack with could.
func splitTiers(tasks []model.Task) (must, should, could []int) {
	for i, t := range tasks {
		switch t.Priority {
		case model.PriorityMust:
			must = append(must, i)
		case model.PriorityShould:
			should = append(should, i)
		default:
			could = append(could, i)
		}
	}
	return must, should, could
}

func partition(tasks []model.Task, accepted map[int]bool) model.OptimizedPlan {
	plan := model.OptimizedPlan{
		Accepted: make([]model.Task, 0, len(accepted)),
		Deferred: make([]model.Task, 0, len(tasks)-len(accepted)),
	}
	for i, t := range tasks {
		if accepted[i] {
			plan.Accepted = append(plan.Accepted, t.Clone())
		} else {
			plan.Deferred = append(plan.Deferred, t.Clone())
		}
	}
	return plan
}
