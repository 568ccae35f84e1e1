package planning_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"day-planner/internal/model"
	"day-planner/internal/planning"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name         string
		tasks        []model.Task
		available    int
		wantAccepted []string
		wantDeferred []string
		wantRational string
	}{
		{
			name: "could back-fills after a should is deferred",
			tasks: []model.Task{
				task("A", model.PriorityMust, 90),
				task("B", model.PriorityShould, 60),
				task("C", model.PriorityCould, 30),
			},
			available:    120,
			wantAccepted: []string{"A", "C"},
			wantDeferred: []string{"B"},
			wantRational: "1 lower-priority task(s) pushed to the next day to keep the plan feasible.",
		},
		{
			name: "everything fits",
			tasks: []model.Task{
				task("A", model.PriorityCould, 30),
				task("B", model.PriorityMust, 30),
			},
			available:    120,
			wantAccepted: []string{"A", "B"},
			wantDeferred: []string{},
			wantRational: "Everything fits in the time you have left.",
		},
		{
			name: "must overflow keeps only musts that fit and defers the rest",
			tasks: []model.Task{
				task("M1", model.PriorityMust, 60),
				task("S1", model.PriorityShould, 5),
				task("M2", model.PriorityMust, 90),
				task("M3", model.PriorityMust, 30),
				task("C1", model.PriorityCould, 5),
			},
			available:    100,
			wantAccepted: []string{"M1", "M3"},
			wantDeferred: []string{"S1", "M2", "C1"},
			wantRational: "Even your must-do tasks exceed the remaining time by 80 min. Only the most urgent items were kept.",
		},
		{
			name: "must overflow does not back-fill lower tiers into spare capacity",
			tasks: []model.Task{
				task("M1", model.PriorityMust, 80),
				task("M2", model.PriorityMust, 50),
				task("C1", model.PriorityCould, 10),
			},
			available:    100,
			wantAccepted: []string{"M1"},
			wantDeferred: []string{"M2", "C1"},
			wantRational: "Even your must-do tasks exceed the remaining time by 30 min. Only the most urgent items were kept.",
		},
		{
			name: "negative budget fits nothing",
			tasks: []model.Task{
				task("S1", model.PriorityShould, 10),
				task("Z", model.PriorityCould, 0),
			},
			available:    -30,
			wantAccepted: []string{},
			wantDeferred: []string{"S1", "Z"},
			wantRational: "2 lower-priority task(s) pushed to the next day to keep the plan feasible.",
		},
		{
			name: "zero-length must tasks overflow a negative budget",
			tasks: []model.Task{
				task("M0", model.PriorityMust, 0),
				task("C0", model.PriorityCould, 0),
			},
			available:    -5,
			wantAccepted: []string{},
			wantDeferred: []string{"M0", "C0"},
			wantRational: "Even your must-do tasks exceed the remaining time by 5 min. Only the most urgent items were kept.",
		},
		{
			name:         "empty input",
			available:    60,
			wantAccepted: []string{},
			wantDeferred: []string{},
			wantRational: "Everything fits in the time you have left.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planning.Optimize(tt.tasks, tt.available)
			require.Equal(t, tt.wantAccepted, model.TaskIDs(got.Accepted))
			require.Equal(t, tt.wantDeferred, model.TaskIDs(got.Deferred))
			require.Equal(t, tt.wantRational, got.Rationale)
		})
	}
}

func TestOptimizePartitionLaw(t *testing.T) {
	r := newRand(7)
	for i := 0; i < 1000; i++ {
		tasks := randomTasks(r, r.IntN(15))
		available := r.IntN(600) - 60

		plan := planning.Optimize(tasks, available)

		ids := append(model.TaskIDs(plan.Accepted), model.TaskIDs(plan.Deferred)...)
		slices.Sort(ids)
		want := model.TaskIDs(tasks)
		slices.Sort(want)
		require.Equal(t, want, ids, "accepted+deferred must cover the input exactly once")

		// input order is preserved inside each list
		requireSubsequence(t, model.TaskIDs(tasks), model.TaskIDs(plan.Accepted))
		requireSubsequence(t, model.TaskIDs(tasks), model.TaskIDs(plan.Deferred))
	}
}

func TestOptimizeTierPrecedence(t *testing.T) {
	r := newRand(11)
	for i := 0; i < 1000; i++ {
		tasks := randomTasks(r, r.IntN(15))
		available := r.IntN(600)

		plan := planning.Optimize(tasks, available)
		accepted := make(map[string]bool, len(plan.Accepted))
		used := 0
		for _, a := range plan.Accepted {
			accepted[a.ID] = true
			used += a.Duration
		}
		require.LessOrEqual(t, used, available, "accepted work must fit the budget")

		mustTotal := 0
		for _, tk := range tasks {
			if tk.Priority == model.PriorityMust {
				mustTotal += tk.Duration
			}
		}
		if mustTotal > available {
			for _, tk := range tasks {
				if tk.Priority != model.PriorityMust {
					require.False(t, accepted[tk.ID], "lower tiers are never accepted once musts overflow")
				}
			}
			continue
		}

		// replay the should tier: every deferred should must not have fit when evaluated
		running := mustTotal
		for _, tk := range tasks {
			if tk.Priority != model.PriorityShould {
				continue
			}
			if accepted[tk.ID] {
				running += tk.Duration
				continue
			}
			require.Greater(t, running+tk.Duration, available, "should %s was deferred although it fit", tk.ID)
		}
	}
}

func TestOptimizeDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{scheduled("A", model.PriorityMust, 30, "09:00")}
	plan := planning.Optimize(tasks, 60)
	*plan.Accepted[0].StartTime = model.MustClock("12:00")
	require.Equal(t, model.MustClock("09:00"), *tasks[0].StartTime)
}

func requireSubsequence(t *testing.T, full, sub []string) {
	t.Helper()
	j := 0
	for _, id := range full {
		if j < len(sub) && sub[j] == id {
			j++
		}
	}
	require.Equal(t, len(sub), j, "%v is not an ordered subsequence of %v", sub, full)
}
