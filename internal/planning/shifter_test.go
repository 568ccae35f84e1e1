package planning_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"day-planner/internal/model"
	"day-planner/internal/planning"
)

func TestShift(t *testing.T) {
	done := scheduled("done", model.PriorityMust, 30, "08:00")
	done.Completed = true
	unscheduled := task("floating", model.PriorityCould, 20)

	tasks := []model.Task{
		scheduled("a", model.PriorityMust, 30, "09:00"),
		done,
		unscheduled,
		scheduled("b", model.PriorityShould, 90, "09:30"),
		scheduled("c", model.PriorityCould, 15, "11:10"),
	}

	got := planning.Shift(tasks, 25)

	require.Len(t, got, len(tasks))
	require.Equal(t, []string{"09:25", "08:00", "-", "09:55", "11:35"}, starts(got))
	require.Equal(t, done, got[1], "completed tasks pass through unchanged")
	require.Equal(t, unscheduled, got[2], "unscheduled tasks pass through unchanged")
	require.Equal(t, model.MustClock("09:00"), *tasks[0].StartTime, "input must not be mutated")
}

func TestShiftUniformity(t *testing.T) {
	r := newRand(9)
	for i := 0; i < 300; i++ {
		tasks := randomTasks(r, r.IntN(10))
		for j := range tasks {
			if r.IntN(3) > 0 {
				tasks[j].StartTime = model.ClockTime(r.IntN(20 * 60)).Ptr()
			}
			tasks[j].Completed = r.IntN(4) == 0
		}
		delay := r.IntN(240) - 120

		got := planning.Shift(tasks, delay)
		for j := range tasks {
			if tasks[j].Completed || tasks[j].StartTime == nil {
				require.Equal(t, tasks[j], got[j])
				continue
			}
			require.Equal(t, tasks[j].StartTime.Minutes()+delay, got[j].StartTime.Minutes())
		}
	}
}

func TestShiftNegativeDelayKeepsUniformOffset(t *testing.T) {
	tasks := []model.Task{
		scheduled("a", model.PriorityMust, 30, "00:10"),
		scheduled("b", model.PriorityMust, 30, "00:40"),
	}
	got := planning.Shift(tasks, -30)
	require.Equal(t, model.ClockTime(-20), *got[0].StartTime)
	require.Equal(t, model.Clock(0, 10), *got[1].StartTime)
	require.Equal(t, 30, got[1].StartTime.Minutes()-got[0].StartTime.Minutes())
}

func TestShiftZeroDelayIsNoop(t *testing.T) {
	tasks := []model.Task{scheduled("a", model.PriorityMust, 30, "09:00")}
	require.Equal(t, tasks, planning.Shift(tasks, 0))
}
