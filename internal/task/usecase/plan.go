package usecase

import (
	"context"
	"fmt"

	"day-planner/internal/model"
	"day-planner/internal/planning"
	"day-planner/internal/task"
	"day-planner/pkg/datemath"
	"day-planner/pkg/metrics"
)

// GetWorkloadStatus analyzes the active workload of a day.
func (uc *implUseCase) GetWorkloadStatus(ctx context.Context, input task.WorkloadInput) (model.DayAnalysis, error) {
	date, workload, available, err := uc.prepareDay(input.Date, input.EndTime)
	if err != nil {
		return model.DayAnalysis{}, err
	}

	analysis := planning.Analyze(workload, available)
	metrics.PlansTotal.WithLabelValues(string(analysis.Status)).Inc()
	uc.l.Debugf(ctx, "GetWorkloadStatus: date=%s tasks=%d available=%d status=%s",
		date, analysis.TaskCount, available, analysis.Status)
	return analysis, nil
}

// GetOptimizedPlan proposes a feasible plan without changing anything.
func (uc *implUseCase) GetOptimizedPlan(ctx context.Context, input task.WorkloadInput) (task.PlanOutput, error) {
	date, workload, available, err := uc.prepareDay(input.Date, input.EndTime)
	if err != nil {
		return task.PlanOutput{}, err
	}

	analysis, plan := planDay(workload, available)
	metrics.PlansTotal.WithLabelValues(string(analysis.Status)).Inc()
	return task.PlanOutput{Date: date, Analysis: analysis, Plan: plan}, nil
}

// ApplySchedule analyzes the day, optimizes it when infeasible, assigns start
// times to the accepted tasks and moves the deferred ones to the next day.
func (uc *implUseCase) ApplySchedule(ctx context.Context, input task.ScheduleInput) (task.ScheduleOutput, error) {
	strategy, err := uc.strategy(input.Strategy)
	if err != nil {
		return task.ScheduleOutput{}, err
	}
	date, workload, available, err := uc.prepareDay(input.Date, input.EndTime)
	if err != nil {
		return task.ScheduleOutput{}, err
	}
	anchor, err := uc.anchor(date, input.Anchor)
	if err != nil {
		return task.ScheduleOutput{}, err
	}
	nextDate, err := datemath.AddDays(date, 1)
	if err != nil {
		return task.ScheduleOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidDate, err)
	}

	analysis, plan := planDay(workload, available)
	metrics.PlansTotal.WithLabelValues(string(analysis.Status)).Inc()

	scheduled := planning.Schedule(plan.Accepted, strategy, anchor)
	deferred := make([]model.Task, len(plan.Deferred))
	for i, t := range plan.Deferred {
		t = t.Clone()
		t.ScheduledDate = nextDate
		t.StartTime = nil
		deferred[i] = t
	}

	// Scheduled tasks take the day's slots in start-time order.
	if _, err := uc.store.ReplaceInOrder(ctx, append(model.CloneTasks(scheduled), deferred...)...); err != nil {
		// a task was deleted between the read and the write
		return task.ScheduleOutput{}, mapStoreError(err)
	}
	metrics.DeferredTasksTotal.Add(float64(len(deferred)))

	uc.l.Infof(ctx, "ApplySchedule: date=%s strategy=%s scheduled=%d deferred=%d status=%s",
		date, strategy, len(scheduled), len(deferred), analysis.Status)

	uc.mirrorToCalendar(ctx, scheduled)

	return task.ScheduleOutput{
		Date:       date,
		Strategy:   string(strategy),
		Analysis:   analysis,
		Scheduled:  scheduled,
		Deferred:   deferred,
		DeferredTo: nextDate,
		Rationale:  plan.Rationale,
	}, nil
}

// ReportDelay shifts the day's incomplete, scheduled tasks. A zero delay changes nothing.
func (uc *implUseCase) ReportDelay(ctx context.Context, input task.DelayInput) (task.DayOutput, error) {
	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return task.DayOutput{}, err
	}

	day := uc.store.Day(date)
	shifted := planning.Shift(day, input.Minutes)

	var moved []model.Task
	for i := range shifted {
		if !sameStart(day[i].StartTime, shifted[i].StartTime) {
			moved = append(moved, shifted[i])
		}
	}
	if len(moved) > 0 {
		if _, err := uc.store.Replace(ctx, moved...); err != nil {
			return task.DayOutput{}, mapStoreError(err)
		}
	}

	uc.l.Infof(ctx, "ReportDelay: date=%s delay=%d shifted=%d", date, input.Minutes, len(moved))
	return task.DayOutput{Date: date, Tasks: uc.store.Day(date)}, nil
}

// prepareDay resolves the date and end time and selects the active workload.
func (uc *implUseCase) prepareDay(dateRef, endRef string) (string, []model.Task, int, error) {
	date, err := uc.resolveDate(dateRef)
	if err != nil {
		return "", nil, 0, err
	}
	end, err := uc.endTime(endRef)
	if err != nil {
		return "", nil, 0, err
	}
	available, err := uc.availableMinutes(date, end)
	if err != nil {
		return "", nil, 0, err
	}
	return date, planning.ActiveWorkload(uc.store.Day(date), date), available, nil
}

// planDay only runs the optimizer when the day is infeasible.
func planDay(workload []model.Task, available int) (model.DayAnalysis, model.OptimizedPlan) {
	analysis := planning.Analyze(workload, available)
	if analysis.Status != model.StatusImpossible {
		return analysis, model.OptimizedPlan{
			Accepted:  model.CloneTasks(workload),
			Deferred:  []model.Task{},
			Rationale: planning.RationaleAllFit,
		}
	}
	return analysis, planning.Optimize(workload, available)
}

func sameStart(a, b *model.ClockTime) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
