package task

import (
	"context"

	"day-planner/internal/model"
)

// UseCase is the Day-Planning API.
type UseCase interface {
	// GetWorkloadStatus analyzes the active workload of a day against the time left until EndTime.
	GetWorkloadStatus(ctx context.Context, input WorkloadInput) (model.DayAnalysis, error)

	// GetOptimizedPlan proposes which tasks to keep and which to defer. Nothing is changed.
	GetOptimizedPlan(ctx context.Context, input WorkloadInput) (PlanOutput, error)

	// ApplySchedule commits the plan: accepted tasks get start times, deferred tasks move to the next day.
	ApplySchedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// ReportDelay shifts every incomplete, scheduled task of the day by the delay.
	ReportDelay(ctx context.Context, input DelayInput) (DayOutput, error)

	CreateTask(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	EditTask(ctx context.Context, input EditTaskInput) (model.Task, error)
	CompleteTask(ctx context.Context, id string) (CompleteTaskOutput, error)
	DeleteTask(ctx context.Context, id string) error
	MoveTask(ctx context.Context, input MoveTaskInput) (model.Task, error)
	ReorderDay(ctx context.Context, input ReorderInput) (DayOutput, error)

	ListDay(ctx context.Context, date string) (DayOutput, error)
	GetProgress(ctx context.Context) model.Progress
}
