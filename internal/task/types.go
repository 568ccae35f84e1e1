package task

import "day-planner/internal/model"

// Dates accept YYYY-MM-DD or a relative reference such as "today" or "next monday".
// Clock times are HH:MM.

// WorkloadInput selects a day and the end of its working window.
type WorkloadInput struct {
	Date    string
	EndTime string // empty uses the configured default end
}

// PlanOutput is a proposed plan for a day.
type PlanOutput struct {
	Date     string
	Analysis model.DayAnalysis
	Plan     model.OptimizedPlan
}

// ScheduleInput is the input for committing a day's schedule.
type ScheduleInput struct {
	Date     string
	Strategy string // empty uses the configured default strategy
	EndTime  string
	Anchor   string // first start time; empty derives it from the clock
}

// ScheduleOutput is the result of an applied schedule.
type ScheduleOutput struct {
	Date       string
	Strategy   string
	Analysis   model.DayAnalysis
	Scheduled  []model.Task
	Deferred   []model.Task
	DeferredTo string
	Rationale  string
}

// DelayInput shifts a day by Minutes. Negative values pull tasks earlier.
type DelayInput struct {
	Date    string
	Minutes int
}

// DayOutput lists the tasks of one day in collection order.
type DayOutput struct {
	Date  string
	Tasks []model.Task
}

// CreateTaskInput is the input for creating a task.
type CreateTaskInput struct {
	Title        string
	Duration     int
	Priority     string
	Type         string // empty means "task"
	Date         string // empty means today
	StartTime    string
	ReminderTime string
	Recurrence   string
	Category     string
	GroupID      string
}

// CreateTaskOutput holds the created task first, followed by its recurrence siblings.
type CreateTaskOutput struct {
	Tasks []model.Task
}

// EditTaskInput is a partial edit. Nil fields are left unchanged; an empty
// StartTime clears the start time.
type EditTaskInput struct {
	ID             string
	Title          *string
	Duration       *int
	Priority       *string
	Type           *string
	StartTime      *string
	ReminderTime   *string
	ActualDuration *int
	Category       *string
	GroupID        *string
}

// CompleteTaskOutput is the toggled task and the resulting progress.
type CompleteTaskOutput struct {
	Task     model.Task
	Progress model.Progress
}

// MoveTaskInput moves a task to another date.
type MoveTaskInput struct {
	ID   string
	Date string
}

// ReorderInput gives the new order of some or all of a day's tasks.
type ReorderInput struct {
	Date string
	IDs  []string
}
