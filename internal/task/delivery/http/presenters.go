package http

import (
	"day-planner/internal/model"
	"day-planner/internal/task"
)

// --- Request DTOs ---

type workloadReq struct {
	Date string `json:"-"`
	End  string `form:"end"`
}

func (r workloadReq) toInput() task.WorkloadInput {
	return task.WorkloadInput{Date: r.Date, EndTime: r.End}
}

// ---

type scheduleReq struct {
	Date     string `json:"-"`
	Strategy string `json:"strategy" binding:"omitempty,oneof=eat-the-frog snowball batching"`
	End      string `json:"end"`
	Anchor   string `json:"anchor"`
}

func (r scheduleReq) toInput() task.ScheduleInput {
	return task.ScheduleInput{
		Date:     r.Date,
		Strategy: r.Strategy,
		EndTime:  r.End,
		Anchor:   r.Anchor,
	}
}

// ---

type delayReq struct {
	Date    string `json:"-"`
	Minutes *int   `json:"minutes" binding:"required"`
}

func (r delayReq) toInput() task.DelayInput {
	return task.DelayInput{Date: r.Date, Minutes: *r.Minutes}
}

// ---

type reorderReq struct {
	Date string   `json:"-"`
	IDs  []string `json:"ids" binding:"required,min=1"`
}

func (r reorderReq) toInput() task.ReorderInput {
	return task.ReorderInput{Date: r.Date, IDs: r.IDs}
}

// ---

type createReq struct {
	Title        string `json:"title"         binding:"required,max=255"`
	Duration     int    `json:"duration"      binding:"min=0"`
	Priority     string `json:"priority"      binding:"required"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	ReminderTime string `json:"reminder_time"`
	Recurrence   string `json:"recurrence"    binding:"omitempty,oneof=daily weekly"`
	Category     string `json:"category"`
	GroupID      string `json:"group_id"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:        r.Title,
		Duration:     r.Duration,
		Priority:     r.Priority,
		Type:         r.Type,
		Date:         r.Date,
		StartTime:    r.StartTime,
		ReminderTime: r.ReminderTime,
		Recurrence:   r.Recurrence,
		Category:     r.Category,
		GroupID:      r.GroupID,
	}
}

// ---

// editReq is a partial update; absent fields stay unchanged and
// "start_time": "" unschedules the task.
type editReq struct {
	ID             string  `json:"-"`
	Title          *string `json:"title"`
	Duration       *int    `json:"duration"`
	Priority       *string `json:"priority"`
	Type           *string `json:"type"`
	StartTime      *string `json:"start_time"`
	ReminderTime   *string `json:"reminder_time"`
	ActualDuration *int    `json:"actual_duration"`
	Category       *string `json:"category"`
	GroupID        *string `json:"group_id"`
}

func (r editReq) toInput() task.EditTaskInput {
	return task.EditTaskInput{
		ID:             r.ID,
		Title:          r.Title,
		Duration:       r.Duration,
		Priority:       r.Priority,
		Type:           r.Type,
		StartTime:      r.StartTime,
		ReminderTime:   r.ReminderTime,
		ActualDuration: r.ActualDuration,
		Category:       r.Category,
		GroupID:        r.GroupID,
	}
}

// ---

type moveReq struct {
	ID   string `json:"-"`
	Date string `json:"date" binding:"required"`
}

func (r moveReq) toInput() task.MoveTaskInput {
	return task.MoveTaskInput{ID: r.ID, Date: r.Date}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Duration       int     `json:"duration"`
	Priority       string  `json:"priority"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	StartTime      *string `json:"start_time"`
	Completed      bool    `json:"completed"`
	ActualDuration *int    `json:"actual_duration,omitempty"`
	ReminderTime   *string `json:"reminder_time,omitempty"`
	Recurrence     string  `json:"recurrence,omitempty"`
	Category       string  `json:"category,omitempty"`
	GroupID        string  `json:"group_id,omitempty"`
}

func clockString(c *model.ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:             t.ID,
		Title:          t.Title,
		Duration:       t.Duration,
		Priority:       string(t.Priority),
		Type:           string(t.Type),
		Date:           t.ScheduledDate,
		StartTime:      clockString(t.StartTime),
		Completed:      t.Completed,
		ActualDuration: t.ActualDuration,
		ReminderTime:   clockString(t.ReminderTime),
		Recurrence:     string(t.Recurrence),
		Category:       t.Category,
		GroupID:        t.GroupID,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type analysisResp struct {
	TotalMinutesNeeded int    `json:"total_minutes_needed"`
	AvailableMinutes   int    `json:"available_minutes"`
	OverflowMinutes    int    `json:"overflow_minutes"`
	TaskCount          int    `json:"task_count"`
	Status             string `json:"status"`
}

func newAnalysisResp(a model.DayAnalysis) analysisResp {
	return analysisResp{
		TotalMinutesNeeded: a.TotalMinutesNeeded,
		AvailableMinutes:   a.AvailableMinutes,
		OverflowMinutes:    a.OverflowMinutes,
		TaskCount:          a.TaskCount,
		Status:             string(a.Status),
	}
}

type dayResp struct {
	Date  string     `json:"date"`
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newDayResp(out task.DayOutput) dayResp {
	return dayResp{Date: out.Date, Tasks: newTaskResps(out.Tasks)}
}

type planResp struct {
	Date      string       `json:"date"`
	Analysis  analysisResp `json:"analysis"`
	Accepted  []taskResp   `json:"accepted"`
	Deferred  []taskResp   `json:"deferred"`
	Rationale string       `json:"rationale"`
}

func (h *handler) newPlanResp(out task.PlanOutput) planResp {
	return planResp{
		Date:      out.Date,
		Analysis:  newAnalysisResp(out.Analysis),
		Accepted:  newTaskResps(out.Plan.Accepted),
		Deferred:  newTaskResps(out.Plan.Deferred),
		Rationale: out.Plan.Rationale,
	}
}

type scheduleResp struct {
	Date       string       `json:"date"`
	Strategy   string       `json:"strategy"`
	Analysis   analysisResp `json:"analysis"`
	Scheduled  []taskResp   `json:"scheduled"`
	Deferred   []taskResp   `json:"deferred"`
	DeferredTo string       `json:"deferred_to"`
	Rationale  string       `json:"rationale"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Date:       out.Date,
		Strategy:   out.Strategy,
		Analysis:   newAnalysisResp(out.Analysis),
		Scheduled:  newTaskResps(out.Scheduled),
		Deferred:   newTaskResps(out.Deferred),
		DeferredTo: out.DeferredTo,
		Rationale:  out.Rationale,
	}
}

type createResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Tasks: newTaskResps(out.Tasks)}
}

type progressResp struct {
	Streak int `json:"streak"`
	XP     int `json:"xp"`
}

type completeResp struct {
	Task     taskResp     `json:"task"`
	Progress progressResp `json:"progress"`
}

func (h *handler) newCompleteResp(out task.CompleteTaskOutput) completeResp {
	return completeResp{
		Task:     newTaskResp(out.Task),
		Progress: progressResp{Streak: out.Progress.Streak, XP: out.Progress.XP},
	}
}
