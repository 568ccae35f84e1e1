package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/pkg/response"
)

// ListDay godoc
// @Summary     List a day's tasks
// @Description Returns every task scheduled on the date, completed ones included, in collection order.
// @Tags        Days
// @Produce     json
// @Param       date path string true "YYYY-MM-DD or today/tomorrow/next monday"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/{date} [GET]
func (h *handler) ListDay(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListDay(ctx, c.Param("date"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ListDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// GetWorkloadStatus godoc
// @Summary     Analyze a day's workload
// @Description Compares the active workload of the day with the minutes left before the end time.
// @Tags        Days
// @Produce     json
// @Param       date path  string true  "Date"
// @Param       end  query string false "End of the working window, HH:MM"
// @Success     200 {object} analysisResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/{date}/workload [GET]
func (h *handler) GetWorkloadStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorkloadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetWorkloadStatus(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GetWorkloadStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAnalysisResp(output))
}

// GetOptimizedPlan godoc
// @Summary     Propose a feasible plan
// @Description Splits the day's tasks into accepted and deferred by priority tier. Nothing is changed.
// @Tags        Days
// @Produce     json
// @Param       date path  string true  "Date"
// @Param       end  query string false "End of the working window, HH:MM"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/{date}/plan [GET]
func (h *handler) GetOptimizedPlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorkloadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetOptimizedPlan(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GetOptimizedPlan: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// ApplySchedule godoc
// @Summary     Apply a schedule
// @Description Assigns start times to the accepted tasks and moves deferred tasks to the next day.
// @Tags        Days
// @Accept      json
// @Produce     json
// @Param       date path string      true  "Date"
// @Param       body body scheduleReq false "Strategy, end time and anchor"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/days/{date}/schedule [POST]
func (h *handler) ApplySchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApplySchedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplySchedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// ReportDelay godoc
// @Summary     Report a delay
// @Description Shifts every incomplete, scheduled task of the day by the given minutes.
// @Tags        Days
// @Accept      json
// @Produce     json
// @Param       date path string   true "Date"
// @Param       body body delayReq true "Delay in minutes"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/{date}/delay [POST]
func (h *handler) ReportDelay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDelayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ReportDelay(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ReportDelay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// ReorderDay godoc
// @Summary     Reorder a day
// @Description Applies a manual order. A scheduled day is re-timed from its previous first start time.
// @Tags        Days
// @Accept      json
// @Produce     json
// @Param       date path string     true "Date"
// @Param       body body reorderReq true "Task ids in the new order"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/{date}/order [PUT]
func (h *handler) ReorderDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ReorderDay(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ReorderDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// CreateTask godoc
// @Summary     Create a task
// @Description Creates a task. Recurring tasks are materialized once: 7 daily or 4 weekly instances.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// EditTask godoc
// @Summary     Edit a task
// @Description Partial update. Omitted fields are unchanged; an empty start_time unschedules the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body editReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) EditTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EditTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EditTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output))
}

// CompleteTask godoc
// @Summary     Toggle completion
// @Description Flips the completed flag and returns the updated streak and XP.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CompleteTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// MoveTask godoc
// @Summary     Move a task
// @Description Moves a task to another date. Its start time is kept.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body moveReq true "Target date"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/move [POST]
func (h *handler) MoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.MoveTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.MoveTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteTask(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// GetProgress godoc
// @Summary     Current streak and XP
// @Tags        Progress
// @Produce     json
// @Success     200 {object} progressResp
// @Router      /api/v1/progress [GET]
func (h *handler) GetProgress(c *gin.Context) {
	p := h.uc.GetProgress(c.Request.Context())
	response.OK(c, progressResp{Streak: p.Streak, XP: p.XP})
}
