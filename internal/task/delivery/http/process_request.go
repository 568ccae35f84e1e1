package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errIDRequired = errors.New("id is required")

func (h *handler) processWorkloadReq(c *gin.Context) (workloadReq, error) {
	var req workloadReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Date = c.Param("date")
	return req, nil
}

func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	// an empty body schedules with the defaults
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.Date = c.Param("date")
	return req, nil
}

func (h *handler) processDelayReq(c *gin.Context) (delayReq, error) {
	var req delayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Date = c.Param("date")
	return req, nil
}

func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Date = c.Param("date")
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func (h *handler) processMoveReq(c *gin.Context) (moveReq, error) {
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}
