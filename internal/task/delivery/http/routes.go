package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	days := rg.Group("/days/:date")
	{
		days.GET("", h.ListDay)
		days.GET("/workload", h.GetWorkloadStatus)
		days.GET("/plan", h.GetOptimizedPlan)
		days.POST("/schedule", h.ApplySchedule)
		days.POST("/delay", h.ReportDelay)
		days.PUT("/order", h.ReorderDay)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.PATCH("/:id", h.EditTask)
		tasks.POST("/:id/complete", h.CompleteTask)
		tasks.POST("/:id/move", h.MoveTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	rg.GET("/progress", h.GetProgress)
}
