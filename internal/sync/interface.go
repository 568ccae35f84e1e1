package sync

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/model"
)

// Handler defines the interface for the webhook sync handler.
type Handler interface {
	// HandleMemosWebhook processes incoming webhook payloads from Memos.
	HandleMemosWebhook(c *gin.Context)
}

// Reconciler is the local side that remote changes are folded into.
type Reconciler interface {
	ApplyRemote(t model.Task)
	ForgetRemote(remoteID string) bool
}
