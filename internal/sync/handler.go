package sync

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"day-planner/internal/task/repository"
	pkgErrors "day-planner/pkg/errors"
	pkgResponse "day-planner/pkg/response"
)

// HandleMemosWebhook processes Memos webhook events.
func (h *WebhookHandler) HandleMemosWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var payload MemosWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	memoID := payload.memoID()
	if memoID == "" {
		h.l.Warnf(ctx, "webhook: %s without memo id", payload.ActivityType)
		pkgResponse.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	h.l.Infof(ctx, "webhook: received %s for memo %s", payload.ActivityType, memoID)

	// Process in background to avoid blocking Memos
	h.wg.Add(1)
	go func(activity string) {
		defer h.wg.Done()

		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.opt.Timeout)
		defer cancel()

		switch activity {
		case ActivityMemoCreated, ActivityMemoUpdated:
			h.syncWithRetry(bgCtx, memoID)

		case ActivityMemoDeleted:
			if h.local.ForgetRemote(memoID) {
				h.l.Infof(bgCtx, "webhook: dropped task for deleted memo %s", memoID)
			}

		default:
			h.l.Debugf(bgCtx, "webhook: ignoring activity %s", activity)
		}
	}(payload.ActivityType)

	// Acknowledge immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// syncWithRetry refetches a memo and folds it into the local store with exponential backoff.
func (h *WebhookHandler) syncWithRetry(ctx context.Context, memoID string) {
	backoff := h.opt.Backoff

	for i := 0; i < h.opt.MaxRetries; i++ {
		task, err := h.reader.Get(ctx, memoID)
		switch {
		case err == nil:
			h.local.ApplyRemote(task)
			h.l.Infof(ctx, "webhook: synced task %s from memo %s", task.ID, memoID)
			return

		case errors.Is(err, repository.ErrNotTask):
			h.l.Debugf(ctx, "webhook: memo %s is not a planner task", memoID)
			return

		case errors.Is(err, repository.ErrNotFound):
			h.local.ForgetRemote(memoID)
			h.l.Infof(ctx, "webhook: memo %s no longer exists", memoID)
			return
		}

		h.l.Warnf(ctx, "webhook: fetch memo failed (retry %d/%d): %v", i+1, h.opt.MaxRetries, err)
		select {
		case <-ctx.Done():
			h.l.Errorf(ctx, "webhook: gave up on memo %s: %v", memoID, ctx.Err())
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	h.l.Errorf(ctx, "webhook: FAILED to sync memo %s after %d retries", memoID, h.opt.MaxRetries)
}
