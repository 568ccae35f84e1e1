package sync

import (
	gosync "sync"
	"time"

	"day-planner/internal/task/repository"
	pkgLog "day-planner/pkg/log"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 2 * time.Second
	defaultTimeout    = 2 * time.Minute
)

// Options tunes the background refetch of changed memos.
type Options struct {
	MaxRetries int
	Backoff    time.Duration
	Timeout    time.Duration
}

type WebhookHandler struct {
	reader repository.Reader
	local  Reconciler
	l      pkgLog.Logger
	opt    Options
	wg     gosync.WaitGroup
}

func NewWebhookHandler(reader repository.Reader, local Reconciler, l pkgLog.Logger, opt Options) *WebhookHandler {
	if opt.MaxRetries <= 0 {
		opt.MaxRetries = defaultMaxRetries
	}
	if opt.Backoff <= 0 {
		opt.Backoff = defaultBackoff
	}
	if opt.Timeout <= 0 {
		opt.Timeout = defaultTimeout
	}
	return &WebhookHandler{
		reader: reader,
		local:  local,
		l:      l,
		opt:    opt,
	}
}

// Wait blocks until every background sync has finished.
func (h *WebhookHandler) Wait() {
	h.wg.Wait()
}
