package sync

import "strings"

const (
	ActivityMemoCreated = "memos.memo.created"
	ActivityMemoUpdated = "memos.memo.updated"
	ActivityMemoDeleted = "memos.memo.deleted"
)

// MemosWebhookPayload matches Memos API v1 webhook format.
type MemosWebhookPayload struct {
	ActivityType string `json:"activityType" binding:"required"`
	Memo         struct {
		Name string `json:"name"` // e.g., "memos/123"
		UID  string `json:"uid"`  // Short UID (Base58)
	} `json:"memo"`
}

// memoID returns the id the remote store knows the memo by.
func (p MemosWebhookPayload) memoID() string {
	if p.Memo.UID != "" {
		return p.Memo.UID
	}
	return strings.TrimPrefix(p.Memo.Name, "memos/")
}
