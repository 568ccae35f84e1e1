package model

// TaskPatch is a partial edit of a task. Nil fields are left unchanged.
// Date changes go through a move, and completion through a toggle, so neither is patchable.
type TaskPatch struct {
	Title          *string
	Duration       *int
	Priority       *Priority
	Type           *TaskType
	StartTime      *ClockTime
	ClearStartTime bool
	ReminderTime   *ClockTime
	ActualDuration *int
	Category       *string
	GroupID        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Duration == nil && p.Priority == nil && p.Type == nil &&
		p.StartTime == nil && !p.ClearStartTime && p.ReminderTime == nil &&
		p.ActualDuration == nil && p.Category == nil && p.GroupID == nil
}

// Apply returns a copy of t with the patch applied.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.ClearStartTime {
		out.StartTime = nil
	} else if p.StartTime != nil {
		out.StartTime = p.StartTime.Ptr()
	}
	if p.ReminderTime != nil {
		out.ReminderTime = p.ReminderTime.Ptr()
	}
	if p.ActualDuration != nil {
		ad := *p.ActualDuration
		out.ActualDuration = &ad
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.GroupID != nil {
		out.GroupID = *p.GroupID
	}
	return out
}
