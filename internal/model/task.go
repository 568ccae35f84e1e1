package model

import "slices"

// Task is the unit of schedulable work.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Duration       int        `json:"duration"` // minutes
	Priority       Priority   `json:"priority"`
	StartTime      *ClockTime `json:"start_time,omitempty"`
	ScheduledDate  string     `json:"scheduled_date"` // YYYY-MM-DD
	Completed      bool       `json:"completed"`
	ActualDuration *int       `json:"actual_duration,omitempty"`
	Recurrence     Recurrence `json:"recurrence,omitempty"`
	Type           TaskType   `json:"type"`
	Category       string     `json:"category,omitempty"`
	GroupID        string     `json:"group_id,omitempty"`
	ReminderTime   *ClockTime `json:"reminder_time,omitempty"`
	RemoteID       string     `json:"remote_id,omitempty"` // assigned by the remote store
}

// Clone returns a deep copy so that optional fields are never shared.
func (t Task) Clone() Task {
	c := t
	if t.StartTime != nil {
		st := *t.StartTime
		c.StartTime = &st
	}
	if t.ReminderTime != nil {
		rt := *t.ReminderTime
		c.ReminderTime = &rt
	}
	if t.ActualDuration != nil {
		ad := *t.ActualDuration
		c.ActualDuration = &ad
	}
	return c
}

// IsScheduled reports whether the task carries a start time.
func (t Task) IsScheduled() bool {
	return t.StartTime != nil
}

// CloneTasks deep-copies a slice of tasks.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// TaskIDs returns the ids of tasks in order.
func TaskIDs(tasks []Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// ContainsID reports whether a task with the given id is present.
func ContainsID(tasks []Task, id string) bool {
	return slices.ContainsFunc(tasks, func(t Task) bool { return t.ID == id })
}
