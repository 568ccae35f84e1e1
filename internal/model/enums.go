package model

// Priority is a packing tier. must > should > could.
type Priority string

const (
	PriorityMust   Priority = "must"
	PriorityShould Priority = "should"
	PriorityCould  Priority = "could"
)

// Rank orders priorities for sorting; higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityMust:
		return 3
	case PriorityShould:
		return 2
	case PriorityCould:
		return 1
	default:
		return 0
	}
}

func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// TaskType discriminates the kind of entry on a day.
type TaskType string

const (
	TypeTask     TaskType = "task"
	TypeBreak    TaskType = "break"
	TypeReminder TaskType = "reminder"
	TypeFocus    TaskType = "focus"
	TypeProject  TaskType = "project"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TypeTask, TypeBreak, TypeReminder, TypeFocus, TypeProject:
		return true
	}
	return false
}

// CountsTowardWorkload reports whether entries of this type consume the day's budget.
func (t TaskType) CountsTowardWorkload() bool {
	return t != TypeReminder
}

// EarnsProgress reports whether completing an entry of this type moves the streak.
func (t TaskType) EarnsProgress() bool {
	return t != TypeBreak
}

// Recurrence is consumed once at creation time.
type Recurrence string

const (
	RecurrenceNone   Recurrence = ""
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

// WorkloadStatus is the feasibility verdict for a day.
type WorkloadStatus string

const (
	StatusComfortable WorkloadStatus = "comfortable"
	StatusTight       WorkloadStatus = "tight"
	StatusImpossible  WorkloadStatus = "impossible"
)
