package model

// DayAnalysis is the derived feasibility of a day's workload.
type DayAnalysis struct {
	TotalMinutesNeeded int            `json:"total_minutes_needed"`
	AvailableMinutes   int            `json:"available_minutes"`
	OverflowMinutes    int            `json:"overflow_minutes"`
	TaskCount          int            `json:"task_count"`
	Status             WorkloadStatus `json:"status"`
}

// OptimizedPlan partitions a day's tasks into accepted and deferred, in input order.
type OptimizedPlan struct {
	Accepted  []Task `json:"accepted"`
	Deferred  []Task `json:"deferred"`
	Rationale string `json:"rationale"`
}

// Progress holds the completion streak and experience points.
type Progress struct {
	Streak int `json:"streak"`
	XP     int `json:"xp"`
}
