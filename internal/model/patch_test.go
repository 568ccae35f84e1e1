package model_test

import (
	"testing"

	"day-planner/internal/model"
)

func TestTaskPatchApply(t *testing.T) {
	base := model.Task{
		ID:        "t1",
		Title:     "Write",
		Duration:  30,
		Priority:  model.PriorityCould,
		StartTime: model.Clock(9, 0).Ptr(),
	}

	t.Run("empty patch", func(t *testing.T) {
		p := model.TaskPatch{}
		if !p.IsEmpty() {
			t.Fatalf("expected empty patch")
		}
		got := p.Apply(base)
		if got.Title != base.Title || *got.StartTime != *base.StartTime {
			t.Errorf("empty patch changed task: %+v", got)
		}
	})

	t.Run("fields are copied", func(t *testing.T) {
		title := "Write more"
		dur := 45
		must := model.PriorityMust
		start := model.Clock(14, 0)
		got := model.TaskPatch{Title: &title, Duration: &dur, Priority: &must, StartTime: &start}.Apply(base)

		if got.Title != title || got.Duration != 45 || got.Priority != model.PriorityMust {
			t.Errorf("unexpected task: %+v", got)
		}
		start = model.Clock(15, 0)
		if *got.StartTime != model.Clock(14, 0) {
			t.Errorf("patched start time aliases the patch")
		}
		if *base.StartTime != model.Clock(9, 0) {
			t.Errorf("original task mutated")
		}
	})

	t.Run("clear start time wins", func(t *testing.T) {
		start := model.Clock(14, 0)
		got := model.TaskPatch{StartTime: &start, ClearStartTime: true}.Apply(base)
		if got.StartTime != nil {
			t.Errorf("expected start time cleared, got %v", got.StartTime)
		}
	})
}
