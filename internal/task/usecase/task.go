package usecase

import (
	"context"
	"fmt"
	"strings"

	"day-planner/internal/model"
	"day-planner/internal/planning"
	"day-planner/internal/task"
)

// CreateTask validates the input, materializes recurrence siblings and stores them all.
func (uc *implUseCase) CreateTask(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	t, err := uc.buildTask(input)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	tasks, err := planning.Expand(t, uc.opt.NewID)
	if err != nil {
		return task.CreateTaskOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidDate, err)
	}

	added, err := uc.store.Add(ctx, tasks...)
	if err != nil {
		return task.CreateTaskOutput{}, mapStoreError(err)
	}

	uc.l.Infof(ctx, "CreateTask: created %q id=%s instances=%d", t.Title, t.ID, len(added))
	return task.CreateTaskOutput{Tasks: added}, nil
}

func (uc *implUseCase) buildTask(input task.CreateTaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	if input.Duration < 0 {
		return model.Task{}, task.ErrInvalidDuration
	}
	priority, err := validatePriority(input.Priority)
	if err != nil {
		return model.Task{}, err
	}
	taskType, err := validateType(input.Type)
	if err != nil {
		return model.Task{}, err
	}
	recurrence := model.Recurrence(strings.ToLower(input.Recurrence))
	if !recurrence.IsValid() {
		return model.Task{}, fmt.Errorf("%w: %q", task.ErrInvalidRecurrence, input.Recurrence)
	}
	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:            uc.opt.NewID(),
		Title:         title,
		Duration:      input.Duration,
		Priority:      priority,
		ScheduledDate: date,
		Recurrence:    recurrence,
		Type:          taskType,
		Category:      input.Category,
		GroupID:       input.GroupID,
	}
	if input.StartTime != "" {
		st, err := parseClock(input.StartTime)
		if err != nil {
			return model.Task{}, err
		}
		t.StartTime = st.Ptr()
	}
	if input.ReminderTime != "" {
		rt, err := parseClock(input.ReminderTime)
		if err != nil {
			return model.Task{}, err
		}
		t.ReminderTime = rt.Ptr()
	}
	if t.Type == model.TypeReminder && t.ReminderTime == nil {
		return model.Task{}, task.ErrReminderTimeRequired
	}
	return t, nil
}

// EditTask applies a partial edit. Recurrence siblings are independent and stay untouched.
func (uc *implUseCase) EditTask(ctx context.Context, input task.EditTaskInput) (model.Task, error) {
	current, err := uc.store.Get(input.ID)
	if err != nil {
		return model.Task{}, mapStoreError(err)
	}

	patch, err := toPatch(input)
	if err != nil {
		return model.Task{}, err
	}
	if result := patch.Apply(current); result.Type == model.TypeReminder && result.ReminderTime == nil {
		return model.Task{}, task.ErrReminderTimeRequired
	}

	updated, err := uc.store.Update(ctx, input.ID, patch)
	if err != nil {
		return model.Task{}, mapStoreError(err)
	}
	uc.l.Infof(ctx, "EditTask: updated id=%s", input.ID)
	return updated, nil
}

func toPatch(input task.EditTaskInput) (model.TaskPatch, error) {
	patch := model.TaskPatch{
		ActualDuration: input.ActualDuration,
		Category:       input.Category,
		GroupID:        input.GroupID,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.TaskPatch{}, task.ErrTitleRequired
		}
		patch.Title = &title
	}
	if input.Duration != nil {
		if *input.Duration < 0 {
			return model.TaskPatch{}, task.ErrInvalidDuration
		}
		patch.Duration = input.Duration
	}
	if input.ActualDuration != nil && *input.ActualDuration < 0 {
		return model.TaskPatch{}, task.ErrInvalidDuration
	}
	if input.Priority != nil {
		p, err := validatePriority(*input.Priority)
		if err != nil {
			return model.TaskPatch{}, err
		}
		patch.Priority = &p
	}
	if input.Type != nil {
		tt, err := validateType(*input.Type)
		if err != nil {
			return model.TaskPatch{}, err
		}
		patch.Type = &tt
	}
	if input.StartTime != nil {
		if *input.StartTime == "" {
			patch.ClearStartTime = true
		} else {
			st, err := parseClock(*input.StartTime)
			if err != nil {
				return model.TaskPatch{}, err
			}
			patch.StartTime = &st
		}
	}
	if input.ReminderTime != nil {
		rt, err := parseClock(*input.ReminderTime)
		if err != nil {
			return model.TaskPatch{}, err
		}
		patch.ReminderTime = &rt
	}
	return patch, nil
}

// CompleteTask toggles completion.
func (uc *implUseCase) CompleteTask(ctx context.Context, id string) (task.CompleteTaskOutput, error) {
	t, progress, err := uc.store.ToggleCompletion(ctx, id)
	if err != nil {
		return task.CompleteTaskOutput{}, mapStoreError(err)
	}
	uc.l.Infof(ctx, "CompleteTask: id=%s completed=%t streak=%d xp=%d", id, t.Completed, progress.Streak, progress.XP)
	return task.CompleteTaskOutput{Task: t, Progress: progress}, nil
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	uc.l.Infof(ctx, "DeleteTask: id=%s", id)
	return nil
}

// MoveTask moves a task to another date, keeping its start time.
func (uc *implUseCase) MoveTask(ctx context.Context, input task.MoveTaskInput) (model.Task, error) {
	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return model.Task{}, err
	}
	t, err := uc.store.MoveToDate(ctx, input.ID, date)
	if err != nil {
		return model.Task{}, mapStoreError(err)
	}
	uc.l.Infof(ctx, "MoveTask: id=%s date=%s", input.ID, date)
	return t, nil
}

// ReorderDay applies a manual order and re-times the day when it was scheduled.
func (uc *implUseCase) ReorderDay(ctx context.Context, input task.ReorderInput) (task.DayOutput, error) {
	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return task.DayOutput{}, err
	}
	if len(input.IDs) == 0 {
		return task.DayOutput{}, task.ErrReorderMismatch
	}
	if _, err := uc.store.Reorder(ctx, date, input.IDs); err != nil {
		return task.DayOutput{}, mapStoreError(err)
	}
	return task.DayOutput{Date: date, Tasks: uc.store.Day(date)}, nil
}

func (uc *implUseCase) ListDay(ctx context.Context, dateRef string) (task.DayOutput, error) {
	date, err := uc.resolveDate(dateRef)
	if err != nil {
		return task.DayOutput{}, err
	}
	return task.DayOutput{Date: date, Tasks: uc.store.Day(date)}, nil
}

func (uc *implUseCase) GetProgress(ctx context.Context) model.Progress {
	return uc.store.Progress()
}
