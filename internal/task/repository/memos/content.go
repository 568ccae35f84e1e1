package memos

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"day-planner/internal/model"
)

// PlannerTag marks every memo owned by the planner.
const PlannerTag = "planner"

var (
	errNoRecord = errors.New("memo carries no task record")

	recordPattern = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
)

// buildContent renders a task as a memo: a readable summary, the full record
// as a fenced JSON block, and the planner tags.
func buildContent(t model.Task) (string, error) {
	record, err := json.MarshalIndent(t.Clone(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode task record: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title))
	sb.WriteString(fmt.Sprintf("- **Date:** %s\n", t.ScheduledDate))
	if t.StartTime != nil {
		sb.WriteString(fmt.Sprintf("- **Start:** %s\n", t.StartTime))
	}
	sb.WriteString(fmt.Sprintf("- **Duration:** %d min\n", t.Duration))
	sb.WriteString(fmt.Sprintf("- **Priority:** %s\n", t.Priority))
	if t.Completed {
		sb.WriteString("- [x] done\n")
	} else {
		sb.WriteString("- [ ] done\n")
	}
	sb.WriteString("\n```json\n")
	sb.Write(record)
	sb.WriteString("\n```\n\n")
	sb.WriteString(strings.Join(tags(t), " "))
	return sb.String(), nil
}

// parseContent extracts the task record embedded by buildContent.
func parseContent(content string) (model.Task, error) {
	m := recordPattern.FindStringSubmatch(content)
	if len(m) < 2 {
		return model.Task{}, errNoRecord
	}
	var t model.Task
	if err := json.Unmarshal([]byte(m[1]), &t); err != nil {
		return model.Task{}, fmt.Errorf("failed to decode task record: %w", err)
	}
	return t, nil
}

func tags(t model.Task) []string {
	out := []string{
		"#" + PlannerTag,
		fmt.Sprintf("#%s/%s", PlannerTag, t.ScheduledDate),
		fmt.Sprintf("#priority/%s", t.Priority),
	}
	if t.Category != "" {
		out = append(out, "#category/"+t.Category)
	}
	return out
}
