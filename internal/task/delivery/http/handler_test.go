package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"day-planner/internal/model"
	deliveryHTTP "day-planner/internal/task/delivery/http"
	"day-planner/internal/task/repository/inmem"
	"day-planner/internal/task/store"
	"day-planner/internal/task/usecase"
	"day-planner/pkg/datemath"
	pkgLog "day-planner/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type taskBody struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	Completed bool    `json:"completed"`
}

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNop()
	dates, _ := datemath.NewParser("UTC")
	st := store.New(inmem.New(), l, store.Options{RetryDelay: time.Millisecond})
	t.Cleanup(st.Wait)

	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	uc := usecase.New(l, st, dates, nil, usecase.Options{
		DayStart:   model.Clock(9, 0),
		DefaultEnd: model.Clock(18, 0),
		Now:        func() time.Time { return now },
	})

	r := gin.New()
	deliveryHTTP.RegisterRoutes(r.Group("/api/v1"), deliveryHTTP.New(l, uc))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequestWithContext(context.Background(), method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid body %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func createTask(t *testing.T, r *gin.Engine, body map[string]any) taskBody {
	t.Helper()
	code, env := do(t, r, http.MethodPost, "/api/v1/tasks", body)
	if code != http.StatusOK {
		t.Fatalf("create failed: %d %s", code, env.Message)
	}
	var out struct {
		Tasks []taskBody `json:"tasks"`
	}
	json.Unmarshal(env.Data, &out)
	return out.Tasks[0]
}

func TestTaskRoutes(t *testing.T) {
	r := newServer(t)

	a := createTask(t, r, map[string]any{"title": "Report", "duration": 90, "priority": "must", "date": "2026-03-02"})
	createTask(t, r, map[string]any{"title": "Email", "duration": 20, "priority": "should", "date": "2026-03-02"})

	t.Run("list day", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/api/v1/days/today", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var day struct {
			Date  string     `json:"date"`
			Tasks []taskBody `json:"tasks"`
		}
		json.Unmarshal(env.Data, &day)
		if day.Date != "2026-03-02" || len(day.Tasks) != 2 {
			t.Errorf("unexpected day: %+v", day)
		}
	})

	t.Run("workload", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/api/v1/days/2026-03-02/workload?end=09:00", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", code, env.Message)
		}
		var a struct {
			Status          string `json:"status"`
			OverflowMinutes int    `json:"overflow_minutes"`
		}
		json.Unmarshal(env.Data, &a)
		if a.Status != "impossible" || a.OverflowMinutes != 50 {
			t.Errorf("unexpected analysis: %+v", a)
		}
	})

	t.Run("schedule", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/days/2026-03-02/schedule", map[string]any{"strategy": "snowball"})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", code, env.Message)
		}
		var out struct {
			Scheduled []taskBody `json:"scheduled"`
		}
		json.Unmarshal(env.Data, &out)
		if len(out.Scheduled) != 2 || out.Scheduled[0].Title != "Email" || *out.Scheduled[0].StartTime != "08:00" {
			t.Errorf("unexpected schedule: %+v", out.Scheduled)
		}
	})

	t.Run("bad strategy", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/days/2026-03-02/schedule", map[string]any{"strategy": "yolo"})
		if code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", code)
		}
	})

	t.Run("delay", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/days/2026-03-02/delay", map[string]any{"minutes": 15})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", code, env.Message)
		}
	})

	t.Run("zero delay is accepted", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/days/2026-03-02/delay", map[string]any{"minutes": 0})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", code, env.Message)
		}
	})

	t.Run("delay without minutes", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/days/2026-03-02/delay", map[string]any{})
		if code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", code)
		}
	})

	t.Run("edit", func(t *testing.T) {
		code, env := do(t, r, http.MethodPatch, "/api/v1/tasks/"+a.ID, map[string]any{"title": "Quarterly report", "start_time": ""})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", code, env.Message)
		}
		var got taskBody
		json.Unmarshal(env.Data, &got)
		if got.Title != "Quarterly report" || got.StartTime != nil {
			t.Errorf("unexpected task: %+v", got)
		}
	})

	t.Run("complete and progress", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/tasks/"+a.ID+"/complete", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		_, env := do(t, r, http.MethodGet, "/api/v1/progress", nil)
		var p struct {
			Streak int `json:"streak"`
			XP     int `json:"xp"`
		}
		json.Unmarshal(env.Data, &p)
		if p.Streak != 1 || p.XP != 10 {
			t.Errorf("unexpected progress: %+v", p)
		}
	})

	t.Run("move", func(t *testing.T) {
		code, env := do(t, r, http.MethodPost, "/api/v1/tasks/"+a.ID+"/move", map[string]any{"date": "tomorrow"})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", code, env.Message)
		}
		var got taskBody
		json.Unmarshal(env.Data, &got)
		if got.Date != "2026-03-03" {
			t.Errorf("unexpected date: %s", got.Date)
		}
	})

	t.Run("reorder mismatch", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPut, "/api/v1/days/2026-03-02/order", map[string]any{"ids": []string{a.ID}})
		if code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if code, _ := do(t, r, http.MethodDelete, "/api/v1/tasks/"+a.ID, nil); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		code, env := do(t, r, http.MethodDelete, "/api/v1/tasks/"+a.ID, nil)
		if code != http.StatusNotFound || env.ErrorCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d %+v", code, env)
		}
	})
}

func TestCreateTaskValidation(t *testing.T) {
	r := newServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"priority": "must"}},
		{"missing priority", map[string]any{"title": "x"}},
		{"bad priority", map[string]any{"title": "x", "priority": "urgent"}},
		{"reminder without time", map[string]any{"title": "x", "priority": "must", "type": "reminder"}},
		{"bad recurrence", map[string]any{"title": "x", "priority": "must", "recurrence": "hourly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, http.MethodPost, "/api/v1/tasks", tt.body)
			if code != http.StatusBadRequest || env.ErrorCode == 0 {
				t.Errorf("expected 400, got %d %+v", code, env)
			}
		})
	}
}
