package memos_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/task/repository"
	"day-planner/internal/task/repository/memos"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeMemos is a minimal in-memory Memos server.
type fakeMemos struct {
	mu      sync.Mutex
	seq     int
	memos   map[string]memos.Memo
	deletes int
}

func newFakeMemos() *fakeMemos {
	return &fakeMemos{memos: make(map[string]memos.Memo)}
}

func (f *fakeMemos) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path == "/api/v1/memos" {
		switch r.Method {
		case http.MethodPost:
			var req memos.CreateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			if strings.Contains(req.Content, "explode") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			f.seq++
			uid := fmt.Sprintf("uid-%d", f.seq)
			m := memos.Memo{ID: fmt.Sprint(f.seq), Name: "memos/" + uid, Content: req.Content}
			f.memos[uid] = m
			json.NewEncoder(w).Encode(m)
		case http.MethodGet:
			filter := r.URL.Query().Get("filter")
			out := []memos.Memo{}
			for _, m := range f.memos {
				tag := strings.TrimSuffix(strings.TrimPrefix(filter, `tag in ["`), `"]`)
				if strings.Contains(m.Content, "#"+tag+" ") || strings.HasSuffix(m.Content, "#"+tag) {
					out = append(out, m)
				}
			}
			json.NewEncoder(w).Encode(map[string]any{"memos": out})
		}
		return
	}

	uid := strings.TrimPrefix(r.URL.Path, "/api/v1/memos/")
	m, ok := f.memos[uid]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(m)
	case http.MethodPatch:
		var req memos.UpdateMemoRequest
		json.NewDecoder(r.Body).Decode(&req)
		m.Content = req.Content
		f.memos[uid] = m
		json.NewEncoder(w).Encode(m)
	case http.MethodDelete:
		f.deletes++
		delete(f.memos, uid)
		w.Write([]byte(`{}`))
	}
}

func (f *fakeMemos) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.memos)
}

func newRepo(t *testing.T) (repository.RemoteStore, *fakeMemos) {
	t.Helper()
	fake := newFakeMemos()
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	repo, err := memos.New(memos.NewClient(ts.URL, "token", 5*time.Second), &mockLogger{})
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo, fake
}

func sampleTask(id, title string) model.Task {
	return model.Task{
		ID:            id,
		Title:         title,
		Duration:      45,
		Priority:      model.PriorityMust,
		ScheduledDate: "2026-03-02",
		Type:          model.TypeTask,
		StartTime:     model.Clock(9, 30).Ptr(),
		Category:      "work",
	}
}

func TestMemosRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateMany assigns remote ids", func(t *testing.T) {
		repo, fake := newRepo(t)
		created, err := repo.CreateMany(ctx, []model.Task{sampleTask("a", "Write"), sampleTask("b", "Review")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 2 || created[0].RemoteID != "uid-1" || created[1].RemoteID != "uid-2" {
			t.Errorf("unexpected created tasks: %+v", created)
		}
		if fake.count() != 2 {
			t.Errorf("expected 2 memos, got %d", fake.count())
		}
	})

	t.Run("CreateMany removes partial results on failure", func(t *testing.T) {
		repo, fake := newRepo(t)
		_, err := repo.CreateMany(ctx, []model.Task{sampleTask("a", "Write"), sampleTask("b", "explode")})
		if err == nil {
			t.Fatalf("expected error")
		}
		if fake.count() != 0 {
			t.Errorf("expected created memos to be cleaned up, %d left", fake.count())
		}
	})

	t.Run("Get round-trips the record", func(t *testing.T) {
		repo, _ := newRepo(t)
		created, _ := repo.CreateMany(ctx, []model.Task{sampleTask("a", "Write")})

		got, err := repo.Get(ctx, created[0].RemoteID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "a" || got.Title != "Write" || got.RemoteID != "uid-1" {
			t.Errorf("unexpected task: %+v", got)
		}
		if got.StartTime == nil || *got.StartTime != model.Clock(9, 30) {
			t.Errorf("start time lost: %v", got.StartTime)
		}
	})

	t.Run("Get unknown memo", func(t *testing.T) {
		repo, _ := newRepo(t)
		if _, err := repo.Get(ctx, "uid-404"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update resolves through the index", func(t *testing.T) {
		repo, _ := newRepo(t)
		repo.CreateMany(ctx, []model.Task{sampleTask("a", "Write")})

		changed := sampleTask("a", "Write more")
		changed.Completed = true
		if err := repo.Update(ctx, changed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.Get(ctx, "uid-1")
		if got.Title != "Write more" || !got.Completed {
			t.Errorf("update not applied: %+v", got)
		}
	})

	t.Run("Update without remote record", func(t *testing.T) {
		repo, _ := newRepo(t)
		if err := repo.Update(ctx, sampleTask("zzz", "Ghost")); !errors.Is(err, repository.ErrUnknownRemote) {
			t.Errorf("expected ErrUnknownRemote, got %v", err)
		}
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		repo, fake := newRepo(t)
		created, _ := repo.CreateMany(ctx, []model.Task{sampleTask("a", "Write")})

		if err := repo.Delete(ctx, created[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx, created[0]); err != nil {
			t.Errorf("second delete should succeed, got %v", err)
		}
		if fake.count() != 0 {
			t.Errorf("memo still present")
		}
	})

	t.Run("List filters by date tag", func(t *testing.T) {
		repo, _ := newRepo(t)
		other := sampleTask("b", "Tomorrow")
		other.ScheduledDate = "2026-03-03"
		repo.CreateMany(ctx, []model.Task{sampleTask("a", "Today"), other})

		got, err := repo.List(ctx, repository.ListOptions{Date: "2026-03-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("unexpected list: %+v", got)
		}

		all, _ := repo.List(ctx, repository.ListOptions{})
		if len(all) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(all))
		}
	})
}
