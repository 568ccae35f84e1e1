package memos_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"day-planner/internal/task/repository/memos"
)

const plannerMemo = "## Deep work\n\n- **Date:** 2026-03-02\n- **Duration:** 90 min\n- **Priority:** must\n- [ ] done\n\n" +
	"```json\n{\"id\":\"t-1\",\"title\":\"Deep work\",\"duration\":90,\"priority\":\"must\",\"scheduledDate\":\"2026-03-02\"}\n```\n\n" +
	"#planner #planner/2026-03-02 #priority/must"

// recordedCall is what the Memos API saw for one request.
type recordedCall struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

type recorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (rec *recorder) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, recordedCall{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(raw),
		})
		rec.mu.Unlock()
		r.Body = io.NopCloser(strings.NewReader(string(raw)))
		next(w, r)
	}
}

func (rec *recorder) last() recordedCall {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.calls) == 0 {
		return recordedCall{}
	}
	return rec.calls[len(rec.calls)-1]
}

func newPlannerServer(t *testing.T) (*memos.Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/memos", rec.wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req memos.CreateMemoRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(memos.Memo{
				ID:         "101",
				Name:       "memos/uid-101",
				Content:    req.Content,
				Visibility: req.Visibility,
			})
		case http.MethodGet:
			if strings.Contains(r.URL.Query().Get("filter"), "planner/1999-01-01") {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("upstream unavailable"))
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"memos": []memos.Memo{{ID: "101", Name: "memos/uid-101", Content: plannerMemo}},
			})
		}
	}))

	mux.HandleFunc("/api/v1/memos/", rec.wrap(func(w http.ResponseWriter, r *http.Request) {
		uid := strings.TrimPrefix(r.URL.Path, "/api/v1/memos/")
		if uid != "uid-101" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(memos.Memo{ID: "101", Name: "memos/uid-101", Content: plannerMemo})
		case http.MethodPatch:
			var req memos.UpdateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(memos.Memo{ID: "101", Name: "memos/uid-101", Content: req.Content})
		case http.MethodDelete:
			w.Write([]byte(`{}`))
		}
	}))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return memos.NewClient(ts.URL, "planner-token", 5*time.Second), rec
}

func TestClientSendsPlannerRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("create posts the record with bearer auth", func(t *testing.T) {
		client, rec := newPlannerServer(t)
		m, err := client.CreateMemo(ctx, memos.CreateMemoRequest{Content: plannerMemo, Visibility: "PRIVATE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name != "memos/uid-101" || m.Visibility != "PRIVATE" {
			t.Errorf("unexpected memo: %+v", m)
		}
		call := rec.last()
		if call.method != http.MethodPost || call.auth != "Bearer planner-token" {
			t.Errorf("unexpected call: %+v", call)
		}
		if !strings.Contains(call.body, "#planner/2026-03-02") {
			t.Errorf("record tags missing from body: %s", call.body)
		}
	})

	t.Run("update sends the content mask", func(t *testing.T) {
		client, rec := newPlannerServer(t)
		done := strings.Replace(plannerMemo, "- [ ] done", "- [x] done", 1)
		m, err := client.UpdateMemo(ctx, "uid-101", memos.UpdateMemoRequest{Content: done, UpdateMask: "content"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(m.Content, "- [x] done") {
			t.Errorf("update not echoed: %s", m.Content)
		}
		if call := rec.last(); call.method != http.MethodPatch || !strings.Contains(call.body, `"updateMask":"content"`) {
			t.Errorf("unexpected call: %+v", call)
		}
	})

	t.Run("get returns the fenced record", func(t *testing.T) {
		client, _ := newPlannerServer(t)
		m, err := client.GetMemo(ctx, "uid-101")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(m.Content, "```json") || !strings.Contains(m.Content, `"id":"t-1"`) {
			t.Errorf("record missing: %s", m.Content)
		}
	})

	t.Run("unknown memo maps to ErrMemoNotFound", func(t *testing.T) {
		client, _ := newPlannerServer(t)
		if _, err := client.GetMemo(ctx, "uid-missing"); !errors.Is(err, memos.ErrMemoNotFound) {
			t.Errorf("expected ErrMemoNotFound, got %v", err)
		}
		if err := client.DeleteMemo(ctx, "uid-missing"); !errors.Is(err, memos.ErrMemoNotFound) {
			t.Errorf("expected ErrMemoNotFound on delete, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		client, rec := newPlannerServer(t)
		if err := client.DeleteMemo(ctx, "uid-101"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if call := rec.last(); call.method != http.MethodDelete || call.path != "/api/v1/memos/uid-101" {
			t.Errorf("unexpected call: %+v", call)
		}
	})

	t.Run("list filters by the day tag", func(t *testing.T) {
		client, rec := newPlannerServer(t)
		got, err := client.ListMemos(ctx, "planner/2026-03-02", 50, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || !strings.Contains(got[0].Content, "#priority/must") {
			t.Errorf("unexpected list: %+v", got)
		}
		call := rec.last()
		if !strings.Contains(call.query, "pageSize=50") || strings.Contains(call.query, "offset") {
			t.Errorf("unexpected query: %s", call.query)
		}
		if !strings.Contains(call.query, "filter=") {
			t.Errorf("filter missing: %s", call.query)
		}
	})

	t.Run("list passes the offset", func(t *testing.T) {
		client, rec := newPlannerServer(t)
		if _, err := client.ListMemos(ctx, "", 20, 40); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		call := rec.last()
		if !strings.Contains(call.query, "offset=40") || strings.Contains(call.query, "filter=") {
			t.Errorf("unexpected query: %s", call.query)
		}
	})

	t.Run("non-2xx surfaces the body", func(t *testing.T) {
		client, _ := newPlannerServer(t)
		_, err := client.ListMemos(ctx, "planner/1999-01-01", 10, 0)
		if err == nil || !strings.Contains(err.Error(), "upstream unavailable") {
			t.Errorf("expected upstream error, got %v", err)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := memos.NewClient("http://127.0.0.1:1", "planner-token", time.Second)
		if _, err := client.GetMemo(ctx, "uid-101"); err == nil {
			t.Errorf("expected connection error")
		}
	})
}
