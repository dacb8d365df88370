package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lazybear/internal/model"
)

// fakeAPI serves a canned generateContent response and records the
// request it received.
func fakeAPI(t *testing.T, status int, responseText string) (*Client, *http.Request) {
	t.Helper()
	var captured http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r.Clone(r.Context())
		w.WriteHeader(status)
		if status != http.StatusOK {
			fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
			return
		}
		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: responseText}}}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	return c, &captured
}

func TestGeneratePlanHydratesTasks(t *testing.T) {
	c, req := fakeAPI(t, http.StatusOK,
		`[{"title":"Buy groceries","description":"milk, eggs","time":"10:00","priority":"HIGH","category":"Chores"},
		  {"title":"Stretch","priority":"whatever"}]`)

	tasks, err := c.GeneratePlan(context.Background(), "groceries at 10 then stretch", "2024-07-10", "English")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	first := tasks[0]
	if first.ID == "" || first.Date != "2024-07-10" || first.PlanScope != model.ScopeDaily {
		t.Fatalf("task not hydrated: %+v", first)
	}
	if first.Priority != model.PriorityHigh || first.Time != "10:00" {
		t.Fatalf("task fields not carried over: %+v", first)
	}
	if tasks[1].Priority != model.PriorityMedium {
		t.Fatalf("unparseable priority should fall back to MEDIUM, got %s", tasks[1].Priority)
	}
	if tasks[0].SubTasks == nil {
		t.Fatalf("subtask list should be initialized")
	}

	if got := req.Header.Get("x-goog-api-key"); got != "test-key" {
		t.Fatalf("api key header = %q", got)
	}
	if !strings.Contains(req.URL.Path, DefaultModel+":generateContent") {
		t.Fatalf("unexpected request path %q", req.URL.Path)
	}
}

func TestSuggestSubtasks(t *testing.T) {
	c, _ := fakeAPI(t, http.StatusOK, `["Pack clothes","Book taxi","Print tickets"]`)

	got, err := c.SuggestSubtasks(context.Background(), "Prepare for trip", "English")
	if err != nil {
		t.Fatalf("SuggestSubtasks: %v", err)
	}
	if len(got) != 3 || got[0] != "Pack clothes" {
		t.Fatalf("subtasks = %v", got)
	}
}

func TestAnalyzeHealthReturnsText(t *testing.T) {
	c, req := fakeAPI(t, http.StatusOK, "Looking good! Keep walking.")

	doc := model.AppData{
		StepLogs:      []model.StepLog{{Date: "2024-07-10", Steps: 8000}},
		WeightHistory: []model.WeightEntry{{ID: "w", Date: "2024-07-10", Weight: 70}},
	}
	text, err := c.AnalyzeHealth(context.Background(), doc, "English")
	if err != nil {
		t.Fatalf("AnalyzeHealth: %v", err)
	}
	if text != "Looking good! Keep walking." {
		t.Fatalf("text = %q", text)
	}
	if req.Method != http.MethodPost {
		t.Fatalf("method = %s", req.Method)
	}
}

func TestAPIErrorsPropagate(t *testing.T) {
	c, _ := fakeAPI(t, http.StatusTooManyRequests, "")

	_, err := c.GeneratePlan(context.Background(), "anything", "2024-07-10", "English")
	if err == nil {
		t.Fatalf("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error should carry the API message, got %v", err)
	}
}

func TestMissingKeyFailsFast(t *testing.T) {
	c := NewClient("", "")
	_, err := c.SuggestSubtasks(context.Background(), "x", "English")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestHealthWindowBounds(t *testing.T) {
	var steps []model.StepLog
	for i := 0; i < 30; i++ {
		steps = append(steps, model.StepLog{Date: fmt.Sprintf("2024-06-%02d", i+1), Steps: i})
	}
	recent := tail(steps, healthWindow)
	if len(recent) != healthWindow {
		t.Fatalf("got %d entries, want %d", len(recent), healthWindow)
	}
	if recent[len(recent)-1].Steps != 29 {
		t.Fatalf("tail should keep the newest append-order entries")
	}

	var weights []model.WeightEntry
	for i := 0; i < 30; i++ {
		weights = append(weights, model.WeightEntry{Weight: float64(i)})
	}
	if got := head(weights, healthWindow); len(got) != healthWindow || got[0].Weight != 0 {
		t.Fatalf("head should keep the newest prepend-order entries")
	}
}
