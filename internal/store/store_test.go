package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"lazybear/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoadAbsentYieldsDefaults(t *testing.T) {
	st := testStore(t)
	doc := st.Data()

	if doc.Tasks == nil || len(doc.Tasks) != 0 {
		t.Fatalf("fresh document should have an empty, non-nil task list")
	}
	if len(doc.SpecialEvents) != len(SeedEvents()) {
		t.Fatalf("fresh document should carry the %d seed events, got %d", len(SeedEvents()), len(doc.SpecialEvents))
	}
	if doc.Theme != model.ThemeOriginal {
		t.Fatalf("fresh theme = %q, want original", doc.Theme)
	}
}

func TestLoadCorruptYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)
	if err := st.kv.Set(ctx, dataKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt data: %v", err)
	}

	doc := st.Load(ctx)
	if len(doc.Tasks) != 0 || len(doc.SpecialEvents) != len(SeedEvents()) {
		t.Fatalf("corrupt storage should load as the default document")
	}
}

func TestLoadBackfillsMissingFields(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	// An old-format document: has tasks, lacks every later field, and
	// carries an explicit null that must count as absent.
	old := `{"tasks":[{"id":"t1","title":"Old","date":"2024-01-05","priority":"HIGH","subtasks":[]}],"bills":null}`
	if err := st.kv.Set(ctx, dataKey, old); err != nil {
		t.Fatalf("seed old document: %v", err)
	}

	doc := st.Load(ctx)
	if len(doc.Tasks) != 1 || doc.Tasks[0].Title != "Old" {
		t.Fatalf("persisted tasks must survive the merge, got %v", doc.Tasks)
	}
	if doc.Bills == nil {
		t.Fatalf("null bills should be backfilled with the default empty list")
	}
	if doc.Coupons == nil || doc.Checklists == nil || doc.Notes == nil {
		t.Fatalf("missing collections should be backfilled")
	}
	if len(doc.SpecialEvents) != len(SeedEvents()) {
		t.Fatalf("seed events should be unioned into an old document")
	}
}

func TestSeedEventsUnionExactlyOnce(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	// Document already holds one (edited) seed entry plus a user event.
	doc := DefaultData()
	doc.SpecialEvents = []model.SpecialEvent{
		{ID: SeedChristmas, Title: "Xmas at grandma's", Date: "2024-12-25", Type: model.EventHoliday},
		{ID: "user-1", Title: "Mom", Date: "2020-06-01", Type: model.EventBirthday},
	}
	raw, _ := json.Marshal(doc)
	if err := st.kv.Set(ctx, dataKey, string(raw)); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	loaded := st.Load(ctx)
	if len(loaded.SpecialEvents) != 5 {
		t.Fatalf("got %d events, want 5 (1 edited seed + 1 user + 3 re-seeded)", len(loaded.SpecialEvents))
	}
	for _, e := range loaded.SpecialEvents {
		if e.ID == SeedChristmas && e.Title != "Xmas at grandma's" {
			t.Fatalf("edited seed entry must be left exactly as stored")
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	tasks := []model.Task{{ID: "t1", Title: "Round trip", Date: "2024-03-01", Priority: model.PriorityLow, SubTasks: []model.SubTask{}}}
	theme := model.ThemeBlue
	st.Apply(ctx, Patch{Tasks: &tasks, Theme: &theme})

	loaded := st.Load(ctx)
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].Title != "Round trip" {
		t.Fatalf("tasks did not survive save/load")
	}
	if loaded.Theme != model.ThemeBlue {
		t.Fatalf("theme did not survive save/load")
	}

	// Loading again changes nothing.
	again := st.Load(ctx)
	rawA, _ := json.Marshal(loaded)
	rawB, _ := json.Marshal(again)
	if !bytes.Equal(rawA, rawB) {
		t.Fatalf("repeated loads must be idempotent")
	}
}

func TestApplyTouchesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	tasks := []model.Task{{ID: "t1", Title: "Keep me", Date: "2024-03-01", SubTasks: []model.SubTask{}}}
	st.Apply(ctx, Patch{Tasks: &tasks})

	bills := []model.Bill{{ID: "b1", Title: "Rent", Amount: 900}}
	doc := st.Apply(ctx, Patch{Bills: &bills})

	if len(doc.Tasks) != 1 || len(doc.Bills) != 1 {
		t.Fatalf("patching bills must not disturb tasks")
	}
}

func TestImportMinimalBackup(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	if err := st.Import(ctx, strings.NewReader(`{"tasks": []}`)); err != nil {
		t.Fatalf("minimal backup should import: %v", err)
	}
	got, _ := json.Marshal(st.Data())
	want, _ := json.Marshal(DefaultData())
	if !bytes.Equal(got, want) {
		t.Fatalf("importing {\"tasks\": []} should yield the default document")
	}
}

func TestImportRejectsInvalidPayload(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	tasks := []model.Task{{ID: "t1", Title: "Existing", Date: "2024-01-01", SubTasks: []model.SubTask{}}}
	st.Apply(ctx, Patch{Tasks: &tasks})

	for _, payload := range []string{"not json at all", `{"nope": true}`, `{"tasks": "oops"}`, `{"tasks": null}`} {
		err := st.Import(ctx, strings.NewReader(payload))
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("payload %q: err = %v, want ErrInvalidBackup", payload, err)
		}
	}
	if len(st.Data().Tasks) != 1 {
		t.Fatalf("failed imports must not mutate the document")
	}
}

func TestExportOmitsAPIKey(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	if err := st.SetAPIKey(ctx, "super-secret-key"); err != nil {
		t.Fatalf("set api key: %v", err)
	}

	var buf bytes.Buffer
	if err := st.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(buf.String(), "super-secret-key") {
		t.Fatalf("backup must never contain the API key")
	}
}

func TestAPIKeyLifecycle(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	key, err := st.APIKey(ctx)
	if err != nil || key != "" {
		t.Fatalf("unset key = %q, %v; want empty, nil", key, err)
	}
	if err := st.SetAPIKey(ctx, "abc123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	key, _ = st.APIKey(ctx)
	if key != "abc123" {
		t.Fatalf("key = %q, want abc123", key)
	}
	if err := st.SetAPIKey(ctx, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	key, _ = st.APIKey(ctx)
	if key != "" {
		t.Fatalf("cleared key = %q, want empty", key)
	}
}

func TestResetWipesDocument(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	tasks := []model.Task{{ID: "t1", Title: "Gone soon", Date: "2024-01-01", SubTasks: []model.SubTask{}}}
	st.Apply(ctx, Patch{Tasks: &tasks})

	doc, err := st.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(doc.Tasks) != 0 {
		t.Fatalf("reset should return the default document")
	}
	if loaded := st.Load(ctx); len(loaded.Tasks) != 0 {
		t.Fatalf("reset should clear durable storage too")
	}
}
