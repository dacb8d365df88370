package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"lazybear/internal/model"
)

// Store owns the canonical in-memory document and reconciles it with
// durable storage. All mutations go through Apply; the document is
// persisted after every change.
type Store struct {
	kv   *KV
	log  *logrus.Logger
	data model.AppData
}

// Open opens the durable store at path and loads the document.
func Open(ctx context.Context, path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}
	kv, err := OpenKV(ctx, path)
	if err != nil {
		return nil, err
	}
	s := &Store{kv: kv, log: log}
	s.data = s.Load(ctx)
	return s, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// Data returns the current document.
func (s *Store) Data() model.AppData {
	return s.data
}

// Load produces a valid, schema-complete document from whatever is in
// durable storage. Absent or unparsable data yields the default
// document; otherwise the persisted document is shallow-merged over
// the defaults and the seed special events are unioned back in.
// Corrupt data never surfaces as an error.
func (s *Store) Load(ctx context.Context) model.AppData {
	raw, ok, err := s.kv.Get(ctx, dataKey)
	if err != nil {
		s.log.WithError(err).Warn("load failed, using defaults")
		s.data = DefaultData()
		return s.data
	}
	if !ok {
		s.data = DefaultData()
		return s.data
	}
	doc, err := mergeWithDefaults([]byte(raw))
	if err != nil {
		s.log.WithError(err).Warn("stored document unreadable, using defaults")
		s.data = DefaultData()
		return s.data
	}
	s.data = doc
	return s.data
}

// Save serializes the whole document. Write failure is non-fatal: it
// is logged and the session degrades to in-memory-only persistence.
func (s *Store) Save(ctx context.Context) {
	raw, err := json.Marshal(s.data)
	if err != nil {
		s.log.WithError(err).Warn("serialize document failed")
		return
	}
	if err := s.kv.Set(ctx, dataKey, string(raw)); err != nil {
		s.log.WithError(err).Warn("save document failed")
	}
}

// Reset clears durable storage and returns the default document.
func (s *Store) Reset(ctx context.Context) (model.AppData, error) {
	if err := s.kv.Delete(ctx, dataKey); err != nil {
		return model.AppData{}, err
	}
	s.data = DefaultData()
	return s.data, nil
}

// Patch is a partial document. Non-nil fields replace the matching
// collection or scalar wholesale; everything else is untouched.
type Patch struct {
	Tasks           *[]model.Task
	WeightHistory   *[]model.WeightEntry
	WaterLogs       *[]model.WaterLog
	StepLogs        *[]model.StepLog
	BPLogs          *[]model.BloodPressureLog
	OxygenLogs      *[]model.BloodOxygenLog
	HeartRateLogs   *[]model.HeartRateLog
	SleepLogs       *[]model.SleepLog
	HealthAnalysis  *string
	Bills           *[]model.Bill
	Coupons         *[]model.Coupon
	Checklists      *[]model.Checklist
	Restaurants     *[]model.Restaurant
	Trips           *[]model.Trip
	SpecialEvents   *[]model.SpecialEvent
	Notes           *[]model.Note
	BackgroundImage *string
	Theme           *model.Theme
}

// Apply is the single update entry point: it produces a new document
// with the patch applied and persists it. Callers build fresh
// collections rather than mutating the ones they read.
func (s *Store) Apply(ctx context.Context, p Patch) model.AppData {
	next := s.data
	if p.Tasks != nil {
		next.Tasks = *p.Tasks
	}
	if p.WeightHistory != nil {
		next.WeightHistory = *p.WeightHistory
	}
	if p.WaterLogs != nil {
		next.WaterLogs = *p.WaterLogs
	}
	if p.StepLogs != nil {
		next.StepLogs = *p.StepLogs
	}
	if p.BPLogs != nil {
		next.BPLogs = *p.BPLogs
	}
	if p.OxygenLogs != nil {
		next.OxygenLogs = *p.OxygenLogs
	}
	if p.HeartRateLogs != nil {
		next.HeartRateLogs = *p.HeartRateLogs
	}
	if p.SleepLogs != nil {
		next.SleepLogs = *p.SleepLogs
	}
	if p.HealthAnalysis != nil {
		next.HealthAnalysis = *p.HealthAnalysis
	}
	if p.Bills != nil {
		next.Bills = *p.Bills
	}
	if p.Coupons != nil {
		next.Coupons = *p.Coupons
	}
	if p.Checklists != nil {
		next.Checklists = *p.Checklists
	}
	if p.Restaurants != nil {
		next.Restaurants = *p.Restaurants
	}
	if p.Trips != nil {
		next.Trips = *p.Trips
	}
	if p.SpecialEvents != nil {
		next.SpecialEvents = *p.SpecialEvents
	}
	if p.Notes != nil {
		next.Notes = *p.Notes
	}
	if p.BackgroundImage != nil {
		next.BackgroundImage = *p.BackgroundImage
	}
	if p.Theme != nil {
		next.Theme = *p.Theme
	}
	s.data = next
	s.Save(ctx)
	return s.data
}

// APIKey returns the stored generative-API credential, or "" when
// unset. It lives under its own key and is never part of the document.
func (s *Store) APIKey(ctx context.Context) (string, error) {
	v, _, err := s.kv.Get(ctx, apiKeyKey)
	return v, err
}

func (s *Store) SetAPIKey(ctx context.Context, key string) error {
	if key == "" {
		return s.kv.Delete(ctx, apiKeyKey)
	}
	return s.kv.Set(ctx, apiKeyKey, key)
}

// mergeWithDefaults performs the shallow top-level merge: every key
// present in the persisted document wins wholesale, every key it lacks
// comes from the default document. A key explicitly set to null counts
// as absent. Seed special events are unioned in afterwards.
func mergeWithDefaults(raw []byte) (model.AppData, error) {
	var loaded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return model.AppData{}, fmt.Errorf("parse document: %w", err)
	}

	defRaw, err := json.Marshal(DefaultData())
	if err != nil {
		return model.AppData{}, fmt.Errorf("marshal defaults: %w", err)
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(defRaw, &merged); err != nil {
		return model.AppData{}, fmt.Errorf("parse defaults: %w", err)
	}
	for k, v := range loaded {
		if string(v) == "null" {
			continue
		}
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return model.AppData{}, fmt.Errorf("marshal merged: %w", err)
	}
	var doc model.AppData
	if err := json.Unmarshal(out, &doc); err != nil {
		return model.AppData{}, fmt.Errorf("decode merged: %w", err)
	}
	ensureSeedEvents(&doc)
	return doc, nil
}

// ensureSeedEvents re-inserts any seed entry missing from the
// document's specialEvents. User entries and edited seed entries are
// left exactly as loaded.
func ensureSeedEvents(doc *model.AppData) {
	present := make(map[string]bool, len(doc.SpecialEvents))
	for _, e := range doc.SpecialEvents {
		present[e.ID] = true
	}
	for _, seed := range SeedEvents() {
		if !present[seed.ID] {
			doc.SpecialEvents = append(doc.SpecialEvents, seed)
		}
	}
}
