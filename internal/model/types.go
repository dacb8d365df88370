package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Priority orders tasks within a day: HIGH before MEDIUM before LOW.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank returns the sort rank (HIGH=1 … LOW=3).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(input)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", input)
	}
	return p, nil
}

// PlanScope anchors a task to a day, a week start, or a month start.
type PlanScope string

const (
	ScopeDaily   PlanScope = "daily"
	ScopeWeekly  PlanScope = "weekly"
	ScopeMonthly PlanScope = "monthly"
)

func (s PlanScope) IsValid() bool {
	switch s {
	case ScopeDaily, ScopeWeekly, ScopeMonthly:
		return true
	default:
		return false
	}
}

// IsDaily reports whether the scope counts as daily. An unset scope is
// daily (documents written before the field existed have none).
func (s PlanScope) IsDaily() bool {
	return s == "" || s == ScopeDaily
}

func ParsePlanScope(input string) (PlanScope, error) {
	s := PlanScope(strings.ToLower(strings.TrimSpace(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid plan scope: %q", input)
	}
	return s, nil
}

type EventType string

const (
	EventBirthday    EventType = "birthday"
	EventHoliday     EventType = "holiday"
	EventAnniversary EventType = "anniversary"
	EventOther       EventType = "other"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventBirthday, EventHoliday, EventAnniversary, EventOther:
		return true
	default:
		return false
	}
}

func ParseEventType(input string) (EventType, error) {
	t := EventType(strings.ToLower(strings.TrimSpace(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid event type: %q", input)
	}
	return t, nil
}

type Theme string

const (
	ThemeOriginal Theme = "original"
	ThemePink     Theme = "pink"
	ThemePurple   Theme = "purple"
	ThemeBlue     Theme = "blue"
	ThemeGreen    Theme = "green"
	ThemeYellow   Theme = "yellow"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeOriginal, ThemePink, ThemePurple, ThemeBlue, ThemeGreen, ThemeYellow:
		return true
	default:
		return false
	}
}

func ParseTheme(input string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid theme: %q", input)
	}
	return t, nil
}

// NewID returns a fresh entity id. Ids are stable for the entity's
// lifetime and never reused.
func NewID() string {
	return uuid.NewString()
}

type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Time        string    `json:"time,omitempty"` // "HH:MM" 24h
	Date        string    `json:"date"`           // "YYYY-MM-DD"
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	SubTasks    []SubTask `json:"subtasks"`
	Category    string    `json:"category,omitempty"`
	PlanScope   PlanScope `json:"planType,omitempty"`
}

type WeightEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type WaterLog struct {
	Date string `json:"date"`
	Cups int    `json:"cups"`
}

type StepLog struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

type BloodPressureLog struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
}

type BloodOxygenLog struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Percentage int    `json:"percentage"`
}

type HeartRateLog struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	BPM  int    `json:"bpm"`
}

type SleepLog struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type Bill struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
	Paid    bool    `json:"paid"`
	Image   string  `json:"image,omitempty"`
}

type Coupon struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ExpiryDate string `json:"expiryDate"`
	Code       string `json:"code,omitempty"`
	Used       bool   `json:"used"`
	Image      string `json:"image,omitempty"`
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Checklist struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
	Color string          `json:"color,omitempty"`
}

type Restaurant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Area   string `json:"area,omitempty"`
	Rating int    `json:"rating"` // 1-5
	Notes  string `json:"notes,omitempty"`
	Image  string `json:"image,omitempty"`
}

type Trip struct {
	ID             string `json:"id"`
	Destination    string `json:"destination"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Notes          string `json:"notes,omitempty"`
	Image          string `json:"image,omitempty"`
	ExcelItinerary string `json:"excelItinerary,omitempty"`
	ExcelName      string `json:"excelName,omitempty"`
}

// SpecialEvent recurs on its month-day every year; year is kept for
// display and for the exact-date path of holiday matching.
type SpecialEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  string    `json:"date"`
	Type  EventType `json:"type"`
}

type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Mood    string `json:"mood,omitempty"`
}

// AppData is the single canonical document. The document owns every
// entity; cross-entity relations are by value (date strings), never by
// reference.
type AppData struct {
	Tasks           []Task             `json:"tasks"`
	WeightHistory   []WeightEntry      `json:"weightHistory"`
	WaterLogs       []WaterLog         `json:"waterLogs"`
	StepLogs        []StepLog          `json:"stepLogs"`
	BPLogs          []BloodPressureLog `json:"bpLogs"`
	OxygenLogs      []BloodOxygenLog   `json:"oxygenLogs"`
	HeartRateLogs   []HeartRateLog     `json:"heartRateLogs"`
	SleepLogs       []SleepLog         `json:"sleepLogs"`
	HealthAnalysis  string             `json:"healthAnalysis,omitempty"`
	Bills           []Bill             `json:"bills"`
	Coupons         []Coupon           `json:"coupons"`
	Checklists      []Checklist        `json:"checklists"`
	Restaurants     []Restaurant       `json:"restaurants"`
	Trips           []Trip             `json:"trips"`
	SpecialEvents   []SpecialEvent     `json:"specialEvents"`
	Notes           []Note             `json:"notes"`
	BackgroundImage string             `json:"backgroundImage,omitempty"`
	Theme           Theme              `json:"theme,omitempty"`
}
