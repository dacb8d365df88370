package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"lazybear/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the generation model used unless configured
	// otherwise.
	DefaultModel = "gemini-3-flash-preview"
)

// ErrNoAPIKey is returned when a call is attempted without a stored
// credential.
var ErrNoAPIKey = errors.New("gemini: api key not set")

// Client calls the generative-language API. Every call is fallible and
// propagates failure to the caller; there is no retry and no
// fabricated fallback data.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey, modelName string) *Client {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   modelName,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, prompt string, cfg *generationConfig) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini: %s (%s)", apiErr.Error.Message, apiErr.Error.Status)
		}
		return "", fmt.Errorf("gemini: status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	var text string
	for _, p := range gr.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}

// plannedTask is the structured output shape for plan generation.
type plannedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

var planSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"title":       {"type": "STRING", "description": "The main task title"},
			"description": {"type": "STRING", "description": "Short details about the task"},
			"time":        {"type": "STRING", "description": "Time in HH:MM format (24h), or empty if not specific"},
			"priority":    {"type": "STRING", "enum": ["HIGH", "MEDIUM", "LOW"]},
			"category":    {"type": "STRING", "description": "One-word category, e.g. Work, Health, Chores"}
		},
		"required": ["title", "priority"]
	}
}`)

var subtaskSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {"type": "STRING"}
}`)

// GeneratePlan parses a free-text brain dump into structured daily
// tasks for date, titled in the given output language. Returned tasks
// carry fresh ids and are ready to append to the document.
func (c *Client) GeneratePlan(ctx context.Context, rawText, date, language string) ([]model.Task, error) {
	prompt := fmt.Sprintf(`You are an expert productivity assistant.
The user has provided a raw brain dump of their plans for the day (%s).
Parse this text and convert it into a structured list of tasks.

Rules:
1. Infer specific times if mentioned (format HH:MM 24-hour). If morning/afternoon is vague, estimate reasonable times.
2. Assign a priority (HIGH, MEDIUM, LOW) based on urgency or importance implied.
3. Keep descriptions concise.
4. If no time is specified, leave the time field empty.
5. Output language: %s. Titles and descriptions must be in that language.

User input: %q`, date, language, rawText)

	text, err := c.generate(ctx, prompt, &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   planSchema,
	})
	if err != nil {
		return nil, err
	}

	var planned []plannedTask
	if err := json.Unmarshal([]byte(text), &planned); err != nil {
		return nil, fmt.Errorf("gemini: decode plan: %w", err)
	}

	tasks := make([]model.Task, 0, len(planned))
	for _, p := range planned {
		priority, err := model.ParsePriority(p.Priority)
		if err != nil {
			priority = model.PriorityMedium
		}
		tasks = append(tasks, model.Task{
			ID:          model.NewID(),
			Title:       p.Title,
			Description: p.Description,
			Time:        p.Time,
			Date:        date,
			Priority:    priority,
			SubTasks:    []model.SubTask{},
			Category:    p.Category,
			PlanScope:   model.ScopeDaily,
		})
	}
	return tasks, nil
}

// SuggestSubtasks breaks a task title into 3-5 short ordered subtask
// strings in the given output language.
func (c *Client) SuggestSubtasks(ctx context.Context, taskTitle, language string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Break down the task %q into 3-5 actionable subtasks. Return only the subtask titles as a JSON array of strings. The output must be in %s.",
		taskTitle, language)

	text, err := c.generate(ctx, prompt, &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   subtaskSchema,
	})
	if err != nil {
		return nil, err
	}

	var subtasks []string
	if err := json.Unmarshal([]byte(text), &subtasks); err != nil {
		return nil, fmt.Errorf("gemini: decode subtasks: %w", err)
	}
	return subtasks, nil
}

// healthWindow bounds how many entries per metric go into the analysis
// payload.
const healthWindow = 14

type healthContext struct {
	Steps         []model.StepLog          `json:"steps"`
	Weight        []model.WeightEntry      `json:"weight"`
	BloodPressure []model.BloodPressureLog `json:"bloodPressure"`
	Sleep         []model.SleepLog         `json:"sleep"`
	BloodOxygen   []model.BloodOxygenLog   `json:"bloodOxygen"`
	HeartRate     []model.HeartRateLog     `json:"heartRate"`
}

// AnalyzeHealth summarizes a bounded recent-history slice of the
// document's health logs as a short natural-language text.
func (c *Client) AnalyzeHealth(ctx context.Context, doc model.AppData, language string) (string, error) {
	payload, err := json.Marshal(healthContext{
		Steps:         tail(doc.StepLogs, healthWindow),
		Weight:        head(doc.WeightHistory, healthWindow),
		BloodPressure: head(doc.BPLogs, healthWindow),
		Sleep:         tail(doc.SleepLogs, healthWindow),
		BloodOxygen:   head(doc.OxygenLogs, healthWindow),
		HeartRate:     head(doc.HeartRateLogs, healthWindow),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal health data: %w", err)
	}

	prompt := fmt.Sprintf(`You are a caring, friendly health assistant named "Dr. Bear".
Analyze the following recent health data for the user.

Data: %s

Provide a response in %s that includes:
1. A gentle summary of their recent activity and health stats.
2. Encouragement for any positive trends (walking more, good sleep, stable weight, normal heart rate).
3. Gentle advice if anything looks concerning (low sleep, high blood pressure, irregular heart rate). If data is missing, encourage them to track it.
4. Keep the tone warm and supportive.
5. Keep it under 200 words.`, payload, language)

	return c.generate(ctx, prompt, nil)
}

// head takes the newest entries of a prepend-history log; tail the
// newest of an append-by-date log.
func head[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func tail[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
