package analyzer

import (
	"encoding/json"
	"strings"
	"time"
)

// stripCodeFence removes markdown code blocks if present (```json ... ```).
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

// clampScore forces a value into the [0, 100] range.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// flexTime accepts RFC3339, date-only strings, or null.
type flexTime struct {
	t *time.Time
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		f.t = nil
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			f.t = &t
			return nil
		}
	}
	f.t = nil
	return nil
}

// --- LLM response payloads ---

type llmTaskAnalysis struct {
	SuggestedPriorityScore int      `json:"suggested_priority_score"`
	Factors                []string `json:"factors"`
	Confidence             int      `json:"confidence"`
	SuggestedDeadline      flexTime `json:"suggested_deadline"`
	DeadlineReasoning      string   `json:"deadline_reasoning"`
	DeadlineConfidence     int      `json:"deadline_confidence"`
	SuggestedCategory      string   `json:"suggested_category"`
	EnhancementSuggestions []string `json:"enhancement_suggestions"`
}

type llmPrioritization struct {
	PrioritizedTasks []struct {
		TaskID                 string `json:"task_id"`
		SuggestedPriorityScore int    `json:"suggested_priority_score"`
		Reasoning              string `json:"reasoning"`
	} `json:"prioritized_tasks"`
	Recommendations []string `json:"recommendations"`
}

type llmContextAnalysis struct {
	RelevanceScore   int      `json:"relevance_score"`
	SentimentScore   float64  `json:"sentiment_score"`
	UrgencyIndicator int      `json:"urgency_indicator"`
	Keywords         []string `json:"keywords"`
	ExtractedTasks   []struct {
		Title      string   `json:"title"`
		Deadline   flexTime `json:"deadline"`
		Confidence int      `json:"confidence"`
	} `json:"extracted_tasks"`
	Insights []struct {
		Type       string `json:"type"`
		Content    string `json:"content"`
		Confidence int    `json:"confidence"`
		Actionable bool   `json:"actionable"`
	} `json:"insights"`
}

func parseLLMJSON(text string, out any) error {
	return json.Unmarshal([]byte(stripCodeFence(text)), out)
}
