package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"smart-todo-backend/internal/model"
)

var (
	urgentWords    = []string{"urgent", "asap", "immediately", "critical", "emergency", "right away"}
	importantWords = []string{"important", "priority", "must", "need to", "required", "deadline"}
	positiveWords  = []string{"great", "good", "thanks", "thank you", "awesome", "perfect", "happy"}
	negativeWords  = []string{"problem", "issue", "blocked", "angry", "frustrated", "broken", "fail", "late"}

	actionLineRe = regexp.MustCompile(`(?im)^\s*(?:[-*]\s*)?(?:please\s+|todo:?\s*|action:?\s*)?((?:send|review|prepare|finish|fix|call|schedule|update|write|submit|book|complete)\b[^.\n]{3,80})`)
	wordRe       = regexp.MustCompile(`[a-zA-Z]{4,}`)
)

func containsAny(text string, words []string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, w := range words {
		if strings.Contains(lower, w) {
			hits = append(hits, w)
		}
	}
	return hits
}

// heuristicTaskAnalysis scores a task with deterministic rules. Used whenever
// no LLM provider is configured or the provider chain fails.
func (a *implAnalyzer) heuristicTaskAnalysis(task model.Task) TaskAnalysis {
	now := a.now()
	text := task.Title + " " + task.Description

	score := model.DefaultPriorityScore
	var factors []string

	if hits := containsAny(text, urgentWords); len(hits) > 0 {
		score += 25
		factors = append(factors, fmt.Sprintf("urgent language: %s", strings.Join(hits, ", ")))
	}
	if hits := containsAny(text, importantWords); len(hits) > 0 {
		score += 15
		factors = append(factors, fmt.Sprintf("importance markers: %s", strings.Join(hits, ", ")))
	}

	switch task.Priority {
	case model.TaskPriorityUrgent:
		score += 20
		factors = append(factors, "priority set to urgent")
	case model.TaskPriorityHigh:
		score += 10
		factors = append(factors, "priority set to high")
	case model.TaskPriorityLow:
		score -= 10
		factors = append(factors, "priority set to low")
	}

	if task.Deadline != nil {
		until := task.Deadline.Sub(now)
		switch {
		case until < 0:
			score += 30
			factors = append(factors, "deadline has passed")
		case until <= 24*time.Hour:
			score += 20
			factors = append(factors, "deadline within 24 hours")
		case until <= 72*time.Hour:
			score += 10
			factors = append(factors, "deadline within 3 days")
		}
	}

	if len(factors) == 0 {
		factors = append(factors, "no urgency signals found")
	}

	analysis := TaskAnalysis{
		TaskID: task.ID,
		Priority: PriorityAnalysis{
			SuggestedScore: clampScore(score),
			Factors:        factors,
			Confidence:     60,
		},
		EnhancementSuggestions: a.enhancementSuggestions(task),
	}
	analysis.Deadline = a.heuristicDeadline(task, now)
	return analysis
}

func (a *implAnalyzer) heuristicDeadline(task model.Task, now time.Time) DeadlineSuggestion {
	if task.Deadline != nil {
		return DeadlineSuggestion{
			Reasoning:  "task already has a deadline",
			Confidence: 90,
		}
	}

	if a.dates != nil {
		mentions := a.dates.FindMentions(task.Title+" "+task.Description, now)
		if len(mentions) > 0 {
			m := mentions[0]
			return DeadlineSuggestion{
				SuggestedDeadline: &m.AbsoluteTime,
				Reasoning:         fmt.Sprintf("description mentions %q", m.Phrase),
				Confidence:        75,
			}
		}
	}

	// Default: end of the workday three days out.
	suggested := time.Date(now.Year(), now.Month(), now.Day(), 17, 0, 0, 0, now.Location()).AddDate(0, 0, 3)
	return DeadlineSuggestion{
		SuggestedDeadline: &suggested,
		Reasoning:         "no date mentioned, defaulting to three working days",
		Confidence:        40,
	}
}

func (a *implAnalyzer) enhancementSuggestions(task model.Task) []string {
	var out []string
	if len(strings.TrimSpace(task.Description)) == 0 {
		out = append(out, "Add a description with the expected outcome")
	}
	if task.CategoryID == "" {
		out = append(out, "Assign a category to keep related work together")
	}
	if task.Deadline == nil {
		out = append(out, "Set a deadline so the task can be scheduled")
	}
	if len(strings.Fields(task.Title)) < 3 {
		out = append(out, "Use a more descriptive title")
	}
	if len(out) == 0 {
		out = append(out, "Task is well specified")
	}
	return out
}

// heuristicPrioritization nudges every score up and ranks by the result.
func (a *implAnalyzer) heuristicPrioritization(tasks []model.Task) Prioritization {
	rankings := make([]TaskRanking, len(tasks))
	high := 0
	for i, t := range tasks {
		suggested := clampScore(t.PriorityScore + 10)
		reasoning := "score nudged up to keep momentum"
		if t.IsOverdue(a.now()) {
			suggested = clampScore(t.PriorityScore + 25)
			reasoning = "task is overdue"
		}
		if suggested >= model.HighPriorityThreshold {
			high++
		}
		rankings[i] = TaskRanking{
			TaskID:         t.ID,
			CurrentScore:   t.PriorityScore,
			SuggestedScore: suggested,
			Reasoning:      reasoning,
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].SuggestedScore > rankings[j].SuggestedScore
	})
	for i := range rankings {
		rankings[i].Ranking = i + 1
	}

	var recs []string
	if high > 0 {
		recs = append(recs, fmt.Sprintf("%d task(s) need attention first", high))
	}
	if len(tasks) > 10 {
		recs = append(recs, "Consider closing or delegating older tasks")
	}
	if len(recs) == 0 {
		recs = append(recs, "Workload looks balanced")
	}

	return Prioritization{
		Tasks: rankings,
		Summary: PrioritizationSummary{
			TotalTasksAnalyzed: len(tasks),
			HighPriorityCount:  high,
			Recommendations:    recs,
		},
	}
}

// heuristicContextAnalysis mines an entry with keyword rules.
func (a *implAnalyzer) heuristicContextAnalysis(entry model.ContextEntry) ContextAnalysis {
	now := a.now()
	text := entry.Content

	urgency := 20
	if hits := containsAny(text, urgentWords); len(hits) > 0 {
		urgency = 85
	} else if hits := containsAny(text, importantWords); len(hits) > 0 {
		urgency = 55
	}

	sentiment := 0.0
	sentiment += 0.3 * float64(len(containsAny(text, positiveWords)))
	sentiment -= 0.3 * float64(len(containsAny(text, negativeWords)))
	if sentiment > 1 {
		sentiment = 1
	}
	if sentiment < -1 {
		sentiment = -1
	}

	var tasks []model.ExtractedTask
	for _, match := range actionLineRe.FindAllStringSubmatch(text, 5) {
		title := strings.TrimSpace(match[1])
		et := model.ExtractedTask{Title: title, Confidence: 65}
		if a.dates != nil {
			if mentions := a.dates.FindMentions(title, now); len(mentions) > 0 {
				et.Deadline = &mentions[0].AbsoluteTime
				et.Confidence = 75
			}
		}
		tasks = append(tasks, et)
	}

	relevance := 20 + 15*len(tasks)
	if urgency >= 80 {
		relevance += 20
	}

	var insights []InsightDraft
	for _, et := range tasks {
		insights = append(insights, InsightDraft{
			Type:       model.InsightTypeTask,
			Content:    et.Title,
			Confidence: et.Confidence,
			Actionable: true,
		})
	}
	if a.dates != nil {
		for _, m := range a.dates.FindMentions(text, now) {
			insights = append(insights, InsightDraft{
				Type:       model.InsightTypeDeadline,
				Content:    fmt.Sprintf("mentions %q (%s)", m.Phrase, m.AbsoluteTime.Format(time.RFC3339)),
				Confidence: 70,
				Actionable: true,
			})
		}
	}
	if urgency >= 80 {
		insights = append(insights, InsightDraft{
			Type:       model.InsightTypePriority,
			Content:    "message uses urgent language",
			Confidence: 80,
			Actionable: false,
		})
	}

	return ContextAnalysis{
		RelevanceScore:   clampScore(relevance),
		SentimentScore:   sentiment,
		UrgencyIndicator: clampScore(urgency),
		Keywords:         topKeywords(text, 8),
		ExtractedTasks:   tasks,
		Insights:         insights,
	}
}

// topKeywords returns the most frequent words of 4+ letters.
func topKeywords(text string, max int) []string {
	counts := map[string]int{}
	var order []string
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > max {
		order = order[:max]
	}
	return order
}
