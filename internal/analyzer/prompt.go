package analyzer

import (
	"fmt"
	"strings"
	"time"

	"smart-todo-backend/internal/model"
)

const systemPrompt = `You are a task management assistant. Answer with a single JSON object and nothing else. Scores are integers from 0 to 100. Timestamps use RFC3339.`

func (a *implAnalyzer) buildTaskPrompt(task model.Task) string {
	var b strings.Builder
	b.WriteString("Analyze this task and respond with JSON matching:\n")
	b.WriteString(`{"suggested_priority_score": 0, "factors": [""], "confidence": 0, "suggested_deadline": null, "deadline_reasoning": "", "deadline_confidence": 0, "suggested_category": "", "enhancement_suggestions": [""]}`)
	b.WriteString("\n\nTask:\n")
	fmt.Fprintf(&b, "- title: %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&b, "- description: %s\n", task.Description)
	}
	fmt.Fprintf(&b, "- status: %s\n- priority: %s\n- current score: %d\n", task.Status, task.Priority, task.PriorityScore)
	if task.Deadline != nil {
		fmt.Fprintf(&b, "- deadline: %s\n", task.Deadline.Format(time.RFC3339))
	} else {
		b.WriteString("- deadline: none (suggest one)\n")
	}
	if task.CategoryName != "" {
		fmt.Fprintf(&b, "- category: %s\n", task.CategoryName)
	}
	fmt.Fprintf(&b, "- now: %s\n", a.now().Format(time.RFC3339))
	return b.String()
}

func (a *implAnalyzer) buildPrioritizationPrompt(tasks []model.Task) string {
	var b strings.Builder
	b.WriteString("Rank these open tasks by importance and respond with JSON matching:\n")
	b.WriteString(`{"prioritized_tasks": [{"task_id": "", "suggested_priority_score": 0, "reasoning": ""}], "recommendations": [""]}`)
	b.WriteString("\n\nTasks:\n")
	for _, t := range tasks {
		deadline := "none"
		if t.Deadline != nil {
			deadline = t.Deadline.Format(time.RFC3339)
		}
		fmt.Fprintf(&b, "- id=%s title=%q priority=%s score=%d deadline=%s\n",
			t.ID, t.Title, t.Priority, t.PriorityScore, deadline)
	}
	fmt.Fprintf(&b, "\nnow: %s\n", a.now().Format(time.RFC3339))
	return b.String()
}

func (a *implAnalyzer) buildContextPrompt(entry model.ContextEntry) string {
	var b strings.Builder
	b.WriteString("Analyze this captured message for actionable tasks and respond with JSON matching:\n")
	b.WriteString(`{"relevance_score": 0, "sentiment_score": 0.0, "urgency_indicator": 0, "keywords": [""], "extracted_tasks": [{"title": "", "deadline": null, "confidence": 0}], "insights": [{"type": "task", "content": "", "confidence": 0, "actionable": true}]}`)
	b.WriteString("\n\nInsight types: task, deadline, priority, contact, meeting, project, other.")
	b.WriteString(" Sentiment is a float in [-1, 1].\n\n")
	fmt.Fprintf(&b, "Source: %s\nMessage:\n%s\n\nnow: %s\n",
		entry.SourceType, entry.Content, a.now().Format(time.RFC3339))
	return b.String()
}
