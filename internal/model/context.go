package model

import "time"

type ContextSource string

const (
	ContextSourceWhatsApp ContextSource = "whatsapp"
	ContextSourceEmail    ContextSource = "email"
	ContextSourceNotes    ContextSource = "notes"
	ContextSourceSlack    ContextSource = "slack"
	ContextSourceTeams    ContextSource = "teams"
	ContextSourceCalendar ContextSource = "calendar"
	ContextSourceManual   ContextSource = "manual"
	ContextSourceOther    ContextSource = "other"
)

func (s ContextSource) Valid() bool {
	switch s {
	case ContextSourceWhatsApp, ContextSourceEmail, ContextSourceNotes, ContextSourceSlack,
		ContextSourceTeams, ContextSourceCalendar, ContextSourceManual, ContextSourceOther:
		return true
	}
	return false
}

type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

const (
	// HighRelevanceThreshold marks an entry as worth surfacing on summaries.
	HighRelevanceThreshold = 70
)

// ContextEntry is a captured piece of external context (message, email, note)
// that the analyzer mines for tasks, deadlines and sentiment.
type ContextEntry struct {
	ID               string
	UserID           string
	Content          string
	SourceType       ContextSource
	ProcessingStatus ProcessingStatus
	RelevanceScore   int // [0, 100]
	SentimentScore   float64
	UrgencyIndicator int // [0, 100]
	ExtractedTasks   []ExtractedTask
	Keywords         []string
	ProcessedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e ContextEntry) IsHighRelevance() bool {
	return e.RelevanceScore >= HighRelevanceThreshold
}

// UrgencyLevel buckets the relevance score for summaries.
func (e ContextEntry) UrgencyLevel() string {
	switch {
	case e.RelevanceScore >= 80:
		return "high"
	case e.RelevanceScore >= 50:
		return "medium"
	default:
		return "low"
	}
}

// ExtractedTask is an actionable item the analyzer pulled out of an entry.
type ExtractedTask struct {
	Title      string     `json:"title"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Confidence int        `json:"confidence"`
}

type InsightType string

const (
	InsightTypeTask     InsightType = "task"
	InsightTypeDeadline InsightType = "deadline"
	InsightTypePriority InsightType = "priority"
	InsightTypeContact  InsightType = "contact"
	InsightTypeMeeting  InsightType = "meeting"
	InsightTypeProject  InsightType = "project"
	InsightTypeOther    InsightType = "other"
)

const HighConfidenceThreshold = 80

// ContextInsight is a single structured finding produced while processing an entry.
type ContextInsight struct {
	ID              string
	ContextEntryID  string
	UserID          string
	InsightType     InsightType
	Content         string
	ConfidenceScore int // [0, 100]
	IsActionable    bool
	RelatedTaskID   string
	CreatedAt       time.Time
}

func (i ContextInsight) IsHighConfidence() bool {
	return i.ConfidenceScore >= HighConfidenceThreshold
}

// ContextProcessingLog records one processing attempt over an entry.
type ContextProcessingLog struct {
	ID             string
	ContextEntryID string
	Status         ProcessingStatus
	Detail         string
	DurationMS     int64
	CreatedAt      time.Time
}
