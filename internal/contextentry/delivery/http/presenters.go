package http

import (
	"time"

	"smart-todo-backend/internal/contextentry"
	"smart-todo-backend/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Content    string `json:"content"     binding:"required"`
	SourceType string `json:"source_type" binding:"omitempty,oneof=whatsapp email notes slack teams calendar manual other"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() contextentry.CreateInput {
	return contextentry.CreateInput{
		Content:    r.Content,
		SourceType: model.ContextSource(r.SourceType),
	}
}

type listReq struct {
	SourceType string `form:"source_type" binding:"omitempty,oneof=whatsapp email notes slack teams calendar manual other"`
	Status     string `form:"status"      binding:"omitempty,oneof=pending processing completed failed"`
	Search     string `form:"search"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() contextentry.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return contextentry.ListInput{
		SourceType: r.SourceType,
		Status:     r.Status,
		Search:     r.Search,
		Limit:      limit,
		Offset:     offset,
	}
}

type updateReq struct {
	ID         string `json:"-"` // populated from URI param
	Content    string `json:"content"`
	SourceType string `json:"source_type" binding:"omitempty,oneof=whatsapp email notes slack teams calendar manual other"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() contextentry.UpdateInput {
	return contextentry.UpdateInput{
		ID:         r.ID,
		Content:    r.Content,
		SourceType: model.ContextSource(r.SourceType),
	}
}

type bulkAnalyzeReq struct {
	EntryIDs []string `json:"entry_ids" binding:"required,min=1,dive,uuid"`
}

func (r bulkAnalyzeReq) validate() error { return nil }

type importCalendarReq struct {
	CalendarID string `json:"calendar_id"`
	Days       int    `json:"days"       binding:"omitempty,min=1,max=90"`
	MaxEvents  int    `json:"max_events" binding:"omitempty,min=1,max=250"`
}

func (r importCalendarReq) validate() error { return nil }

func (r importCalendarReq) toInput() contextentry.ImportCalendarInput {
	return contextentry.ImportCalendarInput{
		CalendarID: r.CalendarID,
		Days:       r.Days,
		MaxEvents:  r.MaxEvents,
	}
}

type insightListReq struct {
	InsightType    string `form:"insight_type" binding:"omitempty,oneof=task deadline priority contact meeting project other"`
	Actionable     bool   `form:"actionable"`
	HighConfidence bool   `form:"high_confidence"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

func (r insightListReq) validate() error { return nil }

func (r insightListReq) toInput() contextentry.InsightListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return contextentry.InsightListInput{
		InsightType:    r.InsightType,
		ActionableOnly: r.Actionable,
		HighConfidence: r.HighConfidence,
		Limit:          limit,
		Offset:         r.Offset,
	}
}

// --- Response DTOs ---

type extractedTaskResp struct {
	Title      string     `json:"title"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Confidence int        `json:"confidence"`
}

type entryResp struct {
	ID               string              `json:"id"`
	Content          string              `json:"content"`
	SourceType       string              `json:"source_type"`
	ProcessingStatus string              `json:"processing_status"`
	RelevanceScore   int                 `json:"relevance_score"`
	SentimentScore   float64             `json:"sentiment_score"`
	UrgencyIndicator int                 `json:"urgency_indicator"`
	UrgencyLevel     string              `json:"urgency_level"`
	HighRelevance    bool                `json:"high_relevance"`
	ExtractedTasks   []extractedTaskResp `json:"extracted_tasks"`
	Keywords         []string            `json:"keywords"`
	ProcessedAt      *time.Time          `json:"processed_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func newEntryResp(e model.ContextEntry) entryResp {
	tasks := make([]extractedTaskResp, len(e.ExtractedTasks))
	for i, t := range e.ExtractedTasks {
		tasks[i] = extractedTaskResp{Title: t.Title, Deadline: t.Deadline, Confidence: t.Confidence}
	}
	keywords := e.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return entryResp{
		ID:               e.ID,
		Content:          e.Content,
		SourceType:       string(e.SourceType),
		ProcessingStatus: string(e.ProcessingStatus),
		RelevanceScore:   e.RelevanceScore,
		SentimentScore:   e.SentimentScore,
		UrgencyIndicator: e.UrgencyIndicator,
		UrgencyLevel:     e.UrgencyLevel(),
		HighRelevance:    e.IsHighRelevance(),
		ExtractedTasks:   tasks,
		Keywords:         keywords,
		ProcessedAt:      e.ProcessedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func newEntryResps(entries []model.ContextEntry) []entryResp {
	resps := make([]entryResp, len(entries))
	for i, e := range entries {
		resps[i] = newEntryResp(e)
	}
	return resps
}

type insightResp struct {
	ID              string    `json:"id"`
	ContextEntryID  string    `json:"context_entry_id"`
	InsightType     string    `json:"insight_type"`
	Content         string    `json:"content"`
	ConfidenceScore int       `json:"confidence_score"`
	HighConfidence  bool      `json:"high_confidence"`
	IsActionable    bool      `json:"is_actionable"`
	RelatedTaskID   string    `json:"related_task_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func newInsightResp(in model.ContextInsight) insightResp {
	return insightResp{
		ID:              in.ID,
		ContextEntryID:  in.ContextEntryID,
		InsightType:     string(in.InsightType),
		Content:         in.Content,
		ConfidenceScore: in.ConfidenceScore,
		HighConfidence:  in.IsHighConfidence(),
		IsActionable:    in.IsActionable,
		RelatedTaskID:   in.RelatedTaskID,
		CreatedAt:       in.CreatedAt,
	}
}

func newInsightResps(insights []model.ContextInsight) []insightResp {
	resps := make([]insightResp, len(insights))
	for i, in := range insights {
		resps[i] = newInsightResp(in)
	}
	return resps
}

// detailResp is the entry shape with its stored insights attached.
type detailResp struct {
	entryResp
	Insights []insightResp `json:"insights"`
}

func newDetailResp(out contextentry.DetailOutput) detailResp {
	return detailResp{
		entryResp: newEntryResp(out.Entry),
		Insights:  newInsightResps(out.Insights),
	}
}

type bulkAnalyzeResp struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

type summaryResp struct {
	Total              int            `json:"total"`
	Pending            int            `json:"pending"`
	Completed          int            `json:"completed"`
	Failed             int            `json:"failed"`
	HighRelevance      int            `json:"high_relevance"`
	WithExtractedTasks int            `json:"with_extracted_tasks"`
	AvgRelevanceScore  float64        `json:"avg_relevance_score"`
	RecentActivity     int            `json:"recent_activity"`
	BySource           map[string]int `json:"by_source"`
	ActionableInsights int            `json:"actionable_insights"`
}

func newSummaryResp(s contextentry.Summary) summaryResp {
	bySource := make(map[string]int, len(s.BySource))
	for source, n := range s.BySource {
		bySource[string(source)] = n
	}
	return summaryResp{
		Total:              s.Total,
		Pending:            s.Pending,
		Completed:          s.Completed,
		Failed:             s.Failed,
		HighRelevance:      s.HighRelevance,
		WithExtractedTasks: s.WithExtractedTasks,
		AvgRelevanceScore:  s.AvgRelevanceScore,
		RecentActivity:     s.RecentActivity,
		BySource:           bySource,
		ActionableInsights: s.ActionableInsights,
	}
}

type importResp struct {
	Imported int         `json:"imported"`
	Entries  []entryResp `json:"entries"`
}

func newImportResp(out contextentry.ImportOutput) importResp {
	return importResp{
		Imported: out.Imported,
		Entries:  newEntryResps(out.Entries),
	}
}
