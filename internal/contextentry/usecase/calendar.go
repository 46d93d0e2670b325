package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-todo-backend/internal/contextentry"
	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/gcalendar"
)

// ImportCalendar captures the user's upcoming calendar events as pending
// context entries, one entry per event.
func (uc *implUseCase) ImportCalendar(ctx context.Context, sc model.Scope, input contextentry.ImportCalendarInput) (contextentry.ImportOutput, error) {
	if uc.gcal == nil {
		return contextentry.ImportOutput{}, contextentry.ErrCalendarNotEnabled
	}

	days := input.Days
	if days <= 0 {
		days = 7
	}
	maxEvents := input.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}

	from := uc.now()
	events, err := uc.gcal.ListUpcoming(ctx, gcalendar.ListEventsRequest{
		CalendarID: input.CalendarID,
		From:       from,
		To:         from.Add(time.Duration(days) * 24 * time.Hour),
		MaxResults: maxEvents,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportCalendar ListUpcoming: %v", err)
		return contextentry.ImportOutput{}, err
	}

	out := contextentry.ImportOutput{Entries: []model.ContextEntry{}}
	for _, ev := range events {
		entry, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
			ID:         uuid.NewString(),
			UserID:     sc.UserID,
			Content:    renderEvent(ev),
			SourceType: model.ContextSourceCalendar,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.ImportCalendar CreateEntry: %v", err)
			continue
		}
		out.Imported++
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

// renderEvent flattens a calendar event into text the analyzer can mine.
func renderEvent(ev gcalendar.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Meeting: %s", ev.Summary)
	if ev.AllDay {
		fmt.Fprintf(&b, "\nDate: %s (all day)", ev.StartTime.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "\nWhen: %s to %s",
			ev.StartTime.Format(time.RFC3339), ev.EndTime.Format(time.RFC3339))
	}
	if ev.Organizer != "" {
		fmt.Fprintf(&b, "\nOrganizer: %s", ev.Organizer)
	}
	if len(ev.Attendees) > 0 {
		fmt.Fprintf(&b, "\nAttendees: %s", strings.Join(ev.Attendees, ", "))
	}
	if ev.Description != "" {
		fmt.Fprintf(&b, "\n%s", ev.Description)
	}
	return b.String()
}
