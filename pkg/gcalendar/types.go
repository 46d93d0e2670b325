package gcalendar

import "time"

// Event is a calendar event in the shape the context importer consumes.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Organizer   string
	Attendees   []string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest bounds an upcoming-events query.
type ListEventsRequest struct {
	CalendarID string // defaults to "primary"
	From       time.Time
	To         time.Time
	MaxResults int
}
