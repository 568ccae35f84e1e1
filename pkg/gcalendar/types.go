package gcalendar

import "time"

// CreateEventRequest is the input for creating or updating an event.
type CreateEventRequest struct {
	CalendarID  string
	TaskID      string // stored as a private extended property when set
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	TaskID      string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing events.
type ListEventsRequest struct {
	CalendarID string
	TaskID     string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
