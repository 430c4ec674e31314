package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	DefaultTokenPath  = "token.json"

	// reminderMinutes is how long before the due date the popup fires.
	reminderMinutes = 15
)

// Config locates the credentials used to build a Client.
type Config struct {
	CredentialsPath string
	// TokenPath is the OAuth token written by cmd/gcal-auth. Only read for
	// installed-app credentials.
	TokenPath string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/London"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
