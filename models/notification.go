package models

import "time"

// Real-time event names.
const (
	EventNewLegalIssue      = "new-legal-issue"
	EventNewCaseAvailable   = "new-case-available"
	EventIssueStatusChanged = "legal-issue-status-changed"
	EventLawyerAssigned     = "lawyer-assigned"
)

// RoomLawyers is the audience every lawyer connection joins.
const RoomLawyers = "lawyers"

// LanguageRoom names the room of a language audience.
func LanguageRoom(language string) string {
	return "lang-" + language
}

// IssueRoom names the room following a single issue.
func IssueRoom(issueID string) string {
	return "issue-" + issueID
}

// Notification is one event delivered to a room.
type Notification struct {
	Event  string         `json:"event"`
	Room   string         `json:"room"`
	Data   map[string]any `json:"data"`
	SentAt time.Time      `json:"sentAt"`
	// Origin identifies the instance that raised the event.
	Origin string `json:"origin,omitempty"`
}
