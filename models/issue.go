// File: justnest/models/issue.go
package models

import "time"

// Issue categories.
const (
	CategoryProperty         = "property"
	CategoryFamily           = "family"
	CategoryLabor            = "labor"
	CategoryConsumer         = "consumer"
	CategoryDomesticViolence = "domestic-violence"
	CategoryCriminal         = "criminal"
	CategoryCivil            = "civil"
	CategoryGovernment       = "government"
	CategoryOther            = "other"
)

// Urgency levels declared by the submitter.
const (
	UrgencyLow       = "low"
	UrgencyMedium    = "medium"
	UrgencyHigh      = "high"
	UrgencyEmergency = "emergency"
)

// Priorities derived by the server.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Issue lifecycle states. Any state may follow any other.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

var (
	IssueCategories = []string{
		CategoryProperty, CategoryFamily, CategoryLabor, CategoryConsumer, CategoryDomesticViolence,
		CategoryCriminal, CategoryCivil, CategoryGovernment, CategoryOther,
	}
	UrgencyLevels      = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}
	IssueStatuses      = []string{StatusPending, StatusInProgress, StatusResolved, StatusClosed}
	SupportedLanguages = []string{"en", "hi", "mr", "bn", "ta", "te", "kn", "ml", "pa", "gu"}
)

// PersonalInfo is the optional contact block of a non-anonymous submitter.
type PersonalInfo struct {
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Email    string `bson:"email" json:"email"`
	Location string `bson:"location" json:"location"`
}

// Consent records what the submitter agreed to.
type Consent struct {
	Share       bool `bson:"share" json:"share"`
	FollowUp    bool `bson:"followUp" json:"followUp"`
	Educational bool `bson:"educational" json:"educational"`
}

// LawyerAssignment is attached to an issue once a lawyer takes it on.
type LawyerAssignment struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	AssignedAt time.Time `bson:"assignedAt" json:"assignedAt"`
	AssignedBy string    `bson:"assignedBy" json:"assignedBy"`
}

// LegalIssue is a citizen-submitted legal problem.
type LegalIssue struct {
	ID             string            `bson:"id" json:"id"`
	Category       string            `bson:"category" json:"category"`
	Title          string            `bson:"title" json:"title"`
	Description    string            `bson:"description" json:"description"`
	Urgency        string            `bson:"urgency" json:"urgency"`
	Language       string            `bson:"language" json:"language"`
	Anonymous      bool              `bson:"anonymous" json:"anonymous"`
	PersonalInfo   *PersonalInfo     `bson:"personalInfo" json:"personalInfo"`
	Location       string            `bson:"location" json:"location"`
	Files          []string          `bson:"files" json:"files"`
	HasAudio       bool              `bson:"hasAudio" json:"hasAudio"`
	Consent        Consent           `bson:"consent" json:"consent"`
	Status         string            `bson:"status" json:"status"`
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
	Views          int64             `bson:"views" json:"views"`
	Responses      []Response        `bson:"responses" json:"responses"`
	AssignedLawyer *LawyerAssignment `bson:"assignedLawyer" json:"assignedLawyer"`
	Tags           []string          `bson:"tags" json:"tags"`
	Priority       string            `bson:"priority" json:"priority"`
	SubmittedBy    string            `bson:"submittedBy,omitempty" json:"-"`
}

// Response is one entry of an issue's response thread.
type Response struct {
	ID            string    `bson:"id" json:"id"`
	Content       string    `bson:"content" json:"content"`
	ResponderType string    `bson:"responderType" json:"responderType"`
	ResponderID   string    `bson:"responderId" json:"responderId"`
	ResponderName string    `bson:"responderName" json:"responderName"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	Helpful       int       `bson:"helpful" json:"helpful"`
	NotHelpful    int       `bson:"notHelpful" json:"notHelpful"`
}

// PriorityFor maps a declared urgency to the server-side priority.
func PriorityFor(urgency string) string {
	switch urgency {
	case UrgencyEmergency:
		return PriorityHigh
	case UrgencyHigh:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Clone returns a deep copy so callers never share slices with a store.
func (i *LegalIssue) Clone() *LegalIssue {
	if i == nil {
		return nil
	}
	out := *i
	if i.PersonalInfo != nil {
		pi := *i.PersonalInfo
		out.PersonalInfo = &pi
	}
	if i.AssignedLawyer != nil {
		al := *i.AssignedLawyer
		out.AssignedLawyer = &al
	}
	out.Files = append([]string{}, i.Files...)
	out.Tags = append([]string{}, i.Tags...)
	out.Responses = append([]Response{}, i.Responses...)
	return &out
}
