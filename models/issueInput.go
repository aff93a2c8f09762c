package models

import "time"

// IssueSubmission is the body of a new legal issue.
type IssueSubmission struct {
	Category     string        `json:"category" validate:"oneof=property family labor consumer domestic-violence criminal civil government other"`
	Title        string        `json:"title" validate:"min=10,max=100"`
	Description  string        `json:"description" validate:"min=50,max=2000"`
	Urgency      string        `json:"urgency" validate:"oneof=low medium high emergency"`
	Language     string        `json:"language" validate:"oneof=en hi mr bn ta te kn ml pa gu"`
	Anonymous    bool          `json:"anonymous"`
	PersonalInfo *PersonalInfo `json:"personalInfo"`
	Location     string        `json:"location"`
	Files        []string      `json:"files"`
	HasAudio     bool          `json:"hasAudio"`
	Consent      Consent       `json:"consent"`
}

// ResponseInput is the body of a new thread response.
type ResponseInput struct {
	Content string `json:"content" validate:"min=10,max=1000"`
}

// StatusUpdate is the body of a status change.
type StatusUpdate struct {
	Status string `json:"status" validate:"oneof=pending in-progress resolved closed"`
	Notes  string `json:"notes"`
}

// AssignmentRequest names the directory lawyer taking on an issue.
type AssignmentRequest struct {
	LawyerID string `json:"lawyerId" validate:"required"`
}

// IssueFilter holds the exact-match listing filters; empty fields are ignored.
type IssueFilter struct {
	Category string
	Urgency  string
	Language string
	Status   string
}

// IssueQuery is a parsed listing request.
type IssueQuery struct {
	Filter    IssueFilter
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Listing defaults.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = SortDesc
)

// IssueSortFields lists the fields a listing may be ordered by.
var IssueSortFields = []string{
	"id", "createdAt", "updatedAt", "views", "title", "category", "urgency", "language", "status", "priority",
}

// IssueSummary is the public listing projection of an issue.
type IssueSummary struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Urgency        string    `json:"urgency"`
	Language       string    `json:"language"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	CreatedAt      time.Time `json:"createdAt"`
	Views          int64     `json:"views"`
	ResponsesCount int       `json:"responsesCount"`
	Anonymous      bool      `json:"anonymous"`
	Location       string    `json:"location"`
	Tags           []string  `json:"tags"`
}

// IssueDetail is the public detail projection of an issue.
// PersonalInfo is only set for non-anonymous issues.
type IssueDetail struct {
	ID             string            `json:"id"`
	Category       string            `json:"category"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Urgency        string            `json:"urgency"`
	Language       string            `json:"language"`
	Status         string            `json:"status"`
	Priority       string            `json:"priority"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Views          int64             `json:"views"`
	Responses      []Response        `json:"responses"`
	Anonymous      bool              `json:"anonymous"`
	Location       string            `json:"location"`
	Files          []string          `json:"files"`
	HasAudio       bool              `json:"hasAudio"`
	Tags           []string          `json:"tags"`
	AssignedLawyer *LawyerAssignment `json:"assignedLawyer"`
	PersonalInfo   *PersonalInfo     `json:"personalInfo,omitempty"`
}

// IssuePagination is the page metadata of an issue listing.
type IssuePagination struct {
	Pagination
	TotalIssues int64 `json:"totalIssues"`
}

// IssuePage is one page of issue summaries.
type IssuePage struct {
	Issues     []IssueSummary  `json:"issues"`
	Pagination IssuePagination `json:"pagination"`
}

// IssueStats is the aggregate overview of every stored issue.
type IssueStats struct {
	Total          int            `json:"total"`
	Resolved       int            `json:"resolved"`
	Pending        int            `json:"pending"`
	Emergency      int            `json:"emergency"`
	ResolutionRate float64        `json:"resolutionRate"`
	Categories     map[string]int `json:"categories"`
	Languages      map[string]int `json:"languages"`
	Urgency        map[string]int `json:"urgency"`
}
