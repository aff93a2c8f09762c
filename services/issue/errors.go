package issue

// Client-facing messages.
const (
	msgIssueNotFound  = "Legal issue not found"
	msgLawyerNotFound = "Lawyer not found"
	msgForbidden      = "Only lawyers and administrators can manage legal issues"
)

var submissionMessages = map[string]string{
	"category":    "Valid category is required",
	"title":       "Title must be between 10 and 100 characters",
	"description": "Description must be between 50 and 2000 characters",
	"urgency":     "Valid urgency level is required",
	"language":    "Valid language is required",
}

var responseMessages = map[string]string{
	"content": "Response must be between 10 and 1000 characters",
}

var statusMessages = map[string]string{
	"status": "Valid status is required",
}

var assignmentMessages = map[string]string{
	"lawyerId": "Lawyer ID is required",
}

var queryMessages = map[string]string{
	"category":  "Valid category is required",
	"urgency":   "Valid urgency level is required",
	"language":  "Valid language is required",
	"status":    "Valid status is required",
	"page":      "Page must be a positive integer",
	"limit":     "Limit must be a positive integer",
	"sortBy":    "Sort field is not supported",
	"sortOrder": "Sort order must be asc or desc",
}
