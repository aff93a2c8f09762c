package handlers

import (
	"net/http"

	"justnest/middleware"
	"justnest/models"
	"justnest/services/issue"
	"justnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueHandler serves the legal issue endpoints.
type IssueHandler struct {
	svc issue.IssueService
}

func NewIssueHandler(svc issue.IssueService) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// CreateIssueHandler handles POST /legal-issues.
func (h *IssueHandler) CreateIssueHandler(c *gin.Context) {
	var req models.IssueSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Debug("Invalid legal issue body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var submitter *models.Identity
	if id, ok := middleware.GetIdentity(c); ok {
		submitter = &id
	}

	created, err := h.svc.Submit(c.Request.Context(), req, submitter)
	if err != nil {
		respondError(c, err, "Internal server error while posting legal issue")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Legal issue posted successfully", gin.H{
		"issue": gin.H{
			"id":        created.ID,
			"title":     created.Title,
			"category":  created.Category,
			"urgency":   created.Urgency,
			"status":    created.Status,
			"priority":  created.Priority,
			"createdAt": created.CreatedAt,
		},
	})
}

// ListIssuesHandler handles GET /legal-issues.
func (h *IssueHandler) ListIssuesHandler(c *gin.Context) {
	q, err := issue.ParseIssueQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Internal server error while fetching legal issues")
		return
	}

	page, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Internal server error while fetching legal issues")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"issues":     page.Issues,
		"pagination": page.Pagination,
	})
}

// GetIssueHandler handles GET /legal-issues/:id. Every call counts as a view.
func (h *IssueHandler) GetIssueHandler(c *gin.Context) {
	detail, err := h.svc.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Internal server error while fetching legal issue")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"issue": detail})
}

// AddResponseHandler handles POST /legal-issues/:id/responses.
func (h *IssueHandler) AddResponseHandler(c *gin.Context) {
	var req models.ResponseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, _ := middleware.GetIdentity(c)

	resp, err := h.svc.AddResponse(c.Request.Context(), c.Param("id"), req, id)
	if err != nil {
		respondError(c, err, "Internal server error while adding response")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Response added successfully", gin.H{"response": resp})
}

// UpdateStatusHandler handles PUT /legal-issues/:id/status.
func (h *IssueHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, _ := middleware.GetIdentity(c)

	updated, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req, id)
	if err != nil {
		respondError(c, err, "Internal server error while updating status")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Legal issue status updated successfully", gin.H{
		"issue": gin.H{
			"id":        updated.ID,
			"status":    updated.Status,
			"updatedAt": updated.UpdatedAt,
		},
	})
}

// AssignLawyerHandler handles PUT /legal-issues/:id/assign-lawyer.
func (h *IssueHandler) AssignLawyerHandler(c *gin.Context) {
	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, _ := middleware.GetIdentity(c)

	updated, err := h.svc.AssignLawyer(c.Request.Context(), c.Param("id"), req, id)
	if err != nil {
		respondError(c, err, "Internal server error while assigning lawyer")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Lawyer assigned successfully", gin.H{
		"issue": gin.H{
			"id":             updated.ID,
			"assignedLawyer": updated.AssignedLawyer,
			"status":         updated.Status,
		},
	})
}

// IssueStatsHandler handles GET /legal-issues/stats/overview.
func (h *IssueHandler) IssueStatsHandler(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Internal server error while fetching statistics")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"stats": stats})
}
