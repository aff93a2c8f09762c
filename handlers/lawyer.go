package handlers

import (
	"net/http"

	"justnest/models"
	"justnest/services/lawyer"
	"justnest/utils"

	"github.com/gin-gonic/gin"
)

// LawyerHandler serves the lawyer directory.
type LawyerHandler struct {
	svc lawyer.LawyerService
}

func NewLawyerHandler(svc lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{svc: svc}
}

// RegisterLawyerHandler handles POST /lawyers/register.
func (h *LawyerHandler) RegisterLawyerHandler(c *gin.Context) {
	var req models.LawyerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	l, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Internal server error during lawyer registration")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Lawyer registration submitted successfully. Pending verification.", gin.H{
		"lawyer": gin.H{
			"id":              l.ID,
			"name":            l.FullName(),
			"specializations": l.Specializations,
			"location":        l.Location,
			"isVerified":      l.IsVerified,
		},
	})
}

// ListLawyersHandler handles GET /lawyers.
func (h *LawyerHandler) ListLawyersHandler(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err, "Internal server error while fetching lawyers")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"lawyers":    page.Lawyers,
		"pagination": page.Pagination,
	})
}

// GetLawyerHandler handles GET /lawyers/:id.
func (h *LawyerHandler) GetLawyerHandler(c *gin.Context) {
	l, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Internal server error while fetching lawyer")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"lawyer": l})
}

// VerifyLawyerHandler handles PUT /lawyers/:id/verify. An omitted body verifies.
func (h *LawyerHandler) VerifyLawyerHandler(c *gin.Context) {
	req := struct {
		Verified *bool `json:"verified"`
	}{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	verified := req.Verified == nil || *req.Verified

	l, err := h.svc.Verify(c.Request.Context(), c.Param("id"), verified)
	if err != nil {
		respondError(c, err, "Internal server error while verifying lawyer")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Lawyer verification updated", gin.H{
		"lawyer": gin.H{"id": l.ID, "isVerified": l.IsVerified},
	})
}
