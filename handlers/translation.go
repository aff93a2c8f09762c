package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"justnest/models"
	"justnest/services/translation"
	"justnest/utils"

	"github.com/gin-gonic/gin"
)

// TranslationHandler serves the interface dictionaries.
type TranslationHandler struct {
	svc translation.TranslationService
}

func NewTranslationHandler(svc translation.TranslationService) *TranslationHandler {
	return &TranslationHandler{svc: svc}
}

// ListLanguagesHandler handles GET /translations.
func (h *TranslationHandler) ListLanguagesHandler(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"availableLanguages": h.svc.Languages(),
		"languageNames":      models.LanguageNames,
	})
}

// GetTranslationsHandler handles GET /translations/:language.
func (h *TranslationHandler) GetTranslationsHandler(c *gin.Context) {
	language := c.Param("language")
	dict, err := h.svc.Get(language)
	if err != nil {
		var nf *translation.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":            false,
				"message":            nf.Error(),
				"availableLanguages": nf.Available,
			})
			return
		}
		respondError(c, err, "Internal server error while fetching translations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"language":     language,
		"translations": dict,
	})
}

// UpdateTranslationsHandler handles POST /translations/:language.
func (h *TranslationHandler) UpdateTranslationsHandler(c *gin.Context) {
	var req models.TranslationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Language = c.Param("language")
	created, err := h.svc.Merge(req)
	if err != nil {
		respondError(c, err, "Internal server error while updating translations")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.JSONSuccess(c, status, fmt.Sprintf("Translations for language '%s' updated successfully", req.Language), gin.H{
		"language": req.Language,
	})
}
